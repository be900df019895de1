package net_structures

import (
	"errors"
	"io"
)

// Codec is implemented by every wire type in this package (and by every
// hand-written packet body); it is the method the compound codec in
// schema.go falls back to reflection for, and the method every generic
// container here requires of its element type.
type Codec interface {
	Encode(buf *PacketBuffer) error
}

// Codec has no decode-direction counterpart. Free functions rather
// than a method are used for decoding throughout this package (Go has no
// static-dispatch "decode into new value of this type" short of generics
// plus a constructor, which is what PrefixedArray below does).

// PrefixedArray is a VarInt element count followed by that many encoded
// elements
type PrefixedArray[T Codec] []T

func (a PrefixedArray[T]) Encode(buf *PacketBuffer) error {
	if err := VarInt(len(a)).Encode(buf); err != nil {
		return err
	}
	for _, elem := range a {
		if err := elem.Encode(buf); err != nil {
			return err
		}
	}
	return nil
}

// ReadPrefixedArray reads a PrefixedArray, using decode to read each
// element. A negative count is rejected.
func ReadPrefixedArray[T Codec](buf *PacketBuffer, decode func(*PacketBuffer) (T, error)) (PrefixedArray[T], error) {
	n, err := ReadVarInt(buf)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, ErrNegativeLength
	}
	out := make(PrefixedArray[T], n)
	for i := range out {
		v, err := decode(buf)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Optional is a trailing-field optional with no presence marker: decoding
// attempts the inner type, and an end-of-stream exactly at the attempt's
// start is reinterpreted as "absent" by the caller (see ReadOptional).
// Only valid as the last field of a message
type Optional[T any] struct {
	Present bool
	Value   T
}

func (o Optional[T]) Encode(buf *PacketBuffer, encode func(*PacketBuffer, T) error) error {
	if !o.Present {
		return nil
	}
	return encode(buf, o.Value)
}

// ReadOptional decodes the inner value if any bytes remain to try. On an
// in-memory packet buffer with no bytes left it reports "absent", since
// absence has no marker byte of its own; a value cut short by the end of
// that buffer is an error. On a reader whose remaining length is unknown,
// eof (io.EOF or io.ErrUnexpectedEOF) from decode is taken as "absent".
func ReadOptional[T any](buf *PacketBuffer, decode func(*PacketBuffer) (T, error)) (Optional[T], error) {
	remaining, sized := buf.reader.(interface{ Len() int })
	if sized && remaining.Len() == 0 {
		return Optional[T]{}, nil
	}
	v, err := decode(buf)
	if err != nil {
		if !sized && isEndOfPacket(err) {
			return Optional[T]{}, nil
		}
		return Optional[T]{}, err
	}
	return Optional[T]{Present: true, Value: v}, nil
}

func isEndOfPacket(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}

// PrefixedOptional is a boolean presence tag followed by the inner value
// when true.
type PrefixedOptional[T any] struct {
	Present bool
	Value   T
}

func (p PrefixedOptional[T]) Encode(buf *PacketBuffer, encode func(*PacketBuffer, T) error) error {
	if err := Boolean(p.Present).Encode(buf); err != nil {
		return err
	}
	if !p.Present {
		return nil
	}
	return encode(buf, p.Value)
}

// PrefixedByteArray is a VarInt byte count followed by that many raw bytes
// (shared secrets, verify tokens, plugin-message payloads whose length
// isn't implied by the rest of the packet).
type PrefixedByteArray ByteArray

func (b PrefixedByteArray) Encode(buf *PacketBuffer) error {
	if err := VarInt(len(b)).Encode(buf); err != nil {
		return err
	}
	_, err := buf.Write(b)
	return err
}

// ReadPrefixedByteArray reads a PrefixedByteArray, rejecting a declared
// length beyond limit.
func ReadPrefixedByteArray(buf *PacketBuffer, limit int) (PrefixedByteArray, error) {
	n, err := ReadVarInt(buf)
	if err != nil {
		return nil, err
	}
	data, err := buf.ReadByteArray(int(n), limit)
	return PrefixedByteArray(data), err
}

func (b *PrefixedByteArray) Decode(buf *PacketBuffer) error {
	v, err := ReadPrefixedByteArray(buf, MaxFramedPacketSize)
	*b = v
	return err
}

func ReadPrefixedOptional[T any](buf *PacketBuffer, decode func(*PacketBuffer) (T, error)) (PrefixedOptional[T], error) {
	present, err := ReadBoolean(buf)
	if err != nil {
		return PrefixedOptional[T]{}, err
	}
	if !present {
		return PrefixedOptional[T]{}, nil
	}
	v, err := decode(buf)
	if err != nil {
		return PrefixedOptional[T]{}, err
	}
	return PrefixedOptional[T]{Present: true, Value: v}, nil
}
