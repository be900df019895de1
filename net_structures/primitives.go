package net_structures

import (
	"encoding/binary"
	"math"
)

// Boolean is a single byte: 0x00 (false) or 0x01 (true). Any other value on
// decode is ErrInvalidBoolean.
type Boolean bool

func (v Boolean) Encode(buf *PacketBuffer) error {
	b := byte(0)
	if v {
		b = 1
	}
	return buf.WriteByte(b)
}

func ReadBoolean(buf *PacketBuffer) (Boolean, error) {
	b, err := buf.ReadByte()
	if err != nil {
		return false, err
	}
	switch b {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		return false, ErrInvalidBoolean
	}
}

func (pb *PacketBuffer) ReadBool() (Boolean, error) { return ReadBoolean(pb) }
func (pb *PacketBuffer) WriteBool(v Boolean) error  { return v.Encode(pb) }

// Int8/Uint8 are single bytes, signed and unsigned.
type Int8 int8
type Uint8 uint8

func (v Int8) Encode(buf *PacketBuffer) error  { return buf.WriteByte(byte(v)) }
func (v Uint8) Encode(buf *PacketBuffer) error { return buf.WriteByte(byte(v)) }

func ReadInt8(buf *PacketBuffer) (Int8, error) {
	b, err := buf.ReadByte()
	return Int8(b), err
}

func ReadUint8(buf *PacketBuffer) (Uint8, error) {
	b, err := buf.ReadByte()
	return Uint8(b), err
}

func (pb *PacketBuffer) ReadInt8() (Int8, error)   { return ReadInt8(pb) }
func (pb *PacketBuffer) ReadUint8() (Uint8, error) { return ReadUint8(pb) }
func (pb *PacketBuffer) WriteInt8(v Int8) error    { return v.Encode(pb) }
func (pb *PacketBuffer) WriteUint8(v Uint8) error  { return v.Encode(pb) }

// Int16/Uint16 are big-endian 16-bit integers.
type Int16 int16
type Uint16 uint16

func (v Int16) Encode(buf *PacketBuffer) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], uint16(v))
	_, err := buf.Write(b[:])
	return err
}

func (v Uint16) Encode(buf *PacketBuffer) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], uint16(v))
	_, err := buf.Write(b[:])
	return err
}

func ReadInt16(buf *PacketBuffer) (Int16, error) {
	var b [2]byte
	if _, err := buf.Read(b[:]); err != nil {
		return 0, err
	}
	return Int16(binary.BigEndian.Uint16(b[:])), nil
}

func ReadUint16(buf *PacketBuffer) (Uint16, error) {
	var b [2]byte
	if _, err := buf.Read(b[:]); err != nil {
		return 0, err
	}
	return Uint16(binary.BigEndian.Uint16(b[:])), nil
}

func (pb *PacketBuffer) ReadInt16() (Int16, error)   { return ReadInt16(pb) }
func (pb *PacketBuffer) ReadUint16() (Uint16, error) { return ReadUint16(pb) }
func (pb *PacketBuffer) WriteInt16(v Int16) error    { return v.Encode(pb) }
func (pb *PacketBuffer) WriteUint16(v Uint16) error  { return v.Encode(pb) }

// Int32/Uint32 are big-endian 32-bit integers.
type Int32 int32
type Uint32 uint32

func (v Int32) Encode(buf *PacketBuffer) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	_, err := buf.Write(b[:])
	return err
}

func (v Uint32) Encode(buf *PacketBuffer) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	_, err := buf.Write(b[:])
	return err
}

func ReadInt32(buf *PacketBuffer) (Int32, error) {
	var b [4]byte
	if _, err := buf.Read(b[:]); err != nil {
		return 0, err
	}
	return Int32(binary.BigEndian.Uint32(b[:])), nil
}

func ReadUint32(buf *PacketBuffer) (Uint32, error) {
	var b [4]byte
	if _, err := buf.Read(b[:]); err != nil {
		return 0, err
	}
	return Uint32(binary.BigEndian.Uint32(b[:])), nil
}

func (pb *PacketBuffer) ReadInt32() (Int32, error)   { return ReadInt32(pb) }
func (pb *PacketBuffer) ReadUint32() (Uint32, error) { return ReadUint32(pb) }
func (pb *PacketBuffer) WriteInt32(v Int32) error    { return v.Encode(pb) }
func (pb *PacketBuffer) WriteUint32(v Uint32) error  { return v.Encode(pb) }

// Int64/Uint64 are big-endian 64-bit integers.
type Int64 int64
type Uint64 uint64

func (v Int64) Encode(buf *PacketBuffer) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	_, err := buf.Write(b[:])
	return err
}

func (v Uint64) Encode(buf *PacketBuffer) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	_, err := buf.Write(b[:])
	return err
}

func ReadInt64(buf *PacketBuffer) (Int64, error) {
	var b [8]byte
	if _, err := buf.Read(b[:]); err != nil {
		return 0, err
	}
	return Int64(binary.BigEndian.Uint64(b[:])), nil
}

func ReadUint64(buf *PacketBuffer) (Uint64, error) {
	var b [8]byte
	if _, err := buf.Read(b[:]); err != nil {
		return 0, err
	}
	return Uint64(binary.BigEndian.Uint64(b[:])), nil
}

func (pb *PacketBuffer) ReadInt64() (Int64, error)   { return ReadInt64(pb) }
func (pb *PacketBuffer) ReadUint64() (Uint64, error) { return ReadUint64(pb) }
func (pb *PacketBuffer) WriteInt64(v Int64) error    { return v.Encode(pb) }
func (pb *PacketBuffer) WriteUint64(v Uint64) error  { return v.Encode(pb) }

// Float32/Float64 are big-endian IEEE-754 floats.
type Float32 float32
type Float64 float64

func (v Float32) Encode(buf *PacketBuffer) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], math.Float32bits(float32(v)))
	_, err := buf.Write(b[:])
	return err
}

func (v Float64) Encode(buf *PacketBuffer) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], math.Float64bits(float64(v)))
	_, err := buf.Write(b[:])
	return err
}

func ReadFloat32(buf *PacketBuffer) (Float32, error) {
	var b [4]byte
	if _, err := buf.Read(b[:]); err != nil {
		return 0, err
	}
	return Float32(math.Float32frombits(binary.BigEndian.Uint32(b[:]))), nil
}

func ReadFloat64(buf *PacketBuffer) (Float64, error) {
	var b [8]byte
	if _, err := buf.Read(b[:]); err != nil {
		return 0, err
	}
	return Float64(math.Float64frombits(binary.BigEndian.Uint64(b[:]))), nil
}

func (pb *PacketBuffer) ReadFloat32() (Float32, error) { return ReadFloat32(pb) }
func (pb *PacketBuffer) ReadFloat64() (Float64, error) { return ReadFloat64(pb) }
func (pb *PacketBuffer) WriteFloat32(v Float32) error  { return v.Encode(pb) }
func (pb *PacketBuffer) WriteFloat64(v Float64) error  { return v.Encode(pb) }

// ReadByteArray reads exactly n raw bytes, rejecting n beyond limit (used to
// bound chunk-data and other variable blobs to a sane maximum).
func (pb *PacketBuffer) ReadByteArray(n, limit int) (ByteArray, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	if n > limit {
		return nil, ErrOversizedFrame
	}
	data := make([]byte, n)
	if _, err := pb.Read(data); err != nil {
		return nil, err
	}
	return data, nil
}

// WriteByteArray writes raw bytes with no length prefix.
func (pb *PacketBuffer) WriteByteArray(data ByteArray) error {
	_, err := pb.Write(data)
	return err
}
