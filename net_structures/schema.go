package net_structures

import (
	"fmt"
	"reflect"
)

// This file is the compound codec / schema binding mechanism:
// a message's field order is declared exactly once — as the Go struct's own
// field order — and EncodeCompound/DecodeCompound walk that declaration to
// drive both directions of serialization, the way a derive macro would in
// the source language. Messages with a wire shape the struct-field walk
// can't express (paletted containers, chunk sections, anything with a
// conditional or bitmask-driven field) hand-write Encode/Decode directly
// against net_structures' lower-level helpers instead; both are the same
// mechanism at different levels of manual control, not two competing
// drafts.
//
// A field is skipped with the struct tag `mc:"-"`.

type fieldEncoder interface {
	Encode(buf *PacketBuffer) error
}

type fieldDecoder interface {
	Decode(buf *PacketBuffer) error
}

// EncodeCompound encodes v (a struct or pointer to one) by calling each
// exported field's Encode method in field-declaration order.
func EncodeCompound(buf *PacketBuffer, v any) error {
	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("net_structures: EncodeCompound requires a struct, got %s", val.Kind())
	}
	typ := val.Type()
	for i := range val.NumField() {
		field := val.Field(i)
		sf := typ.Field(i)
		if !field.CanInterface() || sf.Tag.Get("mc") == "-" {
			continue
		}
		enc, ok := field.Interface().(fieldEncoder)
		if !ok {
			return fmt.Errorf("net_structures: field %s (%s) does not implement Encode", sf.Name, sf.Type)
		}
		if err := enc.Encode(buf); err != nil {
			return fmt.Errorf("field %s: %w", sf.Name, err)
		}
	}
	return nil
}

// DecodeCompound decodes into v (a pointer to a struct) by calling each
// exported field's Decode method in field-declaration order.
func DecodeCompound(buf *PacketBuffer, v any) error {
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return fmt.Errorf("net_structures: DecodeCompound requires a non-nil pointer")
	}
	val = val.Elem()
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("net_structures: DecodeCompound requires a struct, got %s", val.Kind())
	}
	typ := val.Type()
	for i := range val.NumField() {
		field := val.Field(i)
		sf := typ.Field(i)
		if !field.CanSet() || sf.Tag.Get("mc") == "-" {
			continue
		}
		dec, ok := field.Addr().Interface().(fieldDecoder)
		if !ok {
			return fmt.Errorf("net_structures: field %s (%s) does not implement Decode", sf.Name, sf.Type)
		}
		if err := dec.Decode(buf); err != nil {
			return fmt.Errorf("field %s: %w", sf.Name, err)
		}
	}
	return nil
}

// Pointer-receiver Decode methods for the fixed-shape primitive types,
// needed so DecodeCompound's reflection can address them generically. Each
// simply delegates to the corresponding free ReadX function; code that
// wants more control (a capacity bound, a custom error) calls ReadX
// directly instead, as every hand-written packet body in the packets
// package does.

func (v *VarInt) Decode(buf *PacketBuffer) error {
	x, err := ReadVarInt(buf)
	*v = x
	return err
}

func (v *VarLong) Decode(buf *PacketBuffer) error {
	x, err := ReadVarLong(buf)
	*v = x
	return err
}

func (v *Boolean) Decode(buf *PacketBuffer) error {
	x, err := ReadBoolean(buf)
	*v = x
	return err
}

func (v *Int8) Decode(buf *PacketBuffer) error {
	x, err := ReadInt8(buf)
	*v = x
	return err
}

func (v *Uint8) Decode(buf *PacketBuffer) error {
	x, err := ReadUint8(buf)
	*v = x
	return err
}

func (v *Int16) Decode(buf *PacketBuffer) error {
	x, err := ReadInt16(buf)
	*v = x
	return err
}

func (v *Uint16) Decode(buf *PacketBuffer) error {
	x, err := ReadUint16(buf)
	*v = x
	return err
}

func (v *Int32) Decode(buf *PacketBuffer) error {
	x, err := ReadInt32(buf)
	*v = x
	return err
}

func (v *Uint32) Decode(buf *PacketBuffer) error {
	x, err := ReadUint32(buf)
	*v = x
	return err
}

func (v *Int64) Decode(buf *PacketBuffer) error {
	x, err := ReadInt64(buf)
	*v = x
	return err
}

func (v *Float32) Decode(buf *PacketBuffer) error {
	x, err := ReadFloat32(buf)
	*v = x
	return err
}

func (v *Float64) Decode(buf *PacketBuffer) error {
	x, err := ReadFloat64(buf)
	*v = x
	return err
}

func (u *UUID) Decode(buf *PacketBuffer) error {
	x, err := ReadUUID(buf)
	*u = x
	return err
}

func (p *Position) Decode(buf *PacketBuffer) error {
	x, err := ReadPosition(buf)
	*p = x
	return err
}

// BoundedString is a String paired with its capacity bound, so it can carry
// its own Decode method (String alone can't — ReadString needs the bound as
// an argument) and participate in DecodeCompound like any other field.
type BoundedString struct {
	Value    String
	MaxChars int
}

func (s BoundedString) Encode(buf *PacketBuffer) error { return s.Value.Encode(buf) }

func (s *BoundedString) Decode(buf *PacketBuffer) error {
	v, err := ReadString(buf, s.MaxChars)
	s.Value = v
	return err
}
