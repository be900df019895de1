package net_structures

// VarInt is a variable-length signed 32-bit integer.
//
// Uses 7 bits per byte with bit 7 as a continuation flag, little-endian
// base-128. Maximum 5 bytes for any 32-bit value.
//
// Examples:
//
//	0          -> [0x00]
//	1          -> [0x01]
//	127        -> [0x7f]
//	128        -> [0x80, 0x01]
//	255        -> [0xff, 0x01]
//	2147483647 -> [0xff, 0xff, 0xff, 0xff, 0x07]
//	-1         -> [0xff, 0xff, 0xff, 0xff, 0x0f]
type VarInt int32

// Len returns the number of bytes needed to encode this VarInt.
func (v VarInt) Len() int {
	value := uint32(v)
	n := 1
	for value >= 0x80 {
		value >>= 7
		n++
	}
	return n
}

// Encode writes the VarInt to buf.
func (v VarInt) Encode(buf *PacketBuffer) error {
	var b [5]byte
	n := 0
	value := uint32(v)
	for {
		if value&^uint32(0x7F) == 0 {
			b[n] = byte(value)
			n++
			break
		}
		b[n] = byte(value&0x7F) | 0x80
		n++
		value >>= 7
	}
	_, err := buf.Write(b[:n])
	return err
}

// ReadVarInt reads a VarInt from buf.
//
// Termination: position must not reach 32 before a terminating byte is
// read, or the value is rejected as malformed. This bound is deliberately
// 32, not a looser value — going past it would silently accept a 6-byte
// encoding of a 32-bit quantity.
func ReadVarInt(buf *PacketBuffer) (VarInt, error) {
	var value int32
	var position uint

	for {
		b, err := buf.ReadByte()
		if err != nil {
			return 0, err
		}

		value |= int32(b&0x7F) << position

		if b&0x80 == 0 {
			return VarInt(value), nil
		}

		position += 7
		if position >= 32 {
			return 0, ErrVarIntTooBig
		}
	}
}

func (pb *PacketBuffer) ReadVarInt() (VarInt, error) { return ReadVarInt(pb) }
func (pb *PacketBuffer) WriteVarInt(v VarInt) error  { return v.Encode(pb) }

// VarLong is a variable-length signed 64-bit integer, same encoding as
// VarInt but up to 10 bytes.
type VarLong int64

// Len returns the number of bytes needed to encode this VarLong.
func (v VarLong) Len() int {
	value := uint64(v)
	n := 1
	for value >= 0x80 {
		value >>= 7
		n++
	}
	return n
}

// Encode writes the VarLong to buf.
func (v VarLong) Encode(buf *PacketBuffer) error {
	var b [10]byte
	n := 0
	value := uint64(v)
	for {
		if value&^uint64(0x7F) == 0 {
			b[n] = byte(value)
			n++
			break
		}
		b[n] = byte(value&0x7F) | 0x80
		n++
		value >>= 7
	}
	_, err := buf.Write(b[:n])
	return err
}

// ReadVarLong reads a VarLong from buf. Terminates at position 64, the
// 64-bit analogue of ReadVarInt's 32-bit bound.
func ReadVarLong(buf *PacketBuffer) (VarLong, error) {
	var value int64
	var position uint

	for {
		b, err := buf.ReadByte()
		if err != nil {
			return 0, err
		}

		value |= int64(b&0x7F) << position

		if b&0x80 == 0 {
			return VarLong(value), nil
		}

		position += 7
		if position >= 64 {
			return 0, ErrVarLongTooBig
		}
	}
}

func (pb *PacketBuffer) ReadVarLong() (VarLong, error) { return ReadVarLong(pb) }
func (pb *PacketBuffer) WriteVarLong(v VarLong) error   { return v.Encode(pb) }
