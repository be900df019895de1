package net_structures

import "errors"

// Sentinel errors for this codec's named decode-time failures. Callers
// classify errors with errors.Is rather than a tagged enum, matching the
// plain-wrapped-error convention used throughout this codec.
var (
	ErrVarIntTooBig        = errors.New("net_structures: VarInt is too big")
	ErrVarLongTooBig       = errors.New("net_structures: VarLong is too big")
	ErrInvalidBoolean      = errors.New("net_structures: invalid boolean value")
	ErrInvalidNamespace    = errors.New("net_structures: identifier has wrong namespace")
	ErrStringTooLong       = errors.New("net_structures: string exceeds capacity bound")
	ErrNegativeLength      = errors.New("net_structures: negative length prefix")
	ErrInvalidEnumValue    = errors.New("net_structures: invalid enum discriminant")
	ErrInvalidBitsPerEntry = errors.New("net_structures: invalid bits per entry")
	ErrOversizedFrame      = errors.New("net_structures: frame exceeds maximum packet size")
)

// MaxFramedPacketSize is the largest value a packet's outer VarInt length
// may legally carry (2^21 = 2097152 bytes); a frame claiming more is
// rejected with ErrOversizedFrame.
const MaxFramedPacketSize = 2097152
