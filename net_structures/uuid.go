package net_structures

import "github.com/google/uuid"

// UUID is a 128-bit identifier, encoded on the wire as a big-endian u128
// (i.e. the 16 bytes of the UUID in RFC 4122 order, with no length prefix).
//
// Parsing/formatting delegates to google/uuid (used throughout the corpus
// for exactly this: a client-supplied or server-assigned identity, never a
// randomness source) rather than hand-rolling string<->bytes conversion.
type UUID [16]byte

func (u UUID) Encode(buf *PacketBuffer) error {
	_, err := buf.Write(u[:])
	return err
}

func ReadUUID(buf *PacketBuffer) (UUID, error) {
	var u UUID
	if _, err := buf.Read(u[:]); err != nil {
		return UUID{}, err
	}
	return u, nil
}

func (pb *PacketBuffer) ReadUUID() (UUID, error)  { return ReadUUID(pb) }
func (pb *PacketBuffer) WriteUUID(u UUID) error   { return u.Encode(pb) }

// String returns the canonical dashed hex representation.
func (u UUID) String() string {
	return uuid.UUID(u).String()
}

// ParseUUID parses a dashed or undashed hex UUID string.
func ParseUUID(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, err
	}
	return UUID(id), nil
}
