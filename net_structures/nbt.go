package net_structures

import (
	"bytes"
	"fmt"

	"github.com/Tnze/go-mc/nbt"
)

// NBT is an opaque compound tag carried verbatim on the wire. This core
// never interprets block-entity or registry tag contents; it only moves
// them between the wire and an in-memory value using the real NBT codec's
// network format (no root name, compound payload only).
type NBT struct {
	Data any
}

func (n NBT) Encode(buf *PacketBuffer) error {
	if n.Data == nil {
		return buf.WriteByte(0x00) // TAG_End: empty compound
	}
	var scratch bytes.Buffer
	enc := nbt.NewEncoder(&scratch)
	enc.NetworkFormat(true)
	if err := enc.Encode(n.Data, ""); err != nil {
		return fmt.Errorf("net_structures: encode NBT: %w", err)
	}
	_, err := buf.Write(scratch.Bytes())
	return err
}

// ReadNBT decodes one NBT value from buf's stream, consuming exactly as
// many bytes as the tag occupies — NBT is self-delimiting, so this never
// needs a length prefix even embedded inside a larger packet.
func ReadNBT(buf *PacketBuffer) (NBT, error) {
	dec := nbt.NewDecoder(buf.Reader())
	dec.NetworkFormat(true)
	var data any
	if _, err := dec.Decode(&data); err != nil {
		return NBT{}, fmt.Errorf("net_structures: decode NBT: %w", err)
	}
	return NBT{Data: data}, nil
}

func (pb *PacketBuffer) ReadNBT() (NBT, error) { return ReadNBT(pb) }
func (pb *PacketBuffer) WriteNBT(n NBT) error  { return n.Encode(pb) }
