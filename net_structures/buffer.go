// Package net_structures implements the wire-level data types of the
// Minecraft Java Edition protocol (version 774, "1.21.11"): variable-width
// integers, big-endian primitives, length-prefixed sequences, bit-packed
// paletted containers, and the heightmap/chunk assembly types built on top
// of them.
//
// Every type here is suspension-agnostic: decoding only ever blocks inside
// the underlying io.Reader's Read call, never inside the arithmetic that
// interprets the bytes. That property is what lets a connection's main loop
// race a packet read against a keep-alive tick without risking a half-read
// packet (see the server package).
package net_structures

import (
	"bytes"
	"fmt"
	"io"
)

// ByteArray is a raw, unframed byte sequence — used for scratch buffers and
// for fields whose contents are opaque to this core (e.g. bundled NBT blobs).
type ByteArray []byte

// PacketBuffer wraps an io.Reader or io.Writer with the read/write helpers
// every protocol type needs. A single PacketBuffer is either in read mode
// (backed by a connection or a decoded packet's scratch buffer) or write
// mode (backed by a growable buffer, so the framing layer can measure the
// encoded length before writing it to the wire).
type PacketBuffer struct {
	reader io.Reader
	writer io.Writer
	buf    *bytes.Buffer
}

// NewReader creates a PacketBuffer for reading from an in-memory byte slice
// (typically a packet's already-framed body).
func NewReader(data []byte) *PacketBuffer {
	return &PacketBuffer{reader: bytes.NewReader(data)}
}

// NewReaderFrom creates a PacketBuffer that reads directly from r, e.g. a
// net.Conn, without buffering a whole packet up front.
func NewReaderFrom(r io.Reader) *PacketBuffer {
	return &PacketBuffer{reader: r}
}

// NewWriter creates a PacketBuffer that accumulates written bytes in memory
// so they can be measured and framed before going on the wire.
func NewWriter() *PacketBuffer {
	buf := &bytes.Buffer{}
	return &PacketBuffer{writer: buf, buf: buf}
}

// NewWriterTo creates a PacketBuffer that writes straight through to w.
func NewWriterTo(w io.Writer) *PacketBuffer {
	return &PacketBuffer{writer: w}
}

// Bytes returns the bytes written so far. Only valid for buffers from NewWriter.
func (pb *PacketBuffer) Bytes() []byte {
	if pb.buf != nil {
		return pb.buf.Bytes()
	}
	return nil
}

// Len returns the number of bytes written so far. Only valid for buffers from NewWriter.
func (pb *PacketBuffer) Len() int {
	if pb.buf != nil {
		return pb.buf.Len()
	}
	return 0
}

// Read reads exactly len(p) bytes, as required by every fixed-width decoder here.
func (pb *PacketBuffer) Read(p []byte) (int, error) {
	if pb.reader == nil {
		return 0, fmt.Errorf("net_structures: buffer not in read mode")
	}
	return io.ReadFull(pb.reader, p)
}

// Write writes p in full.
func (pb *PacketBuffer) Write(p []byte) (int, error) {
	if pb.writer == nil {
		return 0, fmt.Errorf("net_structures: buffer not in write mode")
	}
	return pb.writer.Write(p)
}

// ReadByte reads a single byte. Satisfies io.ByteReader, which VarInt/VarLong decoding relies on.
func (pb *PacketBuffer) ReadByte() (byte, error) {
	var b [1]byte
	_, err := pb.Read(b[:])
	return b[0], err
}

// WriteByte writes a single byte. Satisfies io.ByteWriter.
func (pb *PacketBuffer) WriteByte(b byte) error {
	_, err := pb.Write([]byte{b})
	return err
}

// Reader exposes the underlying io.Reader, for types (NBT blobs, in
// particular) that hand their remaining bytes to a third-party decoder.
func (pb *PacketBuffer) Reader() io.Reader {
	return pb.reader
}
