// Package java_protocol contains the connection-level packet framing for
// the Minecraft Java Edition protocol: the Packet interface every typed
// message implements, the WirePacket representation of a packet as it
// appears on the wire, and the (de)compression framing around it.
//
// The Minecraft server accepts TCP connections and exchanges packets over
// them. A packet's meaning depends on both its ID and the connection's
// current protocol state — each state keeps its own packet-ID numbering, so
// the same ID means different things in different states. A connection
// starts in Handshake and is driven through Status-or-Login, Configuration,
// and Play by the packets it exchanges.
//
// Packets cannot be larger than 2^21 (2097152) bytes; a frame whose length
// prefix claims more is rejected before its body is read.
//
// See https://minecraft.wiki/w/Java_Edition_protocol/Packets
package java_protocol

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"

	ns "github.com/go-mclib/picocraft/net_structures"
)

// Packet is the interface every typed packet implements: it knows its own
// ID, protocol state, and direction, and can serialize/deserialize its own
// body against a PacketBuffer.
type Packet interface {
	ID() ns.VarInt
	State() State
	Bound() Bound
	Read(buf *ns.PacketBuffer) error
	Write(buf *ns.PacketBuffer) error
}

// State is the protocol phase a connection is in. Never sent on the wire —
// both sides track it locally and transition it in lockstep as the
// handshake, login, and configuration packets are exchanged.
type State uint8

const (
	StateHandshake State = iota
	StateStatus
	StateLogin
	StateConfiguration
	StatePlay
)

func (s State) String() string {
	switch s {
	case StateHandshake:
		return "handshake"
	case StateStatus:
		return "status"
	case StateLogin:
		return "login"
	case StateConfiguration:
		return "configuration"
	case StatePlay:
		return "play"
	default:
		return "unknown"
	}
}

// Bound is the direction a packet travels.
type Bound uint8

const (
	C2S Bound = iota // serverbound: client -> server
	S2C              // clientbound: server -> client
)

// WirePacket is a packet in its raw, untyped wire shape: an ID and a body
// of undecoded bytes. Every inbound packet is read into this shape first,
// then handed to ReadInto/ReadPacket once the caller knows which typed
// Packet it should decode as.
type WirePacket struct {
	PacketID ns.VarInt
	Data     ns.ByteArray
}

// ReadWirePacketFrom reads one framed packet from r. compressionThreshold
// < 0 disables compression framing entirely, which is this core's only
// supported mode (see the disabled-by-default compression non-goal) — the
// compressed path is kept so the framing stays adaptable if that changes,
// but no caller in this codebase passes a non-negative threshold.
func ReadWirePacketFrom(r io.Reader, compressionThreshold int) (*WirePacket, error) {
	lengthBuf := ns.NewReaderFrom(r)
	packetLength, err := ns.ReadVarInt(lengthBuf)
	if err != nil {
		return nil, fmt.Errorf("java_protocol: read packet length: %w", err)
	}
	if packetLength < 0 || int(packetLength) > ns.MaxFramedPacketSize {
		return nil, ns.ErrOversizedFrame
	}

	data := make([]byte, packetLength)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("java_protocol: read packet body: %w", err)
	}
	body := ns.NewReader(data)

	if compressionThreshold >= 0 {
		return readCompressedPacket(body)
	}
	return readUncompressedPacket(body)
}

func readUncompressedPacket(body *ns.PacketBuffer) (*WirePacket, error) {
	packetID, err := ns.ReadVarInt(body)
	if err != nil {
		return nil, fmt.Errorf("java_protocol: read packet ID: %w", err)
	}
	rest, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("java_protocol: read packet data: %w", err)
	}
	return &WirePacket{PacketID: packetID, Data: rest}, nil
}

func readCompressedPacket(body *ns.PacketBuffer) (*WirePacket, error) {
	dataLength, err := ns.ReadVarInt(body)
	if err != nil {
		return nil, fmt.Errorf("java_protocol: read data length: %w", err)
	}
	if dataLength == 0 {
		// Below the compression threshold: sent uncompressed despite
		// compression being enabled for the connection.
		return readUncompressedPacket(body)
	}

	compressed, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("java_protocol: read compressed data: %w", err)
	}
	uncompressed, err := decompressZlib(compressed)
	if err != nil {
		return nil, fmt.Errorf("java_protocol: decompress: %w", err)
	}
	return readUncompressedPacket(ns.NewReader(uncompressed))
}

// WriteTo frames w and writes it to writer. See ReadWirePacketFrom for why
// compressionThreshold is always negative in this server.
func (w *WirePacket) WriteTo(writer io.Writer, compressionThreshold int) error {
	var data []byte
	var err error
	if compressionThreshold >= 0 {
		data, err = w.toBytesCompressed(compressionThreshold)
	} else {
		data, err = w.toBytesUncompressed()
	}
	if err != nil {
		return fmt.Errorf("java_protocol: serialize packet: %w", err)
	}
	_, err = writer.Write(data)
	return err
}

// ReadInto decodes w's raw body into p, failing if w's packet ID doesn't
// match p's.
func (w *WirePacket) ReadInto(p Packet) error {
	if w == nil {
		return fmt.Errorf("java_protocol: nil wire packet")
	}
	if w.PacketID != p.ID() {
		return fmt.Errorf("java_protocol: packet ID mismatch: expected 0x%02X, got 0x%02X", p.ID(), w.PacketID)
	}
	return p.Read(ns.NewReader(w.Data))
}

// ReadPacket decodes a WirePacket into a freshly allocated *T, inferring T
// from the call site (e.g. ReadPacket[LoginStartPacket](wire)).
func ReadPacket[T any, PT interface {
	*T
	Packet
}](wire *WirePacket) (PT, error) {
	p := new(T)
	pt := PT(p)
	if err := wire.ReadInto(pt); err != nil {
		return nil, err
	}
	return pt, nil
}

// ToWire serializes a typed Packet's body into a WirePacket ready for
// WriteTo.
func ToWire(p Packet) (*WirePacket, error) {
	buf := ns.NewWriter()
	if err := p.Write(buf); err != nil {
		return nil, fmt.Errorf("java_protocol: serialize packet data: %w", err)
	}
	return &WirePacket{PacketID: p.ID(), Data: buf.Bytes()}, nil
}

func varIntBytes(v ns.VarInt) ([]byte, error) {
	buf := ns.NewWriter()
	if err := v.Encode(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// toBytesCompressed frames w per the compressed packet format: packet
// length, then uncompressed-data length (0 below threshold), then the
// (possibly compressed) packet ID + body.
func (w *WirePacket) toBytesCompressed(compressionThreshold int) ([]byte, error) {
	idBytes, err := varIntBytes(w.PacketID)
	if err != nil {
		return nil, err
	}
	payload := append(append([]byte{}, idBytes...), w.Data...)

	if len(payload) >= compressionThreshold {
		compressed := compressZlib(payload)
		dataLenBytes, err := varIntBytes(ns.VarInt(len(payload)))
		if err != nil {
			return nil, err
		}
		content := append(dataLenBytes, compressed...)
		lengthBytes, err := varIntBytes(ns.VarInt(len(content)))
		if err != nil {
			return nil, err
		}
		return append(lengthBytes, content...), nil
	}

	dataLenBytes, err := varIntBytes(ns.VarInt(0))
	if err != nil {
		return nil, err
	}
	content := append(dataLenBytes, payload...)
	lengthBytes, err := varIntBytes(ns.VarInt(len(content)))
	if err != nil {
		return nil, err
	}
	return append(lengthBytes, content...), nil
}

// toBytesUncompressed frames w as packet length, packet ID, body.
func (w *WirePacket) toBytesUncompressed() ([]byte, error) {
	idBytes, err := varIntBytes(w.PacketID)
	if err != nil {
		return nil, err
	}
	payload := append(append([]byte{}, idBytes...), w.Data...)
	lengthBytes, err := varIntBytes(ns.VarInt(len(payload)))
	if err != nil {
		return nil, err
	}
	return append(lengthBytes, payload...), nil
}

func compressZlib(data []byte) []byte {
	var out bytes.Buffer
	writer := zlib.NewWriter(&out)
	_, _ = writer.Write(data)
	_ = writer.Close()
	return out.Bytes()
}

func decompressZlib(data []byte) ([]byte, error) {
	reader, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func() { _ = reader.Close() }()
	return io.ReadAll(reader)
}
