package java_protocol

import (
	"bytes"
	"testing"

	ns "github.com/go-mclib/picocraft/net_structures"
)

type testPacket struct {
	Value ns.VarInt
}

func (testPacket) ID() ns.VarInt   { return 0x05 }
func (testPacket) State() State    { return StatePlay }
func (testPacket) Bound() Bound    { return S2C }
func (p *testPacket) Read(buf *ns.PacketBuffer) error  { return ns.DecodeCompound(buf, p) }
func (p *testPacket) Write(buf *ns.PacketBuffer) error { return ns.EncodeCompound(buf, p) }

func TestWireRoundTripUncompressed(t *testing.T) {
	p := &testPacket{Value: 12345}
	wire, err := ToWire(p)
	if err != nil {
		t.Fatalf("ToWire() error = %v", err)
	}

	var framed bytes.Buffer
	if err := wire.WriteTo(&framed, -1); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}

	got, err := ReadWirePacketFrom(&framed, -1)
	if err != nil {
		t.Fatalf("ReadWirePacketFrom() error = %v", err)
	}
	if got.PacketID != p.ID() {
		t.Errorf("PacketID = %v, want %v", got.PacketID, p.ID())
	}

	decoded, err := ReadPacket[testPacket](got)
	if err != nil {
		t.Fatalf("ReadPacket() error = %v", err)
	}
	if decoded.Value != p.Value {
		t.Errorf("Value = %v, want %v", decoded.Value, p.Value)
	}
}

func TestReadIntoRejectsIDMismatch(t *testing.T) {
	wire := &WirePacket{PacketID: 0x99, Data: nil}
	var p testPacket
	if err := wire.ReadInto(&p); err == nil {
		t.Error("ReadInto() should reject a packet ID mismatch")
	}
}

func TestReadWirePacketFromRejectsOversizedFrame(t *testing.T) {
	buf := ns.NewWriter()
	_ = ns.VarInt(ns.MaxFramedPacketSize + 1).Encode(buf)
	if _, err := ReadWirePacketFrom(bytes.NewReader(buf.Bytes()), -1); err == nil {
		t.Error("ReadWirePacketFrom() should reject a frame beyond MaxFramedPacketSize")
	}
}

func TestStateString(t *testing.T) {
	cases := map[State]string{
		StateHandshake:     "handshake",
		StateStatus:        "status",
		StateLogin:         "login",
		StateConfiguration: "configuration",
		StatePlay:          "play",
		State(250):         "unknown",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", state, got, want)
		}
	}
}
