package packets_test

import (
	"testing"

	"github.com/go-mclib/picocraft/java_protocol/packets"
	ns "github.com/go-mclib/picocraft/net_structures"
)

func TestIntentionRoundTrip(t *testing.T) {
	p := &packets.Intention{
		ProtocolVersion: 774,
		ServerAddress:   "play.example.com",
		ServerPort:      25565,
		Intent:          packets.IntentLogin,
	}

	buf := ns.NewWriter()
	if err := p.Write(buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var decoded packets.Intention
	if err := decoded.Read(ns.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if decoded != *p {
		t.Errorf("decoded = %+v, want %+v", decoded, *p)
	}
}
