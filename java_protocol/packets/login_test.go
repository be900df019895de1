package packets_test

import (
	"testing"

	"github.com/go-mclib/picocraft/java_protocol/packets"
	ns "github.com/go-mclib/picocraft/net_structures"
)

func TestHelloRoundTrip(t *testing.T) {
	id, err := ns.ParseUUID("550e8400-e29b-41d4-a716-446655440000")
	if err != nil {
		t.Fatalf("ParseUUID() error = %v", err)
	}
	p := &packets.Hello{Name: "steve", PlayerUUID: id}

	buf := ns.NewWriter()
	if err := p.Write(buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	var decoded packets.Hello
	if err := decoded.Read(ns.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if decoded.Name != p.Name || decoded.PlayerUUID != p.PlayerUUID {
		t.Errorf("decoded = %+v, want %+v", decoded, *p)
	}
}

func TestLoginSuccessRoundTrip(t *testing.T) {
	id, err := ns.ParseUUID("550e8400-e29b-41d4-a716-446655440000")
	if err != nil {
		t.Fatalf("ParseUUID() error = %v", err)
	}
	p := &packets.LoginSuccess{UUID: id, Username: "steve"}

	buf := ns.NewWriter()
	if err := p.Write(buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	var decoded packets.LoginSuccess
	if err := decoded.Read(ns.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if decoded.UUID != p.UUID || decoded.Username != p.Username {
		t.Errorf("decoded = %+v, want %+v", decoded, *p)
	}
}

func TestLoginAcknowledgedRoundTrip(t *testing.T) {
	p := &packets.LoginAcknowledged{}
	buf := ns.NewWriter()
	if err := p.Write(buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	var decoded packets.LoginAcknowledged
	if err := decoded.Read(ns.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
}

func TestCustomQueryAnswerRoundTripWithPayload(t *testing.T) {
	p := &packets.CustomQueryAnswer{
		MessageID: 3,
		Data:      ns.PrefixedOptional[ns.ByteArray]{Present: true, Value: []byte{1, 2, 3}},
	}
	buf := ns.NewWriter()
	if err := p.Write(buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	var decoded packets.CustomQueryAnswer
	if err := decoded.Read(ns.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if decoded.MessageID != p.MessageID || !decoded.Data.Present {
		t.Errorf("decoded = %+v, want Present data", decoded)
	}
	if string(decoded.Data.Value) != string(p.Data.Value) {
		t.Errorf("Data.Value = %v, want %v", decoded.Data.Value, p.Data.Value)
	}
}

func TestCookieResponseLoginRoundTripAbsent(t *testing.T) {
	p := &packets.CookieResponseLogin{
		Key:     ns.NewIdentifier("session"),
		Payload: ns.PrefixedOptional[ns.ByteArray]{Present: false},
	}
	buf := ns.NewWriter()
	if err := p.Write(buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	var decoded packets.CookieResponseLogin
	if err := decoded.Read(ns.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if decoded.Key != p.Key || decoded.Payload.Present {
		t.Errorf("decoded = %+v, want absent payload", decoded)
	}
}

func TestDisconnectLoginRoundTrip(t *testing.T) {
	p := &packets.DisconnectLogin{Reason: ns.PlainText("bye")}
	buf := ns.NewWriter()
	if err := p.Write(buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	var decoded packets.DisconnectLogin
	if err := decoded.Read(ns.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if decoded.Reason["text"] != "bye" {
		t.Errorf("Reason = %v, want text=bye", decoded.Reason)
	}
}
