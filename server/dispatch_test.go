package server

import (
	"testing"

	jp "github.com/go-mclib/picocraft/java_protocol"
	ns "github.com/go-mclib/picocraft/net_structures"
)

func TestDispatchUnknownPacketIsIgnored(t *testing.T) {
	c := &conn{state: jp.StateStatus}
	err := c.dispatch(&jp.WirePacket{PacketID: 0x7F})
	if err != nil {
		t.Errorf("dispatch() of an unregistered packet ID should be ignored, got %v", err)
	}
}

func TestDispatchUnknownStateErrors(t *testing.T) {
	c := &conn{state: jp.State(250)}
	if err := c.dispatch(&jp.WirePacket{PacketID: 0x00}); err == nil {
		t.Error("dispatch() for a state with no registered handlers should error")
	}
}

func TestDispatchRoutesToRegisteredHandler(t *testing.T) {
	const testState = jp.State(251)
	called := false
	registerHandler(testState, ns.VarInt(0x01), func(*conn, *jp.WirePacket) error {
		called = true
		return nil
	})

	c := &conn{state: testState}
	if err := c.dispatch(&jp.WirePacket{PacketID: 0x01}); err != nil {
		t.Fatalf("dispatch() error = %v", err)
	}
	if !called {
		t.Error("dispatch() did not invoke the registered handler")
	}
}
