package server

import (
	"fmt"

	jp "github.com/go-mclib/picocraft/java_protocol"
	ns "github.com/go-mclib/picocraft/net_structures"
)

// dispatch routes one inbound wire packet to the handler registered for the
// connection's current (state, packet ID) pair. A connection's state only
// ever changes as the direct result of a handler running, so no locking is
// needed around c.state here.
func (c *conn) dispatch(wire *jp.WirePacket) error {
	handlers, ok := handlerTable[c.state]
	if !ok {
		return fmt.Errorf("server: no handlers registered for state %s", c.state)
	}
	handler, ok := handlers[wire.PacketID]
	if !ok {
		// Unknown packets for the current state are logged and ignored
		// rather than treated as fatal: vanilla clients occasionally send
		// packets this core has no use for (e.g. client status/settings
		// variants).
		if c.logger != nil {
			c.logger.Printf("ignoring unknown packet 0x%02X in %s", int(wire.PacketID), c.state)
		}
		return nil
	}
	return handler(c, wire)
}

type packetHandler func(*conn, *jp.WirePacket) error

var handlerTable = map[jp.State]map[ns.VarInt]packetHandler{}

// registerHandler wires one (state, packet ID) pair to its handler. Called
// from each handlers_*.go file's init, one file per protocol state.
func registerHandler(state jp.State, id ns.VarInt, h packetHandler) {
	if handlerTable[state] == nil {
		handlerTable[state] = make(map[ns.VarInt]packetHandler)
	}
	handlerTable[state][id] = h
}
