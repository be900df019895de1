package server

import (
	"fmt"
	"time"

	jp "github.com/go-mclib/picocraft/java_protocol"
	"github.com/go-mclib/picocraft/java_protocol/packets"
	ns "github.com/go-mclib/picocraft/net_structures"
	"github.com/go-mclib/picocraft/rng"
)

// sendKeepAlive sends a fresh keep-alive ID for whichever of Configuration
// or Play the connection is currently in and records it as pending.
func (c *conn) sendKeepAlive() error {
	id := rng.Int63()
	c.pendingKeepAlive = id
	c.lastKeepAliveSent = time.Now()

	switch c.state {
	case jp.StateConfiguration:
		return c.send(&packets.KeepAliveConfigurationClientbound{KeepAliveID: ns.Int64(id)})
	case jp.StatePlay:
		return c.send(&packets.KeepAlivePlayClientbound{KeepAliveID: ns.Int64(id)})
	default:
		return fmt.Errorf("server: keep-alive requested in state %s", c.state)
	}
}

// acknowledgeKeepAlive validates a client's keep-alive reply against the ID
// this connection last sent.
func (c *conn) acknowledgeKeepAlive(id int64) error {
	if c.pendingKeepAlive == 0 {
		return nil // a stray reply to a keep-alive we already gave up on
	}
	if id != c.pendingKeepAlive {
		return fmt.Errorf("server: keep-alive ID mismatch: expected %d got %d", c.pendingKeepAlive, id)
	}
	c.pendingKeepAlive = 0
	c.lastKeepAliveSeen = time.Now()
	return nil
}
