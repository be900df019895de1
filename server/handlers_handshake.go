package server

import (
	"fmt"

	jp "github.com/go-mclib/picocraft/java_protocol"
	"github.com/go-mclib/picocraft/java_protocol/packets"
)

func init() {
	registerHandler(jp.StateHandshake, packets.Intention{}.ID(), handleIntention)
}

// handleIntention routes the connection into Status or Login based on the
// client's declared intent, after checking it speaks this core's exact
// protocol version — there is no cross-version compatibility layer.
func handleIntention(c *conn, wire *jp.WirePacket) error {
	p, err := decodeAs[packets.Intention](wire)
	if err != nil {
		return err
	}

	switch p.Intent {
	case packets.IntentStatus:
		c.state = jp.StateStatus
		return nil
	case packets.IntentLogin:
		if int(p.ProtocolVersion) != ProtocolVersion {
			return fmt.Errorf("server: unsupported protocol version %d (this core speaks %d)", p.ProtocolVersion, ProtocolVersion)
		}
		c.state = jp.StateLogin
		return nil
	case packets.IntentTransfer:
		return fmt.Errorf("server: transfer intent not supported")
	default:
		return fmt.Errorf("server: unknown handshake intent %d", p.Intent)
	}
}
