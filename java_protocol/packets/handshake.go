// Package packets holds the typed packet bodies for every protocol state
// this core speaks, grouped one file per state the way the wire protocol
// itself groups its own packet-ID namespaces.
package packets

import (
	jp "github.com/go-mclib/picocraft/java_protocol"
	ns "github.com/go-mclib/picocraft/net_structures"
)

// Intent values a handshake may request.
const (
	IntentStatus ns.VarInt = iota + 1
	IntentLogin
	IntentTransfer
)

// Intention is "Handshake" (serverbound/handshake, 0x00). Sent immediately
// after opening the TCP connection; its Intent field selects whether the
// connection proceeds into Status or Login (Transfer is accepted on the
// wire but this core has no cross-server transfer target to hand off to,
// so it is rejected cleanly rather than acted on).
type Intention struct {
	ProtocolVersion ns.VarInt
	ServerAddress   ns.String
	ServerPort      ns.Uint16
	Intent          ns.VarInt
}

func (Intention) ID() ns.VarInt   { return 0x00 }
func (Intention) State() jp.State { return jp.StateHandshake }
func (Intention) Bound() jp.Bound { return jp.C2S }

func (p *Intention) Read(buf *ns.PacketBuffer) error  { return ns.DecodeCompound(buf, p) }
func (p *Intention) Write(buf *ns.PacketBuffer) error { return ns.EncodeCompound(buf, p) }

// Legacy Server List Ping (the pre-Netty 0xFE ping) is a distinct,
// non-VarInt-framed wire format this core does not speak — a client that
// sends it gets a clean connection close rather than an attempt to parse
// it as a modern packet (see the connection acceptor).
