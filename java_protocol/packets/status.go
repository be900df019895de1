package packets

import (
	jp "github.com/go-mclib/picocraft/java_protocol"
	ns "github.com/go-mclib/picocraft/net_structures"
)

// StatusRequest is "Status Request" (serverbound/status, 0x00). No fields;
// the server responds with StatusResponse unconditionally the first time
// it's seen on a connection in the Status state.
type StatusRequest struct{}

func (StatusRequest) ID() ns.VarInt    { return 0x00 }
func (StatusRequest) State() jp.State  { return jp.StateStatus }
func (StatusRequest) Bound() jp.Bound  { return jp.C2S }
func (*StatusRequest) Read(buf *ns.PacketBuffer) error  { return nil }
func (*StatusRequest) Write(buf *ns.PacketBuffer) error { return nil }

// PingRequest is "Ping Request (status)" (serverbound/status, 0x01).
type PingRequest struct {
	Timestamp ns.Int64
}

func (PingRequest) ID() ns.VarInt   { return 0x01 }
func (PingRequest) State() jp.State { return jp.StateStatus }
func (PingRequest) Bound() jp.Bound { return jp.C2S }

func (p *PingRequest) Read(buf *ns.PacketBuffer) error  { return ns.DecodeCompound(buf, p) }
func (p *PingRequest) Write(buf *ns.PacketBuffer) error { return ns.EncodeCompound(buf, p) }

// StatusResponse is "Status Response" (clientbound/status, 0x00): a single
// JSON string carrying version, player-count, and MOTD.
type StatusResponse struct {
	JSON ns.String
}

func (StatusResponse) ID() ns.VarInt   { return 0x00 }
func (StatusResponse) State() jp.State { return jp.StateStatus }
func (StatusResponse) Bound() jp.Bound { return jp.S2C }

func (p *StatusResponse) Read(buf *ns.PacketBuffer) error  { return ns.DecodeCompound(buf, p) }
func (p *StatusResponse) Write(buf *ns.PacketBuffer) error { return ns.EncodeCompound(buf, p) }

// PongResponse is "Pong Response (status)" (clientbound/status, 0x01): the
// client's ping timestamp echoed back verbatim.
type PongResponse struct {
	Payload ns.Int64
}

func (PongResponse) ID() ns.VarInt   { return 0x01 }
func (PongResponse) State() jp.State { return jp.StateStatus }
func (PongResponse) Bound() jp.Bound { return jp.S2C }

func (p *PongResponse) Read(buf *ns.PacketBuffer) error  { return ns.DecodeCompound(buf, p) }
func (p *PongResponse) Write(buf *ns.PacketBuffer) error { return ns.EncodeCompound(buf, p) }
