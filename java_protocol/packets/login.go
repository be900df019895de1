package packets

import (
	jp "github.com/go-mclib/picocraft/java_protocol"
	ns "github.com/go-mclib/picocraft/net_structures"
)

// Hello is "Login Start" (serverbound/login, 0x00). The UUID field is
// client-supplied and used verbatim as this core's player identity — there
// is no session-server round trip to derive or verify it against (see the
// authentication non-goal).
type Hello struct {
	Name       ns.String
	PlayerUUID ns.UUID
}

func (Hello) ID() ns.VarInt   { return 0x00 }
func (Hello) State() jp.State { return jp.StateLogin }
func (Hello) Bound() jp.Bound { return jp.C2S }

func (p *Hello) Read(buf *ns.PacketBuffer) error  { return ns.DecodeCompound(buf, p) }
func (p *Hello) Write(buf *ns.PacketBuffer) error { return ns.EncodeCompound(buf, p) }

// CustomQueryAnswer is "Login Plugin Response" (serverbound/login, 0x02).
type CustomQueryAnswer struct {
	MessageID ns.VarInt
	Data      ns.PrefixedOptional[ns.ByteArray]
}

func (CustomQueryAnswer) ID() ns.VarInt   { return 0x02 }
func (CustomQueryAnswer) State() jp.State { return jp.StateLogin }
func (CustomQueryAnswer) Bound() jp.Bound { return jp.C2S }

func (p *CustomQueryAnswer) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.MessageID, err = ns.ReadVarInt(buf); err != nil {
		return err
	}
	p.Data, err = ns.ReadPrefixedOptional(buf, func(b *ns.PacketBuffer) (ns.ByteArray, error) {
		return b.ReadByteArray(ns.MaxFramedPacketSize, ns.MaxFramedPacketSize)
	})
	return err
}

func (p *CustomQueryAnswer) Write(buf *ns.PacketBuffer) error {
	if err := p.MessageID.Encode(buf); err != nil {
		return err
	}
	return p.Data.Encode(buf, func(b *ns.PacketBuffer, v ns.ByteArray) error {
		return b.WriteByteArray(v)
	})
}

// LoginAcknowledged is "Login Acknowledged" (serverbound/login, 0x03). No
// fields. Acknowledges LoginSuccess and switches the connection into
// Configuration.
type LoginAcknowledged struct{}

func (LoginAcknowledged) ID() ns.VarInt   { return 0x03 }
func (LoginAcknowledged) State() jp.State { return jp.StateLogin }
func (LoginAcknowledged) Bound() jp.Bound { return jp.C2S }

func (*LoginAcknowledged) Read(buf *ns.PacketBuffer) error  { return nil }
func (*LoginAcknowledged) Write(buf *ns.PacketBuffer) error { return nil }

// CookieResponseLogin is "Cookie Response (login)" (serverbound/login, 0x04).
type CookieResponseLogin struct {
	Key     ns.Identifier
	Payload ns.PrefixedOptional[ns.ByteArray]
}

func (CookieResponseLogin) ID() ns.VarInt   { return 0x04 }
func (CookieResponseLogin) State() jp.State { return jp.StateLogin }
func (CookieResponseLogin) Bound() jp.Bound { return jp.C2S }

func (p *CookieResponseLogin) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.Key, err = ns.ReadIdentifier(buf); err != nil {
		return err
	}
	p.Payload, err = ns.ReadPrefixedOptional(buf, func(b *ns.PacketBuffer) (ns.ByteArray, error) {
		return b.ReadByteArray(5120, 5120) // vanilla server's own cookie-size cap
	})
	return err
}

func (p *CookieResponseLogin) Write(buf *ns.PacketBuffer) error {
	if err := p.Key.Encode(buf); err != nil {
		return err
	}
	return p.Payload.Encode(buf, func(b *ns.PacketBuffer, v ns.ByteArray) error {
		return b.WriteByteArray(v)
	})
}

// DisconnectLogin is "Disconnect (login)" (clientbound/login, 0x00).
type DisconnectLogin struct {
	Reason ns.JSONTextComponent
}

func (DisconnectLogin) ID() ns.VarInt   { return 0x00 }
func (DisconnectLogin) State() jp.State { return jp.StateLogin }
func (DisconnectLogin) Bound() jp.Bound { return jp.S2C }

func (p *DisconnectLogin) Read(buf *ns.PacketBuffer) error {
	c, err := ns.ReadJSONTextComponent(buf)
	p.Reason = c
	return err
}
func (p *DisconnectLogin) Write(buf *ns.PacketBuffer) error { return p.Reason.Encode(buf) }

// LoginSuccess is "Login Success" (clientbound/login, 0x02). This core
// never sends the following Set Compression packet (compression stays
// disabled) and the client's array of granted properties is always empty.
type LoginSuccess struct {
	UUID     ns.UUID
	Username ns.String
}

func (LoginSuccess) ID() ns.VarInt   { return 0x02 }
func (LoginSuccess) State() jp.State { return jp.StateLogin }
func (LoginSuccess) Bound() jp.Bound { return jp.S2C }

func (p *LoginSuccess) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.UUID, err = ns.ReadUUID(buf); err != nil {
		return err
	}
	if p.Username, err = ns.ReadString(buf, 16); err != nil {
		return err
	}
	_, err = ns.ReadPrefixedArray(buf, func(b *ns.PacketBuffer) (ns.VarInt, error) { return 0, nil })
	return err
}

func (p *LoginSuccess) Write(buf *ns.PacketBuffer) error {
	if err := p.UUID.Encode(buf); err != nil {
		return err
	}
	if err := p.Username.Encode(buf); err != nil {
		return err
	}
	return ns.PrefixedArray[ns.VarInt](nil).Encode(buf) // empty property array
}
