package packets

import (
	jp "github.com/go-mclib/picocraft/java_protocol"
	ns "github.com/go-mclib/picocraft/net_structures"
)

// ClientInformation is "Client Information" (serverbound/configuration,
// 0x00), resent whenever the player changes their client settings. Only
// ViewDistance feeds this core's terrain streaming; the rest is accepted
// and otherwise unused.
type ClientInformation struct {
	Locale              ns.String
	ViewDistance        ns.Int8
	ChatMode            ns.VarInt
	ChatColors          ns.Boolean
	DisplayedSkinParts  ns.Uint8
	MainHand            ns.VarInt
	EnableTextFiltering ns.Boolean
	AllowServerListings ns.Boolean
	ParticleStatus      ns.VarInt
}

func (ClientInformation) ID() ns.VarInt   { return 0x00 }
func (ClientInformation) State() jp.State { return jp.StateConfiguration }
func (ClientInformation) Bound() jp.Bound { return jp.C2S }

func (p *ClientInformation) Read(buf *ns.PacketBuffer) error  { return ns.DecodeCompound(buf, p) }
func (p *ClientInformation) Write(buf *ns.PacketBuffer) error { return ns.EncodeCompound(buf, p) }

// brandChannel is the plugin-message channel vanilla clients watch for a
// server's self-reported brand string.
const brandChannel = "brand"

// Brand is the "Brand" plugin message (clientbound/configuration, 0x01):
// the first packet this core sends once a connection enters Configuration,
// announcing itself to the client's server-brand display. It rides the
// generic plugin-message channel/payload shape, with the brand name itself
// as the payload's only content (a length-prefixed string).
type Brand struct {
	Name ns.String
}

func (Brand) ID() ns.VarInt   { return 0x01 }
func (Brand) State() jp.State { return jp.StateConfiguration }
func (Brand) Bound() jp.Bound { return jp.S2C }

func (p *Brand) Write(buf *ns.PacketBuffer) error {
	if err := ns.NewIdentifier(brandChannel).Encode(buf); err != nil { // minecraft:brand
		return err
	}
	return p.Name.Encode(buf)
}

func (p *Brand) Read(buf *ns.PacketBuffer) error {
	if _, err := ns.ReadIdentifier(buf); err != nil {
		return err
	}
	name, err := ns.ReadString(buf, 0)
	p.Name = name
	return err
}

// KnownPack identifies one data pack by namespace, ID, and version — both
// the client->server and server->client known-packs packets carry a
// PrefixedArray of these.
type KnownPack struct {
	Namespace ns.String
	PackID    ns.String
	Version   ns.String
}

func (k KnownPack) Encode(buf *ns.PacketBuffer) error {
	if err := k.Namespace.Encode(buf); err != nil {
		return err
	}
	if err := k.PackID.Encode(buf); err != nil {
		return err
	}
	return k.Version.Encode(buf)
}

func decodeKnownPack(buf *ns.PacketBuffer) (KnownPack, error) {
	var k KnownPack
	var err error
	if k.Namespace, err = ns.ReadString(buf, 0); err != nil {
		return KnownPack{}, err
	}
	if k.PackID, err = ns.ReadString(buf, 0); err != nil {
		return KnownPack{}, err
	}
	k.Version, err = ns.ReadString(buf, 0)
	return k, err
}

// SelectKnownPacksServerbound is "Serverbound Known Packs"
// (serverbound/configuration, 0x07): the client's reply listing which data
// packs it already has, so the server can skip resending their contents in
// RegistryData. This core ignores the client's list and always sends every
// registry entry in full.
type SelectKnownPacksServerbound struct {
	KnownPacks ns.PrefixedArray[KnownPack]
}

func (SelectKnownPacksServerbound) ID() ns.VarInt   { return 0x07 }
func (SelectKnownPacksServerbound) State() jp.State { return jp.StateConfiguration }
func (SelectKnownPacksServerbound) Bound() jp.Bound { return jp.C2S }

func (p *SelectKnownPacksServerbound) Read(buf *ns.PacketBuffer) error {
	packs, err := ns.ReadPrefixedArray(buf, decodeKnownPack)
	p.KnownPacks = packs
	return err
}
func (p *SelectKnownPacksServerbound) Write(buf *ns.PacketBuffer) error { return p.KnownPacks.Encode(buf) }

// FinishConfigurationServerbound is "Acknowledge Finish Configuration"
// (serverbound/configuration, 0x03). No fields; switches the connection
// into Play.
type FinishConfigurationServerbound struct{}

func (FinishConfigurationServerbound) ID() ns.VarInt   { return 0x03 }
func (FinishConfigurationServerbound) State() jp.State { return jp.StateConfiguration }
func (FinishConfigurationServerbound) Bound() jp.Bound { return jp.C2S }

func (*FinishConfigurationServerbound) Read(buf *ns.PacketBuffer) error  { return nil }
func (*FinishConfigurationServerbound) Write(buf *ns.PacketBuffer) error { return nil }

// KeepAliveConfigurationServerbound is "Serverbound Keep Alive
// (configuration)" (0x04).
type KeepAliveConfigurationServerbound struct {
	KeepAliveID ns.Int64
}

func (KeepAliveConfigurationServerbound) ID() ns.VarInt   { return 0x04 }
func (KeepAliveConfigurationServerbound) State() jp.State { return jp.StateConfiguration }
func (KeepAliveConfigurationServerbound) Bound() jp.Bound { return jp.C2S }

func (p *KeepAliveConfigurationServerbound) Read(buf *ns.PacketBuffer) error {
	return ns.DecodeCompound(buf, p)
}
func (p *KeepAliveConfigurationServerbound) Write(buf *ns.PacketBuffer) error {
	return ns.EncodeCompound(buf, p)
}

// RegistryData is "Registry Data" (clientbound/configuration, 0x07): one
// registry's full entry set, sent once per registry during Configuration.
// Entry Data is an opaque NBT blob this core never interprets past moving
// it off the wire.
type RegistryData struct {
	RegistryID ns.Identifier
	Entries    ns.PrefixedArray[RegistryEntry]
}

type RegistryEntry struct {
	EntryID ns.Identifier
	Data    ns.PrefixedOptional[ns.NBT]
}

func (e RegistryEntry) Encode(buf *ns.PacketBuffer) error {
	if err := e.EntryID.Encode(buf); err != nil {
		return err
	}
	return e.Data.Encode(buf, func(b *ns.PacketBuffer, v ns.NBT) error { return v.Encode(b) })
}

func decodeRegistryEntry(buf *ns.PacketBuffer) (RegistryEntry, error) {
	var e RegistryEntry
	var err error
	if e.EntryID, err = ns.ReadIdentifier(buf); err != nil {
		return RegistryEntry{}, err
	}
	e.Data, err = ns.ReadPrefixedOptional(buf, ns.ReadNBT)
	return e, err
}

func (RegistryData) ID() ns.VarInt   { return 0x07 }
func (RegistryData) State() jp.State { return jp.StateConfiguration }
func (RegistryData) Bound() jp.Bound { return jp.S2C }

func (p *RegistryData) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.RegistryID, err = ns.ReadIdentifier(buf); err != nil {
		return err
	}
	p.Entries, err = ns.ReadPrefixedArray(buf, decodeRegistryEntry)
	return err
}
func (p *RegistryData) Write(buf *ns.PacketBuffer) error {
	if err := p.RegistryID.Encode(buf); err != nil {
		return err
	}
	return p.Entries.Encode(buf)
}

// SelectKnownPacksClientbound is "Clientbound Known Packs"
// (clientbound/configuration, 0x0E), sent before RegistryData to ask the
// client which packs it already has. This core always sends the single
// entry minecraft/core at its own version.
type SelectKnownPacksClientbound struct {
	KnownPacks ns.PrefixedArray[KnownPack]
}

func (SelectKnownPacksClientbound) ID() ns.VarInt   { return 0x0E }
func (SelectKnownPacksClientbound) State() jp.State { return jp.StateConfiguration }
func (SelectKnownPacksClientbound) Bound() jp.Bound { return jp.S2C }

func (p *SelectKnownPacksClientbound) Read(buf *ns.PacketBuffer) error {
	packs, err := ns.ReadPrefixedArray(buf, decodeKnownPack)
	p.KnownPacks = packs
	return err
}
func (p *SelectKnownPacksClientbound) Write(buf *ns.PacketBuffer) error { return p.KnownPacks.Encode(buf) }

// FinishConfigurationClientbound is "Finish Configuration"
// (clientbound/configuration, 0x03). No fields.
type FinishConfigurationClientbound struct{}

func (FinishConfigurationClientbound) ID() ns.VarInt   { return 0x03 }
func (FinishConfigurationClientbound) State() jp.State { return jp.StateConfiguration }
func (FinishConfigurationClientbound) Bound() jp.Bound { return jp.S2C }

func (*FinishConfigurationClientbound) Read(buf *ns.PacketBuffer) error  { return nil }
func (*FinishConfigurationClientbound) Write(buf *ns.PacketBuffer) error { return nil }

// KeepAliveConfigurationClientbound is "Clientbound Keep Alive
// (configuration)" (0x04).
type KeepAliveConfigurationClientbound struct {
	KeepAliveID ns.Int64
}

func (KeepAliveConfigurationClientbound) ID() ns.VarInt   { return 0x04 }
func (KeepAliveConfigurationClientbound) State() jp.State { return jp.StateConfiguration }
func (KeepAliveConfigurationClientbound) Bound() jp.Bound { return jp.S2C }

func (p *KeepAliveConfigurationClientbound) Read(buf *ns.PacketBuffer) error {
	return ns.DecodeCompound(buf, p)
}
func (p *KeepAliveConfigurationClientbound) Write(buf *ns.PacketBuffer) error {
	return ns.EncodeCompound(buf, p)
}
