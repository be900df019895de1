package packets

import (
	jp "github.com/go-mclib/picocraft/java_protocol"
	ns "github.com/go-mclib/picocraft/net_structures"
)

// TeleportConfirm is "Teleport Confirm" (serverbound/play, 0x00): the
// client's acknowledgement of a SynchronizePlayerPosition, echoing back its
// teleport ID.
type TeleportConfirm struct {
	TeleportID ns.VarInt
}

func (TeleportConfirm) ID() ns.VarInt   { return 0x00 }
func (TeleportConfirm) State() jp.State { return jp.StatePlay }
func (TeleportConfirm) Bound() jp.Bound { return jp.C2S }

func (p *TeleportConfirm) Read(buf *ns.PacketBuffer) error  { return ns.DecodeCompound(buf, p) }
func (p *TeleportConfirm) Write(buf *ns.PacketBuffer) error { return ns.EncodeCompound(buf, p) }

// SetPlayerPosition is "Set Player Position" (serverbound/play, 0x1D): the
// client's periodic position update, the signal this core's terrain
// streamer uses to decide which chunks a player's view radius now covers.
type SetPlayerPosition struct {
	X, Y, Z  ns.Float64
	OnGround ns.Boolean
}

func (SetPlayerPosition) ID() ns.VarInt   { return 0x1D }
func (SetPlayerPosition) State() jp.State { return jp.StatePlay }
func (SetPlayerPosition) Bound() jp.Bound { return jp.C2S }

func (p *SetPlayerPosition) Read(buf *ns.PacketBuffer) error  { return ns.DecodeCompound(buf, p) }
func (p *SetPlayerPosition) Write(buf *ns.PacketBuffer) error { return ns.EncodeCompound(buf, p) }

// KeepAlivePlayServerbound is "Serverbound Keep Alive (play)" (0x1B): the
// client's reply to a server-initiated keep-alive, within the 30-second
// deadline this core's keep-alive scheduler enforces.
type KeepAlivePlayServerbound struct {
	KeepAliveID ns.Int64
}

func (KeepAlivePlayServerbound) ID() ns.VarInt   { return 0x1B }
func (KeepAlivePlayServerbound) State() jp.State { return jp.StatePlay }
func (KeepAlivePlayServerbound) Bound() jp.Bound { return jp.C2S }

func (p *KeepAlivePlayServerbound) Read(buf *ns.PacketBuffer) error  { return ns.DecodeCompound(buf, p) }
func (p *KeepAlivePlayServerbound) Write(buf *ns.PacketBuffer) error { return ns.EncodeCompound(buf, p) }

// ChatMessage is "Chat Message" (serverbound/play, 0x03). This core only
// exposes raw message content; the signed chat-chain verification vanilla
// clients expect is out of scope (see the authentication non-goal), so
// messages are relayed as unsigned system chat.
type ChatMessage struct {
	Message ns.String
}

func (ChatMessage) ID() ns.VarInt   { return 0x03 }
func (ChatMessage) State() jp.State { return jp.StatePlay }
func (ChatMessage) Bound() jp.Bound { return jp.C2S }

func (p *ChatMessage) Read(buf *ns.PacketBuffer) error  { return ns.DecodeCompound(buf, p) }
func (p *ChatMessage) Write(buf *ns.PacketBuffer) error { return ns.EncodeCompound(buf, p) }

// LoginPlay is "Login (play)" (clientbound/play, 0x30): the packet that
// formally hands the connection into the Play state with the player's
// entity ID, dimension, and gameplay flags. This core always runs a single
// overworld-shaped dimension, with the respawn screen enabled and never as
// a debug world.
type LoginPlay struct {
	EntityID            ns.Int32
	IsHardcore          ns.Boolean
	DimensionNames      ns.PrefixedArray[ns.Identifier]
	MaxPlayers          ns.VarInt
	ViewDistance        ns.VarInt
	SimulationDistance  ns.VarInt
	ReducedDebugInfo    ns.Boolean
	EnableRespawnScreen ns.Boolean
	DoLimitedCrafting   ns.Boolean
	DimensionType       ns.VarInt
	DimensionName       ns.Identifier
	HashedSeed          ns.Int64
	GameMode            ns.Uint8
	PreviousGameMode    ns.Int8
	IsDebug             ns.Boolean
	IsFlat              ns.Boolean
	HasDeathLocation    ns.PrefixedOptional[deathLocation]
	PortalCooldown      ns.VarInt
	SeaLevel            ns.VarInt
	EnforcesSecureChat  ns.Boolean
}

type deathLocation struct {
	DimensionName ns.Identifier
	Location      ns.Position
}

func (d deathLocation) Encode(buf *ns.PacketBuffer) error {
	if err := d.DimensionName.Encode(buf); err != nil {
		return err
	}
	return d.Location.Encode(buf)
}

func decodeDeathLocation(buf *ns.PacketBuffer) (deathLocation, error) {
	var d deathLocation
	var err error
	if d.DimensionName, err = ns.ReadIdentifier(buf); err != nil {
		return deathLocation{}, err
	}
	d.Location, err = ns.ReadPosition(buf)
	return d, err
}

func (LoginPlay) ID() ns.VarInt   { return 0x30 }
func (LoginPlay) State() jp.State { return jp.StatePlay }
func (LoginPlay) Bound() jp.Bound { return jp.S2C }

func (p *LoginPlay) Write(buf *ns.PacketBuffer) error {
	if err := ns.EncodeCompound(buf, struct {
		EntityID            ns.Int32
		IsHardcore          ns.Boolean
		DimensionNames      ns.PrefixedArray[ns.Identifier]
		MaxPlayers          ns.VarInt
		ViewDistance        ns.VarInt
		SimulationDistance  ns.VarInt
		ReducedDebugInfo    ns.Boolean
		EnableRespawnScreen ns.Boolean
		DoLimitedCrafting   ns.Boolean
		DimensionType       ns.VarInt
		DimensionName       ns.Identifier
		HashedSeed          ns.Int64
		GameMode            ns.Uint8
		PreviousGameMode    ns.Int8
		IsDebug             ns.Boolean
		IsFlat              ns.Boolean
	}{
		p.EntityID, p.IsHardcore, p.DimensionNames, p.MaxPlayers, p.ViewDistance,
		p.SimulationDistance, p.ReducedDebugInfo, p.EnableRespawnScreen, p.DoLimitedCrafting,
		p.DimensionType, p.DimensionName, p.HashedSeed, p.GameMode, p.PreviousGameMode,
		p.IsDebug, p.IsFlat,
	}); err != nil {
		return err
	}
	if err := p.HasDeathLocation.Encode(buf, func(b *ns.PacketBuffer, v deathLocation) error {
		return v.Encode(b)
	}); err != nil {
		return err
	}
	if err := p.PortalCooldown.Encode(buf); err != nil {
		return err
	}
	if err := p.SeaLevel.Encode(buf); err != nil {
		return err
	}
	return p.EnforcesSecureChat.Encode(buf)
}

func (p *LoginPlay) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.EntityID, err = ns.ReadInt32(buf); err != nil {
		return err
	}
	if p.IsHardcore, err = ns.ReadBoolean(buf); err != nil {
		return err
	}
	if p.DimensionNames, err = ns.ReadPrefixedArray(buf, ns.ReadIdentifier); err != nil {
		return err
	}
	if p.MaxPlayers, err = ns.ReadVarInt(buf); err != nil {
		return err
	}
	if p.ViewDistance, err = ns.ReadVarInt(buf); err != nil {
		return err
	}
	if p.SimulationDistance, err = ns.ReadVarInt(buf); err != nil {
		return err
	}
	if p.ReducedDebugInfo, err = ns.ReadBoolean(buf); err != nil {
		return err
	}
	if p.EnableRespawnScreen, err = ns.ReadBoolean(buf); err != nil {
		return err
	}
	if p.DoLimitedCrafting, err = ns.ReadBoolean(buf); err != nil {
		return err
	}
	if p.DimensionType, err = ns.ReadVarInt(buf); err != nil {
		return err
	}
	if p.DimensionName, err = ns.ReadIdentifier(buf); err != nil {
		return err
	}
	if p.HashedSeed, err = ns.ReadInt64(buf); err != nil {
		return err
	}
	if p.GameMode, err = ns.ReadUint8(buf); err != nil {
		return err
	}
	if p.PreviousGameMode, err = ns.ReadInt8(buf); err != nil {
		return err
	}
	if p.IsDebug, err = ns.ReadBoolean(buf); err != nil {
		return err
	}
	if p.IsFlat, err = ns.ReadBoolean(buf); err != nil {
		return err
	}
	if p.HasDeathLocation, err = ns.ReadPrefixedOptional(buf, decodeDeathLocation); err != nil {
		return err
	}
	if p.PortalCooldown, err = ns.ReadVarInt(buf); err != nil {
		return err
	}
	if p.SeaLevel, err = ns.ReadVarInt(buf); err != nil {
		return err
	}
	p.EnforcesSecureChat, err = ns.ReadBoolean(buf)
	return err
}

// SynchronizePlayerPosition is "Synchronize Player Position"
// (clientbound/play, 0x46): the authoritative teleport the server sends
// once on spawn (and any time it needs to force the client's position).
type SynchronizePlayerPosition struct {
	X, Y, Z    ns.Float64
	VelocityX  ns.Float64
	VelocityY  ns.Float64
	VelocityZ  ns.Float64
	Yaw, Pitch ns.Float32
	Flags      ns.Int32
	TeleportID ns.VarInt
}

func (SynchronizePlayerPosition) ID() ns.VarInt   { return 0x46 }
func (SynchronizePlayerPosition) State() jp.State { return jp.StatePlay }
func (SynchronizePlayerPosition) Bound() jp.Bound { return jp.S2C }

func (p *SynchronizePlayerPosition) Read(buf *ns.PacketBuffer) error {
	return ns.DecodeCompound(buf, p)
}
func (p *SynchronizePlayerPosition) Write(buf *ns.PacketBuffer) error {
	return ns.EncodeCompound(buf, p)
}

// SetChunkCacheCenter is "Set Center Chunk" (clientbound/play, 0x5C): tells
// the client which chunk column its view radius is now centered on, so it
// can reorder its own unload priorities.
type SetChunkCacheCenter struct {
	ChunkX ns.VarInt
	ChunkZ ns.VarInt
}

func (SetChunkCacheCenter) ID() ns.VarInt   { return 0x5C }
func (SetChunkCacheCenter) State() jp.State { return jp.StatePlay }
func (SetChunkCacheCenter) Bound() jp.Bound { return jp.S2C }

func (p *SetChunkCacheCenter) Read(buf *ns.PacketBuffer) error  { return ns.DecodeCompound(buf, p) }
func (p *SetChunkCacheCenter) Write(buf *ns.PacketBuffer) error { return ns.EncodeCompound(buf, p) }

// ChunkDataAndUpdateLight is "Chunk Data and Update Light"
// (clientbound/play, 0x2C): one full chunk column plus its lighting, the
// core payload of this server's terrain streaming pipeline.
type ChunkDataAndUpdateLight struct {
	ChunkX ns.Int32
	ChunkZ ns.Int32
	Data   ns.ChunkData
	Light  ns.LightData
}

func (ChunkDataAndUpdateLight) ID() ns.VarInt   { return 0x2C }
func (ChunkDataAndUpdateLight) State() jp.State { return jp.StatePlay }
func (ChunkDataAndUpdateLight) Bound() jp.Bound { return jp.S2C }

func (p *ChunkDataAndUpdateLight) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.ChunkX, err = ns.ReadInt32(buf); err != nil {
		return err
	}
	if p.ChunkZ, err = ns.ReadInt32(buf); err != nil {
		return err
	}
	if p.Data, err = ns.DecodeChunkData(buf); err != nil {
		return err
	}
	p.Light, err = ns.DecodeLightData(buf)
	return err
}

func (p *ChunkDataAndUpdateLight) Write(buf *ns.PacketBuffer) error {
	if err := p.ChunkX.Encode(buf); err != nil {
		return err
	}
	if err := p.ChunkZ.Encode(buf); err != nil {
		return err
	}
	if err := p.Data.Encode(buf); err != nil {
		return err
	}
	return p.Light.Encode(buf)
}

// KeepAlivePlayClientbound is "Clientbound Keep Alive (play)" (0x2B): a
// random ID the server expects echoed back within 30 seconds, or the
// connection is dropped as timed out.
type KeepAlivePlayClientbound struct {
	KeepAliveID ns.Int64
}

func (KeepAlivePlayClientbound) ID() ns.VarInt   { return 0x2B }
func (KeepAlivePlayClientbound) State() jp.State { return jp.StatePlay }
func (KeepAlivePlayClientbound) Bound() jp.Bound { return jp.S2C }

func (p *KeepAlivePlayClientbound) Read(buf *ns.PacketBuffer) error  { return ns.DecodeCompound(buf, p) }
func (p *KeepAlivePlayClientbound) Write(buf *ns.PacketBuffer) error { return ns.EncodeCompound(buf, p) }

// GameEvent game-event IDs this core ever sends. Only StartWaitingForLevelChunks
// is used, the signal that tells the client to stop rendering its loading
// screen once the server begins streaming chunks.
const GameEventStartWaitingForLevelChunks ns.Uint8 = 13

// GameEvent is "Game Event" (clientbound/play, 0x26): a miscellaneous
// client-facing notification keyed by a small event ID, with a single f32
// payload whose meaning depends on the event.
type GameEvent struct {
	Event ns.Uint8
	Value ns.Float32
}

func (GameEvent) ID() ns.VarInt   { return 0x26 }
func (GameEvent) State() jp.State { return jp.StatePlay }
func (GameEvent) Bound() jp.Bound { return jp.S2C }

func (p *GameEvent) Read(buf *ns.PacketBuffer) error  { return ns.DecodeCompound(buf, p) }
func (p *GameEvent) Write(buf *ns.PacketBuffer) error { return ns.EncodeCompound(buf, p) }

// InitialiseWorldBorder is "Initialize World Border" (clientbound/play,
// 0x2A), sent once on spawn to establish the border the client renders and
// enforces. This core never moves the border, so OldDiameter always equals
// NewDiameter and Speed is always zero.
type InitialiseWorldBorder struct {
	X, Z                   ns.Float64
	OldDiameter            ns.Float64
	NewDiameter            ns.Float64
	Speed                  ns.VarLong
	PortalTeleportBoundary ns.VarInt
	WarningBlocks          ns.VarInt
	WarningTime            ns.VarInt
}

func (InitialiseWorldBorder) ID() ns.VarInt   { return 0x2A }
func (InitialiseWorldBorder) State() jp.State { return jp.StatePlay }
func (InitialiseWorldBorder) Bound() jp.Bound { return jp.S2C }

func (p *InitialiseWorldBorder) Read(buf *ns.PacketBuffer) error  { return ns.DecodeCompound(buf, p) }
func (p *InitialiseWorldBorder) Write(buf *ns.PacketBuffer) error { return ns.EncodeCompound(buf, p) }

// PlayerInfoAction bits select which per-player fields PlayerInfoUpdate
// carries; only the subset this core ever populates is named.
const (
	PlayerInfoActionAddPlayer      ns.Uint8 = 1 << 0
	PlayerInfoActionUpdateGameMode ns.Uint8 = 1 << 2
	PlayerInfoActionUpdateListed   ns.Uint8 = 1 << 3
)

// PlayerInfoEntry is one player's update record within a PlayerInfoUpdate
// packet. Which fields are meaningful depends on which action bits the
// enclosing packet sets; unused fields are simply not written.
type PlayerInfoEntry struct {
	UUID     ns.UUID
	Name     ns.String
	GameMode ns.VarInt
	Listed   ns.Boolean
}

// PlayerInfoUpdate is "Player Info Update" (clientbound/play, 0x44): adds,
// removes, or edits entries in the client's player-list tab. This core only
// ever sends one entry, for the connecting player itself, with the add,
// game-mode, and listed actions set.
type PlayerInfoUpdate struct {
	Actions ns.Uint8
	Entries []PlayerInfoEntry
}

func (PlayerInfoUpdate) ID() ns.VarInt   { return 0x44 }
func (PlayerInfoUpdate) State() jp.State { return jp.StatePlay }
func (PlayerInfoUpdate) Bound() jp.Bound { return jp.S2C }

func (p *PlayerInfoUpdate) Write(buf *ns.PacketBuffer) error {
	if err := p.Actions.Encode(buf); err != nil {
		return err
	}
	if err := ns.VarInt(len(p.Entries)).Encode(buf); err != nil {
		return err
	}
	for _, e := range p.Entries {
		if err := e.UUID.Encode(buf); err != nil {
			return err
		}
		if p.Actions&PlayerInfoActionAddPlayer != 0 {
			if err := e.Name.Encode(buf); err != nil {
				return err
			}
			if err := ns.VarInt(0).Encode(buf); err != nil { // zero properties
				return err
			}
		}
		if p.Actions&PlayerInfoActionUpdateGameMode != 0 {
			if err := e.GameMode.Encode(buf); err != nil {
				return err
			}
		}
		if p.Actions&PlayerInfoActionUpdateListed != 0 {
			if err := e.Listed.Encode(buf); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *PlayerInfoUpdate) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.Actions, err = ns.ReadUint8(buf); err != nil {
		return err
	}
	n, err := ns.ReadVarInt(buf)
	if err != nil {
		return err
	}
	if n < 0 {
		return ns.ErrNegativeLength
	}
	p.Entries = make([]PlayerInfoEntry, n)
	for i := range p.Entries {
		e := &p.Entries[i]
		if e.UUID, err = ns.ReadUUID(buf); err != nil {
			return err
		}
		if p.Actions&PlayerInfoActionAddPlayer != 0 {
			if e.Name, err = ns.ReadString(buf, 16); err != nil {
				return err
			}
			if _, err = ns.ReadVarInt(buf); err != nil { // zero properties
				return err
			}
		}
		if p.Actions&PlayerInfoActionUpdateGameMode != 0 {
			if e.GameMode, err = ns.ReadVarInt(buf); err != nil {
				return err
			}
		}
		if p.Actions&PlayerInfoActionUpdateListed != 0 {
			if e.Listed, err = ns.ReadBoolean(buf); err != nil {
				return err
			}
		}
	}
	return nil
}

// SystemChatMessage is "System Chat Message" (clientbound/play, 0x62).
type SystemChatMessage struct {
	Content ns.JSONTextComponent
	Overlay ns.Boolean
}

func (SystemChatMessage) ID() ns.VarInt   { return 0x62 }
func (SystemChatMessage) State() jp.State { return jp.StatePlay }
func (SystemChatMessage) Bound() jp.Bound { return jp.S2C }

func (p *SystemChatMessage) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.Content, err = ns.ReadJSONTextComponent(buf); err != nil {
		return err
	}
	p.Overlay, err = ns.ReadBoolean(buf)
	return err
}
func (p *SystemChatMessage) Write(buf *ns.PacketBuffer) error {
	if err := p.Content.Encode(buf); err != nil {
		return err
	}
	return p.Overlay.Encode(buf)
}

// DisconnectPlay is "Disconnect (play)" (clientbound/play, 0x1D).
type DisconnectPlay struct {
	Reason ns.JSONTextComponent
}

func (DisconnectPlay) ID() ns.VarInt   { return 0x1D }
func (DisconnectPlay) State() jp.State { return jp.StatePlay }
func (DisconnectPlay) Bound() jp.Bound { return jp.S2C }

func (p *DisconnectPlay) Read(buf *ns.PacketBuffer) error {
	c, err := ns.ReadJSONTextComponent(buf)
	p.Reason = c
	return err
}
func (p *DisconnectPlay) Write(buf *ns.PacketBuffer) error { return p.Reason.Encode(buf) }
