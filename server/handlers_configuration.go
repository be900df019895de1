package server

import (
	jp "github.com/go-mclib/picocraft/java_protocol"
	"github.com/go-mclib/picocraft/java_protocol/packets"
	ns "github.com/go-mclib/picocraft/net_structures"
)

func init() {
	registerHandler(jp.StateConfiguration, packets.ClientInformation{}.ID(), handleClientInformation)
	registerHandler(jp.StateConfiguration, packets.SelectKnownPacksServerbound{}.ID(), handleSelectKnownPacksServerbound)
	registerHandler(jp.StateConfiguration, packets.KeepAliveConfigurationServerbound{}.ID(), handleKeepAliveConfiguration)
	registerHandler(jp.StateConfiguration, packets.FinishConfigurationServerbound{}.ID(), handleFinishConfigurationServerbound)
}

// sendConfigurationStart kicks off Configuration right after
// LoginAcknowledged: announce this core's brand, then ask the client which
// data packs it already knows about. This core always advertises its own
// fixed known-packs triple and ignores the client's answer (every registry
// entry ends up sent in full regardless).
func sendConfigurationStart(c *conn) error {
	if err := c.send(&packets.Brand{Name: "picocraft"}); err != nil {
		return err
	}
	return c.send(&packets.SelectKnownPacksClientbound{
		KnownPacks: ns.PrefixedArray[packets.KnownPack]{
			{Namespace: "minecraft", PackID: "core", Version: VersionName},
		},
	})
}

func handleClientInformation(c *conn, wire *jp.WirePacket) error {
	p, err := decodeAs[packets.ClientInformation](wire)
	if err != nil {
		return err
	}
	c.viewDistance = int32(p.ViewDistance)
	return nil
}

// handleSelectKnownPacksServerbound sends every registry this core holds,
// then finishes Configuration. The client's own known-pack list is ignored
// since nothing is ever skipped on the strength of it.
func handleSelectKnownPacksServerbound(c *conn, wire *jp.WirePacket) error {
	if _, err := decodeAs[packets.SelectKnownPacksServerbound](wire); err != nil {
		return err
	}

	for _, reg := range c.server.registries {
		entries := make([]packets.RegistryEntry, len(reg.Entries))
		for i, e := range reg.Entries {
			entries[i] = packets.RegistryEntry{
				EntryID: ns.Identifier(e.ID),
				Data:    ns.PrefixedOptional[ns.NBT]{Present: true, Value: ns.NBT{Data: e.Data}},
			}
		}
		if err := c.send(&packets.RegistryData{
			RegistryID: ns.Identifier(reg.ID),
			Entries:    entries,
		}); err != nil {
			return err
		}
	}

	return c.send(&packets.FinishConfigurationClientbound{})
}

func handleKeepAliveConfiguration(c *conn, wire *jp.WirePacket) error {
	p, err := decodeAs[packets.KeepAliveConfigurationServerbound](wire)
	if err != nil {
		return err
	}
	return c.acknowledgeKeepAlive(int64(p.KeepAliveID))
}

// handleFinishConfigurationServerbound moves the connection into Play,
// allocates its entity identity, registers it in the shared player
// registry, and streams its spawn chunks.
func handleFinishConfigurationServerbound(c *conn, wire *jp.WirePacket) error {
	if _, err := decodeAs[packets.FinishConfigurationServerbound](wire); err != nil {
		return err
	}
	c.state = jp.StatePlay

	entityID := c.server.allocateEntityID()
	c.player = newPlayer(entityID, c.pendingUUID, c.pendingUsername, c.send)
	c.server.players.add(c.player, func(prev *Player) {
		_ = prev // the previous connection under this name is left to notice its own socket error
	})

	dimensionNames := c.server.registries.DimensionNames()
	if err := c.send(&packets.LoginPlay{
		EntityID:            ns.Int32(entityID),
		IsHardcore:          false,
		DimensionNames:      dimensionNames,
		MaxPlayers:          ns.VarInt(c.server.Config.MaxPlayers),
		ViewDistance:        ns.VarInt(c.server.Config.ViewRadius),
		SimulationDistance:  ns.VarInt(c.server.Config.ViewRadius),
		ReducedDebugInfo:    false,
		EnableRespawnScreen: true,
		DoLimitedCrafting:   false,
		DimensionType:       0,
		DimensionName:       ns.NewIdentifier("overworld"),
		HashedSeed:          ns.Int64(c.server.Config.Seed),
		GameMode:            1, // creative: there is no survival damage/inventory model here
		PreviousGameMode:    -1,
		IsDebug:             false,
		IsFlat:              false,
		PortalCooldown:      0,
		SeaLevel:            62,
		EnforcesSecureChat:  false,
	}); err != nil {
		return err
	}

	if err := c.send(&packets.SynchronizePlayerPosition{
		X: 0, Y: 156, Z: 0,
		Yaw: 0, Pitch: 0,
		Flags:      0,
		TeleportID: 1,
	}); err != nil {
		return err
	}

	if err := c.send(&packets.PlayerInfoUpdate{
		Actions: packets.PlayerInfoActionAddPlayer | packets.PlayerInfoActionUpdateGameMode | packets.PlayerInfoActionUpdateListed,
		Entries: []packets.PlayerInfoEntry{
			{UUID: c.pendingUUID, Name: ns.String(c.pendingUsername), GameMode: 1, Listed: true},
		},
	}); err != nil {
		return err
	}

	if err := c.send(&packets.InitialiseWorldBorder{
		X: 0, Z: 0,
		OldDiameter:            256,
		NewDiameter:            256,
		Speed:                  0,
		PortalTeleportBoundary: 29999984,
		WarningBlocks:          5,
		WarningTime:            15,
	}); err != nil {
		return err
	}

	if err := c.send(&packets.GameEvent{
		Event: packets.GameEventStartWaitingForLevelChunks,
		Value: 0,
	}); err != nil {
		return err
	}

	return c.streamChunksAround(c.player.chunkPos(), true)
}
