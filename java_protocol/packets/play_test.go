package packets_test

import (
	"testing"

	"github.com/go-mclib/picocraft/java_protocol/packets"
	ns "github.com/go-mclib/picocraft/net_structures"
)

func TestTeleportConfirmRoundTrip(t *testing.T) {
	p := &packets.TeleportConfirm{TeleportID: 1}
	buf := ns.NewWriter()
	if err := p.Write(buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	var decoded packets.TeleportConfirm
	if err := decoded.Read(ns.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if decoded.TeleportID != p.TeleportID {
		t.Errorf("TeleportID = %v, want %v", decoded.TeleportID, p.TeleportID)
	}
}

func TestSetPlayerPositionRoundTrip(t *testing.T) {
	p := &packets.SetPlayerPosition{X: 1.5, Y: 64, Z: -2.25, OnGround: true}
	buf := ns.NewWriter()
	if err := p.Write(buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	var decoded packets.SetPlayerPosition
	if err := decoded.Read(ns.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if decoded != *p {
		t.Errorf("decoded = %+v, want %+v", decoded, *p)
	}
}

func TestChatMessageRoundTrip(t *testing.T) {
	p := &packets.ChatMessage{Message: "hello there"}
	buf := ns.NewWriter()
	if err := p.Write(buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	var decoded packets.ChatMessage
	if err := decoded.Read(ns.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if decoded.Message != p.Message {
		t.Errorf("Message = %q, want %q", decoded.Message, p.Message)
	}
}

func TestLoginPlayRoundTripWithoutDeathLocation(t *testing.T) {
	p := &packets.LoginPlay{
		EntityID:            1,
		IsHardcore:          false,
		DimensionNames:      ns.PrefixedArray[ns.Identifier]{ns.NewIdentifier("overworld")},
		MaxPlayers:          8,
		ViewDistance:        9,
		SimulationDistance:  9,
		ReducedDebugInfo:    false,
		EnableRespawnScreen: true,
		DoLimitedCrafting:   false,
		DimensionType:       0,
		DimensionName:       ns.NewIdentifier("overworld"),
		HashedSeed:          0,
		GameMode:            1,
		PreviousGameMode:    -1,
		IsDebug:             false,
		IsFlat:              false,
		PortalCooldown:      0,
		SeaLevel:            62,
		EnforcesSecureChat:  false,
	}

	buf := ns.NewWriter()
	if err := p.Write(buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	var decoded packets.LoginPlay
	if err := decoded.Read(ns.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if decoded.EntityID != p.EntityID || decoded.SeaLevel != p.SeaLevel {
		t.Errorf("decoded = %+v, want %+v", decoded, *p)
	}
	if decoded.HasDeathLocation.Present {
		t.Error("HasDeathLocation should be absent when not set")
	}
}

func TestLoginPlayRoundTripAbsentDeathLocation(t *testing.T) {
	p := &packets.LoginPlay{
		DimensionNames: ns.PrefixedArray[ns.Identifier]{ns.NewIdentifier("overworld")},
		DimensionName:  ns.NewIdentifier("overworld"),
		GameMode:       1,
	}
	buf := ns.NewWriter()
	if err := p.Write(buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	var decoded packets.LoginPlay
	if err := decoded.Read(ns.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if decoded.HasDeathLocation.Present {
		t.Error("HasDeathLocation should be absent when Write never sets it")
	}
}

func TestSynchronizePlayerPositionRoundTrip(t *testing.T) {
	p := &packets.SynchronizePlayerPosition{X: 0, Y: 80, Z: 0, Yaw: 0, Pitch: 0, Flags: 0, TeleportID: 1}
	buf := ns.NewWriter()
	if err := p.Write(buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	var decoded packets.SynchronizePlayerPosition
	if err := decoded.Read(ns.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if decoded != *p {
		t.Errorf("decoded = %+v, want %+v", decoded, *p)
	}
}

func TestSetChunkCacheCenterRoundTrip(t *testing.T) {
	p := &packets.SetChunkCacheCenter{ChunkX: 5, ChunkZ: -3}
	buf := ns.NewWriter()
	if err := p.Write(buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	var decoded packets.SetChunkCacheCenter
	if err := decoded.Read(ns.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if decoded != *p {
		t.Errorf("decoded = %+v, want %+v", decoded, *p)
	}
}

func TestChunkDataAndUpdateLightRoundTrip(t *testing.T) {
	sections := []ns.ChunkSection{
		ns.NewChunkSection(make([]int32, ns.BlockStatesEntries), make([]int32, ns.BiomeEntries), 0),
	}
	raw, err := ns.EncodeChunkColumn(sections)
	if err != nil {
		t.Fatalf("EncodeChunkColumn() error = %v", err)
	}

	p := &packets.ChunkDataAndUpdateLight{
		ChunkX: 3,
		ChunkZ: -4,
		Data: ns.ChunkData{
			Heightmaps: ns.HeightmapSet{ns.NewFlatHeightmap(ns.HeightmapWorldSurface, 64)},
			Data:       raw,
		},
		Light: ns.FullyLitLightData(1),
	}

	buf := ns.NewWriter()
	if err := p.Write(buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	var decoded packets.ChunkDataAndUpdateLight
	if err := decoded.Read(ns.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if decoded.ChunkX != p.ChunkX || decoded.ChunkZ != p.ChunkZ {
		t.Errorf("chunk coords = (%v,%v), want (%v,%v)", decoded.ChunkX, decoded.ChunkZ, p.ChunkX, p.ChunkZ)
	}
	if len(decoded.Data.Data) != len(raw) {
		t.Errorf("decoded section data length = %d, want %d", len(decoded.Data.Data), len(raw))
	}
}

func TestGameEventRoundTrip(t *testing.T) {
	p := &packets.GameEvent{Event: packets.GameEventStartWaitingForLevelChunks, Value: 0}
	buf := ns.NewWriter()
	if err := p.Write(buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	var decoded packets.GameEvent
	if err := decoded.Read(ns.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if decoded != *p {
		t.Errorf("decoded = %+v, want %+v", decoded, *p)
	}
}

func TestInitialiseWorldBorderRoundTrip(t *testing.T) {
	p := &packets.InitialiseWorldBorder{
		X: 0, Z: 0,
		OldDiameter:            256,
		NewDiameter:            256,
		Speed:                  0,
		PortalTeleportBoundary: 29999984,
		WarningBlocks:          5,
		WarningTime:            15,
	}
	buf := ns.NewWriter()
	if err := p.Write(buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	var decoded packets.InitialiseWorldBorder
	if err := decoded.Read(ns.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if decoded != *p {
		t.Errorf("decoded = %+v, want %+v", decoded, *p)
	}
}

func TestPlayerInfoUpdateRoundTripAddListedCreative(t *testing.T) {
	id, err := ns.ParseUUID("550e8400-e29b-41d4-a716-446655440000")
	if err != nil {
		t.Fatalf("ParseUUID() error = %v", err)
	}
	p := &packets.PlayerInfoUpdate{
		Actions: packets.PlayerInfoActionAddPlayer | packets.PlayerInfoActionUpdateGameMode | packets.PlayerInfoActionUpdateListed,
		Entries: []packets.PlayerInfoEntry{
			{UUID: id, Name: "steve", GameMode: 1, Listed: true},
		},
	}
	buf := ns.NewWriter()
	if err := p.Write(buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	var decoded packets.PlayerInfoUpdate
	if err := decoded.Read(ns.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(decoded.Entries) != 1 {
		t.Fatalf("decoded has %d entries, want 1", len(decoded.Entries))
	}
	got := decoded.Entries[0]
	if got.UUID != id || got.Name != "steve" || got.GameMode != 1 || !bool(got.Listed) {
		t.Errorf("decoded entry = %+v, want uuid=%v name=steve gamemode=1 listed=true", got, id)
	}
}

func TestSystemChatMessageRoundTrip(t *testing.T) {
	p := &packets.SystemChatMessage{Content: ns.PlainText("hello"), Overlay: false}
	buf := ns.NewWriter()
	if err := p.Write(buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	var decoded packets.SystemChatMessage
	if err := decoded.Read(ns.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if decoded.Content["text"] != "hello" || decoded.Overlay != p.Overlay {
		t.Errorf("decoded = %+v, want %+v", decoded, *p)
	}
}

func TestKeepAlivePlayRoundTrip(t *testing.T) {
	p := &packets.KeepAlivePlayClientbound{KeepAliveID: 42}
	buf := ns.NewWriter()
	if err := p.Write(buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	var decoded packets.KeepAlivePlayClientbound
	if err := decoded.Read(ns.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if decoded.KeepAliveID != p.KeepAliveID {
		t.Errorf("KeepAliveID = %v, want %v", decoded.KeepAliveID, p.KeepAliveID)
	}
}

func TestDisconnectPlayRoundTrip(t *testing.T) {
	p := &packets.DisconnectPlay{Reason: ns.PlainText("kicked")}
	buf := ns.NewWriter()
	if err := p.Write(buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	var decoded packets.DisconnectPlay
	if err := decoded.Read(ns.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if decoded.Reason["text"] != "kicked" {
		t.Errorf("Reason = %v, want text=kicked", decoded.Reason)
	}
}
