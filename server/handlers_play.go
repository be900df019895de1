package server

import (
	jp "github.com/go-mclib/picocraft/java_protocol"
	"github.com/go-mclib/picocraft/java_protocol/packets"
	ns "github.com/go-mclib/picocraft/net_structures"
	"github.com/go-mclib/picocraft/terrain"
)

func init() {
	registerHandler(jp.StatePlay, packets.TeleportConfirm{}.ID(), handleTeleportConfirm)
	registerHandler(jp.StatePlay, packets.SetPlayerPosition{}.ID(), handleSetPlayerPosition)
	registerHandler(jp.StatePlay, packets.KeepAlivePlayServerbound{}.ID(), handleKeepAlivePlay)
	registerHandler(jp.StatePlay, packets.ChatMessage{}.ID(), handleChatMessage)
}

func handleTeleportConfirm(c *conn, wire *jp.WirePacket) error {
	_, err := decodeAs[packets.TeleportConfirm](wire)
	return err
}

// handleSetPlayerPosition records the player's new position and streams
// any chunk columns newly in range of it. The chunk cache center is only
// resent when the player actually crossed into a new chunk.
func handleSetPlayerPosition(c *conn, wire *jp.WirePacket) error {
	p, err := decodeAs[packets.SetPlayerPosition](wire)
	if err != nil {
		return err
	}
	if c.player == nil {
		return nil
	}

	before := c.player.chunkPos()
	c.player.setPosition(float64(p.X), float64(p.Y), float64(p.Z))
	after := c.player.chunkPos()

	if after == before && c.player.hasLoaded(after) {
		return nil
	}
	return c.streamChunksAround(after, after != before)
}

func handleKeepAlivePlay(c *conn, wire *jp.WirePacket) error {
	p, err := decodeAs[packets.KeepAlivePlayServerbound](wire)
	if err != nil {
		return err
	}
	return c.acknowledgeKeepAlive(int64(p.KeepAliveID))
}

// handleChatMessage relays the message to every connected player as
// unsigned system chat (see ChatMessage's doc comment on signed chat being
// out of scope).
func handleChatMessage(c *conn, wire *jp.WirePacket) error {
	p, err := decodeAs[packets.ChatMessage](wire)
	if err != nil {
		return err
	}

	name := "?"
	if c.player != nil {
		name = c.player.Username
	}
	text := ns.JSONTextComponent{"text": name + ": " + string(p.Message)}
	c.server.players.sendToAll(&packets.SystemChatMessage{Content: text, Overlay: false})
	return nil
}

// streamChunksAround sends every not-yet-loaded chunk within the
// connection's configured view radius of center, in ring order so nearby
// chunks arrive first. recenter also tells the client to recenter its own
// unload logic on center.
func (c *conn) streamChunksAround(center terrain.ChunkPos, recenter bool) error {
	if recenter {
		if err := c.send(&packets.SetChunkCacheCenter{ChunkX: ns.VarInt(center.X), ChunkZ: ns.VarInt(center.Z)}); err != nil {
			return err
		}
	}

	radius := int32(c.server.Config.ViewRadius)
	if c.viewDistance > 0 && c.viewDistance < radius {
		radius = c.viewDistance
	}
	for _, pos := range terrain.SpiralChunks(center, radius) {
		if c.player.hasLoaded(pos) {
			continue
		}
		data, light, err := c.server.generator.Column(pos)
		if err != nil {
			return err
		}
		if err := c.send(&packets.ChunkDataAndUpdateLight{
			ChunkX: ns.Int32(pos.X),
			ChunkZ: ns.Int32(pos.Z),
			Data:   data,
			Light:  light,
		}); err != nil {
			return err
		}
		c.player.markLoaded(pos)
	}
	return nil
}
