package server

import (
	"net"
	"sync"

	jp "github.com/go-mclib/picocraft/java_protocol"
	ns "github.com/go-mclib/picocraft/net_structures"
	"github.com/go-mclib/picocraft/terrain"
)

// Player is one connected client once it has reached Play: its identity,
// live position, the set of chunk columns it currently has loaded, and the
// send function its owning connection installed so other connections can
// deliver packets to it (e.g. broadcast chat).
type Player struct {
	EntityID int32
	UUID     ns.UUID
	Username string
	send     func(jp.Packet) error

	mu           sync.Mutex
	X, Y, Z      float64
	loadedChunks map[terrain.ChunkPos]struct{}
}

func newPlayer(entityID int32, id ns.UUID, username string, send func(jp.Packet) error) *Player {
	return &Player{
		EntityID:     entityID,
		UUID:         id,
		Username:     username,
		send:         send,
		loadedChunks: make(map[terrain.ChunkPos]struct{}),
	}
}

func (p *Player) setPosition(x, y, z float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.X, p.Y, p.Z = x, y, z
}

func (p *Player) position() (x, y, z float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.X, p.Y, p.Z
}

func (p *Player) chunkPos() terrain.ChunkPos {
	x, _, z := p.position()
	return terrain.ChunkPos{X: int32(x) >> 4, Z: int32(z) >> 4}
}

func (p *Player) hasLoaded(c terrain.ChunkPos) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.loadedChunks[c]
	return ok
}

func (p *Player) markLoaded(c terrain.ChunkPos) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loadedChunks[c] = struct{}{}
}

// playerRegistry tracks every connected player by username, mirroring the
// sync.Map player table the reference single-file Go server keeps, refactored
// behind an explicit mutex since this core's registry also needs a live
// count for status responses.
type playerRegistry struct {
	mu      sync.Mutex
	players map[string]*Player
}

func newPlayerRegistry() *playerRegistry {
	return &playerRegistry{players: make(map[string]*Player)}
}

// add stores p under its username, replacing any previous player stored
// under the same name and passing that previous player to replaced (when
// non-nil). add itself does not close the previous connection.
func (r *playerRegistry) add(p *Player, replaced func(*Player)) {
	r.mu.Lock()
	prev, ok := r.players[p.Username]
	r.players[p.Username] = p
	r.mu.Unlock()
	if ok && replaced != nil {
		replaced(prev)
	}
}

func (r *playerRegistry) remove(p *Player) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cur, ok := r.players[p.Username]; ok && cur == p {
		delete(r.players, p.Username)
	}
}

func (r *playerRegistry) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.players)
}

// sendToAll delivers packet to every connected player, skipping any whose
// send fails (its keep-alive loop will notice the dead connection and
// remove it).
func (r *playerRegistry) sendToAll(packet jp.Packet) {
	r.mu.Lock()
	players := make([]*Player, 0, len(r.players))
	for _, p := range r.players {
		players = append(players, p)
	}
	r.mu.Unlock()

	for _, p := range players {
		_ = p.send(packet)
	}
}

// remoteAddr is a small helper shared by the acceptor and connection logger.
func remoteAddr(c net.Conn) string {
	if c == nil {
		return "<nil>"
	}
	return c.RemoteAddr().String()
}
