package server

import (
	"testing"

	jp "github.com/go-mclib/picocraft/java_protocol"
	"github.com/go-mclib/picocraft/terrain"
)

func TestPlayerPositionAndChunkPos(t *testing.T) {
	p := newPlayer(1, [16]byte{}, "alice", func(jp.Packet) error { return nil })
	p.setPosition(17, 64, -5)

	x, y, z := p.position()
	if x != 17 || y != 64 || z != -5 {
		t.Fatalf("position() = (%v,%v,%v), want (17,64,-5)", x, y, z)
	}

	want := terrain.ChunkPos{X: 1, Z: -1}
	if got := p.chunkPos(); got != want {
		t.Errorf("chunkPos() = %v, want %v", got, want)
	}
}

func TestPlayerLoadedChunkTracking(t *testing.T) {
	p := newPlayer(1, [16]byte{}, "bob", func(jp.Packet) error { return nil })
	pos := terrain.ChunkPos{X: 0, Z: 0}

	if p.hasLoaded(pos) {
		t.Fatal("hasLoaded() true before markLoaded()")
	}
	p.markLoaded(pos)
	if !p.hasLoaded(pos) {
		t.Error("hasLoaded() false after markLoaded()")
	}
}

func TestPlayerRegistryAddReplacesSameUsername(t *testing.T) {
	r := newPlayerRegistry()
	first := newPlayer(1, [16]byte{}, "carol", func(jp.Packet) error { return nil })
	second := newPlayer(2, [16]byte{}, "carol", func(jp.Packet) error { return nil })

	var replacedWith *Player
	r.add(first, nil)
	r.add(second, func(prev *Player) { replacedWith = prev })

	if replacedWith != first {
		t.Error("add() did not report the replaced connection")
	}
	if r.count() != 1 {
		t.Errorf("count() = %d, want 1 after replacing a same-name connection", r.count())
	}
}

func TestPlayerRegistryRemove(t *testing.T) {
	r := newPlayerRegistry()
	p := newPlayer(1, [16]byte{}, "dave", func(jp.Packet) error { return nil })
	r.add(p, nil)
	r.remove(p)
	if r.count() != 0 {
		t.Errorf("count() = %d, want 0 after remove()", r.count())
	}
}

func TestPlayerRegistrySendToAll(t *testing.T) {
	r := newPlayerRegistry()
	delivered := 0
	for _, name := range []string{"a", "b", "c"} {
		r.add(newPlayer(1, [16]byte{}, name, func(jp.Packet) error {
			delivered++
			return nil
		}), nil)
	}
	r.sendToAll(nil)
	if delivered != 3 {
		t.Errorf("sendToAll() delivered to %d players, want 3", delivered)
	}
}
