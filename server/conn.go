package server

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"time"

	jp "github.com/go-mclib/picocraft/java_protocol"
	ns "github.com/go-mclib/picocraft/net_structures"
)

const (
	keepAliveInterval = 10 * time.Second
	keepAliveTimeout  = 30 * time.Second
)


// conn drives one client connection through its protocol states. Reading
// happens on a dedicated goroutine so the main loop can race an inbound
// packet against the keep-alive ticker in a single select — net_structures
// guarantees decoding only ever blocks inside that goroutine's Read call,
// so a keep-alive tick never has to wait behind a stalled packet read.
type conn struct {
	netConn net.Conn
	server  *Server
	state   jp.State
	logger  *log.Logger

	player *Player

	pendingUsername string
	pendingUUID     ns.UUID
	viewDistance    int32

	lastKeepAliveSent time.Time
	lastKeepAliveSeen time.Time
	pendingKeepAlive  int64
}

type inboundPacket struct {
	wire *jp.WirePacket
	err  error
}

func newConn(nc net.Conn, s *Server) *conn {
	return &conn{
		netConn: nc,
		server:  s,
		state:   jp.StateHandshake,
		logger:  log.New(log.Writer(), fmt.Sprintf("[conn %s] ", remoteAddr(nc)), log.LstdFlags),
	}
}

// serve runs the connection to completion, never returning until the
// connection is closed (by either side, or by this core dropping it).
func (c *conn) serve() {
	defer c.close()

	reads := make(chan inboundPacket, 1)
	go c.readLoop(reads)

	ticker := time.NewTicker(keepAliveInterval)
	defer ticker.Stop()

	for {
		select {
		case in, ok := <-reads:
			if !ok {
				return
			}
			if in.err != nil {
				if !errors.Is(in.err, io.EOF) {
					c.logger.Printf("read error: %v", in.err)
				}
				return
			}
			if err := c.dispatch(in.wire); err != nil {
				c.logger.Printf("handle packet 0x%02X in %s: %v", int(in.wire.PacketID), c.state, err)
				return
			}
		case <-ticker.C:
			if c.state != jp.StatePlay {
				c.logger.Printf("keep-alive tick outside Play: closing stalled connection")
				return
			}
			if c.pendingKeepAlive != 0 && time.Since(c.lastKeepAliveSent) > keepAliveTimeout {
				c.logger.Printf("keep-alive timed out")
				return
			}
			if c.pendingKeepAlive == 0 {
				if err := c.sendKeepAlive(); err != nil {
					c.logger.Printf("send keep-alive: %v", err)
					return
				}
			}
		}
	}
}

// readLoop blocks in ReadWirePacketFrom on the connection's own goroutine
// and forwards each frame (or terminal error) to reads.
func (c *conn) readLoop(reads chan<- inboundPacket) {
	defer close(reads)
	for {
		wire, err := jp.ReadWirePacketFrom(c.netConn, -1)
		reads <- inboundPacket{wire: wire, err: err}
		if err != nil {
			return
		}
	}
}

func (c *conn) send(p jp.Packet) error {
	wire, err := jp.ToWire(p)
	if err != nil {
		return err
	}
	return wire.WriteTo(c.netConn, -1)
}

func (c *conn) close() {
	_ = c.netConn.Close()
	if c.player != nil {
		c.server.players.remove(c.player)
	}
}

// decodeAs reads wire's body into a freshly allocated *T, the typed-decode
// half of dispatch's (state, packet ID) routing.
func decodeAs[T any, PT interface {
	*T
	jp.Packet
}](wire *jp.WirePacket) (PT, error) {
	p := new(T)
	pt := PT(p)
	if wire.PacketID != pt.ID() {
		return nil, fmt.Errorf("server: packet ID mismatch: expected 0x%02X got 0x%02X", pt.ID(), wire.PacketID)
	}
	if err := pt.Read(ns.NewReader(wire.Data)); err != nil {
		return nil, err
	}
	return pt, nil
}
