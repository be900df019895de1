// Package server drives accepted TCP connections through the Handshake,
// Status, Login, Configuration, and Play protocol states, and streams
// generated terrain to players once they reach Play.
package server

import (
	"context"
	"fmt"
	"net"
	"sync/atomic"

	"github.com/go-mclib/picocraft/config"
	"github.com/go-mclib/picocraft/registry"
	"github.com/go-mclib/picocraft/terrain"
)

// ProtocolVersion and VersionName identify this core on the status/login
// handshake. A login from any other protocol version is refused by closing
// the connection (no disconnect packet is sent) rather than attempting
// best-effort compatibility; status pings are answered whatever version
// the client declares.
const (
	ProtocolVersion = 774
	VersionName     = "1.21.11"
)

// Server owns the shared state every connection's handlers read from:
// configuration, the player registry, the fixed registry set, and the
// terrain generator.
type Server struct {
	Config     config.Config
	players    *playerRegistry
	registries registry.Set
	generator  *terrain.Generator

	nextEntityID atomic.Int32
}

// New builds a Server ready to accept connections, building its registry
// set and terrain generator up front so a bad config fails fast.
func New(cfg config.Config) (*Server, error) {
	regs, err := registry.Build()
	if err != nil {
		return nil, fmt.Errorf("server: build registries: %w", err)
	}
	return &Server{
		Config:     cfg,
		players:    newPlayerRegistry(),
		registries: regs,
		generator:  terrain.NewGenerator(cfg.Seed, int32(cfg.ViewRadius)),
	}, nil
}

// allocateEntityID hands out sequential, never-reused entity IDs for the
// lifetime of the server process. Safe for concurrent use: every accepted
// connection calls this from its own goroutine.
func (s *Server) allocateEntityID() int32 {
	return s.nextEntityID.Add(1)
}

// Serve accepts connections on listener until ctx is canceled, at which
// point it closes listener and returns. Each connection runs on its own
// goroutine and is left to drain on its own; Serve does not wait for
// in-flight connections to finish.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	go func() {
		<-ctx.Done()
		_ = listener.Close()
	}()

	for {
		nc, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
		c := newConn(nc, s)
		go c.serve()
	}
}
