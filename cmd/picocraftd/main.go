// Command picocraftd runs a picocraft server core, listening for Java
// Edition clients on the configured address and port until interrupted.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-mclib/picocraft/config"
	"github.com/go-mclib/picocraft/server"
)

func main() {
	configPath := flag.String("config", "server.yaml", "path to the server's YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("picocraftd: %v", err)
	}

	srv, err := server.New(cfg)
	if err != nil {
		log.Fatalf("picocraftd: %v", err)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Address, cfg.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("picocraftd: listen on %s: %v", addr, err)
	}
	log.Printf("picocraftd: listening on %s (protocol %d, %q)", addr, server.ProtocolVersion, server.VersionName)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Serve(ctx, listener); err != nil && ctx.Err() == nil {
		log.Fatalf("picocraftd: %v", err)
	}
	log.Print("picocraftd: shut down")
}
