// Command mcp-engine runs the MCP tool server for engine queries.
// Uses stdio transport for integration with AI assistants.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/procrest/engine-client-go/internal/config"
	"github.com/procrest/engine-client-go/internal/mcpserver"
	"github.com/procrest/engine-client-go/internal/observability"
	"github.com/procrest/engine-client-go/internal/remote"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	// stdout carries the protocol
	logger := observability.InitLoggerTo(os.Stderr, cfg.LogLevel)

	engine, err := remote.Dial(cfg, logger)
	if err != nil {
		log.Fatalf("unable to create engine client: %v", err)
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "engine-client",
		Version: "v1.0.0",
	}, nil)
	mcpserver.RegisterTools(server, engine)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("mcp server error: %v", err)
	}
}
