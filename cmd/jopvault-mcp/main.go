package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "jopvault/internal/adapters/mcp"
	"jopvault/internal/config"
)

func main() {
	cfgFlag := flag.String("config", "", "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*cfgFlag)
	if err != nil {
		log.Fatalf("jopvault-mcp: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("jopvault-mcp: %v", err)
	}

	mcpServer := server.NewMCPServer(
		"jopvault-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterImportTools(mcpServer, cfg)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("jopvault-mcp: %v", err)
	}
}
