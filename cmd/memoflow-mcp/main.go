package main

import (
	"context"
	"flag"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "memoflow/internal/adapters/mcp"
	"memoflow/internal/adapters/sqlite"
	"memoflow/internal/config"
	"memoflow/internal/logger"
)

func main() {
	configFlag := flag.String("config", "", "path to memoflow.toml")
	dbFlag := flag.String("db", "", "path to the notes database (overrides config)")
	flag.Parse()

	log := logger.New("mcp")

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.WithError(err).Fatal("load config")
	}
	if *dbFlag != "" {
		cfg.Store.Path = *dbFlag
	}

	// stdout carries the protocol, so logs go to the configured file or stderr
	if _, err := logger.Init(cfg.Log.Level, cfg.Log.File); err != nil {
		log.WithError(err).Fatal("init logger")
	}

	store, err := sqlite.Open(cfg.Store.Path)
	if err != nil {
		log.WithError(err).Fatal("open store")
	}
	defer store.Close()

	mcpServer := server.NewMCPServer(
		"memoflow-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, store)
	mcpadapter.RegisterWriteTools(mcpServer, store)

	log.WithField("db", store.Path()).Info("serving stdio")
	if err := server.ServeStdio(mcpServer); err != nil {
		log.WithError(err).Error("memoflow-mcp stopped")
	}
}
