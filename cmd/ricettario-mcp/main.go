package main

import (
	"context"
	"flag"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "ricettario/internal/adapters/mcp"
	"ricettario/internal/adapters/storage"
	"ricettario/internal/config"
	"ricettario/internal/logging"
)

func main() {
	configFlag := flag.String("config", "", "path to a YAML config file")
	backendFlag := flag.String("backend", "", "store backend: memory, file, sqlite, mysql or gorm")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		logging.Error().Err(err).Msg("failed to load configuration")
		os.Exit(1)
	}
	if *backendFlag != "" {
		cfg.Store.Backend = *backendFlag
		if err := cfg.Validate(); err != nil {
			logging.Error().Err(err).Msg("invalid configuration")
			os.Exit(1)
		}
	}
	logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	classifier := cfg.Classifier()
	repo, err := storage.Open(context.Background(), cfg, classifier)
	if err != nil {
		logging.Error().Err(err).Msg("failed to open recipe store")
		os.Exit(1)
	}
	defer repo.Close()

	mcpServer := server.NewMCPServer(
		"ricettario-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithToolHandlerMiddleware(mcpadapter.LogToolCalls),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, repo, classifier)
	mcpadapter.RegisterWriteTools(mcpServer, repo, classifier)

	logging.Info().Str("backend", cfg.Store.Backend).Msg("ricettario-mcp serving on stdio")
	if err := server.ServeStdio(mcpServer); err != nil {
		logging.Error().Err(err).Msg("ricettario-mcp stopped")
		repo.Close()
		os.Exit(1)
	}
}
