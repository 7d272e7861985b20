package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/averycrespi/calculator-mcp/internal/config"
	"github.com/averycrespi/calculator-mcp/internal/server"
	"github.com/averycrespi/calculator-mcp/internal/session"
	"github.com/averycrespi/calculator-mcp/pkg/types"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to a YAML config file (watched for log level changes)")
		stateFile  = flag.String("state-file", "", "Path of the YAML file used to persist calculator state (empty disables persistence)")
		logLevel   = flag.String("log-level", "", "Log level (debug, info, warn, error)")
	)
	flag.Parse()

	cfg := &types.Config{}
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	// Flags override the config file
	if *stateFile != "" {
		cfg.StateFile = *stateFile
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Invalid log level: %v", err)
	}

	// Stdout carries the MCP protocol, so logs go to stderr
	var levelVar slog.LevelVar
	levelVar.Set(level)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: &levelVar})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store session.Store
	if cfg.StateFile != "" {
		if absPath, err := filepath.Abs(cfg.StateFile); err == nil {
			cfg.StateFile = absPath
		}
		yamlStore, err := session.NewYAMLStore(cfg.StateFile)
		if err != nil {
			log.Fatalf("Failed to create state store: %v", err)
		}
		store = yamlStore
	}

	calculatorSession := session.NewManager(store)
	if err := calculatorSession.Initialize(ctx); err != nil {
		log.Fatalf("Failed to initialize calculator session: %v", err)
	}

	if *configPath != "" && *logLevel == "" {
		go func() {
			err := config.Watch(ctx, *configPath, func(updated *types.Config) {
				newLevel, err := config.ParseLogLevel(updated.LogLevel)
				if err != nil {
					return
				}
				if newLevel != levelVar.Level() {
					levelVar.Set(newLevel)
					slog.Info("Log level changed", "level", newLevel.String())
				}
			})
			if err != nil {
				slog.Warn("Config watcher stopped", "error", err)
			}
		}()
	}

	mcpServer := server.NewCalculatorServer(cfg, calculatorSession)

	// Serve blocks until the client closes stdin
	if err := mcpServer.Serve(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	slog.Info("Server stopped")
}
