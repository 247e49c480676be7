// Command sizzlemcp runs the sizzle MCP server.
//
// It exposes the sizzle cinematography pipeline (scene analysis,
// sequence planning, guardrail validation, sequence evaluation) as MCP
// tools over stdio, HTTP, or WebSocket.
//
// Optional environment variables:
//
//	SIZZLE_CONFIG      - path to a TOML config file
//	SIZZLE_TRANSPORT   - stdio, http, or ws (default: stdio)
//	SIZZLE_PORT        - listen port for http/ws (default: 21453)
//	SIZZLE_HOST        - listen address for http/ws (default: 0.0.0.0)
//	SIZZLE_CORS_ORIGINS - comma-separated CORS allow-list, or "*" (default)
//	SIZZLE_LOG_LEVEL   - debug, info, warn, error (default: info)
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sizzlehq/sizzle/internal/catalog"
	"github.com/sizzlehq/sizzle/internal/config"
	"github.com/sizzlehq/sizzle/internal/content"
	"github.com/sizzlehq/sizzle/internal/mcp"
	"github.com/sizzlehq/sizzle/internal/tools"
)

// Version is set via ldflags at build time.
var Version = "dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "info" {
		runInfo(os.Args[2:])
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "sizzlemcp: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := parseLogLevel(cfg.Log.Level)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	version := cfg.Server.Version
	if Version != "dev" {
		version = Version
	}

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	logger.Info("starting sizzlemcp",
		"version", version,
		"transport", cfg.Transport.Mode,
		"catalog_version", cat.Version,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	registry := mcp.NewRegistry()

	registry.Register(tools.NewAnalyzeScene(cat))
	registry.Register(tools.NewPlanSequence(cat))
	registry.Register(tools.NewValidateChoreography(cat))
	registry.Register(tools.NewValidateGuardrails(cat))
	registry.Register(tools.NewEvaluateSequence(cat))
	registry.Register(tools.NewGetPersonality(cat))
	registry.Register(tools.NewGetStylePack(cat))
	registry.Register(tools.NewSearchPrimitives(cat))
	registry.Register(tools.NewGetPrimitive(cat))

	registry.RegisterPrompt(&content.GuidePrompt{})

	registry.RegisterResource(&content.CatalogSchemaResource{})
	registry.RegisterResource(&content.ToolReferenceResource{})

	server := mcp.NewServer(registry, mcp.ServerInfo{
		Name:    cfg.Server.Name,
		Version: version,
	}, logger)

	switch cfg.Transport.Mode {
	case "http":
		return runHTTP(ctx, server, cfg, logger)
	case "ws":
		return runWS(ctx, server, cfg, logger)
	default:
		return server.Run(ctx)
	}
}

func runHTTP(ctx context.Context, server *mcp.Server, cfg *config.Config, logger *slog.Logger) error {
	httpServer := mcp.NewHTTPServer(server, cfg.Transport.CORSOrigins, cfg.Transport.RateLimitPerSecond, cfg.Transport.RateLimitBurst, logger)
	addr := cfg.Transport.Host + ":" + cfg.Transport.Port
	srv := &http.Server{Addr: addr, Handler: httpServer.Handler()}

	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()

	logger.Info("sizzlemcp listening (http)", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func runWS(ctx context.Context, server *mcp.Server, cfg *config.Config, logger *slog.Logger) error {
	wsServer := mcp.NewWSServer(server, cfg.Transport.CORSOrigins, logger)
	mux := http.NewServeMux()
	mux.HandleFunc("/mcp", wsServer.Handler())

	addr := cfg.Transport.Host + ":" + cfg.Transport.Port
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()

	logger.Info("sizzlemcp listening (ws)", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("ws server: %w", err)
	}
	return nil
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
