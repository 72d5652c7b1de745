// Package mcp hosts an MCP server exposing MusicBrainz lookups as tools, so
// agent hosts can resolve music metadata without speaking the web service's
// wire protocol themselves.
package mcp

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/audioscout/musicbrainz-go/client"
	"github.com/audioscout/musicbrainz-go/internal/config"
	"github.com/audioscout/musicbrainz-go/mcp/handlers"
)

const (
	serverName    = "mbz-mcp-server"
	serverVersion = "0.1.0"

	httpAddr        = ":11550"
	shutdownTimeout = 10 * time.Second
	httpReadTimeout = 5 * time.Second
	httpIdleTimeout = 120 * time.Second
)

type toolRegisterer interface {
	RegisterTools(s *server.MCPServer) error
}

func registerHandler(s *server.MCPServer, handler toolRegisterer, name string) {
	if err := handler.RegisterTools(s); err != nil {
		log.Fatal().Err(err).Msgf("Failed to register %s tools", name)
	}
}

// RunMCPServer starts the MCP server over stdio or streamable HTTP.
func RunMCPServer() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg.Init()

	opts := []client.Option{client.WithBaseURL(cfg.ServiceURL)}
	if cfg.UserAgent != "" {
		opts = append(opts, client.WithUserAgent(cfg.UserAgent))
	}
	sdk := client.New(opts...)
	log.Info().Str("service_url", cfg.ServiceURL).Msg("SDK client created")

	s := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
	)

	registerHandler(s, handlers.NewLookupHandler(sdk), "lookup")
	registerHandler(s, handlers.NewGetHandler(sdk), "get")

	if shouldUseStdio() {
		log.Info().Msg("Starting MCP server (stdio transport)")
		if err := server.ServeStdio(s); err != nil {
			log.Fatal().Err(err).Msg("Stdio server error")
		}
		return nil
	}

	log.Info().Str("addr", httpAddr).Msg("Starting MCP server (Streamable HTTP)")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	streamSrv := server.NewStreamableHTTPServer(
		s,
		server.WithEndpointPath("/mcp"),
		server.WithHeartbeatInterval(30*time.Second),
	)

	srv := &http.Server{
		Addr:         httpAddr,
		Handler:      streamSrv,
		ReadTimeout:  httpReadTimeout,
		WriteTimeout: 0, // no deadline, required for SSE streaming
		IdleTimeout:  httpIdleTimeout,
	}

	shutdownComplete := make(chan struct{})
	go func() {
		defer close(shutdownComplete)

		sig := <-sigChan
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Error during HTTP server shutdown")
		}
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	<-shutdownComplete
	log.Info().Msg("MCP server stopped")
	return nil
}

// shouldUseStdio picks the stdio transport when the process is launched by an
// MCP host (stdin is a pipe) or when forced via MCP_TRANSPORT=stdio.
func shouldUseStdio() bool {
	if os.Getenv("MCP_TRANSPORT") == "stdio" {
		return true
	}
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}
