package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/zaraumer/SentimentVSROI/internal/analysis"
	"github.com/zaraumer/SentimentVSROI/internal/config"
	"github.com/zaraumer/SentimentVSROI/internal/logging"
	"github.com/zaraumer/SentimentVSROI/internal/reddit"
	"github.com/zaraumer/SentimentVSROI/internal/server"
	"github.com/zaraumer/SentimentVSROI/internal/vader"
	"github.com/zaraumer/SentimentVSROI/internal/yahoo"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupProviders(cfg *config.Config, clock clockwork.Clock) (*yahoo.Provider, *reddit.Provider) {
	prices, err := yahoo.NewProvider(clock)
	if err != nil {
		slog.Error("Failed to create price provider", "error", err)
		os.Exit(1)
	}

	posts, err := reddit.NewProvider(reddit.Credentials{
		ID:        cfg.RedditClientID,
		Secret:    cfg.RedditClientSecret,
		Username:  cfg.RedditUsername,
		Password:  cfg.RedditPassword,
		UserAgent: cfg.RedditUserAgent,
	}, cfg.SubredditList(), prices.Location())
	if err != nil {
		slog.Error("Failed to create forum provider", "error", err)
		os.Exit(1)
	}

	return prices, posts
}

func runGracefulShutdown(srv *server.Server) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	// Initialize structured logging
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port)

	prices, posts := setupProviders(cfg, clock)
	scorer := vader.NewScorer()

	svc := analysis.NewService(prices, posts, scorer, clock, cfg.WindowDays, cfg.UpstreamTimeout)

	srv, err := server.NewServer(cfg, svc, clock)
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	done := runGracefulShutdown(srv)

	slog.Info("Server starting", "port", cfg.Port)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
