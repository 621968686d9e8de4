package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/moltinginstar/tekosu/internal/adapter"
	"github.com/moltinginstar/tekosu/internal/config"
	"github.com/moltinginstar/tekosu/internal/server"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	useMock := flag.Bool("mock", false, "use mock adapter instead of OpenAI")
	port := flag.Int("port", 0, "override listen port")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatal("config", err)
	}
	if *port > 0 {
		cfg.Port = *port
	}

	level, _ := cfg.SlogLevel()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	provider := buildProvider(cfg, *useMock)
	handler := server.SetupMux(provider, server.Options{
		APIKey:        cfg.APIKey,
		MaxTextLength: cfg.MaxTextLength,
		Timeout:       cfg.Timeout(),
		Version:       version,
	})

	if cfg.APIKey != "" {
		slog.Info("auth: API key required (X-API-Key header)")
	} else {
		slog.Info("auth: disabled (no api_key configured)")
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("tekosu listening", "addr", addr, "version", version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fatal("server", err)
		}
	}()

	<-done
	slog.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		fatal("shutdown", err)
	}
	slog.Info("server stopped")
}

func buildProvider(cfg config.Config, useMock bool) adapter.Provider {
	if useMock {
		slog.Info("mode: mock adapter enabled")
		return &adapter.MockAdapter{Delay: 500 * time.Millisecond}
	}

	slog.Info("mode: openai", "base_url", cfg.OpenAIBaseURL, "timeout", cfg.Timeout())
	return adapter.NewOpenAIAdapter(cfg.OpenAIBaseURL, &http.Client{Timeout: cfg.Timeout()})
}

func fatal(stage string, err error) {
	slog.Error(stage, "error", err)
	os.Exit(1)
}
