package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/moltinginstar/tekosu/internal/adapter"
	"github.com/moltinginstar/tekosu/internal/handler"
	"github.com/moltinginstar/tekosu/internal/middleware"
)

// Options configures the HTTP surface.
type Options struct {
	APIKey        string
	MaxTextLength int
	Timeout       time.Duration
	Version       string
}

// SetupMux wires handlers with the full middleware chain.
func SetupMux(p adapter.Provider, opts Options) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", handler.Page())
	mux.HandleFunc("/api/health", handler.Health(p, opts.Version))
	mux.HandleFunc("/api/models", handler.Models(p))
	mux.HandleFunc("/api/render", handler.Render(p, opts.MaxTextLength))
	mux.HandleFunc("/api/translate", handler.Translate(p, opts.MaxTextLength))
	mux.Handle("/metrics", promhttp.Handler())

	return middleware.Chain(mux, middleware.Options{
		APIKey:       opts.APIKey,
		MaxBodyBytes: maxBodyBytes(opts.MaxTextLength),
		Timeout:      passTimeout(opts.Timeout),
	})
}

// passTimeout covers a render pass: a model probe then a completion, each
// bounded by the provider client timeout, plus slack to answer.
func passTimeout(providerTimeout time.Duration) time.Duration {
	return 2*providerTimeout + 5*time.Second
}

// maxBodyBytes leaves room for JSON escaping and the other fields.
func maxBodyBytes(maxTextLength int) int64 {
	return int64(maxTextLength)*2 + 16*1024
}
