package middleware

import (
	"net/http"
	"time"
)

// Options tunes the middleware stack.
type Options struct {
	APIKey       string
	MaxBodyBytes int64
	Timeout      time.Duration
}

// Chain wraps the handler with the full middleware stack.
// Order: CORS → RequestID → Logging → Metrics → APIKey → MaxBytes → Timeout → mux
func Chain(handler http.Handler, opts Options) http.Handler {
	h := handler
	h = http.TimeoutHandler(h, opts.Timeout, `{"error":"request timeout"}`)
	h = MaxBytes(opts.MaxBodyBytes)(h)
	h = APIKey(opts.APIKey)(h)
	h = Metrics(h)
	h = Logging(h)
	h = RequestID(h)
	h = CORS(h)
	return h
}
