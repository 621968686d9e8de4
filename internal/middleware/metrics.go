package middleware

import (
	"net/http"
	"strconv"

	"github.com/moltinginstar/tekosu/internal/metrics"
)

// routes are the paths recorded verbatim. The page handler answers every
// other path, so those collapse into one label.
var routes = map[string]bool{
	"/":              true,
	"/api/health":    true,
	"/api/models":    true,
	"/api/render":    true,
	"/api/translate": true,
	"/metrics":       true,
}

func routeLabel(path string) string {
	if routes[path] {
		return path
	}
	return "other"
}

// Metrics records request count by method, route, and status code.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		metrics.RequestsTotal.WithLabelValues(r.Method, routeLabel(r.URL.Path), strconv.Itoa(sw.status)).Inc()
	})
}
