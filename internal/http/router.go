package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/nfl-pool-service/internal/http/handlers"
	"github.com/preston-bernstein/nfl-pool-service/internal/http/middleware"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/api/standings", handler.Standings)
	mux.HandleFunc("/api/week", handler.Week)
	mux.HandleFunc("/", handler.NotFound)
	return middleware.APIHeaders(mux)
}
