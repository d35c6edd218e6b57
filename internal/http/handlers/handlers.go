package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	nethttp "net/http"

	"github.com/preston-bernstein/nfl-pool-service/internal/http/requestutil"
	"github.com/preston-bernstein/nfl-pool-service/internal/logging"
	"github.com/preston-bernstein/nfl-pool-service/internal/warmer"
)

// PoolService produces the encoded standings and week payloads.
type PoolService interface {
	StandingsJSON(ctx context.Context) (json.RawMessage, error)
	WeekJSON(ctx context.Context, week *int) (json.RawMessage, error)
}

// Handler wires HTTP routes to the pool service.
type Handler struct {
	svc      PoolService
	logger   *slog.Logger
	statusFn func() warmer.Status
}

// NewHandler constructs a Handler. statusFn may be nil when no warmer runs.
func NewHandler(svc PoolService, logger *slog.Logger, statusFn func() warmer.Status) *Handler {
	return &Handler{
		svc:      svc,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireGet(w, r, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic. Without a warmer the service is always ready.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireGet(w, r, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Standings serves the season standings.
func (h *Handler) Standings(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireGet(w, r, h.logger) {
		return
	}
	payload, err := h.svc.StandingsJSON(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeRaw(w, nethttp.StatusOK, payload, h.logger)
}

// Week serves the game grid for ?week=N, or the current week when the parameter is absent.
func (h *Handler) Week(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireGet(w, r, h.logger) {
		return
	}
	week, err := requestutil.ParseWeek(r.URL.Query())
	if err != nil {
		logging.Warn(loggerFromContext(r, h.logger), "invalid week parameter", "error", err)
		writeError(w, r, nethttp.StatusBadRequest, "invalid week parameter", h.logger)
		return
	}
	payload, err := h.svc.WeekJSON(r.Context(), week)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeRaw(w, nethttp.StatusOK, payload, h.logger)
}

// NotFound answers unknown paths with a JSON error.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

func requireGet(w nethttp.ResponseWriter, r *nethttp.Request, logger *slog.Logger) bool {
	if r.Method == nethttp.MethodGet || r.Method == nethttp.MethodHead {
		return true
	}
	w.Header().Set("Allow", "GET, HEAD")
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", logger)
	return false
}
