package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nfl-pool-service/internal/http/middleware"
	"github.com/preston-bernstein/nfl-pool-service/internal/logging"
	"github.com/preston-bernstein/nfl-pool-service/internal/ownership"
	"github.com/preston-bernstein/nfl-pool-service/internal/providers"
)

const contentTypeJSON = "application/json; charset=utf-8"

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeRaw(w http.ResponseWriter, status int, payload []byte, logger *slog.Logger) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if _, err := w.Write(payload); err != nil && logger != nil {
		logger.Warn("failed to write response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	writeJSON(w, status, errorBody(r, message), logger)
}

func errorBody(r *http.Request, message string) map[string]string {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get("X-Request-ID")
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	return body
}

// writeServiceError maps pool service failures onto status codes.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback *slog.Logger) {
	logger := loggerFromContext(r, fallback)

	if errors.Is(err, ownership.ErrMissingConfiguration) {
		logging.Error(logger, "missing configuration", err)
		body := errorBody(r, "missing configuration")
		body["detail"] = ownership.ErrMissingConfiguration.Error()
		writeJSON(w, http.StatusInternalServerError, body, fallback)
		return
	}

	if fe, ok := providers.AsFetchError(err); ok {
		logging.Error(logger, "upstream fetch failed", err,
			slog.Int(logging.FieldStatusCode, fe.StatusCode),
			slog.String(logging.FieldURL, fe.URL),
		)
		writeError(w, r, http.StatusBadGateway, "upstream fetch failed", fallback)
		return
	}

	logging.Error(logger, "request failed", err)
	writeError(w, r, http.StatusInternalServerError, "internal error", fallback)
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
