package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/juson/ghibliai/internal/content"
	"github.com/juson/ghibliai/internal/generation"
	"github.com/juson/ghibliai/internal/models"
	"github.com/juson/ghibliai/internal/storage"
)

type Handler struct {
	catalog   *content.Catalog
	generator *generation.Service
	db        *storage.DB
	now       func() time.Time
}

type Option func(*Handler)

// WithDB enables the resource API backed by db.
func WithDB(db *storage.DB) Option {
	return func(h *Handler) { h.db = db }
}

// WithClock overrides the time source used for the footer year.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) { h.now = now }
}

func New(catalog *content.Catalog, generator *generation.Service, opts ...Option) *Handler {
	h := &Handler{
		catalog:   catalog,
		generator: generator,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	if code >= http.StatusInternalServerError {
		slog.Error(message, "status", code)
	} else {
		slog.Warn(message, "status", code)
	}
	h.writeJSON(w, code, models.ErrorResponse{Error: message})
}

// writeNotFound answers with an empty object, as the resource API does for
// unknown resources and ids.
func (h *Handler) writeNotFound(w http.ResponseWriter) {
	h.writeJSON(w, http.StatusNotFound, struct{}{})
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
