package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/juson/ghibliai/internal/generation"
	"github.com/juson/ghibliai/internal/models"
)

// HandleGenerate serves both the mock-server route and the function route.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.GenerationRequest
	// An empty body is treated as {}.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusInternalServerError)
		return
	}

	result, err := h.generator.Generate(r.Context(), req)
	switch {
	case errors.Is(err, generation.ErrValidation):
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		h.writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	slog.Debug("Generate request served", "image_url", result.ImageURL, "has_prompt", req.Prompt != "", "has_image", req.Image != "")
	h.writeJSON(w, http.StatusOK, result)
}
