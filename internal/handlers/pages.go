package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/juson/ghibliai/internal/components"
	"github.com/juson/ghibliai/internal/content"
	"github.com/juson/ghibliai/internal/studio"
	"github.com/juson/ghibliai/internal/ui"
)

func (h *Handler) renderPage(w http.ResponseWriter, code int, s ui.State, st studio.State) {
	page := components.Page(components.PageData{
		Table:  h.catalog.Get(s.Lang),
		UI:     s,
		Studio: st,
		Year:   h.now().Year(),
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if err := page.Render(w); err != nil {
		slog.Error("Unable to render page", "err", err)
	}
}

// HandleLanding renders the page for the UI state carried in the query.
func (h *Handler) HandleLanding(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	faqCount := len(h.catalog.Get(content.ParseLanguage(q.Get("lang"))).FAQ.Items)
	h.renderPage(w, http.StatusOK, ui.FromQuery(q, faqCount), studio.State{})
}

// HandleCreate runs the studio form submission through a widget backed by
// the in-process generator and renders the outcome.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormSize)
	parseErr := r.ParseMultipartForm(studio.MaxFileSize)

	s := ui.Default()
	s.Lang = content.ParseLanguage(r.FormValue("lang"))
	up := h.catalog.Get(s.Lang).Upload

	if parseErr != nil && !errors.Is(parseErr, http.ErrNotMultipart) {
		slog.Warn("Failed to parse studio form", "error", parseErr)
		h.renderPage(w, http.StatusBadRequest, s, studio.State{Err: up.InvalidFile})
		return
	}

	widget := studio.NewWidget(h.generator, studio.WithErrorMessage(up.Error))
	widget.SetPrompt(r.FormValue("prompt"))

	file, err := h.readUploadedImage(r)
	if err == nil && file == nil {
		if dataURL := r.FormValue("image"); dataURL != "" {
			file, err = previewFile(dataURL)
		}
	}
	if err != nil {
		slog.Warn("Rejected studio upload", "error", err)
		st := widget.State()
		st.Err = up.InvalidFile
		h.renderPage(w, http.StatusBadRequest, s, st)
		return
	}
	if file != nil {
		if err := widget.SelectFile(*file); err != nil {
			st := widget.State()
			st.Err = up.InvalidFile
			h.renderPage(w, http.StatusBadRequest, s, st)
			return
		}
	}

	final, err := widget.Generate(r.Context())
	if errors.Is(err, studio.ErrCannotSubmit) {
		h.renderPage(w, http.StatusBadRequest, s, final)
		return
	}
	h.renderPage(w, http.StatusOK, s, final)
}
