package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/juson/ghibliai/internal/storage"
)

// reserved query parameters of a collection listing
const (
	paramSort  = "_sort"
	paramOrder = "_order"
	paramPage  = "_page"
	paramLimit = "_limit"
)

func (h *Handler) HandleDB(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.db.Snapshot())
}

// HandleResource serves /{resource} for both collections and singular resources.
func (h *Handler) HandleResource(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "resource")
	kind, ok := h.db.Kind(name)
	if !ok {
		h.writeNotFound(w)
		return
	}

	if kind == storage.Singular {
		h.handleSingular(w, r, name)
		return
	}

	switch r.Method {
	case http.MethodGet:
		q, err := parseQuery(r)
		if err != nil {
			h.writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		records, total, err := h.db.List(name, q)
		if err != nil {
			h.writeStorageError(w, err)
			return
		}
		w.Header().Set("X-Total-Count", strconv.Itoa(total))
		h.writeJSON(w, http.StatusOK, records)
	case http.MethodPost:
		rec, ok := h.decodeRecord(w, r)
		if !ok {
			return
		}
		created, err := h.db.Insert(name, rec)
		if err != nil {
			h.writeStorageError(w, err)
			return
		}
		h.writeJSON(w, http.StatusCreated, created)
	default:
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleRecord serves /{resource}/{id}.
func (h *Handler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "resource")
	id := chi.URLParam(r, "id")

	switch r.Method {
	case http.MethodGet:
		rec, err := h.db.Get(name, id)
		if err != nil {
			h.writeStorageError(w, err)
			return
		}
		h.writeJSON(w, http.StatusOK, rec)
	case http.MethodPut, http.MethodPatch:
		body, ok := h.decodeRecord(w, r)
		if !ok {
			return
		}
		var rec storage.Record
		var err error
		if r.Method == http.MethodPut {
			rec, err = h.db.Replace(name, id, body)
		} else {
			rec, err = h.db.Patch(name, id, body)
		}
		if err != nil {
			h.writeStorageError(w, err)
			return
		}
		h.writeJSON(w, http.StatusOK, rec)
	case http.MethodDelete:
		if err := h.db.Delete(name, id); err != nil {
			h.writeStorageError(w, err)
			return
		}
		h.writeJSON(w, http.StatusOK, struct{}{})
	default:
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) handleSingular(w http.ResponseWriter, r *http.Request, name string) {
	switch r.Method {
	case http.MethodGet:
		obj, err := h.db.Singular(name)
		if err != nil {
			h.writeStorageError(w, err)
			return
		}
		h.writeJSON(w, http.StatusOK, obj)
	case http.MethodPut, http.MethodPatch, http.MethodPost:
		body, ok := h.decodeRecord(w, r)
		if !ok {
			return
		}
		var obj storage.Record
		var err error
		if r.Method == http.MethodPatch {
			obj, err = h.db.PatchSingular(name, body)
		} else {
			obj, err = h.db.SetSingular(name, body)
		}
		if err != nil {
			h.writeStorageError(w, err)
			return
		}
		h.writeJSON(w, http.StatusOK, obj)
	default:
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) decodeRecord(w http.ResponseWriter, r *http.Request) (storage.Record, bool) {
	var rec storage.Record
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&rec); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}
	if rec == nil {
		rec = storage.Record{}
	}
	return rec, true
}

func (h *Handler) writeStorageError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		h.writeNotFound(w)
	case errors.Is(err, storage.ErrWrongKind):
		h.writeNotFound(w)
	default:
		h.writeError(w, err.Error(), http.StatusInternalServerError)
	}
}

func parseQuery(r *http.Request) (storage.Query, error) {
	values := r.URL.Query()
	q := storage.Query{
		Filters: map[string]string{},
		Sort:    values.Get(paramSort),
		Order:   values.Get(paramOrder),
	}

	for key, dst := range map[string]*int{paramPage: &q.Page, paramLimit: &q.Limit} {
		raw := values.Get(key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return q, errors.New("invalid " + key + " parameter")
		}
		*dst = n
	}

	for key, vals := range values {
		if strings.HasPrefix(key, "_") || len(vals) == 0 {
			continue
		}
		q.Filters[key] = vals[0]
	}
	return q, nil
}
