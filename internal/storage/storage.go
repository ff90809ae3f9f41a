package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned for an unknown resource or id.
	ErrNotFound = errors.New("not found")
	// ErrWrongKind is returned when a collection operation targets a singular
	// resource or the other way around.
	ErrWrongKind = errors.New("resource kind mismatch")
)

// Record is one object of a collection.
type Record = map[string]any

type Kind int

const (
	Collection Kind = iota + 1
	Singular
)

// DefaultPageSize applies when _page is given without _limit.
const DefaultPageSize = 10

// Query narrows a collection listing.
type Query struct {
	Filters map[string]string
	Sort    string
	Order   string
	Page    int
	Limit   int
}

// DB is a JSON document of named resources persisted to a single file.
// Arrays are collections of records keyed by "id"; objects are singular resources.
type DB struct {
	path string
	mu   sync.RWMutex
	data map[string]any
}

// Open loads the database at path, creating an empty one when the file is missing.
func Open(path string) (*DB, error) {
	db := &DB{path: path, data: map[string]any{}}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if err := db.persist(); err != nil {
			return nil, err
		}
		return db, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read database: %w", err)
	}

	if len(bytes.TrimSpace(raw)) > 0 {
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		if err := dec.Decode(&db.data); err != nil {
			return nil, fmt.Errorf("failed to parse database %s: %w", path, err)
		}
	}
	return db, nil
}

// Path returns the backing file.
func (db *DB) Path() string {
	return db.path
}

// Snapshot returns a deep copy of the whole database.
func (db *DB) Snapshot() map[string]any {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return clone(db.data).(map[string]any)
}

// Kind reports whether name is a collection or a singular resource.
func (db *DB) Kind(name string) (Kind, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	switch db.data[name].(type) {
	case []any:
		return Collection, true
	case map[string]any:
		return Singular, true
	default:
		return 0, false
	}
}

func (db *DB) collection(name string) ([]any, error) {
	v, ok := db.data[name]
	if !ok {
		return nil, ErrNotFound
	}
	items, ok := v.([]any)
	if !ok {
		return nil, ErrWrongKind
	}
	return items, nil
}

func (db *DB) find(name, id string) ([]any, int, error) {
	items, err := db.collection(name)
	if err != nil {
		return nil, -1, err
	}
	for i, item := range items {
		if rec, ok := item.(map[string]any); ok && idString(rec["id"]) == id {
			return items, i, nil
		}
	}
	return items, -1, ErrNotFound
}

// List returns the records of a collection matching q, and the number of
// matches before pagination.
func (db *DB) List(name string, q Query) ([]Record, int, error) {
	db.mu.RLock()
	items, err := db.collection(name)
	if err != nil {
		db.mu.RUnlock()
		return nil, 0, err
	}
	out := make([]Record, 0, len(items))
	for _, item := range items {
		rec, ok := item.(map[string]any)
		if !ok || !matches(rec, q.Filters) {
			continue
		}
		out = append(out, clone(rec).(map[string]any))
	}
	db.mu.RUnlock()

	if q.Sort != "" {
		desc := strings.EqualFold(q.Order, "desc")
		sort.SliceStable(out, func(i, j int) bool {
			c := compare(out[i][q.Sort], out[j][q.Sort])
			if desc {
				return c > 0
			}
			return c < 0
		})
	}

	total := len(out)
	return paginate(out, q.Page, q.Limit), total, nil
}

func (db *DB) Get(name, id string) (Record, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	items, i, err := db.find(name, id)
	if err != nil {
		return nil, err
	}
	return clone(items[i]).(map[string]any), nil
}

// Insert appends rec to a collection, assigning a UUID when it has no id.
func (db *DB) Insert(name string, rec Record) (Record, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	items, err := db.collection(name)
	if err != nil {
		return nil, err
	}

	rec = clone(rec).(map[string]any)
	if id, ok := rec["id"]; !ok || idString(id) == "" {
		rec["id"] = uuid.NewString()
	}
	db.data[name] = append(items, rec)
	if err := db.persist(); err != nil {
		db.data[name] = items
		return nil, err
	}
	return clone(rec).(map[string]any), nil
}

// Replace swaps the record with the given id. The stored id is kept.
func (db *DB) Replace(name, id string, rec Record) (Record, error) {
	return db.update(name, id, func(old map[string]any) map[string]any {
		next := clone(rec).(map[string]any)
		next["id"] = old["id"]
		return next
	})
}

// Patch merges fields into the record with the given id.
func (db *DB) Patch(name, id string, fields Record) (Record, error) {
	return db.update(name, id, func(old map[string]any) map[string]any {
		next := clone(old).(map[string]any)
		for k, v := range fields {
			if k == "id" {
				continue
			}
			next[k] = clone(v)
		}
		return next
	})
}

func (db *DB) update(name, id string, fn func(map[string]any) map[string]any) (Record, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	items, i, err := db.find(name, id)
	if err != nil {
		return nil, err
	}

	prev := items[i]
	next := fn(prev.(map[string]any))
	items[i] = next
	if err := db.persist(); err != nil {
		items[i] = prev
		return nil, err
	}
	return clone(next).(map[string]any), nil
}

func (db *DB) Delete(name, id string) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	items, i, err := db.find(name, id)
	if err != nil {
		return err
	}

	next := make([]any, 0, len(items)-1)
	next = append(next, items[:i]...)
	next = append(next, items[i+1:]...)
	db.data[name] = next
	if err := db.persist(); err != nil {
		db.data[name] = items
		return err
	}
	return nil
}

func (db *DB) singular(name string) (map[string]any, error) {
	v, ok := db.data[name]
	if !ok {
		return nil, ErrNotFound
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, ErrWrongKind
	}
	return obj, nil
}

func (db *DB) Singular(name string) (Record, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	obj, err := db.singular(name)
	if err != nil {
		return nil, err
	}
	return clone(obj).(map[string]any), nil
}

func (db *DB) SetSingular(name string, obj Record) (Record, error) {
	return db.updateSingular(name, func(map[string]any) map[string]any {
		return clone(obj).(map[string]any)
	})
}

func (db *DB) PatchSingular(name string, fields Record) (Record, error) {
	return db.updateSingular(name, func(old map[string]any) map[string]any {
		next := clone(old).(map[string]any)
		for k, v := range fields {
			next[k] = clone(v)
		}
		return next
	})
}

func (db *DB) updateSingular(name string, fn func(map[string]any) map[string]any) (Record, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	prev, err := db.singular(name)
	if err != nil {
		return nil, err
	}

	next := fn(prev)
	db.data[name] = next
	if err := db.persist(); err != nil {
		db.data[name] = prev
		return nil, err
	}
	return clone(next).(map[string]any), nil
}

// persist writes the database to a temp file next to path and renames it
// into place. Callers hold the write lock.
func (db *DB) persist() error {
	raw, err := json.MarshalIndent(db.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode database: %w", err)
	}

	dir := filepath.Dir(db.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(db.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(raw, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write database: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), db.path); err != nil {
		return fmt.Errorf("failed to replace database: %w", err)
	}
	return nil
}

func matches(rec map[string]any, filters map[string]string) bool {
	for k, want := range filters {
		if idString(rec[k]) != want {
			return false
		}
	}
	return true
}

func paginate(items []Record, page, limit int) []Record {
	if page > 0 {
		if limit <= 0 {
			limit = DefaultPageSize
		}
		start := (page - 1) * limit
		if start >= len(items) {
			return []Record{}
		}
		end := min(start+limit, len(items))
		return items[start:end]
	}
	if limit > 0 && limit < len(items) {
		return items[:limit]
	}
	return items
}

// idString renders a scalar the way it appears in a URL.
func idString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

func compare(a, b any) int {
	af, aok := number(a)
	bf, bok := number(b)
	if aok && bok {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(idString(a), idString(b))
}

func number(v any) (float64, bool) {
	switch t := v.(type) {
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case float64:
		return t, true
	case int:
		return float64(t), true
	default:
		return 0, false
	}
}

func clone(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = clone(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = clone(val)
		}
		return out
	default:
		return v
	}
}
