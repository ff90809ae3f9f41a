package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `{
  "gallery": [
    {"id": 1, "title": "Castle", "style": "ghibli", "likes": 12},
    {"id": 2, "title": "Forest", "style": "ghibli", "likes": 30},
    {"id": "3", "title": "Harbor", "style": "watercolor", "likes": 5}
  ],
  "profile": {"name": "Juson", "email": "shoppy.2048@gmail.com"}
}`

func openFixture(t *testing.T) *DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0644))
	db, err := Open(path)
	require.NoError(t, err)
	return db
}

func reload(t *testing.T, db *DB) *DB {
	t.Helper()
	again, err := Open(db.Path())
	require.NoError(t, err)
	return again
}

func TestOpenCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	db, err := Open(path)
	require.NoError(t, err)
	assert.Empty(t, db.Snapshot())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(raw))
}

func TestOpenRejectsInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	_, err := Open(path)
	assert.Error(t, err)
}

func TestKind(t *testing.T) {
	db := openFixture(t)

	k, ok := db.Kind("gallery")
	assert.True(t, ok)
	assert.Equal(t, Collection, k)

	k, ok = db.Kind("profile")
	assert.True(t, ok)
	assert.Equal(t, Singular, k)

	_, ok = db.Kind("missing")
	assert.False(t, ok)
}

func TestList(t *testing.T) {
	db := openFixture(t)

	tests := []struct {
		name      string
		query     Query
		wantIDs   []string
		wantTotal int
	}{
		{"all", Query{}, []string{"1", "2", "3"}, 3},
		{"filter", Query{Filters: map[string]string{"style": "ghibli"}}, []string{"1", "2"}, 2},
		{"filter numeric", Query{Filters: map[string]string{"likes": "30"}}, []string{"2"}, 1},
		{"sort asc", Query{Sort: "likes"}, []string{"3", "1", "2"}, 3},
		{"sort desc", Query{Sort: "likes", Order: "desc"}, []string{"2", "1", "3"}, 3},
		{"sort by string", Query{Sort: "title"}, []string{"1", "2", "3"}, 3},
		{"limit", Query{Limit: 2}, []string{"1", "2"}, 3},
		{"page", Query{Page: 2, Limit: 2}, []string{"3"}, 3},
		{"page past end", Query{Page: 5, Limit: 2}, []string{}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total, err := db.List("gallery", tt.query)
			require.NoError(t, err)
			ids := make([]string, 0, len(got))
			for _, rec := range got {
				ids = append(ids, idString(rec["id"]))
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, tt.wantTotal, total)
		})
	}

	_, _, err := db.List("missing", Query{})
	assert.ErrorIs(t, err, ErrNotFound)
	_, _, err = db.List("profile", Query{})
	assert.ErrorIs(t, err, ErrWrongKind)
}

func TestGetMatchesIDByStringForm(t *testing.T) {
	db := openFixture(t)

	rec, err := db.Get("gallery", "1")
	require.NoError(t, err)
	assert.Equal(t, "Castle", rec["title"])

	rec, err = db.Get("gallery", "3")
	require.NoError(t, err)
	assert.Equal(t, "Harbor", rec["title"])

	_, err = db.Get("gallery", "42")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetReturnsCopy(t *testing.T) {
	db := openFixture(t)
	rec, err := db.Get("gallery", "1")
	require.NoError(t, err)
	rec["title"] = "changed"

	again, err := db.Get("gallery", "1")
	require.NoError(t, err)
	assert.Equal(t, "Castle", again["title"])
}

func TestInsert(t *testing.T) {
	db := openFixture(t)

	rec, err := db.Insert("gallery", Record{"title": "Meadow"})
	require.NoError(t, err)
	id, ok := rec["id"].(string)
	require.True(t, ok)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)

	kept, err := db.Insert("gallery", Record{"id": "custom", "title": "Sky"})
	require.NoError(t, err)
	assert.Equal(t, "custom", kept["id"])

	persisted := reload(t, db)
	_, total, err := persisted.List("gallery", Query{})
	require.NoError(t, err)
	assert.Equal(t, 5, total)

	_, err = db.Insert("profile", Record{"x": 1})
	assert.ErrorIs(t, err, ErrWrongKind)
}

func TestReplaceKeepsID(t *testing.T) {
	db := openFixture(t)

	rec, err := db.Replace("gallery", "2", Record{"id": "other", "title": "Valley"})
	require.NoError(t, err)
	assert.Equal(t, "Valley", rec["title"])
	assert.Equal(t, "2", idString(rec["id"]))
	assert.NotContains(t, rec, "likes")

	_, err = db.Replace("gallery", "99", Record{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPatchMerges(t *testing.T) {
	db := openFixture(t)

	rec, err := db.Patch("gallery", "1", Record{"likes": 13})
	require.NoError(t, err)
	assert.Equal(t, "Castle", rec["title"])

	persisted := reload(t, db)
	got, err := persisted.Get("gallery", "1")
	require.NoError(t, err)
	assert.Equal(t, json.Number("13"), got["likes"])
}

func TestDelete(t *testing.T) {
	db := openFixture(t)

	require.NoError(t, db.Delete("gallery", "2"))
	_, err := db.Get("gallery", "2")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, db.Delete("gallery", "2"), ErrNotFound)

	_, total, err := reload(t, db).List("gallery", Query{})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestSingular(t *testing.T) {
	db := openFixture(t)

	obj, err := db.Singular("profile")
	require.NoError(t, err)
	assert.Equal(t, "Juson", obj["name"])

	obj, err = db.PatchSingular("profile", Record{"name": "J"})
	require.NoError(t, err)
	assert.Equal(t, "J", obj["name"])
	assert.Equal(t, "shoppy.2048@gmail.com", obj["email"])

	obj, err = db.SetSingular("profile", Record{"name": "only"})
	require.NoError(t, err)
	assert.Equal(t, Record{"name": "only"}, obj)

	_, err = db.Singular("gallery")
	assert.ErrorIs(t, err, ErrWrongKind)
	_, err = db.Singular("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPersistLeavesNoTempFiles(t *testing.T) {
	db := openFixture(t)
	_, err := db.Insert("gallery", Record{"title": "x"})
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Dir(db.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
