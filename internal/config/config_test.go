package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "db.json", cfg.DBPath)
	assert.Equal(t, 1500*time.Millisecond, cfg.GenerateDelay)
	assert.Equal(t, 54321, cfg.Function.Port)
	assert.Equal(t, 2*time.Second, cfg.Function.Delay)
	assert.Equal(t, "http://localhost:3000/generate-image", cfg.GenerateEndpoint)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Zero(t, cfg.Seed)
	assert.False(t, cfg.Function.HasSupabase())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_PATH", "/tmp/site.json")
	t.Setenv("GENERATE_DELAY", "10ms")
	t.Setenv("FUNCTION_DELAY", "0s")
	t.Setenv("SEED", "7")
	t.Setenv("SUPABASE_URL", "http://localhost:54321")
	t.Setenv("SUPABASE_ANON_KEY", "anon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/tmp/site.json", cfg.DBPath)
	assert.Equal(t, 10*time.Millisecond, cfg.GenerateDelay)
	assert.Zero(t, cfg.Function.Delay)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.True(t, cfg.Function.HasSupabase())
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"non numeric port", "PORT", "abc"},
		{"zero port", "FUNCTION_PORT", "0"},
		{"bad duration", "GENERATE_DELAY", "soon"},
		{"negative delay", "FUNCTION_DELAY", "-1s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}
