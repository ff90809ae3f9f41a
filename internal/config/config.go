package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration
type Config struct {
	// Mock server
	Port          int           `env:"PORT" envDefault:"3000"`
	DBPath        string        `env:"DB_PATH" envDefault:"db.json"`
	GenerateDelay time.Duration `env:"GENERATE_DELAY" envDefault:"1500ms"`

	// Standalone function
	Function FunctionConfig

	// Terminal client
	GenerateEndpoint string        `env:"GENERATE_ENDPOINT" envDefault:"http://localhost:3000/generate-image"`
	ClientTimeout    time.Duration `env:"CLIENT_TIMEOUT" envDefault:"30s"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	// Seed fixes the stock image selection; 0 seeds from the clock.
	Seed uint64 `env:"SEED" envDefault:"0"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// FunctionConfig holds the standalone function settings
type FunctionConfig struct {
	Port            int           `env:"FUNCTION_PORT" envDefault:"54321"`
	Delay           time.Duration `env:"FUNCTION_DELAY" envDefault:"2s"`
	SupabaseURL     string        `env:"SUPABASE_URL"`
	SupabaseAnonKey string        `env:"SUPABASE_ANON_KEY"`
}

// HasSupabase reports whether both Supabase settings are present.
func (f FunctionConfig) HasSupabase() bool {
	return f.SupabaseURL != "" && f.SupabaseAnonKey != ""
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Port <= 0 || cfg.Function.Port <= 0 {
		return nil, fmt.Errorf("invalid port configuration: PORT=%d FUNCTION_PORT=%d", cfg.Port, cfg.Function.Port)
	}
	if cfg.GenerateDelay < 0 || cfg.Function.Delay < 0 {
		return nil, fmt.Errorf("generation delays must not be negative")
	}
	return &cfg, nil
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
