package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/cbodonnell/playerdata/pkg/game/constants"
	"github.com/cbodonnell/playerdata/pkg/repositories"
)

// Config holds the runtime settings shared by the game client and the save tool.
type Config struct {
	// DataDir is the persistent data directory holding player.data.
	DataDir string `env:"PLAYERDATA_DIR"`
	// Backend selects where saves are kept: file, sqlite, postgres, redis or memory.
	Backend string `env:"PLAYERDATA_BACKEND" envDefault:"file"`
	// Slot is the save slot used by every backend.
	Slot string `env:"PLAYERDATA_SLOT" envDefault:"default"`
	// DatabaseURL is the postgres connection string.
	DatabaseURL string `env:"DATABASE_URL"`
	// RedisURL is the redis connection URL.
	RedisURL string `env:"REDIS_URL" envDefault:"redis://localhost:6379"`
	// ResourcesDir overrides the embedded prefabs with a directory on disk.
	ResourcesDir string `env:"PLAYERDATA_RESOURCES_DIR"`
	// AutosaveInterval is the autosave period; zero disables autosave.
	AutosaveInterval time.Duration `env:"AUTOSAVE_INTERVAL" envDefault:"30s"`
	// LogLevel is one of error, warn, info, debug, trace.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment into a Config and fills in the data directory.
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir()
	}
	if cfg.Slot == "" {
		cfg.Slot = constants.DefaultSaveSlot
	}
	return &cfg, nil
}

// DefaultDataDir is the platform's per-user config directory, or a local
// directory when that cannot be determined.
func DefaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".playerdata"
	}
	return filepath.Join(dir, "playerdata")
}

// RepositoryOptions maps the config onto repositories.OpenOptions.
func (c *Config) RepositoryOptions() repositories.OpenOptions {
	return repositories.OpenOptions{
		Backend:     repositories.Backend(c.Backend),
		DataDir:     c.DataDir,
		DatabaseURL: c.DatabaseURL,
		RedisURL:    c.RedisURL,
	}
}
