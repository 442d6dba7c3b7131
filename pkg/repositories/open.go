package repositories

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

type Backend string

const (
	BackendFile     Backend = "file"
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
	BackendRedis    Backend = "redis"
	BackendMemory   Backend = "memory"
)

type OpenOptions struct {
	Backend     Backend
	DataDir     string
	DatabaseURL string
	RedisURL    string
}

// Open creates the repository selected by opts.Backend.
func Open(ctx context.Context, opts OpenOptions) (Repository, error) {
	switch opts.Backend {
	case BackendFile, "":
		r, err := NewFileRepository(opts.DataDir)
		if err != nil {
			return nil, err
		}
		return r, nil
	case BackendSQLite:
		if err := os.MkdirAll(opts.DataDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		r, err := NewSQLiteRepository(ctx, filepath.Join(opts.DataDir, "player.db"))
		if err != nil {
			return nil, err
		}
		return r, nil
	case BackendPostgres:
		if opts.DatabaseURL == "" {
			return nil, fmt.Errorf("postgres backend requires a database url")
		}
		r, err := NewPostgresRepository(ctx, opts.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return r, nil
	case BackendRedis:
		if opts.RedisURL == "" {
			return nil, fmt.Errorf("redis backend requires a redis url")
		}
		r, err := NewRedisRepository(ctx, opts.RedisURL)
		if err != nil {
			return nil, err
		}
		return r, nil
	case BackendMemory:
		return NewInMemoryRepository(), nil
	default:
		return nil, fmt.Errorf("unknown save backend: %s", opts.Backend)
	}
}
