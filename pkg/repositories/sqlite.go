package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cbodonnell/playerdata/pkg/game/types"
	"github.com/cbodonnell/playerdata/pkg/savefile"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens the database at path and applies the embedded migrations.
func NewSQLiteRepository(ctx context.Context, path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	migrations, err := readMigrations("sqlite")
	if err != nil {
		db.Close()
		return nil, err
	}

	for i, migration := range migrations {
		if _, err := db.ExecContext(ctx, migration); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute migration %d: %v", i, err)
		}
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

var _ Repository = (*SQLiteRepository)(nil)

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) SavePlayerData(ctx context.Context, slot string, playerData *types.PlayerData) error {
	b, err := savefile.Encode(playerData)
	if err != nil {
		return fmt.Errorf("failed to encode player data: %w", err)
	}

	q := `
	INSERT OR REPLACE INTO player_saves (slot, profile_id, format_version, data, updated_at)
	VALUES (?, ?, ?, ?, ?);
	`
	_, err = r.db.ExecContext(ctx, q, slot, playerData.ID.String(), savefile.FormatVersion, b, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to save player data: %w", err)
	}

	return nil
}

func (r *SQLiteRepository) LoadPlayerData(ctx context.Context, slot string) (*types.PlayerData, error) {
	q := `
	SELECT data FROM player_saves WHERE slot = ?;
	`
	var b []byte
	if err := r.db.QueryRowContext(ctx, q, slot).Scan(&b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &ErrNotFound{Slot: slot}
		}
		return nil, fmt.Errorf("failed to scan player data: %w", err)
	}

	return savefile.Decode(b)
}

func (r *SQLiteRepository) DeletePlayerData(ctx context.Context, slot string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM player_saves WHERE slot = ?;`, slot); err != nil {
		return fmt.Errorf("failed to delete player data: %w", err)
	}
	return nil
}
