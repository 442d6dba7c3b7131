package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cbodonnell/playerdata/pkg/game/types"
	"github.com/cbodonnell/playerdata/pkg/log"
	"github.com/cbodonnell/playerdata/pkg/savefile"
	"github.com/jackc/pgx/v5"
)

type PostgresRepository struct {
	conn *pgx.Conn
}

// NewPostgresRepository connects to the database and applies the embedded migrations.
// The caller is responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, connStr string) (*PostgresRepository, error) {
	conn, err := connectDb(ctx, connStr)
	if err != nil {
		return nil, err
	}

	migrations, err := readMigrations("postgres")
	if err != nil {
		conn.Close(ctx)
		return nil, err
	}

	for i, migration := range migrations {
		if _, err := conn.Exec(ctx, migration); err != nil {
			conn.Close(ctx)
			return nil, fmt.Errorf("failed to execute migration %d: %v", i, err)
		}
	}

	return &PostgresRepository{
		conn: conn,
	}, nil
}

func connectDb(ctx context.Context, connStr string) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %v", err)
	}

	var username string
	var database string
	err = conn.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database)
	if err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("unable to query database: %v", err)
	}

	log.Info("Connected to %s as %s", database, username)

	return conn, nil
}

var _ Repository = (*PostgresRepository)(nil)

func (r *PostgresRepository) Close(ctx context.Context) error {
	return r.conn.Close(ctx)
}

func (r *PostgresRepository) SavePlayerData(ctx context.Context, slot string, playerData *types.PlayerData) error {
	b, err := savefile.Encode(playerData)
	if err != nil {
		return fmt.Errorf("failed to encode player data: %w", err)
	}

	q := `
	INSERT INTO player_saves (slot, profile_id, format_version, data, created_at) VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (slot) DO UPDATE SET profile_id = $2, format_version = $3, data = $4, updated_at = $5;
	`
	_, err = r.conn.Exec(ctx, q, slot, playerData.ID.String(), int16(savefile.FormatVersion), b, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to save player data: %w", err)
	}

	return nil
}

func (r *PostgresRepository) LoadPlayerData(ctx context.Context, slot string) (*types.PlayerData, error) {
	q := `
	SELECT data FROM player_saves WHERE slot = $1;
	`
	var b []byte
	if err := r.conn.QueryRow(ctx, q, slot).Scan(&b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &ErrNotFound{Slot: slot}
		}
		return nil, fmt.Errorf("failed to scan player data: %w", err)
	}

	return savefile.Decode(b)
}

func (r *PostgresRepository) DeletePlayerData(ctx context.Context, slot string) error {
	if _, err := r.conn.Exec(ctx, `DELETE FROM player_saves WHERE slot = $1;`, slot); err != nil {
		return fmt.Errorf("failed to delete player data: %w", err)
	}
	return nil
}
