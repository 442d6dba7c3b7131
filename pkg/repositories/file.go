package repositories

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cbodonnell/playerdata/pkg/game/constants"
	"github.com/cbodonnell/playerdata/pkg/game/types"
	"github.com/cbodonnell/playerdata/pkg/savefile"
)

// FileRepository keeps one save file per slot inside a data directory.
// The default slot maps to <dir>/player.data.
type FileRepository struct {
	dir string
}

// NewFileRepository creates the data directory if needed.
func NewFileRepository(dir string) (*FileRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileRepository{
		dir: dir,
	}, nil
}

var _ Repository = (*FileRepository)(nil)

// Path returns the save file path for a slot.
func (r *FileRepository) Path(slot string) string {
	if slot == "" || slot == constants.DefaultSaveSlot {
		return filepath.Join(r.dir, constants.SaveFileName)
	}
	return filepath.Join(r.dir, fmt.Sprintf("player-%s.data", slot))
}

func (r *FileRepository) Close(ctx context.Context) error {
	return nil
}

// SavePlayerData replaces the slot's file. The save is written to a temporary
// file in the same directory and renamed over the old one, so readers never
// see a partial file.
func (r *FileRepository) SavePlayerData(ctx context.Context, slot string, playerData *types.PlayerData) error {
	b, err := savefile.Encode(playerData)
	if err != nil {
		return fmt.Errorf("failed to encode player data: %w", err)
	}

	tmp, err := os.CreateTemp(r.dir, ".player-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary save file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write save file: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set save file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close save file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.Path(slot)); err != nil {
		return fmt.Errorf("failed to replace save file: %w", err)
	}

	return nil
}

func (r *FileRepository) LoadPlayerData(ctx context.Context, slot string) (*types.PlayerData, error) {
	b, err := os.ReadFile(r.Path(slot))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ErrNotFound{Slot: slot}
		}
		return nil, fmt.Errorf("failed to read save file: %w", err)
	}

	playerData, err := savefile.Decode(b)
	if err != nil {
		return nil, fmt.Errorf("failed to decode save file %s: %w", r.Path(slot), err)
	}

	return playerData, nil
}

func (r *FileRepository) DeletePlayerData(ctx context.Context, slot string) error {
	if err := os.Remove(r.Path(slot)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove save file: %w", err)
	}
	return nil
}
