package repositories

import (
	"context"

	"github.com/cbodonnell/playerdata/pkg/game/types"
)

// Repository persists player profiles by save slot.
// LoadPlayerData returns *ErrNotFound when the slot holds no save.
type Repository interface {
	Close(ctx context.Context) error
	SavePlayerData(ctx context.Context, slot string, playerData *types.PlayerData) error
	LoadPlayerData(ctx context.Context, slot string) (*types.PlayerData, error)
	DeletePlayerData(ctx context.Context, slot string) error
}
