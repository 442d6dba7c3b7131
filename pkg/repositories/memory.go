package repositories

import (
	"context"
	"fmt"
	"sync"

	"github.com/cbodonnell/playerdata/pkg/game/types"
	"github.com/cbodonnell/playerdata/pkg/savefile"
)

// InMemoryRepository keeps encoded saves in a map.
type InMemoryRepository struct {
	lock  sync.RWMutex
	saves map[string][]byte
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		saves: make(map[string][]byte),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

func (r *InMemoryRepository) Close(ctx context.Context) error {
	return nil
}

func (r *InMemoryRepository) SavePlayerData(ctx context.Context, slot string, playerData *types.PlayerData) error {
	b, err := savefile.Encode(playerData)
	if err != nil {
		return fmt.Errorf("failed to encode player data: %w", err)
	}

	r.lock.Lock()
	defer r.lock.Unlock()
	r.saves[slot] = b
	return nil
}

func (r *InMemoryRepository) LoadPlayerData(ctx context.Context, slot string) (*types.PlayerData, error) {
	r.lock.RLock()
	b, ok := r.saves[slot]
	r.lock.RUnlock()
	if !ok {
		return nil, &ErrNotFound{Slot: slot}
	}

	return savefile.Decode(b)
}

func (r *InMemoryRepository) DeletePlayerData(ctx context.Context, slot string) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	delete(r.saves, slot)
	return nil
}
