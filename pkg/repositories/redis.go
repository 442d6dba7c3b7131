package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cbodonnell/playerdata/pkg/game/types"
	"github.com/cbodonnell/playerdata/pkg/savefile"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "playerdata"

func saveKey(slot string) string {
	return fmt.Sprintf("%s:save:%s", redisKeyPrefix, slot)
}

type RedisRepository struct {
	client *redis.Client
}

// NewRedisRepository parses a redis:// URL and verifies the connection.
func NewRedisRepository(ctx context.Context, url string) (*RedisRepository, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return NewRedisRepositoryWithClient(client), nil
}

// NewRedisRepositoryWithClient wraps an existing client.
func NewRedisRepositoryWithClient(client *redis.Client) *RedisRepository {
	return &RedisRepository{
		client: client,
	}
}

var _ Repository = (*RedisRepository)(nil)

func (r *RedisRepository) Close(ctx context.Context) error {
	return r.client.Close()
}

func (r *RedisRepository) SavePlayerData(ctx context.Context, slot string, playerData *types.PlayerData) error {
	b, err := savefile.Encode(playerData)
	if err != nil {
		return fmt.Errorf("failed to encode player data: %w", err)
	}

	if err := r.client.Set(ctx, saveKey(slot), b, 0).Err(); err != nil {
		return fmt.Errorf("failed to save player data: %w", err)
	}
	return nil
}

func (r *RedisRepository) LoadPlayerData(ctx context.Context, slot string) (*types.PlayerData, error) {
	b, err := r.client.Get(ctx, saveKey(slot)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, &ErrNotFound{Slot: slot}
		}
		return nil, fmt.Errorf("failed to get player data: %w", err)
	}

	return savefile.Decode(b)
}

func (r *RedisRepository) DeletePlayerData(ctx context.Context, slot string) error {
	return r.client.Del(ctx, saveKey(slot)).Err()
}
