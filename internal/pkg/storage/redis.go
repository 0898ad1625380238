package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Vodeneev/autobet/internal/pkg/config"
	"github.com/Vodeneev/autobet/internal/pkg/models"
)

// Ensure RedisSnapshotCache implements SnapshotCache
var _ SnapshotCache = (*RedisSnapshotCache)(nil)

// RedisSnapshotCache кэширует сырые дневные снапшоты в Redis
type RedisSnapshotCache struct {
	client *redis.Client
}

// NewRedisSnapshotCache creates a Redis-backed snapshot cache
func NewRedisSnapshotCache(cfg *config.RedisConfig) (*RedisSnapshotCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Check connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisSnapshotCache{client: client}, nil
}

func snapshotKey(date string) string {
	return fmt.Sprintf("snapshot:%s", date)
}

// StoreSnapshot stores the raw snapshot under its date with a TTL
func (r *RedisSnapshotCache) StoreSnapshot(ctx context.Context, snap *models.DailySnapshot, ttl time.Duration) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return r.client.Set(ctx, snapshotKey(snap.Date), data, ttl).Err()
}

// GetSnapshot loads the cached snapshot for a date, (nil, nil) on miss
func (r *RedisSnapshotCache) GetSnapshot(ctx context.Context, date string) (*models.DailySnapshot, error) {
	data, err := r.client.Get(ctx, snapshotKey(date)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	var snap models.DailySnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &snap, nil
}

// Close closes the Redis connection
func (r *RedisSnapshotCache) Close() error {
	return r.client.Close()
}
