package storage

import (
	"context"
	"time"

	"github.com/Vodeneev/autobet/internal/pkg/models"
)

// PickStorage persists published selections for history and later review.
type PickStorage interface {
	SaveSelection(ctx context.Context, sel models.Selection) error
	Close() error
}

// SnapshotCache caches raw daily snapshots so a re-run within the same day
// reuses the fetched data instead of hitting the sports API again.
type SnapshotCache interface {
	StoreSnapshot(ctx context.Context, snap *models.DailySnapshot, ttl time.Duration) error
	// GetSnapshot returns (nil, nil) on a cache miss.
	GetSnapshot(ctx context.Context, date string) (*models.DailySnapshot, error)
	Close() error
}
