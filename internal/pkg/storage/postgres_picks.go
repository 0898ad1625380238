package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"

	"github.com/Vodeneev/autobet/internal/pkg/config"
	"github.com/Vodeneev/autobet/internal/pkg/models"
)

// Ensure PostgresPickStorage implements PickStorage
var _ PickStorage = (*PostgresPickStorage)(nil)

// PostgresPickStorage stores published daily picks in PostgreSQL
type PostgresPickStorage struct {
	db *sql.DB
}

// NewPostgresPickStorage creates a new PostgreSQL storage for daily picks
func NewPostgresPickStorage(cfg *config.PostgresConfig) (*PostgresPickStorage, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("postgres DSN is required")
	}

	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	storage := &PostgresPickStorage{db: db}

	if err := storage.initSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	slog.Info("PostgreSQL pick storage initialized")
	return storage, nil
}

func (s *PostgresPickStorage) initSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS daily_picks (
		id SERIAL PRIMARY KEY,
		pick_date VARCHAR(10) NOT NULL,
		rank INTEGER NOT NULL,
		sport VARCHAR(50) NOT NULL,
		market VARCHAR(20) NOT NULL,
		pick VARCHAR(20) NOT NULL,
		event VARCHAR(500) NOT NULL,
		league VARCHAR(200) NOT NULL,
		start_time TIMESTAMP NULL,
		odds DECIMAL(10, 4) NOT NULL,
		probability DECIMAL(6, 4) NOT NULL,
		confidence DECIMAL(6, 4) NOT NULL,
		rationale VARCHAR(500) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		UNIQUE(pick_date, rank)
	);

	CREATE INDEX IF NOT EXISTS idx_daily_picks_date ON daily_picks(pick_date);
	CREATE INDEX IF NOT EXISTS idx_daily_picks_sport ON daily_picks(sport);
	`

	_, err := s.db.ExecContext(ctx, query)
	return err
}

// SaveSelection upserts the picks of one day, ranked from 1.
func (s *PostgresPickStorage) SaveSelection(ctx context.Context, sel models.Selection) error {
	query := `
	INSERT INTO daily_picks
		(pick_date, rank, sport, market, pick, event, league, start_time, odds, probability, confidence, rationale)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	ON CONFLICT (pick_date, rank) DO UPDATE SET
		sport = EXCLUDED.sport,
		market = EXCLUDED.market,
		pick = EXCLUDED.pick,
		event = EXCLUDED.event,
		league = EXCLUDED.league,
		start_time = EXCLUDED.start_time,
		odds = EXCLUDED.odds,
		probability = EXCLUDED.probability,
		confidence = EXCLUDED.confidence,
		rationale = EXCLUDED.rationale
	`

	for i, p := range sel.Picks {
		var startTime sql.NullTime
		if !p.StartTime.IsZero() {
			startTime = sql.NullTime{Time: p.StartTime, Valid: true}
		}
		_, err := s.db.ExecContext(ctx, query,
			sel.Date, i+1, p.Sport.String(), p.Market, p.Pick,
			p.Event, p.League, startTime,
			p.Odds, p.Probability, p.Confidence, p.Rationale)
		if err != nil {
			return fmt.Errorf("failed to save pick %d for %s: %w", i+1, sel.Date, err)
		}
	}

	return nil
}

// Close closes the underlying connection pool
func (s *PostgresPickStorage) Close() error {
	return s.db.Close()
}
