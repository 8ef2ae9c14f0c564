package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/billyhines/kalshi-liquidity/internal/config"
	"github.com/billyhines/kalshi-liquidity/internal/model"
)

// Store persists games and snapshots in PostgreSQL.
type Store struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// Open connects to the database, verifies the connection, and ensures
// the schema exists.
func Open(ctx context.Context, cfg config.DBConfig, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	poolCfg, err := pgxpool.ParseConfig(BuildConnString(cfg))
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}
	poolCfg.MinConns = int32(cfg.MinConns)
	poolCfg.MaxConns = int32(cfg.MaxConns)

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &Store{pool: pool, logger: logger}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return s, nil
}

func (s *Store) ensureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS games (
			event_ticker TEXT PRIMARY KEY,
			home_team    TEXT NOT NULL,
			away_team    TEXT NOT NULL,
			game_time    TIMESTAMPTZ NOT NULL,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS markets (
			ticker       TEXT PRIMARY KEY,
			event_ticker TEXT NOT NULL REFERENCES games(event_ticker),
			team         TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS snapshots (
			id              UUID PRIMARY KEY,
			ticker          TEXT NOT NULL REFERENCES markets(ticker),
			ts              TIMESTAMPTZ NOT NULL,
			best_bid        INT,
			best_ask        INT,
			mid             DOUBLE PRECISION,
			spread          INT,
			total_bid_depth BIGINT NOT NULL,
			total_ask_depth BIGINT NOT NULL,
			open_interest   BIGINT
		)`,
		`CREATE TABLE IF NOT EXISTS depth_levels (
			snapshot_id UUID NOT NULL REFERENCES snapshots(id),
			side        TEXT NOT NULL,
			price       INT NOT NULL,
			quantity    BIGINT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_ticker_ts ON snapshots(ticker, ts)`,
		`CREATE INDEX IF NOT EXISTS idx_depth_snapshot ON depth_levels(snapshot_id)`,
	}

	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// EnsureGame upserts the game and its tracked market.
func (s *Store) EnsureGame(ctx context.Context, g model.Game) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO games (event_ticker, home_team, away_team, game_time)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (event_ticker) DO NOTHING
	`, g.EventTicker, g.HomeTeam, g.AwayTeam, g.GameTime)
	if err != nil {
		return fmt.Errorf("insert game %s: %w", g.EventTicker, err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO markets (ticker, event_ticker, team)
		VALUES ($1, $2, $3)
		ON CONFLICT (ticker) DO NOTHING
	`, g.MarketTicker, g.EventTicker, g.Team)
	if err != nil {
		return fmt.Errorf("insert market %s: %w", g.MarketTicker, err)
	}

	return nil
}

// SaveSnapshot inserts the summary row and batches all depth levels in
// one round trip.
func (s *Store) SaveSnapshot(ctx context.Context, marketTicker string, snap model.Snapshot) (uuid.UUID, error) {
	id := uuid.New()

	_, err := s.pool.Exec(ctx, `
		INSERT INTO snapshots
			(id, ticker, ts, best_bid, best_ask, mid, spread,
			 total_bid_depth, total_ask_depth, open_interest)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, id, marketTicker, snap.Timestamp, snap.BestBid, snap.BestAsk, snap.Mid, snap.Spread,
		snap.TotalBidDepth, snap.TotalAskDepth, snap.OpenInterest)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert snapshot for %s: %w", marketTicker, err)
	}

	batch := &pgx.Batch{}
	for price, qty := range snap.Book.Bids {
		batch.Queue(`
			INSERT INTO depth_levels (snapshot_id, side, price, quantity)
			VALUES ($1, $2, $3, $4)
		`, id, "bid", price, qty)
	}
	for price, qty := range snap.Book.Asks {
		batch.Queue(`
			INSERT INTO depth_levels (snapshot_id, side, price, quantity)
			VALUES ($1, $2, $3, $4)
		`, id, "ask", price, qty)
	}

	if batch.Len() > 0 {
		results := s.pool.SendBatch(ctx, batch)
		defer results.Close()
		for i := 0; i < batch.Len(); i++ {
			if _, err := results.Exec(); err != nil {
				return uuid.Nil, fmt.Errorf("insert depth levels for %s: %w", marketTicker, err)
			}
		}
	}

	return id, nil
}

// Ping reports whether the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close releases the connection pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}
