package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/billyhines/kalshi-liquidity/internal/model"
)

// Store persists games and snapshots in a SQLite file.
type Store struct {
	path   string
	db     *sql.DB
	logger *slog.Logger
}

// Open creates (if needed) and opens the database at path, enabling WAL
// mode and ensuring the schema exists.
func Open(ctx context.Context, path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1) // single writer; WAL allows concurrent readers

	if _, err := db.ExecContext(ctx, `PRAGMA journal_mode=WAL`); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, `PRAGMA foreign_keys=ON`); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	s := &Store{path: path, db: db, logger: logger}
	if err := s.ensureSchema(ctx); err != nil {
		db.Close()
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
			game_time    TIMESTAMP NOT NULL,
			created_at   TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS markets (
			ticker       TEXT PRIMARY KEY,
			event_ticker TEXT NOT NULL REFERENCES games(event_ticker),
			team         TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS snapshots (
			id              TEXT PRIMARY KEY,
			ticker          TEXT NOT NULL REFERENCES markets(ticker),
			ts              TIMESTAMP NOT NULL,
			best_bid        INTEGER,
			best_ask        INTEGER,
			mid             REAL,
			spread          INTEGER,
			total_bid_depth INTEGER NOT NULL,
			total_ask_depth INTEGER NOT NULL,
			open_interest   INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS depth_levels (
			snapshot_id TEXT NOT NULL REFERENCES snapshots(id),
			side        TEXT NOT NULL,
			price       INTEGER NOT NULL,
			quantity    INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_ticker_ts ON snapshots(ticker, ts)`,
		`CREATE INDEX IF NOT EXISTS idx_depth_snapshot ON depth_levels(snapshot_id)`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// EnsureGame upserts the game and its tracked market.
func (s *Store) EnsureGame(ctx context.Context, g model.Game) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO games (event_ticker, home_team, away_team, game_time)
		VALUES (?, ?, ?, ?)
	`, g.EventTicker, g.HomeTeam, g.AwayTeam, g.GameTime)
	if err != nil {
		return fmt.Errorf("insert game %s: %w", g.EventTicker, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO markets (ticker, event_ticker, team)
		VALUES (?, ?, ?)
	`, g.MarketTicker, g.EventTicker, g.Team)
	if err != nil {
		return fmt.Errorf("insert market %s: %w", g.MarketTicker, err)
	}

	return nil
}

// SaveSnapshot inserts the summary row and all depth levels in one
// transaction.
func (s *Store) SaveSnapshot(ctx context.Context, marketTicker string, snap model.Snapshot) (uuid.UUID, error) {
	id := uuid.New()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO snapshots
			(id, ticker, ts, best_bid, best_ask, mid, spread,
			 total_bid_depth, total_ask_depth, open_interest)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id.String(), marketTicker, snap.Timestamp, snap.BestBid, snap.BestAsk, snap.Mid, snap.Spread,
		snap.TotalBidDepth, snap.TotalAskDepth, snap.OpenInterest)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert snapshot for %s: %w", marketTicker, err)
	}

	levelStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO depth_levels (snapshot_id, side, price, quantity)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return uuid.Nil, fmt.Errorf("prepare depth insert: %w", err)
	}
	defer levelStmt.Close()

	for price, qty := range snap.Book.Bids {
		if _, err := levelStmt.ExecContext(ctx, id.String(), "bid", price, qty); err != nil {
			return uuid.Nil, fmt.Errorf("insert bid level for %s: %w", marketTicker, err)
		}
	}
	for price, qty := range snap.Book.Asks {
		if _, err := levelStmt.ExecContext(ctx, id.String(), "ask", price, qty); err != nil {
			return uuid.Nil, fmt.Errorf("insert ask level for %s: %w", marketTicker, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, fmt.Errorf("commit snapshot for %s: %w", marketTicker, err)
	}

	return id, nil
}

// Ping reports whether the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Path returns the file backing the store.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
