package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/billyhines/kalshi-liquidity/internal/model"
)

// Store persists tracked games and their liquidity snapshots.
type Store interface {
	// EnsureGame registers a game and its tracked market. Idempotent:
	// repeated calls for the same game are no-ops.
	EnsureGame(ctx context.Context, g model.Game) error

	// SaveSnapshot persists a snapshot and its depth levels for the
	// given market, returning the new snapshot's ID.
	SaveSnapshot(ctx context.Context, marketTicker string, snap model.Snapshot) (uuid.UUID, error)

	// Ping reports whether the backing database is reachable.
	Ping(ctx context.Context) error

	// Close releases the underlying connections.
	Close() error
}
