package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/billyhines/kalshi-liquidity/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "test.db"), nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testGame() model.Game {
	return model.Game{
		EventTicker:  "KXNFLGAME-26JAN10GBCHI",
		MarketTicker: "KXNFLGAME-26JAN10GBCHI-GB",
		Team:         "GB",
		HomeTeam:     "CHI",
		AwayTeam:     "GB",
		GameTime:     time.Date(2026, 1, 10, 23, 30, 0, 0, time.UTC),
	}
}

func TestEnsureGameIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	g := testGame()

	if err := s.EnsureGame(ctx, g); err != nil {
		t.Fatalf("EnsureGame failed: %v", err)
	}
	if err := s.EnsureGame(ctx, g); err != nil {
		t.Fatalf("second EnsureGame failed: %v", err)
	}

	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM games`).Scan(&count); err != nil {
		t.Fatalf("count games: %v", err)
	}
	if count != 1 {
		t.Errorf("games count = %d, want 1", count)
	}
}

func TestSaveSnapshotRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	g := testGame()

	if err := s.EnsureGame(ctx, g); err != nil {
		t.Fatalf("EnsureGame failed: %v", err)
	}

	bestBid, bestAsk, spread := 40, 45, 5
	mid := 42.5
	oi := int64(1200)
	snap := model.Snapshot{
		Timestamp:     time.Date(2026, 1, 10, 18, 0, 0, 0, time.UTC),
		BestBid:       &bestBid,
		BestAsk:       &bestAsk,
		Mid:           &mid,
		Spread:        &spread,
		TotalBidDepth: 15,
		TotalAskDepth: 3,
		OpenInterest:  &oi,
		Book: model.Book{
			Bids: map[int]int{30: 5, 40: 10},
			Asks: map[int]int{45: 3},
		},
	}

	id, err := s.SaveSnapshot(ctx, g.MarketTicker, snap)
	if err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}
	if id == uuid.Nil {
		t.Fatal("SaveSnapshot returned nil ID")
	}

	var gotBid, gotDepth int
	var gotMid float64
	err = s.db.QueryRow(`
		SELECT best_bid, mid, total_bid_depth FROM snapshots WHERE id = ?
	`, id.String()).Scan(&gotBid, &gotMid, &gotDepth)
	if err != nil {
		t.Fatalf("read snapshot back: %v", err)
	}
	if gotBid != 40 || gotMid != 42.5 || gotDepth != 15 {
		t.Errorf("snapshot row = (%d, %v, %d), want (40, 42.5, 15)", gotBid, gotMid, gotDepth)
	}

	var levels int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM depth_levels WHERE snapshot_id = ?`, id.String()).Scan(&levels); err != nil {
		t.Fatalf("count depth levels: %v", err)
	}
	if levels != 3 {
		t.Errorf("depth levels = %d, want 3", levels)
	}
}

func TestSaveSnapshotNilMetrics(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	g := testGame()

	if err := s.EnsureGame(ctx, g); err != nil {
		t.Fatalf("EnsureGame failed: %v", err)
	}

	// Empty-side book: nil best bid, nil mid/spread, nil open interest.
	snap := model.Snapshot{
		Timestamp:     time.Now().UTC(),
		TotalAskDepth: 3,
		Book:          model.Book{Bids: map[int]int{}, Asks: map[int]int{45: 3}},
	}

	id, err := s.SaveSnapshot(ctx, g.MarketTicker, snap)
	if err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	var bid, oi *int64
	err = s.db.QueryRow(`SELECT best_bid, open_interest FROM snapshots WHERE id = ?`, id.String()).Scan(&bid, &oi)
	if err != nil {
		t.Fatalf("read snapshot back: %v", err)
	}
	if bid != nil || oi != nil {
		t.Errorf("nullable columns = (%v, %v), want (nil, nil)", bid, oi)
	}
}

func TestPing(t *testing.T) {
	s := openTestStore(t)
	if err := s.Ping(context.Background()); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}
