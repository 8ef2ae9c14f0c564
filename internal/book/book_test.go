package book

import (
	"testing"
	"time"

	"github.com/billyhines/kalshi-liquidity/internal/model"
)

func TestUnify(t *testing.T) {
	yes := []model.PriceLevel{{Price: 40, Quantity: 10}}
	no := []model.PriceLevel{{Price: 60, Quantity: 5}}

	b := Unify(yes, no)

	if got := b.Bids[40]; got != 10 {
		t.Errorf("Bids[40] = %d, want 10", got)
	}
	// NO bid at 60 is a YES ask at 100-60=40.
	if got := b.Asks[40]; got != 5 {
		t.Errorf("Asks[40] = %d, want 5", got)
	}
	if len(b.Bids) != 1 || len(b.Asks) != 1 {
		t.Errorf("unexpected extra levels: bids=%v asks=%v", b.Bids, b.Asks)
	}
}

// Duplicate price levels must aggregate, not overwrite. A venue that
// reports a level twice is reporting more liquidity, not correcting
// itself.
func TestUnifySumsDuplicateLevels(t *testing.T) {
	yes := []model.PriceLevel{
		{Price: 40, Quantity: 10},
		{Price: 40, Quantity: 7},
	}
	no := []model.PriceLevel{
		{Price: 55, Quantity: 3},
		{Price: 55, Quantity: 4},
	}

	b := Unify(yes, no)

	if got := b.Bids[40]; got != 17 {
		t.Errorf("Bids[40] = %d, want 17 (summed)", got)
	}
	if got := b.Asks[45]; got != 7 {
		t.Errorf("Asks[45] = %d, want 7 (summed)", got)
	}
}

func TestUnifyEmptyLedgers(t *testing.T) {
	b := Unify(nil, nil)
	if len(b.Bids) != 0 || len(b.Asks) != 0 {
		t.Errorf("Unify(nil, nil) = %v, want empty book", b)
	}
}

func TestAssembleMetrics(t *testing.T) {
	b := model.Book{
		Bids: map[int]int{30: 5, 40: 10},
		Asks: map[int]int{45: 3},
	}
	oi := int64(1200)
	ts := time.Date(2026, 1, 10, 18, 0, 0, 0, time.UTC)

	snap := Assemble(b, &oi, ts)

	if snap.BestBid == nil || *snap.BestBid != 40 {
		t.Errorf("BestBid = %v, want 40", snap.BestBid)
	}
	if snap.BestAsk == nil || *snap.BestAsk != 45 {
		t.Errorf("BestAsk = %v, want 45", snap.BestAsk)
	}
	if snap.Mid == nil || *snap.Mid != 42.5 {
		t.Errorf("Mid = %v, want 42.5", snap.Mid)
	}
	if snap.Spread == nil || *snap.Spread != 5 {
		t.Errorf("Spread = %v, want 5", snap.Spread)
	}
	if snap.TotalBidDepth != 15 {
		t.Errorf("TotalBidDepth = %d, want 15", snap.TotalBidDepth)
	}
	if snap.TotalAskDepth != 3 {
		t.Errorf("TotalAskDepth = %d, want 3", snap.TotalAskDepth)
	}
	if snap.OpenInterest == nil || *snap.OpenInterest != 1200 {
		t.Errorf("OpenInterest = %v, want 1200", snap.OpenInterest)
	}
	if !snap.Timestamp.Equal(ts) {
		t.Errorf("Timestamp = %v, want %v", snap.Timestamp, ts)
	}
}

func TestAssembleEmptyBidSide(t *testing.T) {
	b := model.Book{
		Bids: map[int]int{},
		Asks: map[int]int{45: 3},
	}

	snap := Assemble(b, nil, time.Now())

	if snap.BestBid != nil {
		t.Errorf("BestBid = %v, want nil", snap.BestBid)
	}
	if snap.Mid != nil || snap.Spread != nil {
		t.Errorf("Mid/Spread = %v/%v, want nil/nil", snap.Mid, snap.Spread)
	}
	if snap.TotalBidDepth != 0 {
		t.Errorf("TotalBidDepth = %d, want 0", snap.TotalBidDepth)
	}
	if snap.TotalAskDepth != 3 {
		t.Errorf("TotalAskDepth = %d, want 3", snap.TotalAskDepth)
	}
	if snap.OpenInterest != nil {
		t.Errorf("OpenInterest = %v, want nil", snap.OpenInterest)
	}
}

// A crossed book (bid above ask) is a representable market condition,
// not an error; the metrics just report a negative spread.
func TestAssembleCrossedBook(t *testing.T) {
	b := model.Book{
		Bids: map[int]int{55: 10},
		Asks: map[int]int{50: 4},
	}

	snap := Assemble(b, nil, time.Now())

	if snap.Spread == nil || *snap.Spread != -5 {
		t.Errorf("Spread = %v, want -5", snap.Spread)
	}
	if snap.Mid == nil || *snap.Mid != 52.5 {
		t.Errorf("Mid = %v, want 52.5", snap.Mid)
	}
}

func TestAssembleEmptyBook(t *testing.T) {
	snap := Assemble(model.Book{Bids: map[int]int{}, Asks: map[int]int{}}, nil, time.Now())

	if snap.BestBid != nil || snap.BestAsk != nil || snap.Mid != nil || snap.Spread != nil {
		t.Errorf("empty book produced defined metrics: %+v", snap)
	}
	if snap.TotalBidDepth != 0 || snap.TotalAskDepth != 0 {
		t.Errorf("empty book produced nonzero depth: %d/%d", snap.TotalBidDepth, snap.TotalAskDepth)
	}
}
