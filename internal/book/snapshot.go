package book

import (
	"time"

	"github.com/billyhines/kalshi-liquidity/internal/model"
)

// Assemble derives the summary metrics for a unified book and wraps
// them in an immutable snapshot. The timestamp is supplied by the
// caller so the result is deterministic.
//
// Best bid is the highest bid price, best ask the lowest ask price.
// Mid and spread are defined only when both sides are present. A
// crossed or empty book is a valid snapshot with nil mid/spread.
func Assemble(b model.Book, openInterest *int64, ts time.Time) model.Snapshot {
	snap := model.Snapshot{
		Timestamp:    ts,
		OpenInterest: openInterest,
		Book:         b,
	}

	for price, qty := range b.Bids {
		snap.TotalBidDepth += qty
		if snap.BestBid == nil || price > *snap.BestBid {
			p := price
			snap.BestBid = &p
		}
	}

	for price, qty := range b.Asks {
		snap.TotalAskDepth += qty
		if snap.BestAsk == nil || price < *snap.BestAsk {
			p := price
			snap.BestAsk = &p
		}
	}

	if snap.BestBid != nil && snap.BestAsk != nil {
		mid := float64(*snap.BestBid+*snap.BestAsk) / 2
		spread := *snap.BestAsk - *snap.BestBid
		snap.Mid = &mid
		snap.Spread = &spread
	}

	return snap
}
