package model

import "time"

// Game is one tracked NFL game and the binary market that prices it.
// Kalshi lists several mirrored markets per game; the tracker follows
// exactly one of them.
type Game struct {
	EventTicker  string    // Primary key (e.g., "KXNFLGAME-26JAN10GBCHI")
	MarketTicker string    // Tracked market ticker
	Team         string    // Team code suffix of the tracked market
	HomeTeam     string    // Home team code (e.g., "CHI")
	AwayTeam     string    // Away team code (e.g., "GB")
	GameTime     time.Time // Scheduled game end / market close (UTC)
}

// Matchup renders the game as "AWAY@HOME".
func (g Game) Matchup() string {
	return g.AwayTeam + "@" + g.HomeTeam
}

// PriceLevel is one resting level of a one-sided ledger.
// Price is in cents, valid range [1, 99]. Quantity is contracts resting.
type PriceLevel struct {
	Price    int
	Quantity int
}

// Book is a unified bid/ask order book, price-cents -> quantity.
// The two price axes are independent after unification.
type Book struct {
	Bids map[int]int
	Asks map[int]int
}

// Snapshot is an immutable point-in-time liquidity record. Optional
// metrics are nil when the book is too thin to define them; a crossed
// or empty book is a valid snapshot, not an error.
type Snapshot struct {
	Timestamp     time.Time
	BestBid       *int     // Max bid price, nil if no bids
	BestAsk       *int     // Min ask price, nil if no asks
	Mid           *float64 // (bid+ask)/2, nil unless both sides present
	Spread        *int     // ask-bid, nil unless both sides present
	TotalBidDepth int
	TotalAskDepth int
	OpenInterest  *int64 // nil when the metadata fetch failed
	Book          Book
}
