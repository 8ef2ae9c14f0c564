package api

// MarketsResponse from GET /markets
type MarketsResponse struct {
	Markets []Market `json:"markets"`
	Cursor  string   `json:"cursor"`
}

// Market is the subset of the Kalshi market object the tracker consumes.
type Market struct {
	Ticker      string `json:"ticker"`
	EventTicker string `json:"event_ticker"`
	Title       string `json:"title"`
	Status      string `json:"status"`

	Volume       int64 `json:"volume"`
	OpenInterest int64 `json:"open_interest"`

	// Timestamps (ISO 8601). ExpectedExpirationTime is the scheduled
	// game end; CloseTime is when trading halts.
	ExpectedExpirationTime string `json:"expected_expiration_time"`
	CloseTime              string `json:"close_time"`
}

// SingleMarketResponse from GET /markets/{ticker}
type SingleMarketResponse struct {
	Market Market `json:"market"`
}

// OrderbookResponse from GET /markets/{ticker}/orderbook
type OrderbookResponse struct {
	Orderbook Orderbook `json:"orderbook"`
}

// Orderbook holds the raw one-sided ledgers as [price_cents, quantity]
// pairs. Both sides are resting bids on their respective outcome.
type Orderbook struct {
	Yes [][]int `json:"yes"`
	No  [][]int `json:"no"`
}

// GetMarketsOptions configures a GetMarkets request.
type GetMarketsOptions struct {
	Limit        int
	Cursor       string
	SeriesTicker string
	Status       string
}
