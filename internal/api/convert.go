package api

import (
	"fmt"
	"time"

	"github.com/billyhines/kalshi-liquidity/internal/model"
)

// ParseTime parses an ISO 8601 timestamp from the API. Timestamps
// usually carry a zone; a bare "2006-01-02T15:04:05" is taken as UTC.
func ParseTime(iso string) (time.Time, error) {
	if iso == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	t, err := time.Parse(time.RFC3339, iso)
	if err == nil {
		return t, nil
	}

	t, err2 := time.Parse("2006-01-02T15:04:05", iso)
	if err2 != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", iso, err)
	}
	return t.UTC(), nil
}

// Levels converts the raw ledgers into price levels, dropping malformed
// rows with fewer than two elements.
func (o *OrderbookResponse) Levels() (yes, no []model.PriceLevel) {
	yes = make([]model.PriceLevel, 0, len(o.Orderbook.Yes))
	for _, row := range o.Orderbook.Yes {
		if len(row) >= 2 {
			yes = append(yes, model.PriceLevel{Price: row[0], Quantity: row[1]})
		}
	}

	no = make([]model.PriceLevel, 0, len(o.Orderbook.No))
	for _, row := range o.Orderbook.No {
		if len(row) >= 2 {
			no = append(no, model.PriceLevel{Price: row[0], Quantity: row[1]})
		}
	}

	return yes, no
}
