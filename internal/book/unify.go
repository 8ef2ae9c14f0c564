package book

import "github.com/billyhines/kalshi-liquidity/internal/model"

// Unify folds the two one-sided ledgers of a binary market into one
// bid/ask book on the YES outcome.
//
// A resting YES bid at p¢ is a bid at p. A resting NO bid at p¢ is a
// commitment to sell YES, so it appears as an ask at (100-p)¢.
//
// Quantities at a repeated price level are summed. The venue normally
// reports each level once, but a duplicate must add liquidity rather
// than replace it.
func Unify(yes, no []model.PriceLevel) model.Book {
	bids := make(map[int]int, len(yes))
	for _, lvl := range yes {
		bids[lvl.Price] += lvl.Quantity
	}

	asks := make(map[int]int, len(no))
	for _, lvl := range no {
		asks[100-lvl.Price] += lvl.Quantity
	}

	return model.Book{Bids: bids, Asks: asks}
}
