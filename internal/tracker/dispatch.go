package tracker

import (
	"context"
	"sort"
	"time"

	"github.com/billyhines/kalshi-liquidity/internal/book"
	"github.com/billyhines/kalshi-liquidity/internal/model"
)

// Collect fetches the game's order book, unifies it into a canonical
// bid/ask view, and persists the snapshot. Open interest is fetched
// best-effort: a failure there logs a warning and the snapshot is saved
// without it. Orderbook or persistence failures return a
// CollectionError.
func (t *Tracker) Collect(ctx context.Context, g model.Game) (model.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, t.cfg.CollectTimeout)
	defer cancel()

	ob, err := t.client.GetOrderbook(ctx, g.MarketTicker)
	if err != nil {
		return model.Snapshot{}, &CollectionError{Ticker: g.MarketTicker, Err: err}
	}

	yes, no := ob.Levels()
	unified := book.Unify(yes, no)

	var openInterest *int64
	if m, err := t.client.GetMarket(ctx, g.MarketTicker); err != nil {
		t.logger.Warn("open interest unavailable",
			"ticker", g.MarketTicker,
			"error", err)
	} else {
		openInterest = &m.OpenInterest
	}

	snap := book.Assemble(unified, openInterest, t.now().UTC())
	if _, err := t.store.SaveSnapshot(ctx, g.MarketTicker, snap); err != nil {
		return model.Snapshot{}, &CollectionError{Ticker: g.MarketTicker, Err: err}
	}

	return snap, nil
}

// DispatchDue collects every game whose next due time has arrived,
// soonest first, and returns how many were served. Each served game's
// next due time advances to now plus its current state's interval
// whether or not collection succeeded, so a failing game cannot hog the
// loop.
func (t *Tracker) DispatchDue(ctx context.Context, now time.Time) int {
	t.mu.Lock()
	due := make([]*trackedGame, 0, len(t.games))
	for _, tg := range t.games {
		if !tg.nextDue.After(now) {
			due = append(due, tg)
		}
	}
	t.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		return due[i].nextDue.Before(due[j].nextDue)
	})

	served := 0
	for _, tg := range due {
		if ctx.Err() != nil {
			break
		}

		state := t.cfg.Schedule.Classify(now, tg.game.GameTime)

		snap, err := t.Collect(ctx, tg.game)
		if err != nil {
			t.logger.Error("collection failed",
				"ticker", tg.game.MarketTicker,
				"state", state.String(),
				"error", err)
		} else {
			t.logger.Info("collected snapshot",
				"matchup", tg.game.Matchup(),
				"state", state.String(),
				"best_bid", intOrNil(snap.BestBid),
				"best_ask", intOrNil(snap.BestAsk),
				"spread", intOrNil(snap.Spread),
				"bid_depth", snap.TotalBidDepth,
				"ask_depth", snap.TotalAskDepth)
		}

		t.mu.Lock()
		tg.nextDue = now.Add(t.cfg.Schedule.Interval(state))
		t.mu.Unlock()
		served++
	}

	return served
}

// RunOnce performs a single dispatch pass at the current time.
func (t *Tracker) RunOnce(ctx context.Context) int {
	return t.DispatchDue(ctx, t.now())
}

func intOrNil(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}
