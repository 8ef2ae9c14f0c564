package tracker

import (
	"context"
	"sort"

	"github.com/billyhines/kalshi-liquidity/internal/api"
	"github.com/billyhines/kalshi-liquidity/internal/model"
)

// Refresh reconciles the tracked set against discovery. New games are
// registered with the store and scheduled one full interval out;
// surviving games keep their next due time; games no longer offered by
// the venue are dropped. On discovery failure the tracked set is left
// untouched and a DiscoveryError is returned.
func (t *Tracker) Refresh(ctx context.Context) error {
	discovered, err := t.discover(ctx)
	if err != nil {
		t.logger.Error("discovery failed, keeping current game set", "error", err)
		return &DiscoveryError{Err: err}
	}

	now := t.now()

	t.mu.Lock()
	defer t.mu.Unlock()

	added, dropped := 0, 0
	seen := make(map[string]bool, len(discovered))
	for _, g := range discovered {
		seen[g.EventTicker] = true
		if _, ok := t.games[g.EventTicker]; ok {
			continue
		}

		state := t.cfg.Schedule.Classify(now, g.GameTime)
		t.games[g.EventTicker] = &trackedGame{
			game:    g,
			nextDue: now.Add(t.cfg.Schedule.Interval(state)),
		}
		added++

		if err := t.store.EnsureGame(ctx, g); err != nil {
			t.logger.Warn("failed to register game",
				"event_ticker", g.EventTicker,
				"error", err)
		}

		t.logger.Info("tracking new game",
			"event_ticker", g.EventTicker,
			"matchup", g.Matchup(),
			"game_time", g.GameTime,
			"state", state.String())
	}

	for ticker := range t.games {
		if !seen[ticker] {
			delete(t.games, ticker)
			dropped++
			t.logger.Info("dropped game no longer offered", "event_ticker", ticker)
		}
	}

	if added > 0 || dropped > 0 {
		t.logger.Info("refreshed game set",
			"tracked", len(t.games),
			"added", added,
			"dropped", dropped)
	}

	return nil
}

// discover lists open markets for the configured series and reduces
// them to one game per event: the first market in ticker order. Markets
// whose scheduled end time is missing or unparseable are skipped with a
// warning and picked up on a later pass once the venue fills them in.
func (t *Tracker) discover(ctx context.Context) ([]model.Game, error) {
	markets, err := t.client.GetAllMarkets(ctx, api.GetMarketsOptions{
		SeriesTicker: t.cfg.Series,
		Status:       "open",
	})
	if err != nil {
		return nil, err
	}

	byEvent := make(map[string]api.Market)
	for _, m := range markets {
		prev, ok := byEvent[m.EventTicker]
		if !ok || m.Ticker < prev.Ticker {
			byEvent[m.EventTicker] = m
		}
	}

	games := make([]model.Game, 0, len(byEvent))
	for eventTicker, m := range byEvent {
		away, home, err := parseEventTicker(eventTicker)
		if err != nil {
			t.logger.Warn("skipping game with unparseable event ticker", "error", err)
			continue
		}

		if m.ExpectedExpirationTime == "" {
			t.logger.Warn("skipping game with no scheduled end time",
				"event_ticker", eventTicker)
			continue
		}
		gameTime, err := api.ParseTime(m.ExpectedExpirationTime)
		if err != nil {
			t.logger.Warn("skipping game with bad end time",
				"event_ticker", eventTicker,
				"value", m.ExpectedExpirationTime,
				"error", err)
			continue
		}

		games = append(games, model.Game{
			EventTicker:  eventTicker,
			MarketTicker: m.Ticker,
			Team:         marketTeam(m.Ticker),
			HomeTeam:     home,
			AwayTeam:     away,
			GameTime:     gameTime,
		})
	}

	sort.Slice(games, func(i, j int) bool {
		return games[i].EventTicker < games[j].EventTicker
	})
	return games, nil
}
