package tracker

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/billyhines/kalshi-liquidity/internal/api"
	"github.com/billyhines/kalshi-liquidity/internal/model"
	"github.com/billyhines/kalshi-liquidity/internal/schedule"
	"github.com/billyhines/kalshi-liquidity/internal/store"
)

// MarketClient is the venue surface the tracker consumes. *api.Client
// satisfies it.
type MarketClient interface {
	GetAllMarkets(ctx context.Context, opts api.GetMarketsOptions) ([]api.Market, error)
	GetMarket(ctx context.Context, ticker string) (*api.Market, error)
	GetOrderbook(ctx context.Context, ticker string) (*api.OrderbookResponse, error)
}

// Config holds tracker configuration.
type Config struct {
	Series          string          // Series ticker to discover (e.g., "KXNFLGAME")
	Schedule        schedule.Config // Cadence and classification thresholds
	RefreshInterval time.Duration   // How often to reconcile against discovery
	IdleSleep       time.Duration   // Sleep when nothing is tracked
	MinSleep        time.Duration   // Floor on the inter-tick sleep
	CollectTimeout  time.Duration   // Per-collection deadline
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Series:          "KXNFLGAME",
		Schedule:        schedule.DefaultConfig(),
		RefreshInterval: 15 * time.Minute,
		IdleSleep:       15 * time.Minute,
		MinSleep:        1 * time.Second,
		CollectTimeout:  10 * time.Second,
	}
}

// trackedGame pairs a game with its schedule position. nextDue is
// monotonically non-decreasing over the game's lifetime.
type trackedGame struct {
	game    model.Game
	nextDue time.Time
}

// Tracker owns the tracked-game set and drives collection. One
// instance per process; the run loop is the only writer, while the
// health endpoint may read concurrently.
type Tracker struct {
	cfg    Config
	client MarketClient
	store  store.Store
	logger *slog.Logger
	now    func() time.Time

	mu    sync.Mutex
	games map[string]*trackedGame
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// New creates a Tracker.
func New(cfg Config, client MarketClient, st store.Store, logger *slog.Logger, opts ...Option) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	t := &Tracker{
		cfg:    cfg,
		client: client,
		store:  st,
		logger: logger,
		now:    time.Now,
		games:  make(map[string]*trackedGame),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// TrackedCount returns the number of games currently tracked.
func (t *Tracker) TrackedCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.games)
}

// NextDeadline returns the earliest next-due time across the tracked
// set, or false if nothing is tracked.
func (t *Tracker) NextDeadline() (time.Time, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var deadline time.Time
	found := false
	for _, tg := range t.games {
		if !found || tg.nextDue.Before(deadline) {
			deadline = tg.nextDue
			found = true
		}
	}
	return deadline, found
}

// GameStatus is a read-only view of one tracked game, for the debug
// endpoint and status logs.
type GameStatus struct {
	EventTicker  string    `json:"event_ticker"`
	MarketTicker string    `json:"market_ticker"`
	Matchup      string    `json:"matchup"`
	Kickoff      time.Time `json:"kickoff"`
	State        string    `json:"state"`
	NextDue      time.Time `json:"next_due"`
}

// Games returns the tracked set sorted by next due time.
func (t *Tracker) Games() []GameStatus {
	now := t.now()

	t.mu.Lock()
	statuses := make([]GameStatus, 0, len(t.games))
	for _, tg := range t.games {
		statuses = append(statuses, GameStatus{
			EventTicker:  tg.game.EventTicker,
			MarketTicker: tg.game.MarketTicker,
			Matchup:      tg.game.Matchup(),
			Kickoff:      t.cfg.Schedule.Kickoff(tg.game.GameTime),
			State:        t.cfg.Schedule.Classify(now, tg.game.GameTime).String(),
			NextDue:      tg.nextDue,
		})
	}
	t.mu.Unlock()

	sort.Slice(statuses, func(i, j int) bool {
		return statuses[i].NextDue.Before(statuses[j].NextDue)
	})
	return statuses
}

// census counts tracked games per state at the given instant.
func (t *Tracker) census(now time.Time) (live, near, far int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, tg := range t.games {
		switch t.cfg.Schedule.Classify(now, tg.game.GameTime) {
		case schedule.Live:
			live++
		case schedule.Near:
			near++
		default:
			far++
		}
	}
	return live, near, far
}
