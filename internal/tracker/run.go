package tracker

import (
	"context"
	"time"
)

// Run drives the tracker until ctx is cancelled. Each iteration
// refreshes the game set when the cadence is due, dispatches everything
// currently due, then sleeps exactly until the soonest next deadline,
// clamped below by MinSleep. With nothing tracked it sleeps IdleSleep
// and forces a refresh on wake.
func (t *Tracker) Run(ctx context.Context) error {
	t.logger.Info("tracker started",
		"series", t.cfg.Series,
		"refresh_interval", t.cfg.RefreshInterval)

	var lastRefresh time.Time
	for {
		if err := ctx.Err(); err != nil {
			t.logger.Info("tracker stopping")
			return err
		}

		now := t.now()

		if now.Sub(lastRefresh) >= t.cfg.RefreshInterval {
			// Failure keeps the current set; retry on the next cadence
			// rather than every tick.
			_ = t.Refresh(ctx)
			lastRefresh = now
		}

		if t.TrackedCount() == 0 {
			t.logger.Info("no games tracked, idling", "sleep", t.cfg.IdleSleep)
			if err := sleepCtx(ctx, t.cfg.IdleSleep); err != nil {
				return err
			}
			lastRefresh = time.Time{} // refresh immediately on wake
			continue
		}

		served := t.DispatchDue(ctx, now)
		if served > 0 {
			live, near, far := t.census(now)
			t.logger.Debug("dispatch pass complete",
				"served", served,
				"live", live,
				"near", near,
				"far", far)
		}

		deadline, ok := t.NextDeadline()
		if !ok {
			continue
		}
		wait := deadline.Sub(t.now())
		if wait < t.cfg.MinSleep {
			wait = t.cfg.MinSleep
		}
		if err := sleepCtx(ctx, wait); err != nil {
			return err
		}
	}
}

// sleepCtx sleeps for d or until ctx is cancelled, whichever comes
// first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
