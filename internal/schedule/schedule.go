package schedule

import (
	"errors"
	"time"
)

// State is a game's temporal classification relative to its kickoff.
type State int

const (
	Far State = iota
	Near
	Live
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case Far:
		return "far"
	case Near:
		return "near"
	case Live:
		return "live"
	default:
		return "unknown"
	}
}

// Config holds the three-tier cadence and the thresholds that drive
// classification. Intervals must satisfy Far > Near > Live.
type Config struct {
	FarInterval   time.Duration // Cadence while far from kickoff
	NearInterval  time.Duration // Cadence in the pregame window
	LiveInterval  time.Duration // Cadence while the game is in progress
	NearThreshold time.Duration // How long before kickoff "near" begins
	EventDuration time.Duration // Assumed game length, used to estimate kickoff
}

// DefaultConfig returns the stock NFL cadence.
func DefaultConfig() Config {
	return Config{
		FarInterval:   60 * time.Minute,
		NearInterval:  15 * time.Minute,
		LiveInterval:  1 * time.Minute,
		NearThreshold: 24 * time.Hour,
		EventDuration: 3*time.Hour + 30*time.Minute,
	}
}

// Validate checks the interval ordering and thresholds.
func (c Config) Validate() error {
	if c.LiveInterval <= 0 {
		return errors.New("live interval must be positive")
	}
	if c.NearInterval <= c.LiveInterval {
		return errors.New("near interval must exceed live interval")
	}
	if c.FarInterval <= c.NearInterval {
		return errors.New("far interval must exceed near interval")
	}
	if c.NearThreshold <= 0 {
		return errors.New("near threshold must be positive")
	}
	if c.EventDuration <= 0 {
		return errors.New("event duration must be positive")
	}
	return nil
}

// Kickoff estimates the game start from its scheduled end time.
// Kalshi reports when the market closes (game end); the game is assumed
// to have started EventDuration earlier.
func (c Config) Kickoff(gameEnd time.Time) time.Time {
	return gameEnd.Add(-c.EventDuration)
}

// Classify returns the state of a game at the given instant. It is a
// pure function of its arguments: the same (now, gameEnd, config)
// always yields the same state.
//
// Boundaries: exactly at kickoff is live; exactly at kickoff minus the
// near threshold is near.
func (c Config) Classify(now, gameEnd time.Time) State {
	kickoff := c.Kickoff(gameEnd)
	switch {
	case !now.Before(kickoff):
		return Live
	case !now.Before(kickoff.Add(-c.NearThreshold)):
		return Near
	default:
		return Far
	}
}

// Interval returns the polling interval for a state.
func (c Config) Interval(s State) time.Duration {
	switch s {
	case Live:
		return c.LiveInterval
	case Near:
		return c.NearInterval
	default:
		return c.FarInterval
	}
}
