package schedule

import (
	"testing"
	"time"
)

func TestClassifyBoundaries(t *testing.T) {
	cfg := DefaultConfig()
	gameEnd := time.Date(2026, 1, 10, 23, 30, 0, 0, time.UTC)
	kickoff := cfg.Kickoff(gameEnd) // 20:00, 3.5h before end

	tests := []struct {
		name string
		now  time.Time
		want State
	}{
		{"well before threshold", kickoff.Add(-48 * time.Hour), Far},
		{"one second before threshold", kickoff.Add(-cfg.NearThreshold - time.Second), Far},
		{"exactly at threshold", kickoff.Add(-cfg.NearThreshold), Near},
		{"inside pregame window", kickoff.Add(-time.Hour), Near},
		{"one second before kickoff", kickoff.Add(-time.Second), Near},
		{"exactly at kickoff", kickoff, Live},
		{"during the game", kickoff.Add(2 * time.Hour), Live},
		{"after the scheduled end", gameEnd.Add(time.Hour), Live},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.Classify(tt.now, gameEnd); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestClassifyIsPure(t *testing.T) {
	cfg := DefaultConfig()
	gameEnd := time.Date(2026, 1, 10, 23, 30, 0, 0, time.UTC)
	now := gameEnd.Add(-10 * time.Hour)

	first := cfg.Classify(now, gameEnd)
	for i := 0; i < 100; i++ {
		if got := cfg.Classify(now, gameEnd); got != first {
			t.Fatalf("Classify changed answer on call %d: %v -> %v", i, first, got)
		}
	}
}

// Scenario from the collector's operating assumptions: a game ending at
// T+26h with a 3.5h duration kicks off at T+22.5h. With a 24h near
// threshold it is already "near" at T, and "live" half an hour after
// the estimated kickoff.
func TestClassifyEndToEndScenario(t *testing.T) {
	cfg := Config{
		FarInterval:   60 * time.Minute,
		NearInterval:  15 * time.Minute,
		LiveInterval:  time.Minute,
		NearThreshold: 24 * time.Hour,
		EventDuration: 3*time.Hour + 30*time.Minute,
	}

	base := time.Date(2026, 1, 9, 12, 0, 0, 0, time.UTC)
	gameEnd := base.Add(26 * time.Hour)

	if got := cfg.Classify(base, gameEnd); got != Near {
		t.Errorf("state at T = %v, want near", got)
	}
	if got := cfg.Classify(base.Add(23*time.Hour), gameEnd); got != Live {
		t.Errorf("state at T+23h = %v, want live", got)
	}
}

func TestIntervalOrdering(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if !(cfg.Interval(Far) > cfg.Interval(Near) && cfg.Interval(Near) > cfg.Interval(Live)) {
		t.Errorf("interval ordering violated: far=%v near=%v live=%v",
			cfg.Interval(Far), cfg.Interval(Near), cfg.Interval(Live))
	}
}

func TestValidateRejectsBadOrdering(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"near not above live", Config{FarInterval: time.Hour, NearInterval: time.Minute, LiveInterval: time.Minute, NearThreshold: time.Hour, EventDuration: time.Hour}},
		{"far not above near", Config{FarInterval: 15 * time.Minute, NearInterval: 15 * time.Minute, LiveInterval: time.Minute, NearThreshold: time.Hour, EventDuration: time.Hour}},
		{"zero live interval", Config{FarInterval: time.Hour, NearInterval: 15 * time.Minute, NearThreshold: time.Hour, EventDuration: time.Hour}},
		{"zero threshold", Config{FarInterval: time.Hour, NearInterval: 15 * time.Minute, LiveInterval: time.Minute, EventDuration: time.Hour}},
		{"zero duration", Config{FarInterval: time.Hour, NearInterval: 15 * time.Minute, LiveInterval: time.Minute, NearThreshold: time.Hour}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestStateString(t *testing.T) {
	if Far.String() != "far" || Near.String() != "near" || Live.String() != "live" {
		t.Errorf("unexpected state names: %v %v %v", Far, Near, Live)
	}
}
