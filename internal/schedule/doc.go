// Package schedule classifies tracked games by temporal proximity to
// kickoff and maps each state to a fixed polling interval.
//
// States and default cadence:
//   - far:  more than 24h before estimated kickoff, poll every 60m
//   - near: within 24h of kickoff, pregame, poll every 15m
//   - live: kickoff has passed, poll every 1m
//
// There is no "ended" state at this layer. Games leave the schedule when
// the venue stops reporting them, not by the clock.
package schedule
