// Package tracker implements the adaptive collection scheduler.
//
// The tracker owns the set of games currently being followed. It
// reconciles that set against venue discovery on a fixed cadence,
// serves the soonest-due game first on every dispatch pass, and sleeps
// exactly until the next deadline. Each game's polling interval comes
// from its schedule classification (far/near/live) evaluated fresh at
// dispatch time.
//
// Collection failures are logged and skipped; the failed game's next
// due time still advances on the regular cadence. There is deliberately
// no retry-sooner or backoff path: a failed tick produces a gap in the
// data instead of extra load on the venue.
package tracker
