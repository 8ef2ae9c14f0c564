package tracker

import "fmt"

// DiscoveryError wraps a failed discovery call during reconciliation.
// It is never fatal: the previous tracked set stays in effect.
type DiscoveryError struct {
	Err error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("discover games: %v", e.Err)
}

func (e *DiscoveryError) Unwrap() error {
	return e.Err
}

// CollectionError wraps a failed collection attempt for one game. The
// game stays tracked and its next due time advances normally.
type CollectionError struct {
	Ticker string
	Err    error
}

func (e *CollectionError) Error() string {
	return fmt.Sprintf("collect %s: %v", e.Ticker, e.Err)
}

func (e *CollectionError) Unwrap() error {
	return e.Err
}
