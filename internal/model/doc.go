// Package model defines the domain types shared across the tracker:
// tracked games, one-sided price ledgers, unified books, and liquidity
// snapshots.
package model
