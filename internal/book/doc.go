// Package book converts Kalshi's two one-sided YES/NO ledgers into a
// single canonical bid/ask book and derives summary liquidity metrics
// from it. Everything here is pure: no I/O, no clocks, no state.
package book
