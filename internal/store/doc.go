// Package store defines the persistence contract for tracked games and
// liquidity snapshots, with PostgreSQL and SQLite implementations in
// subpackages. Snapshots are append-only; the tracker never reads them
// back.
package store
