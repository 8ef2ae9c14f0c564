// Package postgres implements the snapshot store on PostgreSQL via
// pgx connection pools. Depth levels are written with a single batched
// round trip per snapshot.
package postgres
