// Package sqlite implements the snapshot store on a local SQLite file
// using the pure-Go modernc driver. WAL mode with a single writer; the
// tracker loop is the only writer by design.
package sqlite
