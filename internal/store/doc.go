// Package store provides the SQLite-backed log of interval evaluations.
//
// The log is append-only and holds two record kinds:
//   - runs: one row per evaluation session, numbered by created_seq
//   - evaluations: one row per operation, unique on (run_id, seq)
//
// Arguments and results are stored as RFC 8785 canonical JSON produced by
// ir.MarshalCanonical, so a row read back hashes to the same IDs it was
// written with. Writes are idempotent on the content-addressed id: writing
// the same evaluation twice is a no-op, while writing a different evaluation
// at an occupied (run_id, seq) is an error.
//
// Reads are ordered by seq ASC, id ASC COLLATE BINARY.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL
//   - busy_timeout=5000ms
//   - foreign_keys=ON (an evaluation's run must exist)
//
// The path ":memory:" opens a private in-memory database.
package store
