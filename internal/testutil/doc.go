// Package testutil holds deterministic stand-ins for the clock and run-id
// generator so scenario runs and golden snapshots are byte-identical.
package testutil
