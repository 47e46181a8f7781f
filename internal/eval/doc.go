// Package eval applies named s1.Interval operations to IR arguments.
//
// Each operation has a wire name (for example "contains" or "union"), a fixed
// parameter list and a result shape. Arguments arrive as an ir.IRObject and
// results leave as one, so every evaluation can be hashed, stored and later
// replayed bit for bit.
//
// Parameters:
//
//	a, b         intervals, {"lo": angle, "hi": angle}
//	p, p1, p2    points, angles in [-π, π]
//	margin       any finite real, may be negative
//	max_error    any finite real, optional for approx_equals
//
// Results are one of {"interval": {...}}, {"value": angle} or {"bool": b}.
//
// The Evaluator stamps every successful evaluation with its run id and the
// next value of a logical clock, then hands the record to an optional
// Recorder. Failed evaluations consume no sequence number and are not
// recorded. Replay re-applies a recorded run and compares result hashes.
package eval
