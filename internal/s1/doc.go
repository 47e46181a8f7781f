// Package s1 implements closed intervals on the unit circle.
//
// An Interval is a pair of angles (lo, hi) in [-π, π] describing the arc
// swept counter-clockwise from lo to hi. Points are angles in [-π, π]; the
// values -π and π name the same point and π is the canonical form used in
// every comparison.
//
// # Shapes
//
// The same two-field representation covers every shape:
//
//   - empty: lo = π, hi = -π
//   - full: lo = -π, hi = π
//   - singleton: lo == hi
//   - normal: lo <= hi, the arc [lo, hi]
//   - inverted: lo > hi, the arc from lo through the ±π seam to hi
//
// There is no shape tag. Inversion is derived (lo > hi) and empty/full are
// recognized by their sentinel endpoints, so every algorithm branches on
// those patterns explicitly.
//
// # Contracts
//
// Angle arguments outside [-π, π] and Project on an empty interval are
// programming errors. Building with the s1debug tag turns on contract checks
// that panic with a *ContractError; without it the checks compile away and
// the results of a violation are unspecified. NewInterval always validates
// and reports violations as an error.
//
// Interval values are immutable and safe to copy and share between
// goroutines. Every operation is O(1).
package s1
