// Package ir provides the canonical record format for interval operations.
//
// Every evaluation of an s1.Interval operation (its arguments and its result)
// is expressed with the sealed IRValue types in this package, serialized as
// RFC 8785 canonical JSON and identified by a domain-separated SHA-256 hash.
// Identical inputs therefore always produce byte-identical records, which is
// what the store relies on for idempotent writes and what replay relies on to
// detect divergence.
//
// Key design constraints:
//   - No float types in IR. Angles travel as IRString holding the shortest
//     decimal that round-trips to the exact float64 (see Angle).
//   - Interval values are objects {"lo": angle, "hi": angle}.
//   - All JSON tags use snake_case.
//   - Logical sequence numbers only, never wall-clock timestamps.
//
// ir imports only the s1 leaf package; every other internal package imports ir.
package ir
