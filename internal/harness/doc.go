// Package harness runs YAML conformance scenarios against the operation
// registry.
//
// # Scenario Format
//
//	name: union_basics
//	description: "Union bridges the shorter gap"
//	run_id: union-basics            # optional, fixed for golden snapshots
//	intervals:                      # optional, layered over the catalog
//	  q1: {lo: 0, hi: pi/2}
//	  seam: {points: [3, -3]}
//	steps:
//	  - id: u1                      # optional, referenced by assertions
//	    op: union
//	    args: {a: $q1, b: {lo: 2, hi: 3}}
//	    expect: {interval: {lo: 0, hi: 3}}
//	  - op: project
//	    args: {a: {empty: true}, p: 0}
//	    expect: {error: CONTRACT}
//	assertions:
//	  - type: result_equals         # listed steps share one result hash
//	    steps: [u1, u2]
//	  - type: result_approx         # within max_error (default 1e-15)
//	    step: u1
//	    expect: {value: 0.7853981633974483}
//	    max_error: 1e-12
//	  - type: op_count              # recorded evaluations of one op
//	    op: union
//	    count: 2
//
// Interval arguments are $name references, inline shape maps (the catalog
// shapes) or nothing else. Angle arguments are numbers or angle strings and
// are recorded in their exact decimal form, so "pi/2" and
// 1.5707963267948966 hash identically.
//
// Each scenario runs against a fresh in-memory store with a deterministic
// clock and a fixed run id, so the recorded trace is byte-identical across
// runs and can be compared with a golden snapshot.
package harness
