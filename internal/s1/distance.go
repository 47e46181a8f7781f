package s1

import "math"

// positiveDistance returns the counter-clockwise distance from a to b, in
// [0, 2π). Unlike remainder(b-a-π, 2π)+π it keeps full precision for small
// distances that cross the seam.
func positiveDistance(a, b float64) float64 {
	d := b - a
	if d >= 0 {
		return d
	}
	// With b == π and a == -π+ε this yields about 2π, not zero.
	return (b + math.Pi) - (a - math.Pi)
}

// DirectedHausdorffDistance returns the largest distance from a point of the
// interval to its nearest point of oi. It is 0 when oi contains the interval
// (in particular when the interval is empty) and π when oi is empty and the
// interval is not.
func (i Interval) DirectedHausdorffDistance(oi Interval) float64 {
	if oi.ContainsInterval(i) {
		return 0
	}
	if oi.IsEmpty() {
		return math.Pi
	}

	c := oi.ComplementCenter()
	if i.Contains(c) {
		return positiveDistance(oi.hi, c)
	}

	// Otherwise the distance is realized between the two hi endpoints or the
	// two lo endpoints, whichever pair is farther apart.
	var hiHi, loLo float64
	if canonicalInterval(oi.hi, c).Contains(i.hi) {
		hiHi = positiveDistance(oi.hi, i.hi)
	}
	if canonicalInterval(c, oi.lo).Contains(i.lo) {
		loLo = positiveDistance(i.lo, oi.lo)
	}
	checkf(hiHi > 0 || loLo > 0, CodeInternal, "DirectedHausdorffDistance",
		"no positive endpoint distance from %v to %v", i, oi)
	return math.Max(hiHi, loLo)
}
