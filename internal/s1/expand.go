package s1

import "math"

// AddPoint returns the smallest interval containing both the interval and
// p, an angle in [-π, π]. Adding a point never makes a non-full interval full.
func (i Interval) AddPoint(p float64) Interval {
	checkAngle("AddPoint", p)
	p = canonicalAngle(p)
	if i.fastContains(p) {
		return i
	}
	if i.IsEmpty() {
		return interval(p, p)
	}
	if positiveDistance(p, i.lo) < positiveDistance(i.hi, p) {
		return interval(p, i.hi)
	}
	return interval(i.lo, p)
}

// Project returns the point of the interval closest to p. The interval must
// not be empty; an empty interval returns p unchanged when checks are off.
func (i Interval) Project(p float64) float64 {
	checkf(!i.IsEmpty(), CodeEmptyInterval, "Project", "cannot project onto the empty interval")
	checkAngle("Project", p)
	p = canonicalAngle(p)
	if i.fastContains(p) || i.IsEmpty() {
		return p
	}
	if positiveDistance(p, i.lo) < positiveDistance(i.hi, p) {
		return i.lo
	}
	return i.hi
}

// IntervalFromPointPair returns the shorter of the two arcs joining p1 and p2
// (at most π long). When both arcs are π long, p1 is the low endpoint.
func IntervalFromPointPair(p1, p2 float64) Interval {
	checkAngle("IntervalFromPointPair", p1)
	checkAngle("IntervalFromPointPair", p2)
	p1, p2 = canonicalAngle(p1), canonicalAngle(p2)
	if positiveDistance(p1, p2) <= math.Pi {
		return interval(p1, p2)
	}
	return interval(p2, p1)
}

// Expanded returns the interval grown by margin on each side, or shrunk when
// margin is negative. Growth that would cover the circle to within rounding
// error yields the full interval and shrinking to zero length or less yields
// the empty interval. Expanding the empty interval by any non-negative margin
// leaves it empty; shrinking the full interval leaves it full.
func (i Interval) Expanded(margin float64) Interval {
	if margin >= 0 {
		if i.IsEmpty() {
			return i
		}
		// Allow one bit of rounding error when computing each endpoint.
		if i.Length()+2*margin+2*dblEpsilon >= 2*math.Pi {
			return FullInterval()
		}
	} else {
		if i.IsFull() {
			return i
		}
		if i.Length()+2*margin-2*dblEpsilon <= 0 {
			return EmptyInterval()
		}
	}
	result := canonicalInterval(
		math.Remainder(i.lo-margin, 2*math.Pi),
		math.Remainder(i.hi+margin, 2*math.Pi),
	)
	if result.lo <= -math.Pi {
		result.lo = math.Pi
	}
	return result
}

// DefaultMaxError is a tolerance suited to comparing results of a few
// floating point operations.
const DefaultMaxError = 1e-15

// ApproxEquals reports whether the intervals can be made equal by moving each
// endpoint by at most maxError radians. Empty and full intervals, whose
// endpoints carry no position, compare by length.
func (i Interval) ApproxEquals(oi Interval, maxError float64) bool {
	if i.IsEmpty() {
		return oi.Length() <= 2*maxError
	}
	if oi.IsEmpty() {
		return i.Length() <= 2*maxError
	}
	if i.IsFull() {
		return oi.Length() >= 2*(math.Pi-maxError)
	}
	if oi.IsFull() {
		return i.Length() >= 2*(math.Pi-maxError)
	}

	// The length check rejects pairs whose endpoints are close but whose
	// orientation differs, e.g. [-ε, ε] and [ε, -ε].
	return math.Abs(math.Remainder(oi.lo-i.lo, 2*math.Pi)) <= maxError &&
		math.Abs(math.Remainder(oi.hi-i.hi, 2*math.Pi)) <= maxError &&
		math.Abs(i.Length()-oi.Length()) <= 2*maxError
}
