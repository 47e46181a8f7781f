package s1

// fastContains is Contains for an already canonical p in (-π, π].
func (i Interval) fastContains(p float64) bool {
	if i.IsInverted() {
		return (p >= i.lo || p <= i.hi) && !i.IsEmpty()
	}
	return p >= i.lo && p <= i.hi
}

// Contains reports whether the closed arc contains p, an angle in [-π, π].
func (i Interval) Contains(p float64) bool {
	checkAngle("Contains", p)
	return i.fastContains(canonicalAngle(p))
}

// InteriorContains reports whether the open arc contains p. The interior of
// the full interval contains every point.
func (i Interval) InteriorContains(p float64) bool {
	checkAngle("InteriorContains", p)
	p = canonicalAngle(p)
	if i.IsInverted() {
		return p > i.lo || p < i.hi
	}
	return (p > i.lo && p < i.hi) || i.IsFull()
}

// ContainsInterval reports whether oi is a subset of the interval. Every
// interval contains the empty interval.
func (i Interval) ContainsInterval(oi Interval) bool {
	if i.IsInverted() {
		if oi.IsInverted() {
			return oi.lo >= i.lo && oi.hi <= i.hi
		}
		return (oi.lo >= i.lo || oi.hi <= i.hi) && !i.IsEmpty()
	}
	// A non-inverted arc only holds an inverted one if it is everything.
	if oi.IsInverted() {
		return i.IsFull() || oi.IsEmpty()
	}
	return oi.lo >= i.lo && oi.hi <= i.hi
}

// InteriorContainsInterval reports whether oi is a subset of the interior of
// the interval.
func (i Interval) InteriorContainsInterval(oi Interval) bool {
	if i.IsInverted() {
		if !oi.IsInverted() {
			return oi.lo > i.lo || oi.hi < i.hi
		}
		return (oi.lo > i.lo && oi.hi < i.hi) || oi.IsEmpty()
	}
	if oi.IsInverted() {
		return i.IsFull() || oi.IsEmpty()
	}
	return (oi.lo > i.lo && oi.hi < i.hi) || i.IsFull()
}

// Intersects reports whether the two arcs share at least one point.
func (i Interval) Intersects(oi Interval) bool {
	if i.IsEmpty() || oi.IsEmpty() {
		return false
	}
	if i.IsInverted() {
		// Every non-empty inverted interval contains π.
		return oi.IsInverted() || oi.lo <= i.hi || oi.hi >= i.lo
	}
	if oi.IsInverted() {
		return oi.lo <= i.hi || oi.hi >= i.lo
	}
	return oi.lo <= i.hi && oi.hi >= i.lo
}

// InteriorIntersects reports whether the interior of the interval shares a
// point with oi, boundary of oi included. A singleton has no interior.
func (i Interval) InteriorIntersects(oi Interval) bool {
	if i.IsEmpty() || oi.IsEmpty() || i.lo == i.hi {
		return false
	}
	if i.IsInverted() {
		return oi.IsInverted() || oi.lo < i.hi || oi.hi > i.lo
	}
	if oi.IsInverted() {
		return oi.lo < i.hi || oi.hi > i.lo
	}
	return (oi.lo < i.hi && oi.hi > i.lo) || i.IsFull()
}
