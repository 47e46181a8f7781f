package s1

// Union returns the smallest interval containing both intervals.
func (i Interval) Union(oi Interval) Interval {
	if oi.IsEmpty() {
		return i
	}
	if i.fastContains(oi.lo) {
		if i.fastContains(oi.hi) {
			// Either oi is inside i, or together they wrap the whole circle.
			if i.ContainsInterval(oi) {
				return i
			}
			return FullInterval()
		}
		return interval(i.lo, oi.hi)
	}
	if i.fastContains(oi.hi) {
		return interval(oi.lo, i.hi)
	}

	// Neither endpoint of oi is in i: either i is inside oi or they are disjoint.
	if i.IsEmpty() || oi.fastContains(i.lo) {
		return oi
	}

	// Disjoint. Bridge across whichever gap is shorter.
	if positiveDistance(oi.hi, i.lo) < positiveDistance(i.hi, oi.lo) {
		return interval(oi.lo, i.hi)
	}
	return interval(i.lo, oi.hi)
}

// Intersection returns the smallest interval containing the intersection of
// the two intervals. When the intersection is two disjoint arcs the result is
// the shorter of the two inputs.
func (i Interval) Intersection(oi Interval) Interval {
	if oi.IsEmpty() {
		return EmptyInterval()
	}
	if i.fastContains(oi.lo) {
		if i.fastContains(oi.hi) {
			// oi is inside i, or they overlap at both ends. The shorter input
			// is the answer in both cases.
			if oi.Length() < i.Length() {
				return oi
			}
			return i
		}
		return interval(oi.lo, i.hi)
	}
	if i.fastContains(oi.hi) {
		return interval(i.lo, oi.hi)
	}

	// Neither endpoint of oi is in i: either i is inside oi or they are disjoint.
	if oi.fastContains(i.lo) {
		return i
	}
	checkf(!i.Intersects(oi), CodeInternal, "Intersection",
		"%v and %v intersect but no endpoint is shared", i, oi)
	return EmptyInterval()
}
