package s1

import (
	"fmt"
	"math"
	"strconv"
)

// dblEpsilon is the gap between 1 and the next representable float64.
var dblEpsilon = math.Nextafter(1, 2) - 1

// Interval is a closed arc of the unit circle. See the package documentation
// for the meaning of its endpoints. The zero value is the singleton {0, 0}.
type Interval struct {
	lo, hi float64
}

// NewInterval returns the interval [lo, hi]. Both endpoints must lie in
// [-π, π]; lo > hi builds an inverted interval. An endpoint of -π is
// canonicalized to π unless the pair is exactly the full interval {-π, π}.
func NewInterval(lo, hi float64) (Interval, error) {
	if !validAngle(lo) || !validAngle(hi) {
		return Interval{}, &ContractError{
			Code:    CodeOutOfRange,
			Op:      "NewInterval",
			Message: fmt.Sprintf("endpoints [%v, %v] outside [-π, π]", lo, hi),
		}
	}
	return canonicalInterval(lo, hi), nil
}

// MustInterval is like NewInterval but panics on invalid endpoints.
// Use only for literals and in tests.
func MustInterval(lo, hi float64) Interval {
	i, err := NewInterval(lo, hi)
	if err != nil {
		panic(err)
	}
	return i
}

// canonicalInterval applies endpoint canonicalization without range checks.
func canonicalInterval(lo, hi float64) Interval {
	i := Interval{lo, hi}
	if lo == -math.Pi && hi != math.Pi {
		i.lo = math.Pi
	}
	if hi == -math.Pi && lo != math.Pi {
		i.hi = math.Pi
	}
	return i
}

// interval wraps endpoints that are already canonical and in range, such as
// endpoints taken from other valid intervals. It performs no checks.
func interval(lo, hi float64) Interval {
	return Interval{lo, hi}
}

// EmptyInterval returns the interval containing no points.
func EmptyInterval() Interval { return Interval{math.Pi, -math.Pi} }

// FullInterval returns the interval containing every point of the circle.
func FullInterval() Interval { return Interval{-math.Pi, math.Pi} }

// IntervalFromPoint returns the singleton interval containing only p.
func IntervalFromPoint(p float64) Interval {
	checkAngle("IntervalFromPoint", p)
	p = canonicalAngle(p)
	return interval(p, p)
}

// canonicalAngle maps -π to π and leaves every other angle alone.
func canonicalAngle(p float64) float64 {
	if p == -math.Pi {
		return math.Pi
	}
	return p
}

// Lo returns the low endpoint.
func (i Interval) Lo() float64 { return i.lo }

// Hi returns the high endpoint.
func (i Interval) Hi() float64 { return i.hi }

// IsValid reports whether both endpoints are in range and canonical.
func (i Interval) IsValid() bool {
	return validAngle(i.lo) && validAngle(i.hi) &&
		!(i.lo == -math.Pi && i.hi != math.Pi) &&
		!(i.hi == -math.Pi && i.lo != math.Pi)
}

// IsFull reports whether the interval covers the whole circle.
func (i Interval) IsFull() bool { return i.lo == -math.Pi && i.hi == math.Pi }

// IsEmpty reports whether the interval contains no points.
func (i Interval) IsEmpty() bool { return i.lo == math.Pi && i.hi == -math.Pi }

// IsInverted reports whether lo > hi. The empty interval is inverted.
func (i Interval) IsInverted() bool { return i.lo > i.hi }

// Equal reports whether both endpoints match exactly. All empty intervals are
// the same value, as are all full ones.
func (i Interval) Equal(oi Interval) bool {
	return i.lo == oi.lo && i.hi == oi.hi
}

// Center returns the midpoint of the arc, in (-π, π]. The center of the
// empty interval is π and the center of the full interval is 0.
func (i Interval) Center() float64 {
	c := 0.5 * (i.lo + i.hi)
	if !i.IsInverted() {
		return c
	}
	// The numeric midpoint of an inverted pair is opposite the arc.
	if c <= 0 {
		return c + math.Pi
	}
	return c - math.Pi
}

// Length returns the arc length. Singletons have length 0 and the empty
// interval reports -1.
func (i Interval) Length() float64 {
	l := i.hi - i.lo
	if l >= 0 {
		return l
	}
	l += 2 * math.Pi
	if l > 0 {
		return l
	}
	return -1
}

// Complement returns the closure of the set of points not in the interval.
// The complement of a singleton is the full interval.
func (i Interval) Complement() Interval {
	if i.lo == i.hi {
		return FullInterval()
	}
	// Swapping also maps empty to full and full to empty.
	return interval(i.hi, i.lo)
}

// ComplementCenter returns the midpoint of the complement, in (-π, π].
// For a singleton this is the antipodal point.
func (i Interval) ComplementCenter() float64 {
	if i.lo != i.hi {
		return i.Complement().Center()
	}
	if i.hi <= 0 {
		return i.hi + math.Pi
	}
	return i.hi - math.Pi
}

// String formats the interval as "[lo, hi]" with seven decimals.
func (i Interval) String() string {
	return "[" + strconv.FormatFloat(i.lo, 'f', 7, 64) + ", " +
		strconv.FormatFloat(i.hi, 'f', 7, 64) + "]"
}
