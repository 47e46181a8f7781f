package catalog

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/roach88/arcs/internal/ir"
	"github.com/roach88/arcs/internal/s1"
)

// Catalog is an immutable-after-load set of named intervals.
type Catalog struct {
	intervals map[string]s1.Interval
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{intervals: make(map[string]s1.Interval)}
}

// Add defines name. Redefining a name is an error.
func (c *Catalog) Add(name string, i s1.Interval) error {
	if _, ok := c.intervals[name]; ok {
		return &LoadError{Code: ErrCodeDuplicate, Name: name, Message: "defined more than once"}
	}
	c.intervals[name] = i
	return nil
}

// Get looks up name. A nil catalog is empty.
func (c *Catalog) Get(name string) (s1.Interval, bool) {
	if c == nil {
		return s1.Interval{}, false
	}
	i, ok := c.intervals[name]
	return i, ok
}

// Names returns every defined name in sorted order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(c.intervals))
}

// Len returns the number of definitions.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.intervals)
}

// Overlay returns a catalog holding base's definitions with top's layered
// over them. Neither input is modified.
func Overlay(base, top *Catalog) *Catalog {
	out := New()
	for _, src := range []*Catalog{base, top} {
		if src == nil {
			continue
		}
		maps.Copy(out.intervals, src.intervals)
	}
	return out
}

// Def is one interval definition in any of the supported shapes. Exactly one
// shape must be set. Angle fields hold numbers or angle strings.
type Def struct {
	Lo     any   `yaml:"lo,omitempty"`
	Hi     any   `yaml:"hi,omitempty"`
	Point  any   `yaml:"point,omitempty"`
	Points []any `yaml:"points,omitempty"`
	Empty  bool  `yaml:"empty,omitempty"`
	Full   bool  `yaml:"full,omitempty"`
}

// Interval validates the definition and builds its interval. Errors are
// *LoadError values without a position.
func (d Def) Interval() (s1.Interval, error) {
	shapes := 0
	for _, set := range []bool{d.Lo != nil || d.Hi != nil, d.Point != nil, d.Points != nil, d.Empty, d.Full} {
		if set {
			shapes++
		}
	}
	if shapes != 1 {
		return s1.Interval{}, &LoadError{Code: ErrCodeSchema,
			Message: "exactly one of {lo, hi}, point, points, empty or full must be given"}
	}

	switch {
	case d.Empty:
		return s1.EmptyInterval(), nil
	case d.Full:
		return s1.FullInterval(), nil
	case d.Point != nil:
		p, err := point("point", d.Point)
		if err != nil {
			return s1.Interval{}, err
		}
		return s1.IntervalFromPoint(p), nil
	case d.Points != nil:
		if len(d.Points) != 2 {
			return s1.Interval{}, &LoadError{Code: ErrCodeSchema,
				Message: fmt.Sprintf("points needs 2 angles, got %d", len(d.Points))}
		}
		p1, err := point("points[0]", d.Points[0])
		if err != nil {
			return s1.Interval{}, err
		}
		p2, err := point("points[1]", d.Points[1])
		if err != nil {
			return s1.Interval{}, err
		}
		return s1.IntervalFromPointPair(p1, p2), nil
	default:
		if d.Lo == nil || d.Hi == nil {
			return s1.Interval{}, &LoadError{Code: ErrCodeSchema, Message: "lo and hi must both be given"}
		}
		lo, err := point("lo", d.Lo)
		if err != nil {
			return s1.Interval{}, err
		}
		hi, err := point("hi", d.Hi)
		if err != nil {
			return s1.Interval{}, err
		}
		return s1.NewInterval(lo, hi)
	}
}

// point decodes an angle and checks it lies in [-π, π].
func point(field string, v any) (float64, error) {
	x, err := angle(v)
	if err != nil {
		return 0, &LoadError{Code: ErrCodeBadAngle, Message: fmt.Sprintf("%s: %v", field, err)}
	}
	if math.IsNaN(x) || math.Abs(x) > math.Pi {
		return 0, &LoadError{Code: ErrCodeOutOfRange, Message: fmt.Sprintf("%s: %v outside [-π, π]", field, x)}
	}
	return x, nil
}

func angle(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case string:
		return ir.ParseAngle(x)
	default:
		return 0, fmt.Errorf("expected number or angle string, got %T", v)
	}
}
