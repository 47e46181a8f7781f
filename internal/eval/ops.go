package eval

import (
	"cmp"
	"slices"

	"github.com/roach88/arcs/internal/ir"
	"github.com/roach88/arcs/internal/s1"
)

// ResultKind is the shape of an operation's result object.
type ResultKind string

const (
	ResultInterval ResultKind = "interval"
	ResultValue    ResultKind = "value"
	ResultBool     ResultKind = "bool"
)

// OpInfo describes a registered operation.
type OpInfo struct {
	Name   string     `json:"name"`
	Params []Param    `json:"params"`
	Result ResultKind `json:"result"`
	Doc    string     `json:"doc"`
}

type operation struct {
	OpInfo
	apply func(v values) (ir.IRObject, error)
}

var (
	pA        = Param{Name: "a", Kind: KindInterval}
	pB        = Param{Name: "b", Kind: KindInterval}
	pP        = Param{Name: "p", Kind: KindPoint}
	pP1       = Param{Name: "p1", Kind: KindPoint}
	pP2       = Param{Name: "p2", Kind: KindPoint}
	pMargin   = Param{Name: "margin", Kind: KindReal}
	pMaxError = Param{Name: "max_error", Kind: KindReal, Optional: true}
)

func intervalResult(i s1.Interval) ir.IRObject {
	return ir.IRObject{"interval": ir.IntervalValue(i)}
}

func valueResult(x float64) ir.IRObject {
	return ir.IRObject{"value": ir.Angle(x)}
}

func boolResult(b bool) ir.IRObject {
	return ir.IRObject{"bool": ir.IRBool(b)}
}

// unary registers an operation on a single interval a.
func unary[T any](name, doc string, kind ResultKind, wrap func(T) ir.IRObject, fn func(s1.Interval) T) operation {
	return operation{
		OpInfo: OpInfo{Name: name, Params: []Param{pA}, Result: kind, Doc: doc},
		apply: func(v values) (ir.IRObject, error) {
			return wrap(fn(v.interval("a"))), nil
		},
	}
}

// binary registers an operation on two intervals a and b.
func binary[T any](name, doc string, kind ResultKind, wrap func(T) ir.IRObject, fn func(a, b s1.Interval) T) operation {
	return operation{
		OpInfo: OpInfo{Name: name, Params: []Param{pA, pB}, Result: kind, Doc: doc},
		apply: func(v values) (ir.IRObject, error) {
			return wrap(fn(v.interval("a"), v.interval("b"))), nil
		},
	}
}

// withPoint registers an operation on interval a and point p.
func withPoint[T any](name, doc string, kind ResultKind, wrap func(T) ir.IRObject, fn func(a s1.Interval, p float64) T) operation {
	return operation{
		OpInfo: OpInfo{Name: name, Params: []Param{pA, pP}, Result: kind, Doc: doc},
		apply: func(v values) (ir.IRObject, error) {
			return wrap(fn(v.interval("a"), v.real("p"))), nil
		},
	}
}

var registry = buildRegistry(
	operation{
		OpInfo: OpInfo{Name: "from_point", Params: []Param{pP}, Result: ResultInterval,
			Doc: "singleton interval containing p"},
		apply: func(v values) (ir.IRObject, error) {
			return intervalResult(s1.IntervalFromPoint(v.real("p"))), nil
		},
	},
	operation{
		OpInfo: OpInfo{Name: "from_point_pair", Params: []Param{pP1, pP2}, Result: ResultInterval,
			Doc: "shortest interval containing p1 and p2"},
		apply: func(v values) (ir.IRObject, error) {
			return intervalResult(s1.IntervalFromPointPair(v.real("p1"), v.real("p2"))), nil
		},
	},

	unary("center", "midpoint of a", ResultValue, valueResult, s1.Interval.Center),
	unary("length", "arc length of a, -1 when empty", ResultValue, valueResult, s1.Interval.Length),
	unary("complement", "closure of the points not in a", ResultInterval, intervalResult, s1.Interval.Complement),
	unary("complement_center", "midpoint of the complement of a", ResultValue, valueResult, s1.Interval.ComplementCenter),
	unary("is_empty", "a contains no points", ResultBool, boolResult, s1.Interval.IsEmpty),
	unary("is_full", "a contains every point", ResultBool, boolResult, s1.Interval.IsFull),
	unary("is_inverted", "a has lo > hi", ResultBool, boolResult, s1.Interval.IsInverted),

	withPoint("contains", "p lies in a", ResultBool, boolResult, s1.Interval.Contains),
	withPoint("interior_contains", "p lies in the interior of a", ResultBool, boolResult, s1.Interval.InteriorContains),
	withPoint("add_point", "smallest interval containing a and p", ResultInterval, intervalResult, s1.Interval.AddPoint),

	binary("contains_interval", "b is a subset of a", ResultBool, boolResult, s1.Interval.ContainsInterval),
	binary("interior_contains_interval", "b is a subset of the interior of a", ResultBool, boolResult, s1.Interval.InteriorContainsInterval),
	binary("intersects", "a and b share a point", ResultBool, boolResult, s1.Interval.Intersects),
	binary("interior_intersects", "the interior of a meets b", ResultBool, boolResult, s1.Interval.InteriorIntersects),
	binary("union", "smallest interval containing a and b", ResultInterval, intervalResult, s1.Interval.Union),
	binary("intersection", "smallest interval containing the common points of a and b", ResultInterval, intervalResult, s1.Interval.Intersection),
	binary("hausdorff", "directed Hausdorff distance from a to b", ResultValue, valueResult, s1.Interval.DirectedHausdorffDistance),

	operation{
		OpInfo: OpInfo{Name: "project", Params: []Param{pA, pP}, Result: ResultValue,
			Doc: "closest point of a to p; a must not be empty"},
		apply: func(v values) (ir.IRObject, error) {
			a := v.interval("a")
			if a.IsEmpty() {
				return nil, &Error{Code: ErrCodeContract, Op: "project", Arg: "a", Message: "cannot project onto an empty interval"}
			}
			return valueResult(a.Project(v.real("p"))), nil
		},
	},
	operation{
		OpInfo: OpInfo{Name: "expanded", Params: []Param{pA, pMargin}, Result: ResultInterval,
			Doc: "a grown on both sides by margin, shrunk when margin is negative"},
		apply: func(v values) (ir.IRObject, error) {
			return intervalResult(v.interval("a").Expanded(v.real("margin"))), nil
		},
	},
	operation{
		OpInfo: OpInfo{Name: "approx_equals", Params: []Param{pA, pB, pMaxError}, Result: ResultBool,
			Doc: "a can become b by moving each endpoint at most max_error (default 1e-15)"},
		apply: func(v values) (ir.IRObject, error) {
			maxError := s1.DefaultMaxError
			if v.has("max_error") {
				maxError = v.real("max_error")
			}
			return boolResult(v.interval("a").ApproxEquals(v.interval("b"), maxError)), nil
		},
	},
)

func buildRegistry(ops ...operation) map[string]operation {
	m := make(map[string]operation, len(ops))
	for _, op := range ops {
		if _, dup := m[op.Name]; dup {
			panic("eval: duplicate operation " + op.Name)
		}
		m[op.Name] = op
	}
	return m
}

// Ops returns every registered operation sorted by name.
func Ops() []OpInfo {
	out := make([]OpInfo, 0, len(registry))
	for _, op := range registry {
		out = append(out, op.OpInfo)
	}
	slices.SortFunc(out, func(a, b OpInfo) int { return cmp.Compare(a.Name, b.Name) })
	return out
}

// Lookup returns the description of a registered operation.
func Lookup(name string) (OpInfo, bool) {
	op, ok := registry[name]
	return op.OpInfo, ok
}
