package eval

import (
	"fmt"
	"math"

	"github.com/roach88/arcs/internal/ir"
	"github.com/roach88/arcs/internal/s1"
)

// ParamKind describes how a parameter is decoded.
type ParamKind string

const (
	// KindInterval is an {"lo","hi"} object.
	KindInterval ParamKind = "interval"

	// KindPoint is an angle in [-π, π].
	KindPoint ParamKind = "point"

	// KindReal is any finite angle-encoded real.
	KindReal ParamKind = "real"
)

// Param is one named parameter of an operation.
type Param struct {
	Name     string    `json:"name"`
	Kind     ParamKind `json:"kind"`
	Optional bool      `json:"optional,omitempty"`
}

// values holds decoded arguments for one call.
type values struct {
	intervals map[string]s1.Interval
	reals     map[string]float64
}

func (v values) interval(name string) s1.Interval { return v.intervals[name] }

func (v values) real(name string) float64 { return v.reals[name] }

func (v values) has(name string) bool {
	_, ok := v.reals[name]
	if !ok {
		_, ok = v.intervals[name]
	}
	return ok
}

// decodeArgs checks args against params and decodes every supplied value.
func decodeArgs(op string, params []Param, args ir.IRObject) (values, error) {
	v := values{
		intervals: make(map[string]s1.Interval),
		reals:     make(map[string]float64),
	}

	known := make(map[string]bool, len(params))
	for _, p := range params {
		known[p.Name] = true
	}
	for _, k := range args.SortedKeys() {
		if !known[k] {
			return values{}, &Error{Code: ErrCodeBadArg, Op: op, Arg: k, Message: "unexpected argument"}
		}
	}

	for _, p := range params {
		raw, ok := args[p.Name]
		if !ok {
			if p.Optional {
				continue
			}
			return values{}, &Error{Code: ErrCodeMissingArg, Op: op, Arg: p.Name, Message: "required argument not supplied"}
		}

		switch p.Kind {
		case KindInterval:
			i, err := ir.ToInterval(raw)
			if err != nil {
				return values{}, badArg(op, p.Name, err)
			}
			v.intervals[p.Name] = i
		case KindPoint:
			x, err := ir.AngleOf(raw)
			if err != nil {
				return values{}, badArg(op, p.Name, err)
			}
			if math.IsNaN(x) || math.Abs(x) > math.Pi {
				return values{}, badArg(op, p.Name, fmt.Errorf("point %v outside [-π, π]", x))
			}
			v.reals[p.Name] = x
		case KindReal:
			x, err := ir.AngleOf(raw)
			if err != nil {
				return values{}, badArg(op, p.Name, err)
			}
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return values{}, badArg(op, p.Name, fmt.Errorf("value %v is not finite", x))
			}
			v.reals[p.Name] = x
		}
	}
	return v, nil
}
