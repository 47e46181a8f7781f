package harness

import (
	"fmt"
	"slices"
	"strings"

	"github.com/roach88/arcs/internal/catalog"
	"github.com/roach88/arcs/internal/ir"
	"github.com/roach88/arcs/internal/s1"
)

// resolver turns YAML argument values into IR using a set of named intervals.
type resolver struct {
	names *catalog.Catalog
}

// args resolves every step argument. Keys are kept as written; eval rejects
// keys the operation does not take.
func (r resolver) args(raw map[string]any) (ir.IRObject, error) {
	out := make(ir.IRObject, len(raw))
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		v, err := r.value(raw[k])
		if err != nil {
			return nil, fmt.Errorf("arg %s: %w", k, err)
		}
		out[k] = v
	}
	return out, nil
}

// value resolves one argument: $name and shape maps become intervals,
// numbers and other strings become exact angles.
func (r resolver) value(v any) (ir.IRValue, error) {
	switch x := v.(type) {
	case string:
		if name, ok := strings.CutPrefix(x, "$"); ok {
			i, found := r.names.Get(name)
			if !found {
				return nil, fmt.Errorf("unknown interval $%s", name)
			}
			return ir.IntervalValue(i), nil
		}
		a, err := ir.ParseAngle(x)
		if err != nil {
			return nil, err
		}
		return ir.Angle(a), nil
	case int:
		return ir.Angle(float64(x)), nil
	case float64:
		return ir.Angle(x), nil
	case map[string]any:
		i, err := r.interval(x)
		if err != nil {
			return nil, err
		}
		return ir.IntervalValue(i), nil
	default:
		return nil, fmt.Errorf("unsupported argument %v (%T)", v, v)
	}
}

// interval resolves a $name or a shape map to an interval.
func (r resolver) interval(v any) (s1.Interval, error) {
	switch x := v.(type) {
	case string:
		name, ok := strings.CutPrefix(x, "$")
		if !ok {
			return s1.Interval{}, fmt.Errorf("expected $name or interval map, got %q", x)
		}
		i, found := r.names.Get(name)
		if !found {
			return s1.Interval{}, fmt.Errorf("unknown interval $%s", name)
		}
		return i, nil
	case map[string]any:
		d, err := defFromMap(x)
		if err != nil {
			return s1.Interval{}, err
		}
		return d.Interval()
	default:
		return s1.Interval{}, fmt.Errorf("expected $name or interval map, got %T", v)
	}
}

// defFromMap reads an inline shape map into a catalog definition.
func defFromMap(m map[string]any) (catalog.Def, error) {
	var d catalog.Def
	for k, v := range m {
		switch k {
		case "lo":
			d.Lo = v
		case "hi":
			d.Hi = v
		case "point":
			d.Point = v
		case "points":
			list, ok := v.([]any)
			if !ok {
				return d, fmt.Errorf("points must be a list")
			}
			d.Points = list
		case "empty":
			b, ok := v.(bool)
			if !ok {
				return d, fmt.Errorf("empty must be a bool")
			}
			d.Empty = b
		case "full":
			b, ok := v.(bool)
			if !ok {
				return d, fmt.Errorf("full must be a bool")
			}
			d.Full = b
		default:
			return d, fmt.Errorf("unknown interval field %q", k)
		}
	}
	return d, nil
}

// angle resolves an expected value.
func angle(v any) (float64, error) {
	switch x := v.(type) {
	case int:
		return float64(x), nil
	case float64:
		return x, nil
	case string:
		return ir.ParseAngle(x)
	default:
		return 0, fmt.Errorf("expected angle, got %T", v)
	}
}
