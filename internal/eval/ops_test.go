package eval

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/arcs/internal/ir"
	"github.com/roach88/arcs/internal/s1"
)

func TestOpsRegistry(t *testing.T) {
	ops := Ops()
	require.Len(t, ops, 22)

	for i, op := range ops {
		assert.NotEmpty(t, op.Doc, op.Name)
		assert.NotEmpty(t, op.Params, op.Name)
		assert.Contains(t, []ResultKind{ResultInterval, ResultValue, ResultBool}, op.Result, op.Name)
		if i > 0 {
			assert.Less(t, ops[i-1].Name, op.Name)
		}
	}

	info, ok := Lookup("approx_equals")
	require.True(t, ok)
	assert.Equal(t, []Param{pA, pB, pMaxError}, info.Params)

	_, ok = Lookup("nope")
	assert.False(t, ok)
}

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		op   string
		args ir.IRObject
		want ir.IRObject
	}{
		{"contains inside", "contains",
			ir.IRObject{"a": iv(0, 1), "p": ir.Angle(0.5)},
			ir.IRObject{"bool": ir.IRBool(true)}},
		{"contains outside", "contains",
			ir.IRObject{"a": iv(0, 1), "p": ir.Angle(2)},
			ir.IRObject{"bool": ir.IRBool(false)}},
		{"interior excludes endpoint", "interior_contains",
			ir.IRObject{"a": iv(0, 1), "p": ir.Angle(1)},
			ir.IRObject{"bool": ir.IRBool(false)}},
		{"length", "length",
			ir.IRObject{"a": iv(0, 1)},
			ir.IRObject{"value": ir.IRString("1")}},
		{"length of empty", "length",
			ir.IRObject{"a": ir.IntervalValue(s1.EmptyInterval())},
			ir.IRObject{"value": ir.IRString("-1")}},
		{"union closes the shorter gap", "union",
			ir.IRObject{"a": iv(0, 1), "b": iv(2, 3)},
			ir.IRObject{"interval": iv(0, 3)}},
		{"intersection", "intersection",
			ir.IRObject{"a": iv(0, 2), "b": iv(1, 3)},
			ir.IRObject{"interval": iv(1, 2)}},
		{"expanded", "expanded",
			ir.IRObject{"a": iv(0, 1), "margin": ir.Angle(0.5)},
			ir.IRObject{"interval": iv(-0.5, 1.5)}},
		{"from_point canonicalizes -pi", "from_point",
			ir.IRObject{"p": ir.IRString("-pi")},
			ir.IRObject{"interval": iv(math.Pi, math.Pi)}},
		{"from_point_pair", "from_point_pair",
			ir.IRObject{"p1": ir.Angle(1), "p2": ir.Angle(0)},
			ir.IRObject{"interval": iv(0, 1)}},
		{"add_point", "add_point",
			ir.IRObject{"a": iv(0, 1), "p": ir.Angle(2)},
			ir.IRObject{"interval": iv(0, 2)}},
		{"project outside", "project",
			ir.IRObject{"a": iv(0, 1), "p": ir.Angle(1.5)},
			ir.IRObject{"value": ir.IRString("1")}},
		{"hausdorff subset", "hausdorff",
			ir.IRObject{"a": iv(0.25, 0.5), "b": iv(0, 1)},
			ir.IRObject{"value": ir.IRString("0")}},
		{"is_inverted", "is_inverted",
			ir.IRObject{"a": iv(3, -3)},
			ir.IRObject{"bool": ir.IRBool(true)}},
		{"is_full", "is_full",
			ir.IRObject{"a": iv(-math.Pi, math.Pi)},
			ir.IRObject{"bool": ir.IRBool(true)}},
		{"approx_equals default tolerance", "approx_equals",
			ir.IRObject{"a": iv(0, 1), "b": iv(0, 1.1)},
			ir.IRObject{"bool": ir.IRBool(false)}},
		{"approx_equals explicit tolerance", "approx_equals",
			ir.IRObject{"a": iv(0, 1), "b": iv(0, 1.1), "max_error": ir.Angle(0.2)},
			ir.IRObject{"bool": ir.IRBool(true)}},
		{"contains_interval", "contains_interval",
			ir.IRObject{"a": iv(0, 2), "b": iv(0.5, 1)},
			ir.IRObject{"bool": ir.IRBool(true)}},
		{"intersects across seam", "intersects",
			ir.IRObject{"a": iv(3, -3), "b": iv(-3.1, -3.05)},
			ir.IRObject{"bool": ir.IRBool(true)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.op, tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyEveryOpOnFullInterval(t *testing.T) {
	full := iv(-math.Pi, math.Pi)
	for _, op := range Ops() {
		args := ir.IRObject{}
		for _, p := range op.Params {
			switch p.Kind {
			case KindInterval:
				args[p.Name] = full
			case KindPoint, KindReal:
				args[p.Name] = ir.Angle(0.25)
			}
		}
		t.Run(op.Name, func(t *testing.T) {
			res, err := Apply(op.Name, args)
			require.NoError(t, err)
			require.Len(t, res, 1)
			_, ok := res[string(op.Result)]
			assert.True(t, ok, "result key %q", op.Result)
		})
	}
}

func TestApplyErrors(t *testing.T) {
	tests := []struct {
		name string
		op   string
		args ir.IRObject
		code ErrorCode
	}{
		{"unknown op", "rotate", ir.IRObject{}, ErrCodeUnknownOp},
		{"missing a", "length", ir.IRObject{}, ErrCodeMissingArg},
		{"missing p", "contains", ir.IRObject{"a": iv(0, 1)}, ErrCodeMissingArg},
		{"unexpected arg", "length", ir.IRObject{"a": iv(0, 1), "b": iv(0, 1)}, ErrCodeBadArg},
		{"point out of range", "contains", ir.IRObject{"a": iv(0, 1), "p": ir.Angle(4)}, ErrCodeBadArg},
		{"point NaN", "contains", ir.IRObject{"a": iv(0, 1), "p": ir.IRString("NaN")}, ErrCodeBadArg},
		{"point not an angle", "contains", ir.IRObject{"a": iv(0, 1), "p": ir.IRBool(true)}, ErrCodeBadArg},
		{"interval out of range", "length", ir.IRObject{"a": ir.IRObject{"lo": ir.Angle(0), "hi": ir.Angle(5)}}, ErrCodeBadArg},
		{"margin infinite", "expanded", ir.IRObject{"a": iv(0, 1), "margin": ir.IRString("+Inf")}, ErrCodeBadArg},
		{"project onto empty", "project", ir.IRObject{"a": ir.IntervalValue(s1.EmptyInterval()), "p": ir.Angle(0)}, ErrCodeContract},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Apply(tt.op, tt.args)
			require.Error(t, err)
			assert.Equal(t, tt.code, CodeOf(err))
			assert.True(t, IsErrorCode(err, tt.code))
		})
	}
}

func TestApplyMarginMayBeLarge(t *testing.T) {
	// Reals are not range-checked the way points are.
	got, err := Apply("expanded", ir.IRObject{"a": iv(0, 1), "margin": ir.Angle(10)})
	require.NoError(t, err)
	assert.Equal(t, ir.IRObject{"interval": iv(-math.Pi, math.Pi)}, got)
}
