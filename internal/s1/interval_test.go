package s1

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInterval_Canonicalizes(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi float64
		wantLo float64
		wantHi float64
	}{
		{"normal", 0, 1, 0, 1},
		{"inverted", 3, -3, 3, -3},
		{"full kept", -math.Pi, math.Pi, -math.Pi, math.Pi},
		{"empty kept", math.Pi, -math.Pi, math.Pi, -math.Pi},
		{"lo minus pi", -math.Pi, 0, math.Pi, 0},
		{"hi minus pi", 0, -math.Pi, 0, math.Pi},
		{"both minus pi", -math.Pi, -math.Pi, math.Pi, math.Pi},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i, err := NewInterval(tt.lo, tt.hi)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLo, i.Lo())
			assert.Equal(t, tt.wantHi, i.Hi())
			assert.True(t, i.IsValid())
		})
	}
}

func TestNewInterval_RejectsOutOfRange(t *testing.T) {
	for _, ends := range [][2]float64{
		{4, 0},
		{0, -3.5},
		{math.NaN(), 0},
		{0, math.Inf(1)},
	} {
		_, err := NewInterval(ends[0], ends[1])
		require.Error(t, err, "endpoints %v", ends)
		assert.True(t, IsContractError(err))
		assert.Equal(t, CodeOutOfRange, ContractCodeOf(err))
	}
}

func TestMustInterval_Panics(t *testing.T) {
	assert.Panics(t, func() { MustInterval(0, 7) })
}

func TestSentinels(t *testing.T) {
	assert.True(t, empty.IsValid())
	assert.True(t, empty.IsEmpty())
	assert.False(t, empty.IsFull())
	assert.True(t, empty.IsInverted())

	assert.True(t, full.IsValid())
	assert.True(t, full.IsFull())
	assert.False(t, full.IsEmpty())
	assert.False(t, full.IsInverted())

	assert.True(t, full.Complement().IsEmpty())
	assert.True(t, empty.Complement().IsFull())
}

func TestIsValid(t *testing.T) {
	assert.True(t, Interval{}.IsValid())
	assert.False(t, Interval{-math.Pi, 0}.IsValid())
	assert.False(t, Interval{0, -math.Pi}.IsValid())
	assert.False(t, Interval{0, 4}.IsValid())
}

func TestIntervalFromPoint(t *testing.T) {
	for _, p := range []float64{0, 1, -1, math.Pi / 2, math.Pi, -math.Pi, -3} {
		i := IntervalFromPoint(p)
		assert.True(t, i.Contains(p), "FromPoint(%v) must contain it", p)
		assert.Equal(t, 0.0, i.Length())
		assert.Equal(t, i.Lo(), i.Hi())
	}
	assert.True(t, IntervalFromPoint(math.Pi).Equal(IntervalFromPoint(-math.Pi)))
	assert.Equal(t, math.Pi, IntervalFromPoint(-math.Pi).Lo())
	assert.True(t, mipi.Equal(pi))
}

func TestCenter(t *testing.T) {
	assert.Equal(t, 0.5, MustInterval(0, 1).Center())
	assert.Equal(t, math.Pi/2, quad12.Center())
	assert.InDelta(t, 3.0-math.Pi, MustInterval(3.1, 2.9).Center(), 1e-15)
	assert.InDelta(t, math.Pi-3.0, MustInterval(-2.9, -3.1).Center(), 1e-15)
	assert.Equal(t, math.Pi, MustInterval(2.1, -2.1).Center())
	assert.Equal(t, math.Pi, pi.Center())
	assert.Equal(t, math.Pi, mipi.Center())
	assert.InDelta(t, 0.75*math.Pi, quad123.Center(), 1e-15)
	assert.Equal(t, 0.0, full.Center())
}

func TestLength(t *testing.T) {
	assert.Equal(t, 1.0, MustInterval(0, 1).Length())
	assert.Equal(t, math.Pi, quad12.Length())
	assert.Equal(t, 0.0, pi.Length())
	assert.Equal(t, 0.0, mipi.Length())
	assert.InDelta(t, 1.5*math.Pi, quad123.Length(), 1e-15)
	assert.InDelta(t, 2*math.Pi-6.0, MustInterval(3, -3).Length(), 1e-15)
	assert.Equal(t, 2*math.Pi, full.Length())
	assert.Equal(t, -1.0, empty.Length())
}

func TestComplement(t *testing.T) {
	for _, single := range []Interval{zero, pi, mipi, pi2, mipi2} {
		assert.True(t, single.Complement().IsFull(), "complement of %v", single)
	}
	assert.True(t, quad12.Complement().Equal(quad34))
	assert.True(t, quad34.Complement().Equal(quad12))
	assert.True(t, quad123.Complement().Equal(quad4))
	assert.True(t, quad23.Complement().Equal(quad41))
}

func TestComplementCenter(t *testing.T) {
	assert.Equal(t, math.Pi, zero.ComplementCenter())
	assert.Equal(t, 0.0, pi.ComplementCenter())
	assert.Equal(t, math.Pi/2, mipi2.ComplementCenter())
	assert.Equal(t, -math.Pi/2, pi2.ComplementCenter())
	assert.Equal(t, -math.Pi/2, quad12.ComplementCenter())
	assert.Equal(t, 0.0, quad23.ComplementCenter())
}

func TestString(t *testing.T) {
	assert.Equal(t, "[0.0000000, 1.0000000]", MustInterval(0, 1).String())
	assert.Equal(t, "[3.1415927, -3.1415927]", empty.String())
}

func TestJSON(t *testing.T) {
	data, err := json.Marshal(MustInterval(3, -3))
	require.NoError(t, err)
	assert.JSONEq(t, `{"lo":3,"hi":-3}`, string(data))

	var i Interval
	require.NoError(t, json.Unmarshal([]byte(`{"lo":-3.141592653589793,"hi":0}`), &i))
	assert.True(t, i.Equal(quad34))

	err = json.Unmarshal([]byte(`{"lo":5,"hi":0}`), &i)
	require.Error(t, err)
	assert.Equal(t, CodeOutOfRange, ContractCodeOf(err))
}
