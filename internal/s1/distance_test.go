package s1

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositiveDistance(t *testing.T) {
	assert.Equal(t, 1.0, positiveDistance(0, 1))
	assert.Equal(t, 0.0, positiveDistance(2, 2))
	assert.InDelta(t, 2*math.Pi-1, positiveDistance(1, 0), 1e-15)
	assert.Equal(t, math.Pi/2, positiveDistance(math.Pi, -math.Pi/2))

	// Crossing the seam by a hair must stay a hair, not collapse to zero.
	eps := 1e-300
	assert.InDelta(t, 2*math.Pi, positiveDistance(-math.Pi+eps, math.Pi), 1e-15)
	assert.Greater(t, positiveDistance(math.Pi-1e-15, -math.Pi+1e-15), 0.0)
}

func TestDirectedHausdorffDistance(t *testing.T) {
	tests := []struct {
		name string
		x, y Interval
		want float64
	}{
		{"empty to empty", empty, empty, 0},
		{"empty to full", empty, full, 0},
		{"empty to arc", empty, quad12, 0},
		{"arc to empty", quad12, empty, math.Pi},
		{"full to empty", full, empty, math.Pi},
		{"contained", quad1, quad12, 0},
		{"anything to full", quad23, full, 0},
		{"overhang at hi", quad12, quad1, math.Pi / 2},
		{"overhang at lo", MustInterval(0, 1), MustInterval(0.5, 2), 0.5},
		{"contains complement center", full, quad1, 0.75 * math.Pi},
		{"inverted over normal", quad34, quad12, math.Pi / 2},
		{"across seam", MustInterval(3, -3), MustInterval(-1, 1), math.Pi - 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.x.DirectedHausdorffDistance(tt.y), 1e-15)
		})
	}
}

func TestDirectedHausdorffDistance_ZeroIffSubset(t *testing.T) {
	for _, x := range allFixtures {
		for _, y := range allFixtures {
			d := x.DirectedHausdorffDistance(y)
			if y.ContainsInterval(x) {
				assert.Equal(t, 0.0, d, "%v ⊂ %v", x, y)
			} else {
				assert.Greater(t, d, 0.0, "%v ⊄ %v", x, y)
				assert.LessOrEqual(t, d, math.Pi+1e-15)
			}
		}
	}
}
