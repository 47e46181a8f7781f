package s1

import "math"

// Shared intervals for the tests in this package. Quadrants are numbered
// counter-clockwise starting at 0.
var (
	empty = EmptyInterval()
	full  = FullInterval()

	zero  = MustInterval(0, 0)
	pi2   = MustInterval(math.Pi/2, math.Pi/2)
	pi    = MustInterval(math.Pi, math.Pi)
	mipi  = MustInterval(-math.Pi, -math.Pi) // canonicalized to pi
	mipi2 = MustInterval(-math.Pi/2, -math.Pi/2)

	quad1 = MustInterval(0, math.Pi/2)
	quad2 = MustInterval(math.Pi/2, -math.Pi)
	quad3 = MustInterval(math.Pi, -math.Pi/2)
	quad4 = MustInterval(-math.Pi/2, 0)

	quad12 = MustInterval(0, -math.Pi)
	quad23 = MustInterval(math.Pi/2, -math.Pi/2)
	quad34 = MustInterval(-math.Pi, 0)
	quad41 = MustInterval(-math.Pi/2, math.Pi/2)

	quad123 = MustInterval(0, -math.Pi/2)
	quad234 = MustInterval(math.Pi/2, 0)
	quad341 = MustInterval(math.Pi, math.Pi/2)
	quad412 = MustInterval(-math.Pi/2, -math.Pi)

	mid12 = MustInterval(math.Pi/2-0.01, math.Pi/2+0.02)
	mid23 = MustInterval(math.Pi-0.01, -math.Pi+0.02)
	mid34 = MustInterval(-math.Pi/2-0.01, -math.Pi/2+0.02)
	mid41 = MustInterval(-0.01, 0.02)
)
