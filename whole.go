package radical

import "math"

// DefaultEpsilon is the tolerance used by IsWhole when Options.Epsilon is
// not positive.
const DefaultEpsilon = 1e-9

// IsWhole reports whether x lies within eps of an integer. NaN and infinities
// are never whole.
func IsWhole(x, eps float64) bool {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return false
	}
	if eps <= 0 {
		eps = DefaultEpsilon
	}
	return math.Abs(x-math.Round(x)) < eps
}

// IsWholeParity is the legacy test: x is whole when x or x+1 is even under
// floor modulo (the remainder takes the sign of the divisor). Values large
// enough that x+1 == x in float64 always pass.
func IsWholeParity(x float64) bool {
	return floorMod(x, 2) == 0 || floorMod(x+1, 2) == 0
}

func floorMod(x, y float64) float64 {
	m := math.Mod(x, y)
	if m != 0 && (m < 0) != (y < 0) {
		m += y
	}
	return m
}

// wholeTest bundles a whole-number predicate with the matching integer
// conversion: rounding for the tolerance test, truncation for parity.
type wholeTest struct {
	whole   func(float64) bool
	integer func(float64) float64
	legacy  bool
}

func newWholeTest(opts *Options) wholeTest {
	if opts.LegacyParity {
		return wholeTest{whole: IsWholeParity, integer: math.Trunc, legacy: true}
	}
	eps := opts.Epsilon
	return wholeTest{
		whole:   func(x float64) bool { return IsWhole(x, eps) },
		integer: math.Round,
	}
}
