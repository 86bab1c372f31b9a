package bspline

import "math"

const (
	// MaxAbsError is the absolute tolerance below which two knot values are
	// considered equal.
	MaxAbsError = 1e-9
	// MaxRelError is the relative tolerance, measured against the larger
	// magnitude, used when the absolute difference exceeds MaxAbsError.
	MaxRelError = 1e-12
)

// KnotStyle selects how [NewCurve] generates the initial knot vector.
type KnotStyle int

const (
	// Opened spaces all knots uniformly in [0, 1].
	Opened KnotStyle = iota
	// Clamped repeats 0 and 1 order times at the ends and spaces the
	// remaining knots uniformly between them.
	Clamped
)

func (s KnotStyle) String() string {
	switch s {
	case Opened:
		return "Opened"
	case Clamped:
		return "Clamped"
	default:
		return "KnotStyle(?)"
	}
}

// Equal reports whether x and y are equal within [MaxAbsError], or, failing
// that, within [MaxRelError] of the larger magnitude.
func Equal(x, y float64) bool {
	d := math.Abs(x - y)
	if d < MaxAbsError {
		return true
	}
	r := d / max(math.Abs(x), math.Abs(y))
	return r <= MaxRelError
}

// uniformKnots fills knots according to style for a curve of the given
// degree.
func uniformKnots(knots []float64, degree int, style KnotStyle) {
	n := len(knots)
	order := degree + 1
	if style == Opened {
		den := float64(n - 1)
		for i := range knots {
			knots[i] = float64(i) / den
		}
		return
	}

	den := float64(n - 2*degree - 1)
	for i := range order {
		knots[i] = 0
		knots[n-1-i] = 1
	}
	for i, num := order, 1; i < n-order; i, num = i+1, num+1 {
		knots[i] = float64(num) / den
	}
}

// span finds the index k of the last knot not greater than u, and the number
// s of knots equal to u up to and including k. The scan stops at the first
// knot that is strictly greater than u. k is -1 if u lies below all knots.
func span(knots []float64, u float64) (k, s int) {
	for k = 0; k < len(knots); k++ {
		uk := knots[k]
		if Equal(u, uk) {
			s++
		} else if u < uk {
			break
		}
	}
	return k - 1, s
}
