package bspline

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func mustCurve(t *testing.T, degree, dim int, ctrlp, knots []float64) Curve {
	t.Helper()
	c, err := NewCurveFromPoints(degree, dim, ctrlp, knots)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func mustEval(t *testing.T, c Curve, u float64) []float64 {
	t.Helper()
	p, err := c.Eval(u)
	if err != nil {
		t.Fatalf("evaluating %v at %g: %s", c, u, err)
	}
	return p
}

// basis evaluates the i-th basis function of degree p with the Cox–de Boor
// recursion.
func basis(knots []float64, i, p int, u float64) float64 {
	if p == 0 {
		if knots[i] <= u && u < knots[i+1] {
			return 1
		}
		return 0
	}
	var a, b float64
	if d := knots[i+p] - knots[i]; d != 0 {
		a = (u - knots[i]) / d * basis(knots, i, p-1, u)
	}
	if d := knots[i+p+1] - knots[i+1]; d != 0 {
		b = (knots[i+p+1] - u) / d * basis(knots, i+1, p-1, u)
	}
	return a + b
}

// evalBasis evaluates the curve as the sum of its basis functions weighted by
// the control points.
func evalBasis(c Curve, u float64) []float64 {
	out := make([]float64, c.Dimension())
	for i := range c.NumControlPoints() {
		w := basis(c.knots, i, c.degree, u)
		for d, x := range c.points().at(i) {
			out[d] += w * x
		}
	}
	return out
}

// randomCurve returns a curve of degree 0 to 4 with opened, clamped, or
// random knots.
func randomCurve(t *testing.T, r *rand.Rand) Curve {
	t.Helper()
	degree := r.IntN(5)
	dim := 1 + r.IntN(3)
	n := degree + 1 + r.IntN(6)
	var c Curve
	var err error
	switch r.IntN(3) {
	case 0:
		c, err = NewCurve(degree, dim, n, Opened)
	case 1:
		c, err = NewCurve(degree, dim, n, Clamped)
	case 2:
		c, err = NewCurve(degree, dim, n, Clamped)
		if err == nil {
			// Replace the uniform inner knots with random, sorted ones.
			order := degree + 1
			x := 0.0
			for i := order; i < len(c.knots)-order; i++ {
				x += 0.1 + r.Float64()
				c.knots[i] = x
			}
			x += 0.1 + r.Float64()
			for i := len(c.knots) - order; i < len(c.knots); i++ {
				c.knots[i] = x
			}
		}
	}
	if err != nil {
		t.Fatal(err)
	}
	for i := range c.ctrlp {
		c.ctrlp[i] = r.Float64()*10 - 5
	}
	return c
}

// randomParam returns a parameter inside the domain of c that isn't close to
// any knot.
func randomParam(r *rand.Rand, c Curve) float64 {
	lo, hi := c.Domain()
	for {
		u := lo + r.Float64()*(hi-lo)
		ok := true
		for _, k := range c.knots {
			if math.Abs(u-k) < 1e-6 {
				ok = false
				break
			}
		}
		if ok {
			return u
		}
	}
}
