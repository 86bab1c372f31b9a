package bspline

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func TestEvaluateExample(t *testing.T) {
	c, err := NewCurve(2, 1, 4, Clamped)
	if err != nil {
		t.Fatal(err)
	}
	copy(c.ControlPoints(), []float64{0, 1, 2, 3})

	net, err := c.Evaluate(0.5)
	if err != nil {
		t.Fatal(err)
	}
	if net.Kind != EvalGeneral || net.K != 3 || net.S != 1 || net.H != 1 || net.Affected != 2 || net.NumPoints() != 3 {
		t.Errorf("unexpected net %+v", net)
	}
	diff(t, []float64{1, 2, 1.5}, net.Points, approx)
	diff(t, []float64{1.5}, net.Result(), approx)

	net, err = c.Evaluate(0.25)
	if err != nil {
		t.Fatal(err)
	}
	if net.Kind != EvalGeneral || net.K != 2 || net.S != 0 || net.Affected != 3 || net.NumPoints() != 6 {
		t.Errorf("unexpected net %+v", net)
	}
	diff(t, []float64{0, 1, 2, 0.5, 1.25, 0.875}, net.Points, approx)
	diff(t, []float64{0.5, 1.25}, net.row(1), approx)
	if got := net.leftDiagonal(2); got != 5 {
		t.Errorf("left diagonal of row 2 is %d, want 5", got)
	}
	if got := net.rightDiagonal(0); got != 2 {
		t.Errorf("right diagonal of row 0 is %d, want 2", got)
	}
}

func TestEvaluateBoundary(t *testing.T) {
	c := mustCurve(t, 2, 2, []float64{0, 0, 1, 2, 3, 2, 4, 0}, []float64{0, 0, 0, 0.5, 1, 1, 1})
	tests := []struct {
		u    float64
		kind EvalKind
		want []float64
	}{
		{0, EvalBoundary, []float64{0, 0}},
		{1, EvalBoundary, []float64{4, 0}},
	}
	for _, tt := range tests {
		net, err := c.Evaluate(tt.u)
		if err != nil {
			t.Fatal(err)
		}
		if net.Kind != tt.kind || net.NumPoints() != 1 || net.Affected != 1 {
			t.Errorf("u = %g: unexpected net %+v", tt.u, net)
		}
		diff(t, tt.want, net.Result())
	}

	// An inner knot of full multiplicity yields both adjacent control points.
	c = mustCurve(t, 1, 1, []float64{0, 1, 2, 3}, []float64{0, 0, 0.5, 0.5, 1, 1})
	net, err := c.Evaluate(0.5)
	if err != nil {
		t.Fatal(err)
	}
	if net.Kind != EvalPair || net.S != 2 || net.NumPoints() != 2 {
		t.Errorf("unexpected net %+v", net)
	}
	diff(t, []float64{1, 2}, net.Points)
	diff(t, []float64{2}, net.Result())
}

func TestEvaluateErrors(t *testing.T) {
	c, err := NewCurve(2, 1, 4, Opened)
	if err != nil {
		t.Fatal(err)
	}
	for _, u := range []float64{-1, 0, 0.1, 0.9, 1, 1.5} {
		if _, err := c.Evaluate(u); !errors.Is(err, ErrParameterUndefined) {
			t.Errorf("u = %g: got error %v, want %v", u, err, ErrParameterUndefined)
		}
	}
	if _, err := c.Eval(0.5); err != nil {
		t.Errorf("unexpected error %v", err)
	}

	c = mustCurve(t, 1, 1, []float64{0, 1, 2}, []float64{0, 0.5, 0.5, 0.5, 1})
	if _, err := c.Evaluate(0.5); !errors.Is(err, ErrMultiplicityExceeded) {
		t.Errorf("got error %v, want %v", err, ErrMultiplicityExceeded)
	}
}

func TestEvaluateMatchesBasis(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 500 {
		c := randomCurve(t, r)
		for range 10 {
			u := randomParam(r, c)
			net, err := c.Evaluate(u)
			if err != nil {
				t.Fatalf("evaluating %v at %g: %s", c, u, err)
			}
			if net.Kind != EvalGeneral {
				t.Errorf("got %v, want %v", net.Kind, EvalGeneral)
			}
			if want := net.Affected * (net.Affected + 1) / 2; net.NumPoints() != want {
				t.Errorf("got %d points, want %d", net.NumPoints(), want)
			}
			diff(t, evalBasis(c, u), net.Result(), approx)
		}
	}
}

func TestEvaluateDoesNotModifyCurve(t *testing.T) {
	c := mustCurve(t, 2, 1, []float64{0, 1, 2, 3}, []float64{0, 0, 0, 0.5, 1, 1, 1})
	cp := c.Copy()
	if _, err := c.Evaluate(0.3); err != nil {
		t.Fatal(err)
	}
	diff(t, cp.ControlPoints(), c.ControlPoints())
	diff(t, cp.Knots(), c.Knots())
}

func TestKindString(t *testing.T) {
	diff(t, "EvalPair", EvalPair.String())
	diff(t, "SplitEnd", SplitEnd.String())
	diff(t, "SplitKind(7)", SplitKind(7).String())
	diff(t, "Clamped", Clamped.String())
}
