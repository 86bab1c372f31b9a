package bspline

import (
	"fmt"
	"math"
	"slices"
)

// Curve is a B-spline curve of arbitrary degree in a space of arbitrary
// dimension.
//
// The zero value is not a valid curve. Curves are created by [NewCurve],
// [NewCurveFromPoints], or by the transformations of an existing curve, all
// of which allocate fresh storage. The transformations never modify their
// receiver.
type Curve struct {
	degree int
	dim    int
	// ctrlp stores the control points contiguously, point-major.
	ctrlp []float64
	knots []float64
}

// NewCurve returns a curve with numControlPoints zeroed control points and a
// uniform knot vector generated according to style.
func NewCurve(degree, dimension, numControlPoints int, style KnotStyle) (Curve, error) {
	c, err := allocCurve(degree, dimension, numControlPoints)
	if err != nil {
		return Curve{}, err
	}
	uniformKnots(c.knots, degree, style)
	return c, nil
}

// NewCurveFromPoints returns a curve with the given control points and knot
// vector. ctrlp stores the control points contiguously and its length must be
// a multiple of dimension. knots must be non-decreasing and contain
// len(ctrlp)/dimension + degree + 1 values. Both slices are copied.
func NewCurveFromPoints(degree, dimension int, ctrlp, knots []float64) (Curve, error) {
	if dimension < 1 {
		return Curve{}, fmt.Errorf("%w: got %d", ErrInvalidDimension, dimension)
	}
	if len(ctrlp)%dimension != 0 {
		return Curve{}, fmt.Errorf("bspline: %d coordinates don't form points of dimension %d", len(ctrlp), dimension)
	}
	c, err := allocCurve(degree, dimension, len(ctrlp)/dimension)
	if err != nil {
		return Curve{}, err
	}
	if len(knots) != len(c.knots) {
		return Curve{}, fmt.Errorf("%w: got %d knots, want %d", ErrInvalidKnots, len(knots), len(c.knots))
	}
	for i := 1; i < len(knots); i++ {
		if knots[i] < knots[i-1] {
			return Curve{}, fmt.Errorf("%w: knot %d (%g) is less than knot %d (%g)", ErrInvalidKnots, i, knots[i], i-1, knots[i-1])
		}
	}
	copy(c.ctrlp, ctrlp)
	copy(c.knots, knots)
	return c, nil
}

// allocCurve validates the shape of a curve and allocates its storage. The
// knot vector is left zeroed.
func allocCurve(degree, dim, numControlPoints int) (Curve, error) {
	if dim < 1 {
		return Curve{}, fmt.Errorf("%w: got %d", ErrInvalidDimension, dim)
	}
	if degree < 0 || numControlPoints < 0 {
		return Curve{}, fmt.Errorf("%w: degree %d, %d control points", ErrAllocation, degree, numControlPoints)
	}
	if degree >= numControlPoints {
		return Curve{}, fmt.Errorf("%w: degree %d, %d control points", ErrDegreeTooHigh, degree, numControlPoints)
	}
	if numControlPoints > math.MaxInt/dim || numControlPoints > math.MaxInt-degree-1 {
		return Curve{}, fmt.Errorf("%w: %d control points of dimension %d", ErrAllocation, numControlPoints, dim)
	}
	return Curve{
		degree: degree,
		dim:    dim,
		ctrlp:  make([]float64, numControlPoints*dim),
		knots:  make([]float64, numControlPoints+degree+1),
	}, nil
}

// Copy returns a deep copy of the curve.
func (c Curve) Copy() Curve {
	return Curve{
		degree: c.degree,
		dim:    c.dim,
		ctrlp:  slices.Clone(c.ctrlp),
		knots:  slices.Clone(c.knots),
	}
}

func (c Curve) Degree() int           { return c.degree }
func (c Curve) Order() int            { return c.degree + 1 }
func (c Curve) Dimension() int        { return c.dim }
func (c Curve) NumControlPoints() int { return len(c.knots) - c.degree - 1 }
func (c Curve) NumKnots() int         { return len(c.knots) }

func (c Curve) points() points { return points{c.ctrlp, c.dim} }

// ControlPoints returns the control points, stored contiguously. The returned
// slice aliases the curve's storage; modifying it modifies the curve.
func (c Curve) ControlPoints() []float64 {
	return c.ctrlp
}

// ControlPoint returns a copy of the i-th control point.
func (c Curve) ControlPoint(i int) []float64 {
	if i < 0 || i >= c.NumControlPoints() {
		panic(fmt.Sprintf("control point index %d out of range [0, %d)", i, c.NumControlPoints()))
	}
	return slices.Clone(c.points().at(i))
}

// SetControlPoint sets the i-th control point. p must have the curve's
// dimension.
func (c Curve) SetControlPoint(i int, p []float64) {
	if len(p) != c.dim {
		panic(fmt.Sprintf("point has dimension %d, curve has dimension %d", len(p), c.dim))
	}
	if i < 0 || i >= c.NumControlPoints() {
		panic(fmt.Sprintf("control point index %d out of range [0, %d)", i, c.NumControlPoints()))
	}
	copy(c.points().at(i), p)
}

// Knots returns a copy of the knot vector.
func (c Curve) Knots() []float64 {
	return slices.Clone(c.knots)
}

// Domain returns the parameter range over which the curve is defined,
// knots[degree] to knots[numKnots-order].
func (c Curve) Domain() (float64, float64) {
	return c.knots[c.degree], c.knots[len(c.knots)-c.degree-1]
}

// IsClamped reports whether the knot vector has full multiplicity at both
// ends.
func (c Curve) IsClamped() bool {
	order := c.Order()
	lo, hi := c.Domain()
	for i := range order {
		if !Equal(c.knots[i], lo) || !Equal(c.knots[len(c.knots)-1-i], hi) {
			return false
		}
	}
	return true
}

// Multiplicity returns the number of knots equal to u, as counted by
// [Curve.Evaluate].
func (c Curve) Multiplicity(u float64) int {
	_, s := span(c.knots, u)
	return s
}

// Eval returns the point of the curve at parameter u. See [Curve.Evaluate]
// for the possible errors.
func (c Curve) Eval(u float64) ([]float64, error) {
	net, err := c.Evaluate(u)
	if err != nil {
		return nil, err
	}
	return net.Result(), nil
}

// Buckle blends each control point towards the straight line between the
// first and the last control point. b = 1 leaves the curve unchanged, b = 0
// flattens it onto that line. The i-th of n control points is pulled towards
// the point at ratio i/(n-1) along the line.
func (c Curve) Buckle(b float64) Curve {
	out := c.Copy()
	pts := out.points()
	n := pts.len()
	first := slices.Clone(pts.at(0))
	last := slices.Clone(pts.at(n - 1))
	chord := make([]float64, c.dim)
	for i := range n {
		var t float64
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		lerp(chord, first, last, t)
		lerp(pts.at(i), chord, pts.at(i), b)
	}
	return out
}

// Clamp returns an equivalent curve whose knot vector has full multiplicity
// at both ends of the domain. Control points and knots outside of the domain
// are discarded. Clamped curves are returned as copies.
func (c Curve) Clamp() (Curve, error) {
	lo, hi := c.Domain()
	out, err := c.clampStart(lo)
	if err != nil {
		return Curve{}, err
	}
	return out.clampEnd(hi)
}

func (c Curve) clampStart(u float64) (Curve, error) {
	order := c.Order()
	k, s := span(c.knots, u)
	if s >= order && Equal(c.knots[0], u) {
		return c.Copy(), nil
	}
	ins, err := c.InsertKnot(u, order-s)
	if err != nil {
		return Curve{}, err
	}
	// The inserted run starts at the first knot equal to u. Everything in
	// front of it only affects the curve before the domain.
	first := k - s + 1
	return Curve{
		degree: c.degree,
		dim:    c.dim,
		ctrlp:  slices.Clone(ins.ctrlp[first*c.dim:]),
		knots:  slices.Clone(ins.knots[first:]),
	}, nil
}

func (c Curve) clampEnd(u float64) (Curve, error) {
	order := c.Order()
	k, s := span(c.knots, u)
	if s >= order && Equal(c.knots[len(c.knots)-1], u) {
		return c.Copy(), nil
	}
	ins, err := c.InsertKnot(u, order-s)
	if err != nil {
		return Curve{}, err
	}
	// The run of u ends at index k+order-s after insertion.
	numKnots := k + order - s + 1
	numCtrlp := numKnots - order
	return Curve{
		degree: c.degree,
		dim:    c.dim,
		ctrlp:  slices.Clone(ins.ctrlp[:numCtrlp*c.dim]),
		knots:  slices.Clone(ins.knots[:numKnots]),
	}, nil
}

// String returns a human readable description of the curve's shape.
func (c Curve) String() string {
	return fmt.Sprintf("Curve{degree: %d, dimension: %d, control points: %d, knots: %v}",
		c.degree, c.dim, c.NumControlPoints(), c.knots)
}
