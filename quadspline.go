package bspline

import "iter"

// QuadBSpline is a quadratic B-spline in the plane. It is encoded as [P₁, C₁, C₂, C₃,
// C₄, ..., Pₙ], where Pᵢ are on-curve points and Cᵢ are off-curve control points. Only
// the first and last on-curve points are explicit. All other on-curve points are
// implicit and defined as Pᵢ = (Cᵢ₋₁ + Cᵢ) / 2. This format matches the one used by glyf
// tables in TrueType fonts.
//
// The encoding is that of a clamped quadratic B-spline with uniformly spaced knots.
type QuadBSpline [][2]float64

// Curve returns the clamped quadratic B-spline described by q. It fails with
// [ErrDegreeTooHigh] if q has fewer than three points.
func (q QuadBSpline) Curve() (Curve, error) {
	c, err := NewCurve(2, 2, len(q), Clamped)
	if err != nil {
		return Curve{}, err
	}
	for i, p := range q {
		c.SetControlPoint(i, p[:])
	}
	return c, nil
}

// Quads returns an iterator over the implied sequence of quadratic Bézier segments,
// each given by its three control points.
func (q QuadBSpline) Quads() iter.Seq[[3][2]float64] {
	return func(yield func([3][2]float64) bool) {
		c, err := q.Curve()
		if err != nil {
			return
		}
		for seg, err := range c.Beziers() {
			if err != nil {
				return
			}
			var quad [3][2]float64
			for i := range quad {
				copy(quad[i][:], seg.points().at(i))
			}
			if !yield(quad) {
				return
			}
		}
	}
}
