package bspline

import "fmt"

// InsertKnot returns a curve with the knot u inserted times times. The
// returned curve has the same shape as c, with times more control points.
//
// In addition to the errors of [Curve.Evaluate], it returns
// [ErrMultiplicityExceeded] if the multiplicity of u would exceed the curve's
// order.
func (c Curve) InsertKnot(u float64, times int) (Curve, error) {
	if times < 0 {
		return Curve{}, fmt.Errorf("%w: %d", ErrInvalidCount, times)
	}
	net, err := c.Evaluate(u)
	if err != nil {
		return Curve{}, err
	}
	if net.S+times > c.Order() {
		return Curve{}, fmt.Errorf("%w: inserting %g %d times into multiplicity %d, order is %d",
			ErrMultiplicityExceeded, u, times, net.S, c.Order())
	}
	if times == 0 {
		return c.Copy(), nil
	}

	out, err := allocCurve(c.degree, c.dim, c.NumControlPoints()+times)
	if err != nil {
		return Curve{}, err
	}

	// With times >= 1 and S+times <= order the net is a full De Boor table
	// over the control points [fst, fst+n).
	n := net.Affected
	fst := net.K - c.degree
	src := c.points()
	tbl := net.points()
	dst := out.points()

	to := copy(dst.data, src.span(0, fst)) / c.dim
	for r := range times {
		copy(dst.at(to), tbl.at(net.leftDiagonal(r)))
		to++
	}
	to += copy(dst.data[to*c.dim:], net.row(times)) / c.dim
	for r := times - 1; r >= 0; r-- {
		copy(dst.at(to), tbl.at(net.rightDiagonal(r)))
		to++
	}
	copy(dst.data[to*c.dim:], src.span(fst+n, src.len()))

	// Reuse the existing value if u only equals a knot within tolerance, so
	// that the knot vector stays non-decreasing.
	v := u
	if net.S > 0 {
		v = c.knots[net.K]
	}
	to = copy(out.knots, c.knots[:net.K+1])
	fill(out.knots[to:to+times], v)
	copy(out.knots[to+times:], c.knots[net.K+1:])
	return out, nil
}
