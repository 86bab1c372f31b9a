package bspline

import (
	"fmt"
	"slices"
)

// EvalKind describes which case of De Boor's algorithm produced a [DeBoorNet].
type EvalKind int

const (
	// EvalGeneral means the point was computed by De Boor's algorithm. The
	// net holds the full triangular table.
	EvalGeneral EvalKind = iota
	// EvalBoundary means the parameter is a knot of full multiplicity at an
	// end of the control polygon. The net holds the single control point the
	// curve passes through.
	EvalBoundary
	// EvalPair means the parameter is an inner knot of full multiplicity. The
	// net holds the two consecutive control points k-s and k-s+1; the curve
	// may be discontinuous between them.
	EvalPair
)

func (k EvalKind) String() string {
	switch k {
	case EvalGeneral:
		return "EvalGeneral"
	case EvalBoundary:
		return "EvalBoundary"
	case EvalPair:
		return "EvalPair"
	default:
		return fmt.Sprintf("EvalKind(%d)", int(k))
	}
}

// DeBoorNet is the result of evaluating a curve at a parameter. It holds the
// triangular table of points computed by De Boor's algorithm, row by row.
// Row 0 holds the affected control points, each following row holds one
// point fewer, and the last row holds the evaluated point.
type DeBoorNet struct {
	Kind EvalKind

	// U is the evaluated parameter.
	U float64
	// K is the index of the knot span [knots[K], knots[K+1]) containing U.
	K int
	// S is the multiplicity of U.
	S int
	// H is the number of refinement rounds, degree - S. It may be negative
	// for nets that aren't of kind EvalGeneral.
	H int

	Degree    int
	Dimension int

	// Affected is the number of control points the evaluation depends on.
	Affected int
	// Points stores the points of the table contiguously.
	Points []float64
}

// NumPoints returns the number of points in the net.
func (net DeBoorNet) NumPoints() int {
	return len(net.Points) / net.Dimension
}

// Point returns the i-th point of the net. The returned slice aliases the
// net's storage.
func (net DeBoorNet) Point(i int) []float64 {
	return net.points().at(i)
}

// Result returns the evaluated point, which is the last point of the net.
// For nets of kind EvalPair this is the right-hand control point.
func (net DeBoorNet) Result() []float64 {
	return slices.Clone(net.Point(net.NumPoints() - 1))
}

func (net DeBoorNet) points() points { return points{net.Points, net.Dimension} }

// rowStart returns the index of the first point of row r in a triangular
// table whose first row has n points.
func rowStart(n, r int) int {
	return r*n - r*(r-1)/2
}

// leftDiagonal returns the index of the first point of row r.
func (net DeBoorNet) leftDiagonal(r int) int {
	return rowStart(net.Affected, r)
}

// rightDiagonal returns the index of the last point of row r.
func (net DeBoorNet) rightDiagonal(r int) int {
	return rowStart(net.Affected, r) + net.Affected - r - 1
}

// row returns the points of row r.
func (net DeBoorNet) row(r int) []float64 {
	return net.points().span(net.leftDiagonal(r), net.rightDiagonal(r)+1)
}

// Evaluate evaluates the curve at parameter u using De Boor's algorithm.
//
// It returns [ErrMultiplicityExceeded] if u is a knot of multiplicity greater
// than the curve's order and [ErrParameterUndefined] if u lies outside of the
// curve's domain.
func (c Curve) Evaluate(u float64) (DeBoorNet, error) {
	k, s := span(c.knots, u)
	order := c.Order()
	net := DeBoorNet{
		U:         u,
		K:         k,
		S:         s,
		H:         c.degree - s,
		Degree:    c.degree,
		Dimension: c.dim,
	}
	pts := c.points()

	switch {
	case s > order:
		return DeBoorNet{}, fmt.Errorf("%w: multiplicity of %g is %d, order is %d", ErrMultiplicityExceeded, u, s, order)

	case s == order:
		fst := k - s
		snd := fst + 1
		if fst < 0 || snd >= pts.len() {
			// Only one of the two control points exists.
			net.Kind = EvalBoundary
			net.Affected = 1
			if fst < 0 {
				net.Points = slices.Clone(pts.at(0))
			} else {
				net.Points = slices.Clone(pts.at(fst))
			}
			return net, nil
		}
		net.Kind = EvalPair
		net.Affected = 2
		net.Points = slices.Clone(pts.span(fst, snd+1))
		return net, nil

	default:
		fst := k - c.degree
		lst := k - s
		if fst < 0 || lst >= pts.len() {
			return DeBoorNet{}, fmt.Errorf("%w: %g", ErrParameterUndefined, u)
		}
		n := lst - fst + 1
		net.Kind = EvalGeneral
		net.Affected = n
		net.Points = make([]float64, rowStart(n, n)*c.dim)
		copy(net.row(0), pts.span(fst, lst+1))

		tbl := net.points()
		for r := 1; r <= net.H; r++ {
			prev := net.leftDiagonal(r - 1)
			to := net.leftDiagonal(r)
			for i := fst + r; i <= lst; i++ {
				ui := c.knots[i]
				a := (u - ui) / (c.knots[i+c.degree-r+1] - ui)
				lerp(tbl.at(to), tbl.at(prev), tbl.at(prev+1), a)
				prev++
				to++
			}
		}
		return net, nil
	}
}
