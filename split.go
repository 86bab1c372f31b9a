package bspline

import "fmt"

// SplitKind describes how [Curve.Split] divided a curve.
type SplitKind int

const (
	// SplitGeneral means the curve was split at a parameter of less than
	// full multiplicity. Both halves were built from the De Boor net.
	SplitGeneral SplitKind = iota
	// SplitPartition means the parameter already was an inner knot of full
	// multiplicity. The halves partition the control points and knots.
	SplitPartition
	// SplitStart means the parameter is the start of the domain. The single
	// result is a copy of the curve.
	SplitStart
	// SplitEnd means the parameter is the end of the domain. The single
	// result is a copy of the curve.
	SplitEnd
)

func (k SplitKind) String() string {
	switch k {
	case SplitGeneral:
		return "SplitGeneral"
	case SplitPartition:
		return "SplitPartition"
	case SplitStart:
		return "SplitStart"
	case SplitEnd:
		return "SplitEnd"
	default:
		return fmt.Sprintf("SplitKind(%d)", int(k))
	}
}

// Split splits the curve at parameter u. If u is the start or the end of the
// domain, the result consists of a single copy of the curve. Otherwise it
// consists of two curves, the first defined up to u and the second from u
// on, both clamped at u. Concatenating them reproduces the original curve.
//
// Split fails under the same conditions as [Curve.Evaluate].
func (c Curve) Split(u float64) ([]Curve, SplitKind, error) {
	net, err := c.Evaluate(u)
	if err != nil {
		return nil, 0, err
	}

	lo, hi := c.Domain()
	switch {
	case Equal(lo, u):
		return []Curve{c.Copy()}, SplitStart, nil
	case Equal(hi, u):
		return []Curve{c.Copy()}, SplitEnd, nil
	}

	switch net.Kind {
	case EvalGeneral:
		left, right, err := c.splitNet(net)
		if err != nil {
			return nil, 0, err
		}
		return []Curve{left, right}, SplitGeneral, nil
	case EvalPair:
		left, right, err := c.partition(net.K - net.S + 1)
		if err != nil {
			return nil, 0, err
		}
		return []Curve{left, right}, SplitPartition, nil
	default:
		// A boundary net coincides with one of the ends of the domain, up to
		// the tolerance of the comparisons above.
		if net.K-net.S < 0 {
			return []Curve{c.Copy()}, SplitStart, nil
		}
		return []Curve{c.Copy()}, SplitEnd, nil
	}
}

// splitNet builds both halves of a split at a parameter of less than full
// multiplicity. Each half takes the original control points on its side of
// the affected window, followed (or preceded) by one diagonal of the net, and
// is clamped at u by order copies of u.
func (c Curve) splitNet(net DeBoorNet) (Curve, Curve, error) {
	order := c.Order()
	n := net.Affected
	fst := net.K - c.degree
	lst := net.K - net.S

	left, err := allocCurve(c.degree, c.dim, fst+n)
	if err != nil {
		return Curve{}, Curve{}, err
	}
	right, err := allocCurve(c.degree, c.dim, c.NumControlPoints()-lst+n-1)
	if err != nil {
		return Curve{}, Curve{}, err
	}

	src := c.points()
	tbl := net.points()

	to := copy(left.ctrlp, src.span(0, fst)) / c.dim
	for r := range n {
		copy(left.points().at(to+r), tbl.at(net.leftDiagonal(r)))
	}
	to = copy(left.knots, c.knots[:lst+1])
	fill(left.knots[to:to+order], net.U)

	for r := range n {
		copy(right.points().at(r), tbl.at(net.rightDiagonal(n-1-r)))
	}
	copy(right.ctrlp[n*c.dim:], src.span(lst+1, src.len()))
	fill(right.knots[:order], net.U)
	copy(right.knots[order:], c.knots[net.K+1:])

	return left, right, nil
}

// partition divides the curve into the first n control points and the rest,
// each keeping the knots that belong to it.
func (c Curve) partition(n int) (Curve, Curve, error) {
	order := c.Order()
	left, err := allocCurve(c.degree, c.dim, n)
	if err != nil {
		return Curve{}, Curve{}, err
	}
	right, err := allocCurve(c.degree, c.dim, c.NumControlPoints()-n)
	if err != nil {
		return Curve{}, Curve{}, err
	}
	copy(left.ctrlp, c.ctrlp[:n*c.dim])
	copy(left.knots, c.knots[:n+order])
	copy(right.ctrlp, c.ctrlp[n*c.dim:])
	copy(right.knots, c.knots[len(c.knots)-len(right.knots):])
	return left, right, nil
}

func fill(s []float64, v float64) {
	for i := range s {
		s[i] = v
	}
}

// SplitAll splits the curve at each of the parameters in us, which must be
// increasing. It returns the pieces in order. Parameters equal to the ends of
// the remaining domain produce no piece.
func (c Curve) SplitAll(us ...float64) ([]Curve, error) {
	var out []Curve
	cur := c.Copy()
	for _, u := range us {
		parts, kind, err := cur.Split(u)
		if err != nil {
			return nil, err
		}
		switch kind {
		case SplitStart, SplitEnd:
			continue
		}
		out = append(out, parts[0])
		cur = parts[1]
	}
	return append(out, cur), nil
}
