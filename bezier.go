package bspline

import "iter"

// Beziers returns an iterator over the Bézier segments of the curve. Each
// segment has the curve's degree, order control points and a knot vector of
// full multiplicity at both ends. There is one segment per non-empty knot span
// of the domain.
//
// The curve is clamped first (see [Curve.Clamp]) and then split at each inner
// knot in turn. If clamping or a split fails, the iterator yields the error
// and stops.
func (c Curve) Beziers() iter.Seq2[Curve, error] {
	return func(yield func(Curve, error) bool) {
		cur, err := c.Clamp()
		if err != nil {
			yield(Curve{}, err)
			return
		}
		order := cur.Order()
		for {
			if len(cur.knots) == 2*order {
				yield(cur, nil)
				return
			}
			parts, kind, err := cur.Split(cur.knots[order])
			if err != nil {
				yield(Curve{}, err)
				return
			}
			switch kind {
			case SplitStart, SplitEnd:
				// Nothing left to split off.
				yield(parts[0], nil)
				return
			}
			if !yield(parts[0], nil) {
				return
			}
			cur = parts[1]
		}
	}
}

// ToBezierSegments decomposes the curve into its Bézier segments. See
// [Curve.Beziers]. It fails with the first error of clamping or splitting.
func (c Curve) ToBezierSegments() ([]Curve, error) {
	var out []Curve
	for seg, err := range c.Beziers() {
		if err != nil {
			return nil, err
		}
		out = append(out, seg)
	}
	return out, nil
}
