// Package bspline evaluates, refines, and decomposes B-spline curves of
// arbitrary degree in spaces of arbitrary dimension.
//
// # Curves
//
// A [Curve] is defined by its degree, its control points, and a
// non-decreasing knot vector holding numControlPoints + degree + 1 knots.
// Control points are stored contiguously: a curve of dimension d stores its
// i-th control point in ControlPoints()[i*d : (i+1)*d].
//
// [NewCurve] creates a curve with zeroed control points and a uniform knot
// vector, either [Opened] (all knots uniformly spaced in [0, 1]) or [Clamped]
// (0 and 1 repeated order times, so that the curve starts at its first and
// ends at its last control point). [NewCurveFromPoints] creates a curve from
// explicit control points and knots.
//
// A curve is defined on its domain, the parameter range from knots[degree] to
// knots[numKnots-order] (see [Curve.Domain]).
//
// # Evaluation
//
// [Curve.Evaluate] implements De Boor's algorithm. It returns the full
// [DeBoorNet], the triangular table of intermediate points, from which the
// structural transformations are built. [Curve.Eval] returns just the point.
//
// Knots are compared with a tolerance (see [Equal]), never exactly.
//
// # Transformations
//
// All transformations allocate and return new curves; none of them modify the
// curve they are called on. Concurrent use of the same curve is therefore
// safe as long as nobody modifies its control points.
//
//   - [Curve.InsertKnot] inserts a knot without changing the shape of the curve.
//   - [Curve.Split] splits a curve into two curves at a parameter.
//   - [Curve.Beziers] and [Curve.ToBezierSegments] decompose a curve into Bézier
//     segments, represented as curves whose knot vectors have full multiplicity
//     at both ends and no inner knots.
//   - [Curve.Clamp] converts a curve into an equivalent clamped curve.
//   - [Curve.Buckle] flattens a curve towards the line between its end points.
//
// # Errors
//
// Fallible operations return one of the sentinel errors of this package,
// wrapped with additional context. Use [errors.Is] to test for them.
//
// # Literature
//
//   - [The NURBS Book] by Piegl and Tiller
//   - [De Boor's algorithm]
//
// [The NURBS Book]: https://doi.org/10.1007/978-3-642-59223-2
// [De Boor's algorithm]: https://en.wikipedia.org/wiki/De_Boor%27s_algorithm
package bspline
