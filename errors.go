package bspline

import "errors"

var (
	// ErrInvalidDimension is returned when a curve is constructed with a
	// dimension smaller than one.
	ErrInvalidDimension = errors.New("bspline: dimension must be at least 1")
	// ErrDegreeTooHigh is returned when a curve is constructed with a degree
	// that isn't smaller than the number of control points.
	ErrDegreeTooHigh = errors.New("bspline: degree must be less than the number of control points")
	// ErrMultiplicityExceeded is returned when the multiplicity of a knot, existing
	// or requested, exceeds the order of the curve.
	ErrMultiplicityExceeded = errors.New("bspline: knot multiplicity exceeds order")
	// ErrParameterUndefined is returned when a curve isn't defined at the
	// requested parameter.
	ErrParameterUndefined = errors.New("bspline: curve is undefined at parameter")
	// ErrAllocation is returned when the storage for a curve cannot be
	// obtained because its size is negative or overflows.
	ErrAllocation = errors.New("bspline: cannot allocate storage")
	// ErrInvalidKnots is returned when an explicit knot vector has the wrong
	// length or isn't non-decreasing.
	ErrInvalidKnots = errors.New("bspline: invalid knot vector")
	// ErrInvalidCount is returned for negative knot insertion counts.
	ErrInvalidCount = errors.New("bspline: invalid insertion count")
)
