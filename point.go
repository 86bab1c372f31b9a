package bspline

import "math"

// Points of a curve are stored contiguously; a point is a slice of
// dimension-many coordinates.

// lerp stores (1-t)*a + t*b in dst.
func lerp(dst, a, b []float64, t float64) {
	mt := 1 - t
	for i := range dst {
		dst[i] = mt*a[i] + t*b[i]
	}
}

// Distance returns the euclidean distance between two points of equal
// dimension.
func Distance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// points is a view of contiguously stored points.
type points struct {
	data []float64
	dim  int
}

func (p points) len() int { return len(p.data) / p.dim }

func (p points) at(i int) []float64 {
	return p.data[i*p.dim : (i+1)*p.dim : (i+1)*p.dim]
}

// span returns the points [i, j).
func (p points) span(i, j int) []float64 {
	return p.data[i*p.dim : j*p.dim]
}
