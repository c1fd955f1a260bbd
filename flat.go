package bezier

import (
	"math"
)

// degenerateChord is the squared ratio of chord length to polygon extent below
// which the first and last control points are considered coincident.
const degenerateChord = 1e-24

// Flatness returns half the width of the "fat line" around the chord of p: the
// curve lies in the strip of half-width Flatness(p) around the line through
// p's first and last control points.
//
// The chord's implicit equation a·x + b·y + c = 0 is offset by the largest
// deviation of the interior control points on either side. Both offset lines
// are intersected with the coordinate axis that the chord crosses most steeply
// (the x axis, unless the chord is closer to horizontal than vertical, in which
// case the y axis), and the flatness is half the distance between the two
// intercepts. Measured along an axis, that distance is never less than the
// perpendicular width of the strip.
//
// Polygons of degree 0 and 1 have a flatness of 0. If the first and last
// control points coincide the chord has no direction, and the flatness is the
// largest distance from an interior control point to the endpoints.
func Flatness(p ControlPolygon) float64 {
	d := p.Degree()
	if d <= 1 {
		return 0
	}
	p0, pd := p[0], p[d]
	a := p0.Y - pd.Y
	b := pd.X - p0.X
	c := p0.X*pd.Y - pd.X*p0.Y
	abSquared := a*a + b*b

	var extent float64
	for _, pt := range p[1:d] {
		extent = max(extent, pt.DistanceSquared(p0))
	}
	if extent == 0 {
		return 0
	}
	if abSquared <= degenerateChord*extent {
		return math.Sqrt(extent)
	}

	// The signed squared distance of a point from the chord is v·|v|/(a²+b²)
	// with v = a·x + b·y + c. It orders points the same way v does, so the
	// extremes are tracked on v directly.
	var above, below float64
	for _, pt := range p[1:d] {
		v := a*pt.X + b*pt.Y + c
		above = max(above, v)
		below = min(below, v)
	}

	var intercept1, intercept2 float64
	if math.Abs(a) >= math.Abs(b) {
		// Intersect with y = 0.
		intercept1 = -(c - above) / a
		intercept2 = -(c - below) / a
	} else {
		// Intersect with x = 0.
		intercept1 = -(c - above) / b
		intercept2 = -(c - below) / b
	}
	left := min(intercept1, intercept2)
	right := max(intercept1, intercept2)
	return 0.5 * (right - left)
}

// IsFlat reports whether p is within epsilon of its chord, that is, whether
// [Flatness] is less than epsilon. A polygon with a flatness of exactly 0 is
// flat for any epsilon.
func IsFlat(p ControlPolygon, epsilon float64) bool {
	f := Flatness(p)
	return f < epsilon || f == 0
}
