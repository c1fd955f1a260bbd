package bezier

// Ray is a half-line in the plane.
//
// Root finding tests against the ray's supporting line. Hits behind the start
// point are reported with a negative [Intersection.RayT].
type Ray struct {
	Start Point
	// Dir is the unit direction of the ray.
	Dir Vec2
	// Perp is a unit vector perpendicular to Dir.
	Perp Vec2
}

// NewRay returns the ray starting at start and heading in direction dir, which
// needn't be of unit length. Perp is dir rotated by +90°.
func NewRay(start Point, dir Vec2) Ray {
	dir = dir.Normalize()
	return Ray{
		Start: start,
		Dir:   dir,
		Perp:  dir.Perp(),
	}
}

// dist returns the signed distance of pt from the ray's line, measured along
// Perp. Sides and chord intersections are both derived from it, so that a point
// with a side of 0 is exactly where a chord ending in it meets the line.
func (r Ray) dist(pt Point) float64 {
	return r.Start.Sub(pt).Dot(r.Perp)
}

// side returns −1, 0, or +1 depending on which side of the ray's line pt is.
func (r Ray) side(pt Point) int {
	d := r.dist(pt)
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	default:
		return 0
	}
}

// CrossingCount returns the number of times the control polygon p crosses the
// supporting line of r, which is the number of sign changes of the signed
// distances of the control points from that line.
//
// By the variation diminishing property of Bézier curves, the curve crosses
// the line no more often than its control polygon does. A result of 0 proves
// that there are no intersections; other results are an upper bound. A control
// point lying exactly on the line has sign 0 and differs from both neighbours'
// signs, so that touching the line is never undercounted.
//
// A polygon lying entirely on the line has no sign changes and counts 0
// crossings, even though the curve meets the line everywhere.
//
// The result is in [0, p.Degree()].
func CrossingCount(p ControlPolygon, r Ray) int {
	p.mustBeValid()
	n := 0
	prev := r.side(p[0])
	for _, pt := range p[1:] {
		s := r.side(pt)
		if s != prev {
			n++
		}
		prev = s
	}
	return n
}
