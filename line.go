package bezier

import (
	"math"
)

// Line represents a line segment.
type Line struct {
	/// The line's start point.
	P0 Point
	/// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

// Normal returns the unit normal of the line, its direction rotated by −90°.
func (l Line) Normal() Vec2 {
	return l.P1.Sub(l.P0).Normal()
}

// RayIntersection describes where a line segment crosses the supporting line
// of a [Ray].
type RayIntersection struct {
	// The position of the intersection on the segment, in [0, 1].
	SegmentT float64
	// The signed distance of the intersection from the ray's start, in
	// multiples of the ray's direction.
	RayT float64
}

// IntersectRay intersects the line segment with the infinite line through the
// ray.
//
// It reports false if the two are parallel (including when the segment has
// zero length) or if the crossing lies outside the segment. The segment
// parameter is computed from the signed distances of the endpoints from the
// ray's line, so an endpoint that lies exactly on the line yields exactly 0 or
// 1, and endpoints on opposite sides always yield a parameter in [0, 1].
func (l Line) IntersectRay(r Ray) (RayIntersection, bool) {
	s0, s1 := r.dist(l.P0), r.dist(l.P1)
	den := s0 - s1
	if den == 0 || math.Abs(den) <= parallelEpsilon*l.Length() {
		return RayIntersection{}, false
	}
	beta := s0 / den
	if !(beta >= 0 && beta <= 1) {
		return RayIntersection{}, false
	}
	return RayIntersection{
		SegmentT: beta,
		RayT:     l.Eval(beta).Sub(r.Start).Dot(r.Dir),
	}, true
}

// parallelEpsilon is the size, relative to the segment's length, of the
// difference of the endpoints' distances from the ray's line below which the
// two are considered parallel.
const parallelEpsilon = 1e-12
