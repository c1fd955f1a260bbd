package bezier

import (
	"fmt"
	"slices"
	"strings"
)

// ControlPolygon is the control polygon of a planar Bézier curve of degree
// len(p)−1. The first and last points are the curve's endpoints and the curve
// lies within the convex hull of all points.
//
// An empty ControlPolygon is invalid. Functions in this package panic when
// given one.
type ControlPolygon []Point

// Poly returns a control polygon consisting of pts.
func Poly(pts ...Point) ControlPolygon {
	return ControlPolygon(pts)
}

func (p ControlPolygon) mustBeValid() {
	if len(p) == 0 {
		panic("bezier: empty control polygon")
	}
}

// Degree returns the degree of the curve described by the polygon.
func (p ControlPolygon) Degree() int {
	p.mustBeValid()
	return len(p) - 1
}

func (p ControlPolygon) Start() Point {
	p.mustBeValid()
	return p[0]
}

func (p ControlPolygon) End() Point {
	p.mustBeValid()
	return p[len(p)-1]
}

// Chord returns the line segment from the first to the last control point.
func (p ControlPolygon) Chord() Line {
	return Line{p.Start(), p.End()}
}

// Clone returns a copy of the polygon that shares no memory with p.
func (p ControlPolygon) Clone() ControlPolygon {
	return slices.Clone(p)
}

// Reverse returns a new polygon describing the same curve traversed in the
// opposite direction.
func (p ControlPolygon) Reverse() ControlPolygon {
	out := slices.Clone(p)
	slices.Reverse(out)
	return out
}

func (p ControlPolygon) Transform(aff Affine) ControlPolygon {
	out := make(ControlPolygon, len(p))
	for i, pt := range p {
		out[i] = pt.Transform(aff)
	}
	return out
}

// BoundingBox returns the bounding box of the control points, which encloses
// the curve.
func (p ControlPolygon) BoundingBox() Rect {
	r := NewRectFromPoints(p.Start(), p.Start())
	for _, pt := range p[1:] {
		r = r.UnionPoint(pt)
	}
	return r
}

func (p ControlPolygon) IsInf() bool {
	return slices.ContainsFunc(p, Point.IsInf)
}

func (p ControlPolygon) IsNaN() bool {
	return slices.ContainsFunc(p, Point.IsNaN)
}

func (p ControlPolygon) String() string {
	var sb strings.Builder
	sb.WriteString("Poly(")
	for i, pt := range p {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, pt)
	}
	sb.WriteString(")")
	return sb.String()
}

// Eval evaluates the curve at t.
func (p ControlPolygon) Eval(t float64) Point {
	var e Evaluator
	return e.Evaluate(p, t, 0).Point
}

// Normal returns the unit normal of the curve at t. See [Vec2.Normal] for the
// orientation.
func (p ControlPolygon) Normal(t float64) Vec2 {
	var e Evaluator
	return e.Evaluate(p, t, WantNormal).Normal
}

// Subdivide splits the curve at t. The left polygon describes the curve over
// [0, t] and the right polygon the curve over [t, 1], each reparametrized to
// [0, 1].
func (p ControlPolygon) Subdivide(t float64) (ControlPolygon, ControlPolygon) {
	var e Evaluator
	ev := e.Evaluate(p, t, WantLeft|WantRight)
	return ev.Left, ev.Right
}

// Cubic returns the polygon as a [CubicBez]. It reports false if the polygon
// isn't of degree 3.
func (p ControlPolygon) Cubic() (CubicBez, bool) {
	if len(p) != 4 {
		return CubicBez{}, false
	}
	return CubicBez{p[0], p[1], p[2], p[3]}, true
}

// Quad returns the polygon as a [QuadBez]. It reports false if the polygon
// isn't of degree 2.
func (p ControlPolygon) Quad() (QuadBez, bool) {
	if len(p) != 3 {
		return QuadBez{}, false
	}
	return QuadBez{p[0], p[1], p[2]}, true
}
