package bezier

import (
	"log/slog"
)

// Intersection is a point where a curve crosses a ray's supporting line.
type Intersection struct {
	Point Point
	// Normal is the unit normal of the curve at Point, as approximated by the
	// piece of the curve the intersection was found on.
	Normal Vec2
	// T is the (approximate) curve parameter of the intersection.
	T float64
	// RayT is the signed distance of Point from the ray's start, along the
	// ray's direction.
	RayT float64
}

// FindRoots finds the intersections of the Bézier curve described by p with the
// supporting line of r. It is equivalent to [FindRootsOpt] with default
// options.
func FindRoots(p ControlPolygon, r Ray, epsilon float64) []Intersection {
	return FindRootsOpt(p, r, epsilon, Options{})
}

// FindRootsOpt finds the intersections of the Bézier curve described by p with
// the supporting line of r, to within epsilon.
//
// The search recursively halves the curve. A half whose control polygon
// doesn't cross the line is discarded. A half that crosses once and is flat to
// within epsilon is replaced by its chord, which is intersected with the line
// directly. Everything else is subdivided again. Once the depth limit is
// reached, a half that still crosses the line contributes the curve's midpoint
// as a single intersection.
//
// Intersections are returned in order of increasing curve parameter. The
// returned slice is freshly allocated and owned by the caller; it is nil if
// there are no intersections. A chord that is parallel to the line or too
// short to have a direction contributes no intersections, and so does a curve
// whose control polygon lies entirely on the line.
//
// Adjacent halves share their common control point exactly. A crossing at that
// point is counted by whichever half the point's side places it in, and if the
// point lies exactly on the line, only the half starting there reports it, so
// every crossing is reported once.
//
// A smaller epsilon gives more accurate results at the cost of deeper
// recursion.
func FindRootsOpt(p ControlPolygon, r Ray, epsilon float64, opts Options) []Intersection {
	p.mustBeValid()
	s := rootSearch{
		ray:      r,
		epsilon:  epsilon,
		maxDepth: opts.maxDepth(),
		log:      opts.logger(),
	}
	return s.find(p, 0, 1, 0)
}

type rootSearch struct {
	ray      Ray
	epsilon  float64
	maxDepth int
	log      *slog.Logger
	eval     Evaluator
}

// find searches the part of the curve described by p, which spans [t0, t1] of
// the original curve.
func (s *rootSearch) find(p ControlPolygon, t0, t1 float64, depth int) []Intersection {
	n := CrossingCount(p, s.ray)
	switch {
	case n == 0:
		return nil
	case depth >= s.maxDepth:
		s.log.Debug("root search reached depth limit",
			"depth", depth, "crossings", n, "t0", t0, "t1", t1)
		ev := s.eval.Evaluate(p, 0.5, WantNormal)
		out := make([]Intersection, 1)
		out[0] = Intersection{
			Point:  ev.Point,
			Normal: ev.Normal,
			T:      0.5 * (t0 + t1),
			RayT:   ev.Point.Sub(s.ray.Start).Dot(s.ray.Dir),
		}
		return out
	case n == 1 && IsFlat(p, s.epsilon):
		if t1 < 1 && s.ray.side(p.End()) == 0 {
			// The following piece starts at this point, on the line, and
			// reports it.
			return nil
		}
		chord := p.Chord()
		hit, ok := chord.IntersectRay(s.ray)
		if !ok {
			s.log.Debug("chord doesn't intersect ray",
				"depth", depth, "t0", t0, "t1", t1)
			return nil
		}
		out := make([]Intersection, 1)
		out[0] = Intersection{
			Point:  chord.Eval(hit.SegmentT),
			Normal: chord.Normal(),
			T:      t0 + hit.SegmentT*(t1-t0),
			RayT:   hit.RayT,
		}
		return out
	}

	ev := s.eval.Evaluate(p, 0.5, WantLeft|WantRight)
	tm := 0.5 * (t0 + t1)
	left := s.find(ev.Left, t0, tm, depth+1)
	right := s.find(ev.Right, tm, t1, depth+1)
	if left == nil {
		return right
	}
	return append(left, right...)
}
