package nurbs

import (
	"fmt"
	"slices"

	"honnef.co/go/bezier"
)

// hpoint is a control point in homogeneous coordinates, with the position
// premultiplied by the weight.
type hpoint struct {
	X, Y, W float64
}

func homogeneous(pt bezier.Point, w float64) hpoint {
	return hpoint{pt.X * w, pt.Y * w, w}
}

func (h hpoint) project() bezier.Point {
	return bezier.Pt(h.X/h.W, h.Y/h.W)
}

func (h hpoint) lerp(o hpoint, t float64) hpoint {
	mt := 1 - t
	w := h.W
	if o.W != w {
		// Equal weights stay bit-identical so that uniformly weighted
		// splines remain non-rational after knot insertion.
		w = mt*h.W + t*o.W
	}
	return hpoint{
		mt*h.X + t*o.X,
		mt*h.Y + t*o.Y,
		w,
	}
}

func toHomogeneous(points []bezier.Point, weights []float64) ([]hpoint, error) {
	if weights != nil && len(weights) != len(points) {
		return nil, fmt.Errorf("%w: have %d weights for %d control points", ErrWeights, len(weights), len(points))
	}
	out := make([]hpoint, len(points))
	for i, pt := range points {
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		if !(w > 0) {
			return nil, fmt.Errorf("%w: weight %d is %g", ErrWeights, i, w)
		}
		out[i] = homogeneous(pt, w)
	}
	return out, nil
}

// uniformWeight reports whether all points have the same weight. Such a
// spline describes the same shape as its non-rational counterpart.
func uniformWeight(pts []hpoint) bool {
	for _, h := range pts[1:] {
		if h.W != pts[0].W {
			return false
		}
	}
	return true
}

// Curve is a planar, possibly rational, B-spline curve with a clamped knot
// vector. It implements [bezier.Spline].
type Curve struct {
	order  int
	knots  []float64
	points []hpoint
}

var _ bezier.Spline[*Curve] = (*Curve)(nil)

// NewCurve returns a curve of the given order (degree plus one). A nil weights
// slice makes the curve non-rational. The arguments are copied.
func NewCurve(order int, knots []float64, points []bezier.Point, weights []float64) (*Curve, error) {
	if err := validateKnots(knots, order, len(points)); err != nil {
		return nil, err
	}
	hpts, err := toHomogeneous(points, weights)
	if err != nil {
		return nil, err
	}
	return &Curve{
		order:  order,
		knots:  slices.Clone(knots),
		points: hpts,
	}, nil
}

// NewBezierCurve returns the non-rational curve with a single span over [0, 1]
// whose control polygon is p.
func NewBezierCurve(p bezier.ControlPolygon) *Curve {
	order := len(p)
	if order == 0 {
		panic("nurbs: empty control polygon")
	}
	knots := make([]float64, 2*order)
	for i := order; i < len(knots); i++ {
		knots[i] = 1
	}
	hpts, _ := toHomogeneous(p, nil)
	return &Curve{order: order, knots: knots, points: hpts}
}

func mustBeCurveDirection(dir int) {
	if dir != 0 {
		panic(fmt.Sprintf("nurbs: curve has no direction %d", dir))
	}
}

func (c *Curve) Directions() int { return 1 }

func (c *Curve) Order(dir int) int {
	mustBeCurveDirection(dir)
	return c.order
}

// Knots returns the knot vector. The result must not be modified.
func (c *Curve) Knots(dir int) []float64 {
	mustBeCurveDirection(dir)
	return c.knots
}

// Domain returns the parameter range of the curve.
func (c *Curve) Domain() (lo, hi float64) {
	return c.knots[0], c.knots[len(c.knots)-1]
}

// Points returns the control points, without weights applied.
func (c *Curve) Points() []bezier.Point {
	out := make([]bezier.Point, len(c.points))
	for i, h := range c.points {
		out[i] = h.project()
	}
	return out
}

func (c *Curve) Weights() []float64 {
	out := make([]float64, len(c.points))
	for i, h := range c.points {
		out[i] = h.W
	}
	return out
}

// IsRational reports whether the curve's weights differ from each other.
func (c *Curve) IsRational() bool {
	return !uniformWeight(c.points)
}

// Eval evaluates the curve at u. Values outside the domain extrapolate the
// first or last span.
func (c *Curve) Eval(u float64) bezier.Point {
	return deBoor(c.knots, c.points, c.order, u).project()
}

// SplitAt splits the curve at u, which must lie strictly inside the domain.
// The left piece covers [lo, u] and the right piece covers [u, hi].
func (c *Curve) SplitAt(dir int, u float64) (*Curve, *Curve) {
	mustBeCurveDirection(dir)
	mustBeInterior(c.knots, u)
	lk, lp, rk, rp := splitSequence(c.knots, c.points, c.order, u)
	return &Curve{order: c.order, knots: lk, points: lp},
		&Curve{order: c.order, knots: rk, points: rp}
}

func (c *Curve) Clone() *Curve {
	return &Curve{
		order:  c.order,
		knots:  slices.Clone(c.knots),
		points: slices.Clone(c.points),
	}
}

// ControlPolygon returns the Bézier control polygon of a curve consisting of a
// single span. It returns false if the curve has interior knots or if its
// weights aren't uniform, as such curves have no exact polynomial Bézier
// form.
func (c *Curve) ControlPolygon() (bezier.ControlPolygon, bool) {
	if !bezier.IsBezierForm(c.knots) || c.IsRational() {
		return nil, false
	}
	return bezier.ControlPolygon(c.Points()), true
}

func (c *Curve) String() string {
	return fmt.Sprintf("nurbs.Curve{order: %d, knots: %v, points: %v}", c.order, c.knots, c.Points())
}

// BezierPolygons splits c into its Bézier pieces and returns their control
// polygons in parameter order. It returns false for rational curves.
func BezierPolygons(c *Curve) ([]bezier.ControlPolygon, bool) {
	pieces, _ := bezier.BezierPieces(c)
	out := make([]bezier.ControlPolygon, 0, len(pieces))
	for _, pc := range pieces {
		poly, ok := pc.ControlPolygon()
		if !ok {
			return nil, false
		}
		out = append(out, poly)
	}
	return out, true
}
