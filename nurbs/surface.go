package nurbs

import (
	"fmt"
	"slices"

	"honnef.co/go/bezier"
)

// Surface is a planar, possibly rational, tensor-product B-spline surface with
// clamped knot vectors in both directions. Direction 0 is u and direction 1 is
// v. It implements [bezier.Spline].
type Surface struct {
	order [2]int
	knots [2][]float64
	// points[i][j] is the control point at index i along u and j along v.
	points [][]hpoint
}

var _ bezier.Spline[*Surface] = (*Surface)(nil)

// NewSurface returns a surface with the given orders and knot vectors. points
// must be rectangular, with points[i][j] at index i along u and j along v. A
// nil weights grid makes the surface non-rational; otherwise it must have
// the same shape as points. The arguments are copied.
func NewSurface(orderU, orderV int, knotsU, knotsV []float64, points [][]bezier.Point, weights [][]float64) (*Surface, error) {
	nu := len(points)
	if nu == 0 {
		return nil, fmt.Errorf("%w: no control points", ErrKnotCount)
	}
	nv := len(points[0])
	if err := validateKnots(knotsU, orderU, nu); err != nil {
		return nil, fmt.Errorf("u direction: %w", err)
	}
	if err := validateKnots(knotsV, orderV, nv); err != nil {
		return nil, fmt.Errorf("v direction: %w", err)
	}
	if weights != nil && len(weights) != nu {
		return nil, fmt.Errorf("%w: have %d rows of weights for %d rows of control points", ErrWeights, len(weights), nu)
	}
	grid := make([][]hpoint, nu)
	for i, row := range points {
		if len(row) != nv {
			return nil, fmt.Errorf("%w: row %d has %d control points, want %d", ErrKnotCount, i, len(row), nv)
		}
		var w []float64
		if weights != nil {
			w = weights[i]
			if w == nil {
				return nil, fmt.Errorf("%w: row %d has no weights", ErrWeights, i)
			}
		}
		hrow, err := toHomogeneous(row, w)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		grid[i] = hrow
	}
	return &Surface{
		order:  [2]int{orderU, orderV},
		knots:  [2][]float64{slices.Clone(knotsU), slices.Clone(knotsV)},
		points: grid,
	}, nil
}

func mustBeSurfaceDirection(dir int) {
	if dir != 0 && dir != 1 {
		panic(fmt.Sprintf("nurbs: surface has no direction %d", dir))
	}
}

func (s *Surface) Directions() int { return 2 }

func (s *Surface) Order(dir int) int {
	mustBeSurfaceDirection(dir)
	return s.order[dir]
}

// Knots returns the knot vector in direction dir. The result must not be
// modified.
func (s *Surface) Knots(dir int) []float64 {
	mustBeSurfaceDirection(dir)
	return s.knots[dir]
}

// Domain returns the parameter range in direction dir.
func (s *Surface) Domain(dir int) (lo, hi float64) {
	k := s.Knots(dir)
	return k[0], k[len(k)-1]
}

// Size returns the number of control points along u and along v.
func (s *Surface) Size() (nu, nv int) {
	return len(s.points), len(s.points[0])
}

// Points returns the control point grid, without weights applied.
func (s *Surface) Points() [][]bezier.Point {
	out := make([][]bezier.Point, len(s.points))
	for i, row := range s.points {
		out[i] = make([]bezier.Point, len(row))
		for j, h := range row {
			out[i][j] = h.project()
		}
	}
	return out
}

// IsRational reports whether the surface's weights differ from each other.
func (s *Surface) IsRational() bool {
	w := s.points[0][0].W
	for _, row := range s.points {
		for _, h := range row {
			if h.W != w {
				return true
			}
		}
	}
	return false
}

// Eval evaluates the surface at (u, v).
func (s *Surface) Eval(u, v float64) bezier.Point {
	col := make([]hpoint, len(s.points))
	for i, row := range s.points {
		col[i] = deBoor(s.knots[1], row, s.order[1], v)
	}
	return deBoor(s.knots[0], col, s.order[0], u).project()
}

// SplitAt splits the surface at parameter value u in direction dir. u must lie
// strictly inside that direction's domain. The other direction is unaffected.
func (s *Surface) SplitAt(dir int, u float64) (*Surface, *Surface) {
	mustBeSurfaceDirection(dir)
	mustBeInterior(s.knots[dir], u)
	left := &Surface{order: s.order, knots: s.knots}
	right := &Surface{order: s.order, knots: s.knots}
	switch dir {
	case 0:
		nu, nv := s.Size()
		col := make([]hpoint, nu)
		for j := range nv {
			for i := range nu {
				col[i] = s.points[i][j]
			}
			lk, lp, rk, rp := splitSequence(s.knots[0], col, s.order[0], u)
			if j == 0 {
				left.knots[0], right.knots[0] = lk, rk
				left.points = makeGrid(len(lp), nv)
				right.points = makeGrid(len(rp), nv)
			}
			for i, h := range lp {
				left.points[i][j] = h
			}
			for i, h := range rp {
				right.points[i][j] = h
			}
		}
		left.knots[1] = slices.Clone(s.knots[1])
		right.knots[1] = slices.Clone(s.knots[1])
	case 1:
		left.points = make([][]hpoint, len(s.points))
		right.points = make([][]hpoint, len(s.points))
		for i, row := range s.points {
			lk, lp, rk, rp := splitSequence(s.knots[1], row, s.order[1], u)
			left.knots[1], right.knots[1] = lk, rk
			left.points[i], right.points[i] = lp, rp
		}
		left.knots[0] = slices.Clone(s.knots[0])
		right.knots[0] = slices.Clone(s.knots[0])
	}
	return left, right
}

func makeGrid(nu, nv int) [][]hpoint {
	grid := make([][]hpoint, nu)
	for i := range grid {
		grid[i] = make([]hpoint, nv)
	}
	return grid
}

func (s *Surface) Clone() *Surface {
	grid := make([][]hpoint, len(s.points))
	for i, row := range s.points {
		grid[i] = slices.Clone(row)
	}
	return &Surface{
		order:  s.order,
		knots:  [2][]float64{slices.Clone(s.knots[0]), slices.Clone(s.knots[1])},
		points: grid,
	}
}

// BoundaryPolygons returns the control polygons of the four boundary curves of
// a surface in Bézier form in both directions, in the order v=lo, u=hi, v=hi,
// u=lo. It returns false if the surface isn't in Bézier form or is rational.
func (s *Surface) BoundaryPolygons() ([4]bezier.ControlPolygon, bool) {
	if !bezier.IsBezierForm(s.knots[0]) || !bezier.IsBezierForm(s.knots[1]) || s.IsRational() {
		return [4]bezier.ControlPolygon{}, false
	}
	pts := s.Points()
	nu, nv := s.Size()
	var out [4]bezier.ControlPolygon
	for i := range nu {
		out[0] = append(out[0], pts[i][0])
		out[2] = append(out[2], pts[i][nv-1])
	}
	out[1] = slices.Clone(pts[nu-1])
	out[3] = slices.Clone(pts[0])
	return out, true
}

func (s *Surface) String() string {
	return fmt.Sprintf("nurbs.Surface{order: %v, knots: %v, points: %v}", s.order, s.knots, s.Points())
}
