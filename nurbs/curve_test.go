package nurbs

import (
	"errors"
	"math"
	"testing"

	"honnef.co/go/bezier"
)

var cubicPoints = []bezier.Point{
	bezier.Pt(0, 0),
	bezier.Pt(1, 3),
	bezier.Pt(2, -1),
	bezier.Pt(4, 2),
	bezier.Pt(5, 0),
	bezier.Pt(7, 4),
}

func cubicSpline(t *testing.T) *Curve {
	t.Helper()
	c, err := NewCurve(4, []float64{0, 0, 0, 0, 1, 2, 3, 3, 3, 3}, cubicPoints, nil)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestNewCurveErrors(t *testing.T) {
	pts := cubicPoints[:4]
	tests := []struct {
		name    string
		order   int
		knots   []float64
		weights []float64
		want    error
	}{
		{"zero order", 0, []float64{0, 1, 2, 3}, nil, ErrOrder},
		{"too few knots", 4, []float64{0, 0, 0, 0, 1, 1, 1}, nil, ErrKnotCount},
		{"too few points", 5, []float64{0, 0, 0, 0, 0, 1, 1, 1, 1}, nil, ErrKnotCount},
		{"decreasing", 2, []float64{0, 0, 0.7, 0.3, 1, 1}, nil, ErrKnotOrder},
		{"NaN knot", 2, []float64{0, 0, math.NaN(), 0.5, 1, 1}, nil, ErrKnotOrder},
		{"unclamped start", 2, []float64{0, 1, 2, 3, 4, 4}, nil, ErrNotClamped},
		{"unclamped end", 2, []float64{0, 0, 1, 2, 3, 4}, nil, ErrNotClamped},
		{"overclamped", 2, []float64{0, 0, 0, 1, 1, 1}, nil, ErrNotClamped},
		{"weight count", 4, []float64{0, 0, 0, 0, 1, 1, 1, 1}, []float64{1, 1}, ErrWeights},
		{"zero weight", 4, []float64{0, 0, 0, 0, 1, 1, 1, 1}, []float64{1, 0, 1, 1}, ErrWeights},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCurve(tt.order, tt.knots, pts, tt.weights)
			if !errors.Is(err, tt.want) {
				t.Errorf("got error %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewCurveInteriorMultiplicity(t *testing.T) {
	pts := cubicPoints[:5]
	if _, err := NewCurve(2, []float64{0, 0, 0.5, 0.5, 1, 1, 1}, pts[:5], nil); err == nil {
		t.Error("expected an error")
	}
	if _, err := NewCurve(2, []float64{0, 0, 0.25, 0.5, 0.5, 1, 1}, pts, nil); err != nil {
		t.Errorf("unexpected error: %s", err)
	}
	if _, err := NewCurve(2, []float64{0, 0, 0.5, 0.5, 0.5, 1, 1}, pts, nil); !errors.Is(err, ErrKnotOrder) {
		t.Errorf("got error %v, want %v", err, ErrKnotOrder)
	}
}

func TestBezierCurveEval(t *testing.T) {
	p := bezier.Poly(bezier.Pt(0, 0), bezier.Pt(1, 2), bezier.Pt(3, 2), bezier.Pt(4, 0))
	c := NewBezierCurve(p)
	for _, u := range linspace(0, 1, 16) {
		diff(t, p.Eval(u), c.Eval(u), approx)
	}
	poly, ok := c.ControlPolygon()
	if !ok {
		t.Fatal("curve with a single span has no control polygon")
	}
	diff(t, p, poly)
}

func TestCurveEvalEndpoints(t *testing.T) {
	c := cubicSpline(t)
	diff(t, cubicPoints[0], c.Eval(0), approx)
	diff(t, cubicPoints[len(cubicPoints)-1], c.Eval(3), approx)
}

func TestCurveSplit(t *testing.T) {
	c := cubicSpline(t)
	orig := c.Clone()
	for _, u := range []float64{0.5, 1, 1.5, 2, 2.999} {
		left, right := c.SplitAt(0, u)
		if lo, hi := left.Domain(); lo != 0 || hi != u {
			t.Errorf("split at %g: left domain is [%g, %g]", u, lo, hi)
		}
		if lo, hi := right.Domain(); lo != u || hi != 3 {
			t.Errorf("split at %g: right domain is [%g, %g]", u, lo, hi)
		}
		for _, s := range linspace(0, u, 10) {
			diff(t, c.Eval(s), left.Eval(s), approx)
		}
		for _, s := range linspace(u, 3, 10) {
			diff(t, c.Eval(s), right.Eval(s), approx)
		}
	}
	diff(t, orig.Knots(0), c.Knots(0))
	diff(t, orig.Points(), c.Points())
}

func TestCurveSplitExistingKnot(t *testing.T) {
	pts := cubicPoints[:5]
	c, err := NewCurve(3, []float64{0, 0, 0, 0.5, 0.5, 1, 1, 1}, pts, nil)
	if err != nil {
		t.Fatal(err)
	}
	left, right := c.SplitAt(0, 0.5)
	diff(t, []float64{0, 0, 0, 0.5, 0.5, 0.5}, left.Knots(0))
	diff(t, []float64{0.5, 0.5, 0.5, 1, 1, 1}, right.Knots(0))
	// A double knot already makes the quadratic pass through pts[2].
	diff(t, pts[:3], left.Points(), approx)
	diff(t, pts[2:], right.Points(), approx)
}

func TestCurveBezierPieces(t *testing.T) {
	c := cubicSpline(t)
	pieces, already := bezier.BezierPieces(c)
	if already {
		t.Fatal("spline with interior knots reported as already Bézier")
	}
	if len(pieces) != 3 {
		t.Fatalf("got %d pieces, want 3", len(pieces))
	}
	for i, pc := range pieces {
		lo, hi := pc.Domain()
		diff(t, float64(i), lo)
		diff(t, float64(i+1), hi)
		poly, ok := pc.ControlPolygon()
		if !ok {
			t.Fatalf("piece %d isn't in Bézier form", i)
		}
		if poly.Degree() != 3 {
			t.Errorf("piece %d has degree %d, want 3", i, poly.Degree())
		}
		for _, s := range linspace(0, 1, 8) {
			diff(t, c.Eval(lo+s), poly.Eval(s), approx)
		}
	}
	// Adjacent pieces share their endpoints.
	polys, ok := BezierPolygons(c)
	if !ok {
		t.Fatal("BezierPolygons failed on non-rational curve")
	}
	for i := 1; i < len(polys); i++ {
		diff(t, polys[i-1].End(), polys[i].Start(), approx)
	}
}

func TestCurveAlreadyBezier(t *testing.T) {
	c := NewBezierCurve(bezier.Poly(bezier.Pt(0, 0), bezier.Pt(1, 1), bezier.Pt(2, 0)))
	pieces, already := bezier.BezierPieces(c)
	if !already {
		t.Error("single-span curve not reported as already Bézier")
	}
	if len(pieces) != 1 {
		t.Fatalf("got %d pieces, want 1", len(pieces))
	}
	if pieces[0] == c {
		t.Error("got the input back instead of a clone")
	}
	diff(t, c.Points(), pieces[0].Points())
}

func TestRationalQuarterCircle(t *testing.T) {
	w := math.Sqrt2 / 2
	c, err := NewCurve(3, []float64{0, 0, 0, 1, 1, 1}, []bezier.Point{
		bezier.Pt(1, 0),
		bezier.Pt(1, 1),
		bezier.Pt(0, 1),
	}, []float64{1, w, 1})
	if err != nil {
		t.Fatal(err)
	}
	if !c.IsRational() {
		t.Error("curve with differing weights isn't rational")
	}
	for _, u := range linspace(0, 1, 12) {
		pt := c.Eval(u)
		if r := math.Hypot(pt.X, pt.Y); math.Abs(r-1) > 1e-12 {
			t.Errorf("point at %g has radius %g", u, r)
		}
	}
	if _, ok := c.ControlPolygon(); ok {
		t.Error("rational curve has a polynomial control polygon")
	}

	left, right := c.SplitAt(0, 0.5)
	for _, u := range linspace(0, 0.5, 6) {
		diff(t, c.Eval(u), left.Eval(u), approx)
	}
	for _, u := range linspace(0.5, 1, 6) {
		diff(t, c.Eval(u), right.Eval(u), approx)
	}
}

func TestUniformWeightsArePolynomial(t *testing.T) {
	p := bezier.Poly(bezier.Pt(0, 0), bezier.Pt(1, 2), bezier.Pt(2, 0))
	c, err := NewCurve(3, []float64{0, 0, 0, 1, 1, 1}, p, []float64{2, 2, 2})
	if err != nil {
		t.Fatal(err)
	}
	poly, ok := c.ControlPolygon()
	if !ok {
		t.Fatal("uniformly weighted curve has no control polygon")
	}
	diff(t, p, poly, approx)
}

func TestCurveSplitPanics(t *testing.T) {
	c := cubicSpline(t)
	for _, u := range []float64{0, 3, -1, math.NaN()} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("splitting at %g didn't panic", u)
				}
			}()
			c.SplitAt(0, u)
		}()
	}
}
