package bezier

import (
	"math"
	"testing"
)

func TestRectFromPoints(t *testing.T) {
	r := NewRectFromPoints(Pt(10, -2), Pt(-4, 6))
	diff(t, Rect{-4, -2, 10, 6}, r)
	if w, h := r.Width(), r.Height(); w != 14 || h != 8 {
		t.Errorf("got size %g×%g, want 14×8", w, h)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{0, 0, 10, 5}
	tests := []struct {
		pt   Point
		want bool
	}{
		{Pt(5, 2), true},
		{Pt(0, 0), true},
		{Pt(10, 5), true},
		{Pt(10.001, 5), false},
		{Pt(-1, 2), false},
		{Pt(5, math.NaN()), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.pt); got != tt.want {
			t.Errorf("Contains(%s) = %t, want %t", tt.pt, got, tt.want)
		}
	}
}

func TestRectUnionPoint(t *testing.T) {
	r := Rect{0, 0, 1, 1}
	diff(t, Rect{0, -2, 4, 1}, r.UnionPoint(Pt(4, -2)))
}

func TestPolygonBoundingBox(t *testing.T) {
	p := Poly(Pt(0, 0), Pt(1, 3), Pt(3, -2), Pt(4, 1))
	bbox := p.BoundingBox()
	diff(t, Rect{0, -2, 4, 3}, bbox)
	// The curve lies in the convex hull of its control points.
	for _, ts := range linspace(32) {
		if pt := p.Eval(ts); !bbox.Contains(pt) {
			t.Errorf("point %s at t=%g lies outside of bounding box %v", pt, ts, bbox)
		}
	}
}

func TestRectIsInf(t *testing.T) {
	if (Rect{0, 0, 1, 1}).IsInf() {
		t.Error("rect is infinite but shouldn't be")
	}
	if !(Rect{0, 0, math.Inf(1), 1}).IsInf() {
		t.Error("rect is finite but shouldn't be")
	}
	if !(Rect{math.NaN(), 0, 1, 1}).IsNaN() {
		t.Error("rect isn't NaN but should be")
	}
}
