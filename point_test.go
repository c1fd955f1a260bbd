package bezier

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestPointLerpEndpoints(t *testing.T) {
	p0 := Pt(0.1, -7.3)
	p1 := Pt(1e-3, 12345.678)
	diff(t, p0, p0.Lerp(p1, 0))
	diff(t, p1, p0.Lerp(p1, 1))
	diff(t, Pt(0.0505, 6169.189), p0.Lerp(p1, 0.5), approx)
}

func TestVec2Normal(t *testing.T) {
	diff(t, Vec(0, -1), Vec(3, 0).Normal())
	diff(t, Vec(1, 0), Vec(0, 2).Normal())
	diff(t, Vec2{}, Vec2{}.Normal())
	n := Vec(3, 4).Normal()
	if l := n.Hypot(); math.Abs(l-1) > 1e-15 {
		t.Errorf("got normal of length %g, want 1", l)
	}
	if d := n.Dot(Vec(3, 4)); math.Abs(d) > 1e-15 {
		t.Errorf("normal isn't perpendicular, dot product is %g", d)
	}
}

func TestVec2Perp(t *testing.T) {
	diff(t, Vec(-2, 1), Vec(1, 2).Perp())
	if c := Vec(1, 2).Cross(Vec(1, 2).Perp()); c <= 0 {
		t.Errorf("perpendicular isn't counter-clockwise, cross product is %g", c)
	}
}
