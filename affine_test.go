package bezier

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Scale(2, 2)), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(Rotate(0)), p, epsilon)
	assertNear(t, p.Transform(Rotate(math.Pi/2)), Pt(-4, 3), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	px := Pt(1, 0)
	py := Pt(0, 1)
	pxy := Pt(1, 1)

	assertNear(t, px.Transform(a2).Transform(a1), px.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, py.Transform(a2).Transform(a1), py.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, pxy.Transform(a2).Transform(a1), pxy.Transform(a1.Mul(a2)), epsilon)
}

func TestRayFrame(t *testing.T) {
	const epsilon = 1e-12
	r := NewRay(Pt(2, 3), Vec(3, 4))
	aff := RayFrame(r)

	assertNear(t, r.Start.Transform(aff), Pt(0, 0), epsilon)
	assertNear(t, r.Start.Translate(r.Dir).Transform(aff), Pt(1, 0), epsilon)
	assertNear(t, r.Start.Translate(r.Perp).Transform(aff), Pt(0, 1), epsilon)
	// The frame is rigid: lengths are preserved.
	diff(t, 5.0, Pt(0, 0).Transform(aff).Distance(Pt(3, 4).Transform(aff)), cmpopts.EquateApprox(0, epsilon))

	rr := r.Transform(aff)
	assertNear(t, rr.Start, Pt(0, 0), epsilon)
	assertNear(t, Point(rr.Dir), Pt(1, 0), epsilon)
	assertNear(t, Point(rr.Perp), Pt(0, 1), epsilon)
}
