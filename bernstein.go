package bezier

import (
	"math"
)

// EvalBernstein evaluates the curve at t by summing the Bernstein basis
// polynomials directly. It agrees with [ControlPolygon.Eval] up to rounding,
// but loses precision for high degrees.
func (p ControlPolygon) EvalBernstein(t float64) Point {
	p.mustBeValid()
	n := p.Degree()
	var x, y float64
	for i, pt := range p {
		b := basisFunction(n, i, t)
		x += b * pt.X
		y += b * pt.Y
	}
	return Pt(x, y)
}

// Elevate returns a polygon of one degree higher that describes the same curve.
func (p ControlPolygon) Elevate() ControlPolygon {
	p.mustBeValid()
	n := len(p)
	out := make(ControlPolygon, n+1)
	out[0] = p[0]
	out[n] = p[n-1]
	for i := 1; i < n; i++ {
		a := float64(i) / float64(n)
		out[i] = p[i].Lerp(p[i-1], a)
	}
	return out
}

// Bezier basis function
func basisFunction(n, i int, u float64) float64 {
	return choose(n, i) * math.Pow(1.0-u, float64(n-i)) * math.Pow(u, float64(i))
}

// Binomial co-efficient, but returning zeros for values outside of domain
func choose(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	k = min(k, n-k)
	p := 1.0
	for i := 1; i <= k; i++ {
		p = p * float64(n-k+i) / float64(i)
	}
	return math.Round(p)
}
