package bezier

import (
	"math"
)

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// The idea is that (A * B) * v == A * (B * v).
//
// Transforming a control polygon transforms the curve it describes, so
// polygons can be moved into a convenient frame (for example, one in which a
// ray runs along the x axis) before being searched or flattened.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Rotate creates an affine transform representing rotation.
//
// The convention for rotation is that a positive angle rotates a
// positive X direction into positive Y. The angle th is expressed in radians.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// TransformVec applies the linear part of aff to v, ignoring translation.
func (aff Affine) TransformVec(v Vec2) Vec2 {
	return Vec2{
		X: aff.N0*v.X + aff.N2*v.Y,
		Y: aff.N1*v.X + aff.N3*v.Y,
	}
}

// RayFrame returns the rigid transform that moves r's start to the origin and
// rotates its direction onto the positive x axis. Under it, r's supporting
// line is the x axis.
func RayFrame(r Ray) Affine {
	d := r.Dir.Normalize()
	rot := Affine{d.X, -d.Y, d.Y, d.X, 0, 0}
	return rot.Mul(Translate(Vec2(r.Start).Negate()))
}

// Transform returns r mapped by aff. The direction and perpendicular are
// renormalized.
func (r Ray) Transform(aff Affine) Ray {
	return Ray{
		Start: r.Start.Transform(aff),
		Dir:   aff.TransformVec(r.Dir).Normalize(),
		Perp:  aff.TransformVec(r.Perp).Normalize(),
	}
}
