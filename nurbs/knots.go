// Package nurbs implements planar NURBS curves and surfaces with clamped knot
// vectors, to the extent needed to split them into Bézier pieces with
// [bezier.BezierPieces]: validation, evaluation, knot insertion, and
// splitting.
package nurbs

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

var (
	ErrOrder      = errors.New("nurbs: order must be at least 1")
	ErrKnotCount  = errors.New("nurbs: number of knots doesn't match order and control points")
	ErrKnotOrder  = errors.New("nurbs: knots must be non-decreasing")
	ErrNotClamped = errors.New("nurbs: knot vector isn't clamped")
	ErrWeights    = errors.New("nurbs: weights must be positive and match the control points")
)

// validateKnots checks that knots is a clamped knot vector for n control
// points of the given order: non-decreasing, with exactly order copies of
// each end value and at most order copies of any interior value.
func validateKnots(knots []float64, order, n int) error {
	if order < 1 {
		return ErrOrder
	}
	if n < order {
		return fmt.Errorf("%w: order %d needs at least %d control points, have %d", ErrKnotCount, order, order, n)
	}
	if len(knots) != n+order {
		return fmt.Errorf("%w: have %d knots, want %d", ErrKnotCount, len(knots), n+order)
	}
	for i := 1; i < len(knots); i++ {
		if !(knots[i] >= knots[i-1]) {
			return fmt.Errorf("%w: knot %d (%g) is less than knot %d (%g)", ErrKnotOrder, i, knots[i], i-1, knots[i-1])
		}
	}
	lo, hi := knots[0], knots[len(knots)-1]
	if knots[order-1] != lo || knots[order] == lo {
		return fmt.Errorf("%w: start value %g must appear exactly %d times", ErrNotClamped, lo, order)
	}
	if knots[len(knots)-order] != hi || knots[len(knots)-order-1] == hi {
		return fmt.Errorf("%w: end value %g must appear exactly %d times", ErrNotClamped, hi, order)
	}
	for i := order; i+order < len(knots); i++ {
		if knots[i] == knots[i+order] {
			return fmt.Errorf("%w: interior knot %g appears more than %d times", ErrKnotOrder, knots[i], order)
		}
	}
	return nil
}

// span returns the index k of the knot span containing u, knots[k] <= u <
// knots[k+1], clamped to the valid spans [order−1, n−1].
func span(knots []float64, order, n int, u float64) int {
	k := sort.Search(len(knots), func(i int) bool { return knots[i] > u }) - 1
	return min(max(k, order-1), n-1)
}

func multiplicity(knots []float64, u float64) int {
	n := 0
	for _, k := range knots {
		if k == u {
			n++
		}
	}
	return n
}

// insertKnot inserts u into the knot vector once, using Boehm's algorithm. It
// returns new slices and leaves its arguments unmodified.
func insertKnot(knots []float64, pts []hpoint, order int, u float64) ([]float64, []hpoint) {
	p := order - 1
	k := span(knots, order, len(pts), u)
	out := make([]hpoint, len(pts)+1)
	copy(out, pts[:k-p+1])
	for i := k - p + 1; i <= k; i++ {
		alpha := (u - knots[i]) / (knots[i+p] - knots[i])
		out[i] = pts[i-1].lerp(pts[i], alpha)
	}
	copy(out[k+1:], pts[k:])
	return slices.Insert(slices.Clone(knots), k+1, u), out
}

// splitSequence splits the B-spline described by knots and pts at the interior
// value u by raising u's multiplicity to order. The two halves share no
// memory with the inputs or with each other.
func splitSequence(knots []float64, pts []hpoint, order int, u float64) (lk []float64, lp []hpoint, rk []float64, rp []hpoint) {
	for range order - multiplicity(knots, u) {
		knots, pts = insertKnot(knots, pts, order, u)
	}
	j := sort.SearchFloat64s(knots, u)
	lk = slices.Clone(knots[:j+order])
	lp = slices.Clone(pts[:j])
	rk = slices.Clone(knots[j:])
	rp = slices.Clone(pts[j:])
	return lk, lp, rk, rp
}

// deBoor evaluates the B-spline described by knots and pts at u.
func deBoor(knots []float64, pts []hpoint, order int, u float64) hpoint {
	p := order - 1
	k := span(knots, order, len(pts), u)
	d := slices.Clone(pts[k-p : k+1])
	for r := 1; r <= p; r++ {
		for j := p; j >= r; j-- {
			i := j + k - p
			alpha := (u - knots[i]) / (knots[i+p+1-r] - knots[i])
			d[j] = d[j-1].lerp(d[j], alpha)
		}
	}
	return d[p]
}

func mustBeInterior(knots []float64, u float64) {
	lo, hi := knots[0], knots[len(knots)-1]
	if !(u > lo && u < hi) {
		panic(fmt.Sprintf("nurbs: split value %g outside of open domain (%g, %g)", u, lo, hi))
	}
}
