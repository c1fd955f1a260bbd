package bezier

// Spline describes a B-spline entity, such as a NURBS curve or surface, that
// can be split into Bézier pieces by [BezierPieces].
//
// Knot vectors must be non-decreasing. SplitAt must return two new entities
// covering the parts of the domain before and after u in direction dir, each
// with fewer distinct interior knots in that direction than the original, and
// must leave the receiver unmodified.
type Spline[S any] interface {
	// Directions returns the number of parametric directions: 1 for curves,
	// 2 for surfaces.
	Directions() int
	Order(dir int) int
	Knots(dir int) []float64
	SplitAt(dir int, u float64) (S, S)
	Clone() S
}

// IsBezierForm reports whether a knot vector describes a single span, that is,
// whether every knot equals either the first or the last knot.
func IsBezierForm(knots []float64) bool {
	_, ok := interiorKnot(knots)
	return !ok
}

// interiorKnot returns the middle one of the distinct knot values that lie
// strictly inside the domain. Splitting there balances the two halves.
func interiorKnot(knots []float64) (float64, bool) {
	if len(knots) == 0 {
		return 0, false
	}
	lo, hi := knots[0], knots[len(knots)-1]
	var distinct []float64
	for _, k := range knots {
		if k <= lo || k >= hi {
			continue
		}
		if len(distinct) == 0 || distinct[len(distinct)-1] != k {
			distinct = append(distinct, k)
		}
	}
	if len(distinct) == 0 {
		return 0, false
	}
	return distinct[(len(distinct)-1)/2], true
}

// splitPoint returns the first direction that isn't in Bézier form yet, and
// the knot to split it at.
func splitPoint[S Spline[S]](s S) (dir int, u float64, ok bool) {
	for dir := range s.Directions() {
		if u, ok := interiorKnot(s.Knots(dir)); ok {
			return dir, u, true
		}
	}
	return 0, 0, false
}

// BezierPieces splits s into single-span pieces. It is equivalent to
// [BezierPiecesOpt] with default options.
func BezierPieces[S Spline[S]](s S) (pieces []S, alreadyBezier bool) {
	return BezierPiecesOpt(s, Options{})
}

// BezierPiecesOpt splits s at its interior knots until every piece is in Bézier
// form in all directions. Surfaces are split in the first direction before the
// second.
//
// If s is already in Bézier form, the result is a single clone of s and
// alreadyBezier is true. Otherwise the pieces are in parameter order (for
// surfaces, ordered by the first direction, then by the second) and
// alreadyBezier is false. s is never modified.
//
// Only opts.Logger is used.
func BezierPiecesOpt[S Spline[S]](s S, opts Options) (pieces []S, alreadyBezier bool) {
	if _, _, ok := splitPoint(s); !ok {
		return []S{s.Clone()}, true
	}
	log := opts.logger()
	todo := []S{s}
	for len(todo) > 0 {
		cur := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		dir, u, ok := splitPoint(cur)
		if !ok {
			pieces = append(pieces, cur)
			continue
		}
		log.Debug("splitting spline", "direction", dir, "knot", u)
		a, b := cur.SplitAt(dir, u)
		// b goes first so that a and its descendants are emitted before it.
		todo = append(todo, b, a)
	}
	return pieces, false
}
