package bezier

import (
	"iter"
	"log/slog"
)

// Piece is one of the pieces produced by [Flatten].
type Piece struct {
	Polygon ControlPolygon
	// The piece covers [T0, T1] of the flattened curve's parameter domain.
	T0, T1 float64
	// Capped is set if the piece was emitted because the depth limit was
	// reached, not because it is flat.
	Capped bool
}

// PieceList is a sequence of Bézier pieces that, in order, make up a curve.
type PieceList []Piece

// Flatten adaptively subdivides the curve described by p into pieces that are
// each within epsilon of their chords. It is equivalent to [FlattenOpt] with
// default options.
func Flatten(p ControlPolygon, epsilon float64) PieceList {
	return FlattenOpt(p, epsilon, Options{})
}

// FlattenOpt adaptively subdivides the curve described by p into pieces that
// are each within epsilon of their chords, as judged by [IsFlat].
//
// The pieces are in curve order and their parameter intervals tile [0, 1]
// without gaps or overlaps. Each piece is flat unless it is marked as Capped,
// which happens when it is reached at the depth limit. The result always
// contains at least one piece.
//
// FlattenOpt takes ownership of p: if p is already flat, it becomes the sole
// piece of the result.
func FlattenOpt(p ControlPolygon, epsilon float64, opts Options) PieceList {
	p.mustBeValid()
	f := flattener{
		epsilon:  epsilon,
		maxDepth: opts.maxDepth(),
		log:      opts.logger(),
	}
	f.flatten(p, 0, 1, 0)
	return f.out
}

type flattener struct {
	epsilon  float64
	maxDepth int
	log      *slog.Logger
	eval     Evaluator
	out      PieceList
}

func (f *flattener) flatten(p ControlPolygon, t0, t1 float64, depth int) {
	if IsFlat(p, f.epsilon) {
		f.out = append(f.out, Piece{Polygon: p, T0: t0, T1: t1})
		return
	}
	if depth >= f.maxDepth {
		f.log.Debug("flattening reached depth limit", "depth", depth, "t0", t0, "t1", t1)
		f.out = append(f.out, Piece{Polygon: p, T0: t0, T1: t1, Capped: true})
		return
	}
	ev := f.eval.Evaluate(p, 0.5, WantLeft|WantRight)
	tm := 0.5 * (t0 + t1)
	f.flatten(ev.Left, t0, tm, depth+1)
	f.flatten(ev.Right, tm, t1, depth+1)
}

// Polygons returns the control polygons of the pieces.
func (pl PieceList) Polygons() []ControlPolygon {
	out := make([]ControlPolygon, len(pl))
	for i, pc := range pl {
		out[i] = pc.Polygon
	}
	return out
}

// Polyline returns the vertices of the chords of the pieces: the start of the
// first piece followed by the end of every piece.
func (pl PieceList) Polyline() []Point {
	if len(pl) == 0 {
		return nil
	}
	out := make([]Point, 0, len(pl)+1)
	out = append(out, pl[0].Polygon.Start())
	for _, pc := range pl {
		out = append(out, pc.Polygon.End())
	}
	return out
}

// PathElements returns the pieces as path elements: a MoveTo to the start of
// the first piece, followed by one element per piece. Pieces of degree 1, 2,
// and 3 are emitted as LineTo, QuadTo, and CubicTo. Pieces of higher degree
// are emitted as a LineTo along their chord.
func (pl PieceList) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for i, pc := range pl {
			p := pc.Polygon
			if i == 0 && !yield(MoveTo(p.Start())) {
				return
			}
			var el PathElement
			switch p.Degree() {
			case 2:
				el = QuadTo(p[1], p[2])
			case 3:
				el = CubicTo(p[1], p[2], p[3])
			default:
				el = LineTo(p.End())
			}
			if !yield(el) {
				return
			}
		}
	}
}
