package bezier

// EvalFlags selects the optional outputs of [Evaluator.Evaluate].
type EvalFlags uint8

const (
	// WantLeft requests the control polygon of the curve over [0, t].
	WantLeft EvalFlags = 1 << iota
	// WantRight requests the control polygon of the curve over [t, 1].
	WantRight
	// WantNormal requests the unit normal at t.
	WantNormal
)

// Evaluation is the result of [Evaluator.Evaluate]. Fields that weren't
// requested are left at their zero values.
type Evaluation struct {
	Point  Point
	Normal Vec2
	Left   ControlPolygon
	Right  ControlPolygon
}

// Evaluator evaluates and subdivides Bézier curves using de Casteljau's
// algorithm.
//
// The triangle of intermediate points lives in a single flat buffer that is
// grown to the largest degree seen and reused by later calls, so repeated
// evaluation doesn't allocate scratch space. The zero value is ready to use.
// An Evaluator must not be used by multiple goroutines concurrently.
type Evaluator struct {
	buf []Point
}

// triangle returns a buffer big enough for the de Casteljau triangle of
// degree d, which has (d+1)(d+2)/2 entries.
func (e *Evaluator) triangle(d int) []Point {
	n := (d + 1) * (d + 2) / 2
	if cap(e.buf) < n {
		e.buf = make([]Point, n)
	}
	return e.buf[:n]
}

// rowStart returns the offset of row i in a triangle of degree d. Row i holds
// d+1−i points.
func rowStart(d, i int) int {
	return i*(d+1) - i*(i-1)/2
}

// Evaluate evaluates the curve described by p at t ∈ [0, 1].
//
// The left and right polygons, if requested, are freshly allocated and owned by
// the caller. Evaluated over [0, 1] they reproduce the original curve over [0,
// t] and [t, 1] respectively.
//
// The normal is the tangent rotated by −90°, of unit length. A degree 0 curve,
// or a curve whose derivative vanishes at t, has the zero vector as its normal.
func (e *Evaluator) Evaluate(p ControlPolygon, t float64, flags EvalFlags) Evaluation {
	d := p.Degree()
	tri := e.triangle(d)
	copy(tri, p)
	for i := 1; i <= d; i++ {
		prev := tri[rowStart(d, i-1):]
		row := tri[rowStart(d, i):]
		for j := 0; j <= d-i; j++ {
			row[j] = prev[j].Lerp(prev[j+1], t)
		}
	}

	var out Evaluation
	out.Point = tri[rowStart(d, d)]
	if flags&WantLeft != 0 {
		out.Left = make(ControlPolygon, d+1)
		for i := range d + 1 {
			out.Left[i] = tri[rowStart(d, i)]
		}
	}
	if flags&WantRight != 0 {
		out.Right = make(ControlPolygon, d+1)
		for i := range d + 1 {
			out.Right[i] = tri[rowStart(d, d-i)+i]
		}
	}
	if flags&WantNormal != 0 && d > 0 {
		row := tri[rowStart(d, d-1):]
		out.Normal = row[1].Sub(row[0]).Normal()
	}
	return out
}
