package bezier

import (
	"golang.org/x/image/vector"
)

// RasterizeOutline adds a closed outline to ras. The outline runs along the
// chords of the pieces of each piece list in turn, mapped to device space by
// aff, and is closed back to its start.
//
// The piece lists are typically the results of [Flatten] with an epsilon
// below half a device pixel, consecutive curves of a closed shape.
func RasterizeOutline(ras *vector.Rasterizer, outline []PieceList, aff Affine) {
	first := true
	for _, pl := range outline {
		for _, pt := range pl.Polyline() {
			pt = pt.Transform(aff)
			if first {
				ras.MoveTo(float32(pt.X), float32(pt.Y))
				first = false
			} else {
				ras.LineTo(float32(pt.X), float32(pt.Y))
			}
		}
	}
	if !first {
		ras.ClosePath()
	}
}
