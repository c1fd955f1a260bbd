// Package bezier implements recursive subdivision of planar Bézier curves of
// arbitrary degree: finding where a curve crosses a line, flattening a curve
// into pieces that are nearly straight, and splitting B-spline curves and
// surfaces into their Bézier pieces.
//
// # Control polygons
//
// A Bézier curve of degree d is described by its [ControlPolygon] of d+1
// points. The curve starts at the first point, ends at the last, and lies in
// the convex hull of all points. [Evaluator] evaluates curves with de
// Casteljau's algorithm and, as a by-product, produces the control polygons of
// the two halves of a curve split at t. All algorithms in this package are
// built on repeated halving.
//
// [CubicBez] and [QuadBez] are fixed-size alternatives for the two most common
// degrees, with closed-form evaluation.
//
// # Root finding
//
// [FindRoots] finds the intersections of a curve with the supporting line of a
// [Ray]. It relies on two properties of control polygons. The curve crosses a
// line no more often than its control polygon does ([CrossingCount]), and a
// polygon that is close to its chord ([IsFlat]) can be replaced by the chord.
// Halves that don't cross the line are discarded. Halves that cross it once
// and are flat are intersected directly. Everything else is halved again, up
// to a depth limit.
//
// # Flattening
//
// [Flatten] subdivides a curve until every piece is flat to within a
// tolerance. The resulting [PieceList] can be drawn as a polyline
// ([PieceList.Polyline]), converted to path elements
// ([PieceList.PathElements]) and from there to SVG ([SVG]), or rasterized
// ([RasterizeOutline]).
//
// # B-splines
//
// [BezierPieces] splits any type that implements [Spline] at its interior
// knots until each piece consists of a single polynomial span. The nurbs
// subpackage provides NURBS curves and surfaces that implement [Spline].
//
// # Configuration and logging
//
// The functions that recurse take an [Options] value in their Opt variants.
// It sets the depth limit and an optional [log/slog.Logger] that receives
// debug records whenever a branch is cut short.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [A Primer on Bézier Curves]
//   - Sederberg and Nishita's fat line bounds, from "Curve intersection using Bézier clipping"
//   - [Graphics Gems] "A Bézier Curve-Based Root-Finder" by Philip J. Schneider
//   - The NURBS Book by Piegl and Tiller, for knot insertion and de Boor's algorithm
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [Graphics Gems]: https://www.realtimerendering.com/resources/GraphicsGems/
package bezier
