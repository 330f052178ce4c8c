// Package tessellate converts a thorvg.Path plus thorvg.Stroke into a
// filled thorvg.Path outline that the software rasterizer's scanline
// filler can fill exactly like any ordinary shape, matching the kept
// internal/raster package's fill-only pipeline (it has no separate
// "stroke" draw call, unlike original_source's tvgSwStroke). This is the
// Go-idiomatic translation of ThorVG's stroke expansion step: both emit a
// closed outline, never a triangle mesh, because neither backend in this
// port is GPU-triangle based.
//
// Dash expansion is not done here: the root package's dash_apply.go dashes
// the centerline and software.Method.strokeOutline calls Expand on the
// result, the same order original_source/src/renderer/sw_engine/tvgSwStroke.cpp
// uses (dash the centerline, then widen each dash segment).
package tessellate

import (
	"github.com/gogpu/thorvg/internal/stroke"
)

// Point mirrors thorvg.Point's fields; callers convert at the package
// boundary so this package never imports the root thorvg package (it is
// imported FROM software/method.go, which already imports thorvg, so the
// reverse import would cycle).
type Point = stroke.Point

// Element is the path-command alphabet this package accepts/returns -
// identical in shape to thorvg.PathElement, converted at the call site.
type Element = stroke.PathElement

type (
	MoveTo  = stroke.MoveTo
	LineTo  = stroke.LineTo
	QuadTo  = stroke.QuadTo
	CubicTo = stroke.CubicTo
	Close   = stroke.Close
)

// Style mirrors thorvg.Stroke's cap/join/width/miter fields (the dash is
// applied to the path by the root package before Expand is called).
type Style struct {
	Width      float64
	Cap        stroke.LineCap
	Join       stroke.LineJoin
	MiterLimit float64
	Tolerance  float64
}

// Expand widens elements into a filled outline path per style. Tolerance
// defaults to 0.25 (matching the teacher's StrokeExpander default and
// thorvg's own curve-flattening constant) when not set.
func Expand(elements []Element, style Style) []Element {
	st := stroke.Stroke{
		Width:      style.Width,
		Cap:        style.Cap,
		Join:       style.Join,
		MiterLimit: style.MiterLimit,
	}
	if st.MiterLimit <= 0 {
		st.MiterLimit = 4.0
	}
	expander := stroke.NewStrokeExpander(st)
	if style.Tolerance > 0 {
		expander.SetTolerance(style.Tolerance)
	}
	return expander.Expand(elements)
}
