package software

import (
	"github.com/gogpu/thorvg"
	"github.com/gogpu/thorvg/internal/stroke"
	"github.com/gogpu/thorvg/internal/tessellate"
)

// toStrokeElements converts a thorvg.Path into the internal/tessellate
// element alphabet, the conversion internal/tessellate/stroker.go's doc
// comment says callers at the package boundary are responsible for.
func toStrokeElements(p *thorvg.Path) []tessellate.Element {
	elems := make([]tessellate.Element, 0, 8)
	for _, e := range p.Elements() {
		switch v := e.(type) {
		case thorvg.MoveTo:
			elems = append(elems, tessellate.MoveTo{Point: toStrokePoint(v.Point)})
		case thorvg.LineTo:
			elems = append(elems, tessellate.LineTo{Point: toStrokePoint(v.Point)})
		case thorvg.QuadTo:
			elems = append(elems, tessellate.QuadTo{
				Control: toStrokePoint(v.Control),
				Point:   toStrokePoint(v.Point),
			})
		case thorvg.CubicTo:
			elems = append(elems, tessellate.CubicTo{
				Control1: toStrokePoint(v.Control1),
				Control2: toStrokePoint(v.Control2),
				Point:    toStrokePoint(v.Point),
			})
		case thorvg.Close:
			elems = append(elems, tessellate.Close{})
		}
	}
	return elems
}

func toStrokePoint(p thorvg.Point) tessellate.Point {
	return tessellate.Point{X: p.X, Y: p.Y}
}

// appendStrokeElements appends the tessellated outline elems produces
// onto dst, converting back from internal/tessellate's element alphabet.
func appendStrokeElements(dst *thorvg.Path, elems []tessellate.Element) {
	for _, e := range elems {
		switch v := e.(type) {
		case tessellate.MoveTo:
			dst.MoveTo(v.Point.X, v.Point.Y)
		case tessellate.LineTo:
			dst.LineTo(v.Point.X, v.Point.Y)
		case tessellate.QuadTo:
			dst.QuadraticTo(v.Control.X, v.Control.Y, v.Point.X, v.Point.Y)
		case tessellate.CubicTo:
			dst.CubicTo(v.Control1.X, v.Control1.Y, v.Control2.X, v.Control2.Y, v.Point.X, v.Point.Y)
		case tessellate.Close:
			dst.Close()
		}
	}
}

// strokeStyle maps a thorvg.Stroke (with width already scaled into
// device space) onto internal/tessellate.Style. LineCap/LineJoin share
// identical ordinal values between the two packages by construction, so
// a direct numeric cast is exact rather than a coincidence to document
// away.
func strokeStyle(s thorvg.Stroke, scale float64) tessellate.Style {
	return tessellate.Style{
		Width:      s.Width * scale,
		Cap:        stroke.LineCap(s.Cap),
		Join:       stroke.LineJoin(s.Join),
		MiterLimit: s.MiterLimit,
		Tolerance:  fillTolerance,
	}
}

func tessellateExpand(elems []tessellate.Element, style tessellate.Style) []tessellate.Element {
	return tessellate.Expand(elems, style)
}
