package software

import (
	"math"

	"github.com/gogpu/thorvg"
	"github.com/gogpu/thorvg/internal/blend"
	"github.com/gogpu/thorvg/internal/raster"
)

// fillTolerance is the curve-flattening tolerance the software backend
// rasterizes with. It matches engine.go's defaultCurveAccuracy; the
// backend does not currently thread Engine-level overrides through to
// RenderMethod construction (see DESIGN.md's Open Question decision on
// NewMethod's signature).
const fillTolerance = 0.25

// shapeRenderData is the render data thorvg.Canvas caches across frames
// for a Shape node. The software backend keeps the whole RenderShape
// rather than pre-flattened geometry: correctness over reuse, since
// flattening a handful of shapes per frame is cheap relative to a
// supersampled scanline fill.
type shapeRenderData struct {
	shape thorvg.RenderShape
}

// Prepare builds or refreshes a Shape's render data, reporting whether
// anything that affects pixels changed since the previous prepare.
func (m *Method) Prepare(prev any, shape thorvg.RenderShape) (any, bool) {
	data := &shapeRenderData{shape: shape}
	changed := true
	if old, ok := prev.(*shapeRenderData); ok {
		changed = !shapeEqual(old.shape, shape)
	}
	return data, changed
}

// shapeEqual reports whether two RenderShape values would rasterize
// identically. Path equality is by pointer identity (Shape.prepare always
// passes its own *Path, mutated in place by SetPath-style calls rather
// than replaced), matching the teacher's own "dirty" flag style of
// change tracking (paint.go's Base.dirty) rather than a deep compare.
func shapeEqual(a, b thorvg.RenderShape) bool {
	return a.Path == b.Path &&
		a.Transform == b.Transform &&
		a.Opacity == b.Opacity &&
		a.FillColor == b.FillColor &&
		a.FillSet == b.FillSet &&
		a.Fill == b.Fill &&
		a.FillRule == b.FillRule &&
		a.Stroke == b.Stroke &&
		a.Blend == b.Blend
}

// RenderShape draws a previously prepared Shape: fill first, stroke on
// top, matching original_source/src/renderer/tvgRender.h's draw order
// (tvgSwShape fills then strokes in RenderShape::render).
func (m *Method) RenderShape(data any) {
	sd, ok := data.(*shapeRenderData)
	if !ok || sd == nil {
		return
	}
	rs := sd.shape
	if rs.Path == nil {
		return
	}

	m.mu.Lock()
	tgt := m.active
	m.mu.Unlock()
	if tgt == nil {
		return
	}

	blendFn := blend.GetBlendFunc(blendModeFor(rs.Blend))

	if rs.FillSet || rs.Fill != nil {
		device := rs.Path.Transform(rs.Transform)
		colorFunc := m.fillColorFunc(rs)
		m.rasterFill(tgt, device, rs.FillRule, colorFunc, blendFn)
	}

	if rs.Stroke.Width > 0 {
		outline := m.strokeOutline(rs)
		if outline != nil {
			colorFunc := m.strokeColorFunc(rs)
			m.rasterFill(tgt, outline, thorvg.FillRuleNonZero, colorFunc, blendFn)
		}
	}
}

// fillColorFunc returns a per-device-pixel color sampler for rs's fill.
// A flat FillColor samples the same color everywhere; a gradient Fill
// samples world-space points mapped back into the shape's local space
// via the inverse transform, since LinearFill/RadialFill coordinates are
// defined in local space (fill.go's ColorAt doc comment).
func (m *Method) fillColorFunc(rs thorvg.RenderShape) func(wx, wy int) thorvg.RGBA {
	opacity := float64(rs.Opacity) / 255
	if rs.Fill == nil {
		c := rs.FillColor.ToFloat()
		c.A *= opacity
		return func(int, int) thorvg.RGBA { return c }
	}
	inv := rs.Transform.Invert()
	fill := rs.Fill
	return func(wx, wy int) thorvg.RGBA {
		p := thorvg.Pt(float64(wx)+0.5, float64(wy)+0.5)
		local := inv.TransformPoint(p)
		c := fill.ColorAt(local).ToFloat()
		c.A *= opacity
		return c
	}
}

// strokeColorFunc mirrors fillColorFunc for the stroke's own paint
// (Stroke.Fill overrides Stroke.Color, matching Shape.StrokeStyle's
// precedence).
func (m *Method) strokeColorFunc(rs thorvg.RenderShape) func(wx, wy int) thorvg.RGBA {
	opacity := float64(rs.Opacity) / 255
	if rs.Stroke.Fill == nil {
		c := rs.Stroke.Color.ToFloat()
		c.A *= opacity
		return func(int, int) thorvg.RGBA { return c }
	}
	inv := rs.Transform.Invert()
	fill := rs.Stroke.Fill
	return func(wx, wy int) thorvg.RGBA {
		p := thorvg.Pt(float64(wx)+0.5, float64(wy)+0.5)
		local := inv.TransformPoint(p)
		c := fill.ColorAt(local).ToFloat()
		c.A *= opacity
		return c
	}
}

// strokeOutline dashes (in local space) then widens rs.Path into a
// filled device-space outline via internal/tessellate, ordered exactly
// as internal/tessellate/stroker.go documents: dash the centerline, then
// widen each resulting segment.
func (m *Method) strokeOutline(rs thorvg.RenderShape) *thorvg.Path {
	var segments []*thorvg.Path
	if rs.Stroke.IsDashed() {
		segments = rs.Path.Dashed(rs.Stroke.Dash)
	} else {
		segments = []*thorvg.Path{rs.Path}
	}
	if len(segments) == 0 {
		return nil
	}

	scale := approxScale(rs.Transform)
	style := strokeStyle(rs.Stroke, scale)

	out := thorvg.NewPath()
	drew := false
	for _, seg := range segments {
		device := seg.Transform(rs.Transform)
		elems := toStrokeElements(device)
		if len(elems) == 0 {
			continue
		}
		widened := tessellateExpand(elems, style)
		if len(widened) == 0 {
			continue
		}
		appendStrokeElements(out, widened)
		drew = true
	}
	if !drew {
		return nil
	}
	return out
}

// approxScale estimates the uniform scale factor m applies, used to keep
// stroke width visually consistent once centerlines move to device
// space (tessellate.Expand widens in the same space its input lives in).
func approxScale(mtx thorvg.Matrix) float64 {
	det := mtx.A*mtx.E - mtx.B*mtx.D
	s := math.Sqrt(math.Abs(det))
	if s <= 0 {
		return 1
	}
	return s
}

// rasterFill fills path into tgt using colorFunc for per-pixel color and
// blendFn for compositing, building subpath-correct edges so separate
// contours (e.g. a shape with a hole) never get spuriously connected -
// the bug internal/raster.FillAA carries and FillAAFromEdges avoids.
func (m *Method) rasterFill(tgt *target, path *thorvg.Path, rule thorvg.FillRule, colorFunc func(wx, wy int) thorvg.RGBA, blendFn blend.BlendFunc) {
	edges := subpathEdges(path, tgt.offsetX, tgt.offsetY, fillTolerance)
	if len(edges) == 0 {
		return
	}
	adapter := &aaAdapter{tgt: tgt, colorFunc: colorFunc, blendFn: blendFn}
	rz := raster.NewRasterizer(tgt.pixmap.Width(), tgt.pixmap.Height())
	rz.FillAAFromEdges(adapter, edges, convertFillRule(rule), raster.RGBA{})
}

func convertFillRule(r thorvg.FillRule) raster.FillRule {
	if r == thorvg.FillRuleEvenOdd {
		return raster.FillRuleEvenOdd
	}
	return raster.FillRuleNonZero
}

// aaAdapter implements raster.AAPixmap over a software target, routing
// every blended pixel through colorFunc (enabling per-pixel gradient
// sampling, unlike the teacher's pixmapAdapter which always blends the
// single color FillAA/Fill was called with) and blendFn (so non-Normal
// BlendMethods apply consistently with the compositor path).
type aaAdapter struct {
	tgt       *target
	colorFunc func(wx, wy int) thorvg.RGBA
	blendFn   blend.BlendFunc
}

func (a *aaAdapter) Width() int  { return a.tgt.pixmap.Width() }
func (a *aaAdapter) Height() int { return a.tgt.pixmap.Height() }

func (a *aaAdapter) SetPixel(x, y int, c raster.RGBA) {
	a.tgt.pixmap.SetPixel(x, y, thorvg.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
}

func (a *aaAdapter) BlendPixelAlpha(x, y int, _ raster.RGBA, alpha uint8) {
	if alpha == 0 {
		return
	}
	wx := x + a.tgt.offsetX
	wy := y + a.tgt.offsetY
	c := a.colorFunc(wx, wy)
	c.A *= float64(alpha) / 255
	if c.A <= 0 {
		return
	}
	compositeByteBlend(a.tgt, x, y, c, 255, a.blendFn)
}
