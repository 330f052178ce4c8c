package thorvg

// Shape is a leaf paint node wrapping a Path plus fill/stroke style,
// the retained-mode equivalent of ThorVG's Shape (tvgShape.h/tvgPaint.cpp),
// rebuilt around the teacher's Path/Stroke/Fill types instead of a
// separate RenderShape-only data model.
type Shape struct {
	Base

	path *Path

	fillColor Color
	fill      Fill // non-nil overrides fillColor
	fillRule  FillRule
	fillSet   bool

	stroke Stroke
}

// NewShape creates an empty Shape with an opaque black fill, matching
// ThorVG's Shape default (non-zero fill rule, no stroke).
func NewShape() *Shape {
	return &Shape{
		Base:      newBase(KindShape),
		path:      NewPath(),
		fillColor: RGB8(0, 0, 0),
		fillRule:  FillRuleNonZero,
		stroke:    DefaultStroke(),
	}
}

// Path returns the shape's mutable path.
func (s *Shape) Path() *Path { return s.path }

// MoveTo, LineTo, CubicTo and Close delegate to the underlying path and
// mark the shape dirty so the backend re-prepares render data.
func (s *Shape) MoveTo(x, y float64) { s.path.MoveTo(x, y); s.markDirty() }
func (s *Shape) LineTo(x, y float64) { s.path.LineTo(x, y); s.markDirty() }
func (s *Shape) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	s.path.CubicTo(c1x, c1y, c2x, c2y, x, y)
	s.markDirty()
}
func (s *Shape) Close() { s.path.Close(); s.markDirty() }

// AppendRect appends an axis-aligned rectangle to the path.
func (s *Shape) AppendRect(x, y, w, h float64) {
	s.path.Rectangle(x, y, w, h)
	s.markDirty()
}

// AppendCircle appends a circle to the path.
func (s *Shape) AppendCircle(cx, cy, r float64) {
	s.path.Circle(cx, cy, r)
	s.markDirty()
}

// AppendEllipse appends an ellipse with independent x/y radii.
func (s *Shape) AppendEllipse(cx, cy, rx, ry float64) {
	s.path.Ellipse(cx, cy, rx, ry)
	s.markDirty()
}

// AppendRoundedRect appends an axis-aligned rectangle with rounded
// corners of radius r.
func (s *Shape) AppendRoundedRect(x, y, w, h, r float64) {
	s.path.RoundedRectangle(x, y, w, h, r)
	s.markDirty()
}

// AppendArc appends a circular arc sweeping sweep radians from
// startAngle around center (cx, cy); pie closes it into a wedge instead
// of leaving it open.
func (s *Shape) AppendArc(cx, cy, radius, startAngle, sweep float64, pie bool) {
	s.path.AppendArc(cx, cy, radius, startAngle, sweep, pie)
	s.markDirty()
}

// AppendPath merges another path's contours into the shape's own path
// unchanged, the retained-mode equivalent of stamping a pre-built outline
// (e.g. a glyph, see gtext) into a composite shape.
func (s *Shape) AppendPath(other *Path) {
	s.path.AppendPath(other)
	s.markDirty()
}

// ResetPath discards all path data.
func (s *Shape) ResetPath() {
	s.path.Clear()
	s.markDirty()
}

// SetFillColor sets a flat fill color, clearing any gradient fill.
func (s *Shape) SetFillColor(c Color) {
	s.fillColor = c
	s.fill = nil
	s.fillSet = true
	s.markDirty()
}

// SetFill sets a gradient fill (LinearFill or RadialFill).
func (s *Shape) SetFill(f Fill) {
	s.fill = f
	s.fillSet = true
	s.markDirty()
}

// ResetFill clears the fill entirely (the shape will not be filled).
func (s *Shape) ResetFill() {
	s.fill = nil
	s.fillSet = false
	s.markDirty()
}

// SetFillRule sets the winding rule used to resolve overlapping subpaths.
func (s *Shape) SetFillRule(r FillRule) {
	s.fillRule = r
	s.markDirty()
}

// SetStroke replaces the shape's stroke style. An unset (zero Width)
// stroke means the shape is not stroked.
func (s *Shape) SetStroke(st Stroke) {
	s.stroke = st
	s.markDirty()
}

// Stroke returns the shape's current stroke style.
func (s *Shape) StrokeStyle() Stroke { return s.stroke }

// FillRule returns the shape's winding rule.
func (s *Shape) FillRule() FillRule { return s.fillRule }

// Fill returns the shape's gradient fill, or nil if it is filled with a
// flat color (see FillColor).
func (s *Shape) Fill() Fill { return s.fill }

// FillColor returns the shape's flat fill color. Meaningless when Fill
// returns non-nil, which overrides it.
func (s *Shape) FillColor() Color { return s.fillColor }

func (s *Shape) localBounds() Rect {
	return s.path.BoundingBox()
}

func (s *Shape) duplicate() Paintable {
	dup := &Shape{
		Base:      s.Base,
		path:      s.path.Clone(),
		fillColor: s.fillColor,
		fillRule:  s.fillRule,
		fillSet:   s.fillSet,
		stroke:    s.stroke.Clone(),
	}
	if s.fill != nil {
		dup.fill = s.fill.Clone()
	}
	dup.renderData = nil
	dup.dirty = true
	return dup
}

func (s *Shape) prepare(method RenderMethod, pm Matrix, opacity uint8) bool {
	if s.isSkippable() {
		return false
	}
	combined := pm.Multiply(s.transform)
	shape := RenderShape{
		Path:      s.path,
		FillColor: s.fillColor,
		Fill:      s.fill,
		FillSet:   s.fillSet,
		FillRule:  s.fillRule,
		Stroke:    s.stroke,
		Transform: combined,
		Opacity:   mulOpacity(opacity, s.opacity),
		Blend:     s.blend,
	}
	rd, changed := method.Prepare(s.renderData, shape)
	s.renderData = rd
	dirtied := s.dirty || changed
	s.dirty = false
	return dirtied
}

func (s *Shape) draw(method RenderMethod) {
	if s.isSkippable() {
		return
	}
	method.RenderShape(s.renderData)
}

// mulOpacity composites two [0,255] opacities the way ThorVG's MULTIPLY
// macro does: round(a*b/255).
func mulOpacity(a, b uint8) uint8 {
	return uint8((uint32(a)*uint32(b) + 127) / 255)
}
