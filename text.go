package thorvg

// Text is a leaf paint node whose geometry is a set of glyph outlines.
// It owns no shaping logic itself - that lives in the gtext package,
// which builds a Path from a Font and a string and hands it to SetOutline
// - mirroring ThorVG's TextImpl, which is a thin wrapper holding a Shape
// it rebuilds whenever the string, font or layout settings change
// (tvgText.h's TextImpl::shape).
type Text struct {
	shape *Shape

	// align is the anchor fraction within the layout box used when
	// positioning the built outline, ThorVG's Text::align(x, y).
	alignX, alignY float64
	boxW, boxH     float64
}

// NewText creates an empty Text node. Call SetOutline once a gtext.Build
// (or equivalent) result is available.
func NewText() *Text {
	t := &Text{shape: NewShape()}
	t.shape.SetStroke(Stroke{}) // Text has no stroke/outline by default
	return t
}

// Kind, base, localBounds, duplicate, prepare and draw delegate entirely
// to the internal Shape, since a laid-out Text is just a filled/stroked
// path once built.
func (t *Text) Kind() Kind                 { return KindText }
func (t *Text) base() *Base                { return t.shape.base() }
func (t *Text) localBounds() Rect          { return t.shape.localBounds() }
func (t *Text) prepare(method RenderMethod, pm Matrix, opacity uint8) bool {
	return t.shape.prepare(method, pm, opacity)
}
func (t *Text) draw(method RenderMethod) { t.shape.draw(method) }

func (t *Text) duplicate() Paintable {
	dup := &Text{shape: t.shape.duplicate().(*Shape), alignX: t.alignX, alignY: t.alignY, boxW: t.boxW, boxH: t.boxH}
	return dup
}

// SetOutline installs the glyph-outline path built by the gtext package
// (or any other shaper), replacing any previous outline. size is the
// outline's natural (unaligned) width/height, used to resolve Align.
func (t *Text) SetOutline(path *Path, width, height float64) {
	t.shape.path = path
	if t.alignX != 0 || t.alignY != 0 {
		dx := -t.alignX * (width - t.boxW)
		dy := -t.alignY * (height - t.boxH)
		t.shape.SetTransform(Translate(dx, dy))
	}
	t.shape.markDirty()
}

// SetFillColor sets a flat fill color for the glyph outlines.
func (t *Text) SetFillColor(c Color) { t.shape.SetFillColor(c) }

// SetFill sets a gradient fill for the glyph outlines.
func (t *Text) SetFill(f Fill) { t.shape.SetFill(f) }

// SetOutlineStroke sets an outline (stroke) width and color around each
// glyph, ThorVG's Text::outline().
func (t *Text) SetOutlineStroke(width float64, c Color) {
	st := t.shape.StrokeStyle()
	st.Width = width
	st.Color = c
	t.shape.SetStroke(st)
}

// Align sets the anchor fraction (0,0 = top-left, 0.5,0.5 = center, 1,1 =
// bottom-right) used to position the built outline within a w x h box set
// by SetLayoutBox, ThorVG's Text::align(x, y).
func (t *Text) Align(x, y float64) {
	t.alignX, t.alignY = x, y
	t.shape.markDirty()
}

// SetLayoutBox sets the box Align is resolved against, ThorVG's
// Text::layout(w, h).
func (t *Text) SetLayoutBox(w, h float64) {
	t.boxW, t.boxH = w, h
	t.shape.markDirty()
}
