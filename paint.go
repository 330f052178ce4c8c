package thorvg

// Kind tags the concrete type of a Paint node. Go has no v-table/RTTI
// dispatch, so the tree uses a tag plus an interface method set instead -
// the idiom note in spec.md's design notes for this exact substitution.
type Kind int

const (
	KindShape Kind = iota
	KindScene
	KindPicture
	KindText
)

// maskBinding pairs a mask target paint with the compositing method it
// applies, mirroring the teacher-absent tvgPaint.cpp's maskData.
type maskBinding struct {
	target Paintable
	method MaskMethod
}

// Base is the common state every paint-tree node embeds: transform,
// opacity, blend mode, visibility, mask and clip bindings, and the parent
// link used for bounds propagation and dirty-region invalidation. Grounded
// on original_source/src/renderer/tvgPaint.cpp's Paint::Impl fields
// (tr, opacity, blendMethod, hidden, maskData, clipper), translated from a
// pimpl idiom to a directly-embedded Go struct.
type Base struct {
	kind      Kind
	transform Matrix
	opacity   uint8 // 0-255
	blend     BlendMethod
	hidden    bool
	mask      *maskBinding
	clipper   *Shape
	parent    Paintable

	// renderData is backend-opaque state produced by RenderMethod.Prepare
	// and cached across frames until the node's dirty flags require a
	// fresh prepare.
	renderData any
	dirty      bool
}

// newBase initializes a Base with the teacher's/ThorVG's defaults: opaque,
// visible, identity transform, normal blending.
func newBase(kind Kind) Base {
	return Base{
		kind:      kind,
		transform: Identity(),
		opacity:   255,
		blend:     BlendMethodNormal,
		dirty:     true,
	}
}

// Paintable is implemented by every paint-tree node (Shape, Scene,
// Picture, Text). It is the Go replacement for ThorVG's Paint v-table.
type Paintable interface {
	Kind() Kind
	base() *Base
	// localBounds returns the node's untransformed local bounding box.
	localBounds() Rect
	// prepare asks the backend to build/refresh renderData for this node
	// under the accumulated transform pm and opacity, returning whether
	// anything changed (used to decide whether a parent needs re-prepare).
	prepare(method RenderMethod, pm Matrix, opacity uint8) bool
	// draw issues this node's draw commands to method.
	draw(method RenderMethod)
	// duplicate returns a deep copy sharing no mutable state.
	duplicate() Paintable
}

// Duplicate returns a deep copy of p sharing no mutable state with it -
// the exported form of Paint::duplicate() for callers outside this
// package (e.g. package lottie's repeater expansion).
func Duplicate(p Paintable) Paintable { return p.duplicate() }

// Kind returns the node's Kind tag.
func (b *Base) Kind() Kind     { return b.kind }
func (b *Base) base() *Base    { return b }
func (b *Base) markDirty()     { b.dirty = true }

// Transform returns the node's local transform matrix.
func (b *Base) Transform() Matrix { return b.transform }

// SetTransform replaces the node's local transform.
func (b *Base) SetTransform(m Matrix) {
	b.transform = m
	b.markDirty()
}

// Translate composes a translation onto the current transform.
func (b *Base) Translate(x, y float64) {
	b.transform = Translate(x, y).Multiply(b.transform)
	b.markDirty()
}

// Scale composes a uniform scale onto the current transform.
func (b *Base) Scale(factor float64) {
	b.transform = Scale(factor, factor).Multiply(b.transform)
	b.markDirty()
}

// Rotate composes a rotation (degrees) onto the current transform.
func (b *Base) Rotate(degrees float64) {
	b.transform = Rotate(degrees * (3.14159265358979323846 / 180)).Multiply(b.transform)
	b.markDirty()
}

// Opacity returns the node's opacity in [0,255].
func (b *Base) Opacity() uint8 { return b.opacity }

// SetOpacity sets the node's opacity in [0,255].
func (b *Base) SetOpacity(o uint8) {
	b.opacity = o
	b.markDirty()
}

// Hidden reports whether the node is excluded from rendering.
func (b *Base) Hidden() bool { return b.hidden }

// SetHidden sets the node's visibility.
func (b *Base) SetHidden(h bool) {
	b.hidden = h
	b.markDirty()
}

// BlendMethod returns the node's compositing operator.
func (b *Base) BlendMethod() BlendMethod { return b.blend }

// SetBlendMethod sets the node's compositing operator.
func (b *Base) SetBlendMethod(m BlendMethod) {
	b.blend = m
	b.markDirty()
}

// SetMask binds target as a mask for this node using method. Pass
// MaskMethodNone to clear the mask.
func (b *Base) SetMask(target Paintable, method MaskMethod) error {
	if method == MaskMethodNone {
		b.mask = nil
		b.markDirty()
		return nil
	}
	if target == nil {
		return wrapf(ResultInvalidArguments, "SetMask: nil target with non-None method")
	}
	b.mask = &maskBinding{target: target, method: method}
	b.markDirty()
	return nil
}

// Clip binds a shape as this node's clip path. Pass nil to clear.
func (b *Base) Clip(clipper *Shape) {
	b.clipper = clipper
	b.markDirty()
}

// Clipper returns the node's bound clip shape, or nil if none is set.
func (b *Base) Clipper() *Shape { return b.clipper }

// Mask returns the node's mask target and method, matching ThorVG's
// Paint::composite(Paint**) out-parameter signature. method is
// MaskMethodNone and target is nil when no mask is bound.
func (b *Base) Mask() (target Paintable, method MaskMethod) {
	if b.mask == nil {
		return nil, MaskMethodNone
	}
	return b.mask.target, b.mask.method
}

// isSkippable mirrors Paint::Impl::render's early-out: hidden or fully
// transparent nodes contribute nothing and can skip update/render work.
func (b *Base) isSkippable() bool {
	return b.hidden || b.opacity == 0
}
