package software

import (
	"log/slog"
	"math"
	"sync"

	"github.com/gogpu/thorvg"
	"github.com/gogpu/thorvg/internal/blend"
)

// blendModeFor and compositeByteBlend below are shared by shape.go's fill
// path and this file's compositor blending.

// Method is the CPU thorvg.RenderMethod backend. It owns the output
// surface and a stack of compositing targets, mirroring
// original_source's SwCanvas/tvgRender split between a root surface and
// the composite-target stack BeginComposite/EndComposite push and pop.
type Method struct {
	mu sync.Mutex

	root   *target
	active *target
	stack  []compositeFrame
	region thorvg.RenderRegion
	space  thorvg.ColorSpace

	logger *slog.Logger
}

// target is one renderable surface: either the canvas's root pixmap or an
// offscreen buffer created by Target, with an offset translating canvas
// device coordinates into the buffer's own local coordinates.
type target struct {
	pixmap  *thorvg.Pixmap
	offsetX int
	offsetY int
}

// compositorHandle is the concrete type behind thorvg.RenderCompositor
// returned by Target.
type compositorHandle struct {
	buf     *target
	region  thorvg.RenderRegion
	space   thorvg.ColorSpace
	maskBuf *thorvg.Pixmap // snapshot of the buffer's content from the
	// MaskMethodNone phase, populated on the transition to a real mask
	// method (see (*Method).BeginComposite).
}

// compositeFrame records what BeginComposite needs to undo at
// EndComposite: the target active before the push, and the mask
// method/opacity to combine the compositor buffer back with.
type compositeFrame struct {
	handle     *compositorHandle
	method     thorvg.MaskMethod
	opacity    uint8
	prevActive *target
}

// NewMethod builds a CPU RenderMethod targeting a width x height surface.
func NewMethod(width, height int) *Method {
	pm := thorvg.NewPixmap(width, height)
	m := &Method{
		root:   &target{pixmap: pm},
		space:  thorvg.ColorSpaceABGR8888,
		logger: thorvg.Logger(),
	}
	m.active = m.root
	m.region = thorvg.RenderRegion{MinX: 0, MinY: 0, MaxX: width, MaxY: height}
	return m
}

// SetLogger implements the loggerSetter interface thorvg.registerLoggerBackend
// expects, so thorvg.SetLogger reaches this backend's own diagnostics.
func (m *Method) SetLogger(l *slog.Logger) {
	m.mu.Lock()
	m.logger = l
	m.mu.Unlock()
}

func (m *Method) log() *slog.Logger {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.logger != nil {
		return m.logger
	}
	return thorvg.Logger()
}

// PreRender resets per-frame state. The software backend has none beyond
// what Canvas already tracks, so this is a logging hook.
func (m *Method) PreRender() {
	m.log().Debug("software: pre-render")
}

// Sync is a no-op: every draw call above already ran synchronously on the
// calling goroutine. Kept so Canvas can treat every backend uniformly.
func (m *Method) Sync() {}

// Dispose releases backend render data for a removed paint node. The
// software backend's render data (shapeRenderData/pictureRenderData)
// holds no external resources, so there is nothing to release beyond
// letting the garbage collector reclaim it.
func (m *Method) Dispose(data any) {
	_ = data
}

// Region returns the current clip viewport.
func (m *Method) Region() thorvg.RenderRegion {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.region
}

// SetRegion intersects the current clip viewport with r.
func (m *Method) SetRegion(r thorvg.RenderRegion) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.region = m.region.Intersect(r)
}

// Surface returns the root pixmap as a RenderSurface descriptor.
func (m *Method) Surface() thorvg.RenderSurface {
	m.mu.Lock()
	defer m.mu.Unlock()
	return thorvg.RenderSurface{
		Width:  m.root.pixmap.Width(),
		Height: m.root.pixmap.Height(),
		Space:  m.space,
		Pixmap: m.root.pixmap,
	}
}

// Pixmap is a convenience accessor for tests/saver code that need the raw
// root surface without going through the RenderSurface indirection.
func (m *Method) Pixmap() *thorvg.Pixmap {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.root.pixmap
}

// Target allocates an offscreen buffer sized to region and returns an
// opaque handle for BeginComposite/EndComposite.
func (m *Method) Target(region thorvg.RenderRegion, space thorvg.ColorSpace) thorvg.RenderCompositor {
	clipped := region.Intersect(thorvg.RenderRegion{MinX: 0, MinY: 0, MaxX: m.root.pixmap.Width(), MaxY: m.root.pixmap.Height()})
	if clipped.Invalid() {
		return nil
	}
	w := clipped.MaxX - clipped.MinX
	h := clipped.MaxY - clipped.MinY
	buf := &target{
		pixmap:  thorvg.NewPixmap(w, h),
		offsetX: clipped.MinX,
		offsetY: clipped.MinY,
	}
	return &compositorHandle{buf: buf, region: clipped, space: space}
}

// BeginComposite activates a compositor target built by Target.
//
// A shape/scene first pushes with MaskMethodNone to render the mask
// source into the buffer, then calls BeginComposite again on the same
// handle with the real MaskMethod once the mask content is ready
// (scenepaint.go's draw pattern); on that transition the buffer's
// current content is snapshotted as the mask and the buffer cleared so
// the masked subtree renders fresh content that EndComposite then
// combines with the snapshot. Two distinct handles always push distinct
// stack frames.
func (m *Method) BeginComposite(compositor thorvg.RenderCompositor, method thorvg.MaskMethod, opacity uint8) bool {
	h, ok := compositor.(*compositorHandle)
	if !ok || h == nil {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.stack) > 0 && m.stack[len(m.stack)-1].handle == h {
		top := &m.stack[len(m.stack)-1]
		if top.method == thorvg.MaskMethodNone && method != thorvg.MaskMethodNone {
			h.maskBuf = clonePixmap(h.buf.pixmap)
			h.buf.pixmap.Clear(thorvg.RGBA2(0, 0, 0, 0))
		}
		top.method = method
		top.opacity = opacity
		return true
	}

	m.stack = append(m.stack, compositeFrame{
		handle:     h,
		method:     method,
		opacity:    opacity,
		prevActive: m.active,
	})
	m.active = h.buf
	return true
}

// EndComposite pops the topmost compositor frame and blends its buffer
// back onto the target active before the matching BeginComposite.
func (m *Method) EndComposite(compositor thorvg.RenderCompositor) {
	h, ok := compositor.(*compositorHandle)
	if !ok || h == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.stack) == 0 || m.stack[len(m.stack)-1].handle != h {
		return
	}
	frame := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	m.active = frame.prevActive

	if h.maskBuf == nil {
		blendBufferOnto(m.active, h.buf, frame.opacity)
		return
	}
	applyMaskAndBlend(m.active, h.buf, h.maskBuf, frame.method, frame.opacity)
}

// clonePixmap copies a pixmap's contents into a fresh pixmap of the same
// size.
func clonePixmap(src *thorvg.Pixmap) *thorvg.Pixmap {
	dst := thorvg.NewPixmap(src.Width(), src.Height())
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			dst.SetPixel(x, y, src.GetPixel(x, y))
		}
	}
	return dst
}

// blendBufferOnto composites src onto dst's buffer at src's recorded
// offset using plain source-over, scaled by opacity - the MaskMethodNone
// path, equivalent to drawing src's content as ordinary paint.
func blendBufferOnto(dst *target, src *target, opacity uint8) {
	if dst == nil || src == nil {
		return
	}
	fn := blend.GetBlendFunc(blend.BlendSourceOver)
	for y := 0; y < src.pixmap.Height(); y++ {
		wy := y + src.offsetY - dst.offsetY
		if wy < 0 || wy >= dst.pixmap.Height() {
			continue
		}
		for x := 0; x < src.pixmap.Width(); x++ {
			wx := x + src.offsetX - dst.offsetX
			if wx < 0 || wx >= dst.pixmap.Width() {
				continue
			}
			c := src.pixmap.GetPixel(x, y)
			if c.A <= 0 {
				continue
			}
			compositeByteBlend(dst, wx, wy, c, opacity, fn)
		}
	}
}

// applyMaskAndBlend combines a masked subtree's rendered content with its
// mask source per method's coverage formula (spec.md's mask table), then
// blends the result onto dst at opacity. content and mask share the same
// size/offset (both came from the same compositorHandle buffer).
func applyMaskAndBlend(dst *target, content *target, mask *thorvg.Pixmap, method thorvg.MaskMethod, opacity uint8) {
	if dst == nil || content == nil {
		return
	}
	fn := blend.GetBlendFunc(blend.BlendSourceOver)
	porterDuff, usesPorterDuff := maskPorterDuffMode(method)
	for y := 0; y < content.pixmap.Height(); y++ {
		wy := y + content.offsetY - dst.offsetY
		if wy < 0 || wy >= dst.pixmap.Height() {
			continue
		}
		for x := 0; x < content.pixmap.Width(); x++ {
			wx := x + content.offsetX - dst.offsetX
			if wx < 0 || wx >= dst.pixmap.Width() {
				continue
			}
			c := content.pixmap.GetPixel(x, y)
			mc := mask.GetPixel(x, y)
			var coverage float64
			if usesPorterDuff {
				coverage = blend.BlendAlpha(c.A, mc.A, porterDuff)
			} else {
				coverage = maskCoverage(c.A, mc, method)
			}
			c.A *= coverage
			if c.A <= 0 {
				continue
			}
			compositeByteBlend(dst, wx, wy, c, opacity, fn)
		}
	}
}

// maskPorterDuffMode reports the internal/blend Porter-Duff operator whose
// alpha-channel formula matches method's boolean-combine semantics (Add,
// Subtract, Intersect, Difference treat the mask as a second alpha source
// to composite against, not a standalone coverage read).
func maskPorterDuffMode(method thorvg.MaskMethod) (blend.BlendMode, bool) {
	switch method {
	case thorvg.MaskMethodAdd:
		return blend.BlendPlus, true
	case thorvg.MaskMethodSubtract:
		return blend.BlendDestinationOut, true
	case thorvg.MaskMethodIntersect:
		return blend.BlendSourceIn, true
	case thorvg.MaskMethodDifference:
		return blend.BlendXor, true
	default:
		return 0, false
	}
}

// maskCoverage returns the [0,1] coverage a mask pixel contributes under
// method, for the mask methods that read the mask as a standalone coverage
// signal rather than a second alpha source (see maskPorterDuffMode for the
// rest).
func maskCoverage(contentAlpha float64, mc thorvg.RGBA, method thorvg.MaskMethod) float64 {
	luma := 0.2126*mc.R + 0.7152*mc.G + 0.0722*mc.B
	switch method {
	case thorvg.MaskMethodAlpha:
		return mc.A
	case thorvg.MaskMethodInvAlpha:
		return 1 - mc.A
	case thorvg.MaskMethodLuma:
		return luma * mc.A
	case thorvg.MaskMethodInvLuma:
		return (1 - luma) * mc.A
	case thorvg.MaskMethodLighten:
		return math.Max(contentAlpha, mc.A)
	case thorvg.MaskMethodDarken:
		return math.Min(contentAlpha, mc.A)
	default:
		return 1
	}
}

// compositeByteBlend blends one premultiplied-float RGBA source pixel
// (scaled by opacity) onto dst's target pixmap using fn, matching the
// teacher's pixmapAdapter.BlendPixelAlpha source-over math but routed
// through internal/blend so non-Normal BlendMethods share the same path.
func compositeByteBlend(dst *target, x, y int, c thorvg.RGBA, opacity uint8, fn blend.BlendFunc) {
	a := c.A * float64(opacity) / 255
	if a <= 0 {
		return
	}
	existing := dst.pixmap.GetPixel(x, y)
	sr := byte(clampByte(c.R * a * 255))
	sg := byte(clampByte(c.G * a * 255))
	sb := byte(clampByte(c.B * a * 255))
	sa := byte(clampByte(a * 255))
	dr := byte(clampByte(existing.R * existing.A * 255))
	dg := byte(clampByte(existing.G * existing.A * 255))
	db := byte(clampByte(existing.B * existing.A * 255))
	da := byte(clampByte(existing.A * 255))

	or, og, ob, oa := fn(sr, sg, sb, sa, dr, dg, db, da)
	if oa == 0 {
		dst.pixmap.SetPixel(x, y, thorvg.RGBA2(0, 0, 0, 0))
		return
	}
	af := float64(oa) / 255
	dst.pixmap.SetPixel(x, y, thorvg.RGBA{
		R: float64(or) / 255 / af,
		G: float64(og) / 255 / af,
		B: float64(ob) / 255 / af,
		A: af,
	})
}

func clampByte(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// blendModeFor maps a thorvg.BlendMethod onto internal/blend's byte-based
// BlendMode.
func blendModeFor(b thorvg.BlendMethod) blend.BlendMode {
	switch b {
	case thorvg.BlendMethodMultiply:
		return blend.BlendMultiply
	case thorvg.BlendMethodScreen:
		return blend.BlendScreen
	case thorvg.BlendMethodOverlay:
		return blend.BlendOverlay
	case thorvg.BlendMethodDarken:
		return blend.BlendDarken
	case thorvg.BlendMethodLighten:
		return blend.BlendLighten
	case thorvg.BlendMethodColorDodge:
		return blend.BlendColorDodge
	case thorvg.BlendMethodColorBurn:
		return blend.BlendColorBurn
	case thorvg.BlendMethodHardLight:
		return blend.BlendHardLight
	case thorvg.BlendMethodSoftLight:
		return blend.BlendSoftLight
	case thorvg.BlendMethodDifference:
		return blend.BlendDifference
	case thorvg.BlendMethodExclusion:
		return blend.BlendExclusion
	case thorvg.BlendMethodAdd:
		return blend.BlendPlus
	default:
		return blend.BlendSourceOver
	}
}
