package thorvg

// RenderMethod is the backend contract a rasterizer (the software package,
// or a future GPU backend) implements to turn a prepared paint tree into
// pixels. It is kept in the root package, mirroring how the teacher keeps
// its own Renderer interface (renderer.go) referencing gg's own Path/Paint
// types directly rather than factoring it into a separate package -
// avoiding an import cycle between thorvg and its backend packages, since
// backends import thorvg but thorvg never imports a backend.
//
// Grounded on original_source/src/renderer/tvgRender.h's operation set
// (prepare/preRender/renderShape/target/beginComposite/region/blend/
// viewport/dispose/colorSpace/sync), generalized to Go method signatures.
type RenderMethod interface {
	// PreRender is called once before the tree walk for a frame begins.
	PreRender()
	// Prepare builds or refreshes backend-opaque render data for a shape.
	// prev is the shape's previous render data (nil on first prepare).
	// It returns the (possibly new) render data and whether anything that
	// would affect pixels changed.
	Prepare(prev any, shape RenderShape) (data any, changed bool)
	// PreparePicture is the Picture-node analogue of Prepare.
	PreparePicture(prev any, pic RenderPicture) (data any, changed bool)
	// RenderShape draws a previously prepared shape.
	RenderShape(data any)
	// RenderPicture draws a previously prepared picture.
	RenderPicture(data any)
	// Target begins rendering into an offscreen compositing buffer for the
	// given region and color space, returning an opaque compositor handle.
	Target(region RenderRegion, space ColorSpace) RenderCompositor
	// BeginComposite activates compositor as the current render target
	// using method/opacity for how it will later be blended back.
	BeginComposite(compositor RenderCompositor, method MaskMethod, opacity uint8) bool
	// EndComposite finishes a composite target, blending it back onto the
	// previous target.
	EndComposite(compositor RenderCompositor)
	// Region returns the current clip viewport.
	Region() RenderRegion
	// SetRegion intersects the current clip viewport with r.
	SetRegion(r RenderRegion)
	// Surface returns the backend's current output surface.
	Surface() RenderSurface
	// Sync blocks until all submitted draw commands for the frame have
	// completed (software backends may be synchronous already).
	Sync()
	// Dispose releases backend-owned render data for a node being removed
	// from the tree.
	Dispose(data any)
}

// RenderShape is the prepared-data input to RenderMethod.Prepare/RenderShape:
// the flattened geometry plus paint style a backend needs, decoupled from
// the Shape node itself per spec.md's C4 render dataset.
type RenderShape struct {
	Path      *Path
	FillColor Color
	Fill      Fill
	FillSet   bool
	FillRule  FillRule
	Stroke    Stroke
	Transform Matrix
	Opacity   uint8
	Blend     BlendMethod
}

// RenderPicture is the prepared-data input for Picture nodes: a raw pixel
// buffer plus the placement transform.
type RenderPicture struct {
	Pixels    *Pixmap
	Transform Matrix
	Opacity   uint8
	Blend     BlendMethod
}

// RenderRegion is an integer-pixel axis-aligned rectangle used for
// viewports, clip regions and compositing targets.
type RenderRegion struct {
	MinX, MinY, MaxX, MaxY int
}

// Intersect returns the intersection of two regions.
func (r RenderRegion) Intersect(o RenderRegion) RenderRegion {
	out := RenderRegion{
		MinX: maxInt(r.MinX, o.MinX),
		MinY: maxInt(r.MinY, o.MinY),
		MaxX: minInt(r.MaxX, o.MaxX),
		MaxY: minInt(r.MaxY, o.MaxY),
	}
	if out.MaxX < out.MinX {
		out.MaxX = out.MinX
	}
	if out.MaxY < out.MinY {
		out.MaxY = out.MinY
	}
	return out
}

// Invalid reports whether the region has zero or negative area.
func (r RenderRegion) Invalid() bool {
	return r.MaxX <= r.MinX || r.MaxY <= r.MinY
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// RenderSurface describes a backend's output buffer: dimensions, channel
// layout and (for CPU backends) direct pixel access.
type RenderSurface struct {
	Width, Height int
	Space         ColorSpace
	Pixmap        *Pixmap
}

// RenderCompositor is an opaque handle to an offscreen compositing target
// created by RenderMethod.Target; its concrete type is backend-specific.
type RenderCompositor any

// RenderEffect is applied to a Scene or Picture's composited output before
// it is blended back into its parent (ThorVG's SceneEffect: blur, drop
// shadow, tint, tritone). Exposed as small value types a RenderMethod
// implementation interprets; software.Method does not apply these yet
// (TODO: wire GaussianBlurEffect into the compositor path alongside
// BeginComposite/EndComposite).
type RenderEffect interface {
	isRenderEffect()
}

// GaussianBlurEffect blurs the composited output with the given sigma.
type GaussianBlurEffect struct {
	Sigma     float64
	Direction int // 0=both, 1=horizontal, 2=vertical
}

func (GaussianBlurEffect) isRenderEffect() {}

// DropShadowEffect draws a blurred, offset, tinted copy behind the paint.
type DropShadowEffect struct {
	Color              Color
	Angle, Distance    float64
	BlurSigma, Opacity float64
}

func (DropShadowEffect) isRenderEffect() {}

// TintEffect blends the composited output toward a black/white pair.
type TintEffect struct {
	Black, White Color
	Intensity    float64
}

func (TintEffect) isRenderEffect() {}

// TritoneEffect remaps the composited output's luminance into a three
// color ramp (shadow/midtone/highlight).
type TritoneEffect struct {
	Shadow, Midtone, Highlight Color
}

func (TritoneEffect) isRenderEffect() {}
