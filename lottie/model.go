package lottie

import "github.com/gogpu/thorvg"

// Composition is the parsed, static form of a Lottie/Bodymovin JSON
// document - tvgLottieModel.h's LottieComposition. Frame numbers
// throughout this package are absolute (startFrame..endFrame), matching
// the original's frameNo convention; Builder.Update takes an absolute
// frame, and FrameAtPos/FrameAtTime below convert a position or a time
// into one.
type Composition struct {
	Version    string
	Name       string
	Width      float64
	Height     float64
	StartFrame float64
	EndFrame   float64
	FrameRate  float64
	Layers     []*Layer
	Assets     map[string]*Asset

	// scene is the root thorvg.Scene lazily built by Builder.Build, one
	// per Composition - LottieComposition::scene.
	scene *thorvg.Scene
}

// Duration is the composition's total playback length in seconds,
// LottieComposition::duration().
func (c *Composition) Duration() float64 {
	if c.FrameRate <= 0 {
		return 0
	}
	return c.frameDuration() / c.FrameRate
}

func (c *Composition) frameDuration() float64 { return c.EndFrame - c.StartFrame }

// FrameAtPos maps a normalized position in [0,1] to an absolute frame
// number, LottieComposition::frameAtPos.
func (c *Composition) FrameAtPos(pos float64) float64 {
	return c.StartFrame + round(pos*c.frameDuration())
}

// FrameAtTime maps a time in seconds to an absolute frame number,
// LottieComposition::frameAtTime.
func (c *Composition) FrameAtTime(sec float64) float64 {
	d := c.Duration()
	if d <= 0 {
		return c.StartFrame
	}
	return c.FrameAtPos(sec / d)
}

func round(f float64) float64 {
	if f < 0 {
		return float64(int64(f - 0.5))
	}
	return float64(int64(f + 0.5))
}

// Asset is either an image asset (Image != nil) or a precomp asset (its
// own Layers list), matched by ID against a Layer's RefID.
type Asset struct {
	ID     string
	Layers []*Layer
	Image  *ImageAsset
}

// ImageAsset names an external/embedded raster image a LottieImage
// layer projects through a thorvg.Picture.
type ImageAsset struct {
	Width, Height int
	Path          string // directory-relative file name ("u" + "p")
	Embedded      string // base64 "data:" URI, when inlined
}

// LayerType mirrors LottieLayer::Type.
type LayerType int

const (
	LayerPrecomp LayerType = iota
	LayerSolid
	LayerImage
	LayerNull
	LayerShape
	LayerText
)

// MatteType mirrors the small subset of CompositeMethod Lottie's "tt"
// matte-type field selects (tvgLottieParser.cpp's getMatteType).
type MatteType int

const (
	MatteNone MatteType = iota
	MatteAlpha
	MatteAlphaInv
	MatteLuma
	MatteLumaInv
)

// Layer is one entry of a composition's (or precomp asset's) "layers"
// array - LottieLayer. Transform/opacity memoization lives on
// cacheFrameNo/cacheMatrix/cacheOpacity, mirroring the original's
// `cache` struct consulted by _updateTransform to skip repeat work
// within one frame's update pass.
type Layer struct {
	Index       int
	ParentIndex int
	Parent      *Layer

	Name        string
	Type        LayerType
	RefID       string
	InFrame     float64
	OutFrame    float64
	StartFrame  float64
	TimeStretch float64
	Width       float64
	Height      float64
	Color       thorvg.Color
	MatteType   MatteType
	AutoOrient  bool
	Hidden      bool

	Transform *Transform
	Shapes    []Shape

	// Precomp's resolved child layer list (from its asset), set by
	// the parser after assets are indexed.
	Children []*Layer

	cacheFrameNo float64
	cacheValid   bool
	cacheMatrix  thorvg.Matrix
	cacheOpacity uint8

	scene *thorvg.Scene
}

// Remap converts a composition-relative frame number into this layer's
// own local timeline, LottieLayer::remap: `(frameNo - startFrame) /
// timeStretch + startFrame`, i.e. layers play back scaled/offset by
// their own "ip"/"st"/"sr" fields.
func (l *Layer) Remap(frameNo float64) float64 {
	stretch := l.TimeStretch
	if stretch == 0 {
		stretch = 1
	}
	return (frameNo-l.StartFrame)/stretch + l.StartFrame
}

// Transform is a Lottie transform block ("ks" on a layer, or a "tr"
// shape-tree entry) - LottieTransform.
type Transform struct {
	Position      PointProperty
	SplitPosition bool
	PositionX     FloatProperty
	PositionY     FloatProperty
	Anchor        PointProperty
	Scale         PointProperty // percent, default (100,100)
	Rotation      FloatProperty
	SkewAngle     FloatProperty
	SkewAxis      FloatProperty
	Opacity       FloatProperty // percent
}

// matrix builds the local affine transform and resolves opacity at
// frameNo, the formula spec.md 4.8 step 3 gives:
// translate(position)*scale(scale)*rotate(rotation+autoOrient)*translate(-anchor).
// Matches _updateTransform(LottieTransform*, ...) in tvgLottieBuilder.cpp.
func (t *Transform) matrix(frameNo float64, autoOrientAngle float64) (thorvg.Matrix, uint8) {
	if t == nil {
		return thorvg.Identity(), 255
	}
	m := thorvg.Identity()
	var pos thorvg.Point
	if t.SplitPosition {
		pos = thorvg.Point{X: t.PositionX.Value(frameNo), Y: t.PositionY.Value(frameNo)}
	} else {
		pos = t.Position.Value(frameNo)
	}
	m = m.Multiply(thorvg.Translate(pos.X, pos.Y))
	scale := t.Scale.Value(frameNo)
	m = m.Multiply(thorvg.Scale(scale.X*0.01, scale.Y*0.01))
	m = m.Multiply(thorvg.Rotate(degToRad(t.Rotation.Value(frameNo) + autoOrientAngle)))
	anchor := t.Anchor.Value(frameNo)
	// Lottie's anchor offset is applied in the pre-rotation/scale frame,
	// i.e. it shifts the translation terms (C,F) directly rather than
	// composing another matrix multiply (tvgLottieBuilder.cpp comment:
	// "Lottie specific anchor transform"). Matrix.C/F hold the
	// translation; A,B,D,E are the linear (rotate/scale) part.
	m.C -= anchor.X*m.A + anchor.Y*m.B
	m.F -= anchor.X*m.D + anchor.Y*m.E
	return m, t.Opacity.Opacity100(frameNo)
}

func degToRad(deg float64) float64 { return deg * 3.14159265358979323846 / 180 }

// Shape is one entry of a group's "shapes" array. The concrete types
// below mirror LottieObject's shape-tree subclasses.
type Shape interface{ shapeType() string }

// Group is a nested shape-tree node ("ty":"gr") - LottieGroup.
type Group struct {
	Name     string
	Hidden   bool
	Children []Shape
}

func (*Group) shapeType() string { return "gr" }

// Rect is a rectangle shape ("ty":"rc") - LottieRect.
type Rect struct {
	Position PointProperty
	Size     PointProperty
	Radius   FloatProperty // "r", corner roundness
	Reversed bool
}

func (*Rect) shapeType() string { return "rc" }

func (r *Rect) roundness(frameNo float64) float64 {
	size := r.Size.Value(frameNo)
	round := r.Radius.Value(frameNo)
	if round <= 0 {
		return 0
	}
	if round > size.X*0.5 {
		round = size.X * 0.5
	}
	if round > size.Y*0.5 {
		round = size.Y * 0.5
	}
	return round
}

// Ellipse is an ellipse shape ("ty":"el") - LottieEllipse.
type Ellipse struct {
	Position PointProperty
	Size     PointProperty
}

func (*Ellipse) shapeType() string { return "el" }

// PathShape is a free-form bezier shape ("ty":"sh") - LottiePath.
type PathShape struct {
	PathSet PathProperty
}

func (*PathShape) shapeType() string { return "sh" }

// PolyStar is a star/polygon shape ("ty":"sr") - LottiePolyStar.
type PolyStarKind int

const (
	PolyStarStar PolyStarKind = iota + 1
	PolyStarPolygon
)

type PolyStar struct {
	Kind           PolyStarKind
	Position       PointProperty
	InnerRadius    FloatProperty
	OuterRadius    FloatProperty
	InnerRoundness FloatProperty
	OuterRoundness FloatProperty
	Rotation       FloatProperty
	Points         FloatProperty
}

func (*PolyStar) shapeType() string { return "sr" }

// RoundedCorner rounds a sibling shape's corners ("ty":"rd") -
// LottieRoundedCorner. The builder parses this node but skips it, so it
// rounds no shape's corners; a Rect is rounded only by its own Radius.
type RoundedCorner struct {
	Radius FloatProperty
}

func (*RoundedCorner) shapeType() string { return "rd" }

// Trim is a trim-path modifier ("ty":"tm") - LottieTrimpath.
type Trim struct {
	Start      FloatProperty // percent
	End        FloatProperty // percent
	Offset     FloatProperty // degrees
	Individual bool          // "m": 2 == apply independently per subpath
}

func (*Trim) shapeType() string { return "tm" }

// Repeater duplicates the remaining siblings in its group ("ty":"rp") -
// LottieRepeater.
type Repeater struct {
	Copies       FloatProperty
	Offset       FloatProperty
	Position     PointProperty
	Anchor       PointProperty
	Scale        PointProperty
	Rotation     FloatProperty
	StartOpacity FloatProperty
	EndOpacity   FloatProperty
	Inorder      bool // "m": 1 == above, 2 == below draw order
}

func (*Repeater) shapeType() string { return "rp" }

// SolidFill is a flat-color fill ("ty":"fl") - LottieSolidFill.
type SolidFill struct {
	Color    ColorProperty
	Opacity  FloatProperty
	Rule     thorvg.FillRule
	Disabled bool
}

func (*SolidFill) shapeType() string { return "fl" }

// SolidStroke is a flat-color stroke ("ty":"st") - LottieSolidStroke.
type SolidStroke struct {
	Color      ColorProperty
	Opacity    FloatProperty
	Width      FloatProperty
	Cap        thorvg.LineCap
	Join       thorvg.LineJoin
	MiterLimit float64
	Dash       *thorvg.Dash
	Disabled   bool
}

func (*SolidStroke) shapeType() string { return "st" }

// GradientKind mirrors LottieGradient's "t" field: 1=linear, 2=radial.
type GradientKind int

const (
	GradientLinear GradientKind = 1
	GradientRadial GradientKind = 2
)

// gradientData is embedded by GradientFill/GradientStroke -
// LottieGradient.
type gradientData struct {
	Kind    GradientKind
	Start   PointProperty
	End     PointProperty
	Height  FloatProperty
	Angle   FloatProperty
	Opacity FloatProperty
	Stops   GradientStopProperty
}

// fill builds a thorvg.Fill at frameNo - LottieGradient::fill.
func (g *gradientData) fill(frameNo float64) thorvg.Fill {
	stops := g.Stops.Value(frameNo)
	if g.Kind == GradientRadial {
		center := g.Start.Value(frameNo)
		radius := g.Height.Value(frameNo)
		return thorvg.NewRadialFill(center, radius, center, stops, thorvg.SpreadPad)
	}
	start := g.Start.Value(frameNo)
	end := g.End.Value(frameNo)
	return thorvg.NewLinearFill(start, end, stops, thorvg.SpreadPad)
}

// GradientFill is a gradient fill ("ty":"gf") - LottieGradientFill.
type GradientFill struct {
	gradientData
	Rule thorvg.FillRule
}

func (*GradientFill) shapeType() string { return "gf" }

// GradientStroke is a gradient stroke ("ty":"gs") - LottieGradientStroke.
type GradientStroke struct {
	gradientData
	Width      FloatProperty
	Cap        thorvg.LineCap
	Join       thorvg.LineJoin
	MiterLimit float64
	Dash       *thorvg.Dash
}

func (*GradientStroke) shapeType() string { return "gs" }

// TransformShape is a "tr" entry inside a group's own shapes array - a
// Transform applied to siblings above it in paint order, distinct from
// a layer's own "ks" transform but sharing the same Transform struct.
type TransformShape struct {
	Transform
}

func (*TransformShape) shapeType() string { return "tr" }
