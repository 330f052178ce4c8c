package thorvg

// LineCap defines the shape used at open path endpoints when stroked.
type LineCap int

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

// LineJoin defines the shape used at path corners when stroked.
type LineJoin int

const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

// FillRule selects how self-intersecting or overlapping path regions are
// filled.
type FillRule int

const (
	FillRuleNonZero FillRule = iota
	FillRuleEvenOdd
)

// Spread controls how a gradient is extended past its defined stop range.
type Spread int

const (
	SpreadPad Spread = iota
	SpreadReflect
	SpreadRepeat
)

// MaskMethod selects how a mask paint composites against its target.
type MaskMethod int

const (
	MaskMethodNone MaskMethod = iota
	MaskMethodAlpha
	MaskMethodInvAlpha
	MaskMethodLuma
	MaskMethodInvLuma
	MaskMethodAdd
	MaskMethodSubtract
	MaskMethodIntersect
	MaskMethodDifference
	MaskMethodLighten
	MaskMethodDarken
)

// BlendMethod selects a Porter-Duff-style compositing operator applied
// between a paint and what is already on the canvas.
type BlendMethod int

const (
	BlendMethodNormal BlendMethod = iota
	BlendMethodMultiply
	BlendMethodScreen
	BlendMethodOverlay
	BlendMethodDarken
	BlendMethodLighten
	BlendMethodColorDodge
	BlendMethodColorBurn
	BlendMethodHardLight
	BlendMethodSoftLight
	BlendMethodDifference
	BlendMethodExclusion
	BlendMethodAdd
)

// ColorSpace describes the memory layout a RenderMethod surface exposes.
type ColorSpace int

const (
	ColorSpaceABGR8888 ColorSpace = iota
	ColorSpaceABGR8888S
	ColorSpaceARGB8888
	ColorSpaceARGB8888S
	ColorSpaceGrayscale8
)

// MaskToColorSpace returns the natural surface color space for a given
// mask method (luma masks only need a single channel).
func MaskToColorSpace(m MaskMethod) ColorSpace {
	switch m {
	case MaskMethodLuma, MaskMethodInvLuma:
		return ColorSpaceGrayscale8
	default:
		return ColorSpaceABGR8888
	}
}
