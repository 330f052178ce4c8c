package save

// tag identifies the type of a {tag, len, payload} block in the TVG
// binary stream. Numeric values are taken from the original's
// tvgBinaryDesc.h indicator constants (TVG_*_INDICATOR) and, per
// spec.md §4.11, are part of the on-disk format and must not be
// renumbered across a major version.
type tag uint8

const (
	tagClassScene   tag = 0xfe
	tagClassShape   tag = 0xfd
	tagClassPicture tag = 0xfc

	tagPaintOpacity   tag = 0x10
	tagPaintTransform tag = 0x11
	tagPaintCmpTarget tag = 0x12
	tagPaintCmpMethod tag = 0x20

	tagShapePath     tag = 0x40
	tagShapeStroke   tag = 0x41
	tagShapeFill     tag = 0x42
	tagShapeColor    tag = 0x43
	tagShapeFillRule tag = 0x44

	tagStrokeCap      tag = 0x50
	tagStrokeJoin     tag = 0x51
	tagStrokeWidth    tag = 0x52
	tagStrokeColor    tag = 0x53
	tagStrokeFill     tag = 0x54
	tagStrokeDashPtrn tag = 0x55

	tagFillLinearGradient tag = 0x60
	tagFillRadialGradient tag = 0x61
	tagFillColorStops     tag = 0x62
	tagFillSpread         tag = 0x63

	tagPictureRawImage tag = 0x70
)

// flag is a small enum value carried as a tagged property's one-byte
// payload (fill rule, cap/join style, spread method, composite method),
// mirroring TvgBinFlag/TvgFlag in the original.
type flag uint8

const (
	flagFillRuleWinding flag = 0x01
	flagFillRuleEvenOdd flag = 0x02

	flagCapSquare flag = 0x01
	flagCapRound  flag = 0x02
	flagCapButt   flag = 0x03

	flagJoinBevel flag = 0x01
	flagJoinRound flag = 0x02
	flagJoinMiter flag = 0x03

	flagSpreadPad     flag = 0x01
	flagSpreadReflect flag = 0x02
	flagSpreadRepeat  flag = 0x03

	// flagCmpClipPath is reserved for a future clip-path composite tag;
	// clip paths are currently serialized as a plain mask target carrying
	// this method value (paintable.Clipper serializes through the same
	// composite-target block as a mask, per the original's unified
	// CompositeMethod enum).
	flagCmpClipPath flag = 0x01
)

// maskFlag maps thorvg.MaskMethod's enum ordinal directly to its on-disk
// flag byte. MaskMethodNone is never serialized (callers check it first),
// so the remaining ordinals (Alpha=1 .. Darken=10) line up one past
// flagCmpClipPath, matching the original's single CompositeMethod flag
// space shared between clip and every mask blend mode.
func maskFlag(ordinal int) flag { return flag(ordinal) }
