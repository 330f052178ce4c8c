// Package text shapes strings into positioned glyphs and extracts their
// vector outlines, the font-handling half of gtext.Build's pipeline.
package text

import (
	thorvg "github.com/gogpu/thorvg"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// OutlinePoint represents a point in a glyph outline.
// All coordinates are in font units, Y up, origin at the glyph's own
// baseline - scale and flip happen when the outline is placed onto a path.
type OutlinePoint struct {
	X, Y float32
}

// OutlineSegment represents a segment of a glyph outline.
type OutlineSegment struct {
	// Op is the segment operation type.
	Op OutlineOp

	// Points contains the control and end points for this segment.
	// - MoveTo: Points[0] is the target point
	// - LineTo: Points[0] is the target point
	// - QuadTo: Points[0] is control, Points[1] is target
	// - CubicTo: Points[0], Points[1] are controls, Points[2] is target
	Points [3]OutlinePoint
}

// OutlineOp is the type of path operation.
type OutlineOp uint8

const (
	// OutlineOpMoveTo moves to a new point without drawing.
	OutlineOpMoveTo OutlineOp = iota

	// OutlineOpLineTo draws a line to the target point.
	OutlineOpLineTo

	// OutlineOpQuadTo draws a quadratic bezier curve.
	OutlineOpQuadTo

	// OutlineOpCubicTo draws a cubic bezier curve.
	OutlineOpCubicTo
)

// String returns a string representation of the operation.
func (op OutlineOp) String() string {
	switch op {
	case OutlineOpMoveTo:
		return "MoveTo"
	case OutlineOpLineTo:
		return "LineTo"
	case OutlineOpQuadTo:
		return "QuadTo"
	case OutlineOpCubicTo:
		return "CubicTo"
	default:
		return "Unknown"
	}
}

// GlyphOutline represents the vector outline of a glyph.
// The outline consists of one or more closed contours.
type GlyphOutline struct {
	// Segments is the list of path segments that make up the outline.
	Segments []OutlineSegment

	// Bounds is the bounding box of the outline in scaled units.
	Bounds Rect

	// Advance is the horizontal advance width of the glyph.
	Advance float32

	// LSB is the left side bearing.
	LSB float32

	// GID is the glyph ID this outline represents.
	GID GlyphID

	// Type indicates the type of glyph (outline, bitmap, COLR).
	Type GlyphType
}

// IsEmpty returns true if the outline has no segments.
func (o *GlyphOutline) IsEmpty() bool {
	return len(o.Segments) == 0
}

// SegmentCount returns the number of segments in the outline.
func (o *GlyphOutline) SegmentCount() int {
	return len(o.Segments)
}

// Clone creates a deep copy of the outline.
func (o *GlyphOutline) Clone() *GlyphOutline {
	if o == nil {
		return nil
	}

	clone := &GlyphOutline{
		Segments: make([]OutlineSegment, len(o.Segments)),
		Bounds:   o.Bounds,
		Advance:  o.Advance,
		LSB:      o.LSB,
		GID:      o.GID,
		Type:     o.Type,
	}
	copy(clone.Segments, o.Segments)
	return clone
}

// AppendPath walks the outline's segments through m (font space, Y up) and
// emits them as one closed subpath of dst, the shape every ThorVG text run
// is ultimately made of. A bare MoveTo (no prior close) starts the first
// contour; any subsequent MoveTo closes the contour in progress first, so a
// multi-contour glyph (e.g. "o") produces one subpath per contour, all
// belonging to the same dst.Path.
func (o *GlyphOutline) AppendPath(dst *thorvg.Path, m thorvg.Matrix) {
	if o == nil || o.IsEmpty() {
		return
	}

	place := func(p OutlinePoint) thorvg.Point {
		return m.TransformPoint(thorvg.Point{X: float64(p.X), Y: -float64(p.Y)})
	}

	opened := false
	for _, seg := range o.Segments {
		switch seg.Op {
		case OutlineOpMoveTo:
			if opened {
				dst.Close()
			}
			p := place(seg.Points[0])
			dst.MoveTo(p.X, p.Y)
			opened = true
		case OutlineOpLineTo:
			p := place(seg.Points[0])
			dst.LineTo(p.X, p.Y)
		case OutlineOpQuadTo:
			c := place(seg.Points[0])
			e := place(seg.Points[1])
			dst.QuadraticTo(c.X, c.Y, e.X, e.Y)
		case OutlineOpCubicTo:
			c1 := place(seg.Points[0])
			c2 := place(seg.Points[1])
			e := place(seg.Points[2])
			dst.CubicTo(c1.X, c1.Y, c2.X, c2.Y, e.X, e.Y)
		}
	}
	if opened {
		dst.Close()
	}
}

// OutlineExtractor extracts glyph outlines from fonts.
// It uses a buffer pool internally for efficiency.
type OutlineExtractor struct {
	// buffer is reused for sfnt operations
	buffer sfnt.Buffer
}

// NewOutlineExtractor creates a new outline extractor.
func NewOutlineExtractor() *OutlineExtractor {
	return &OutlineExtractor{}
}

// ExtractOutline extracts the outline for a glyph at the given size.
// The size is in pixels (ppem - pixels per em).
// Returns nil if the glyph has no outline (e.g., space character).
func (e *OutlineExtractor) ExtractOutline(font ParsedFont, gid GlyphID, size float64) (*GlyphOutline, error) {
	// Type assert to get the underlying sfnt.Font
	xiFont, ok := font.(*ximageParsedFont)
	if !ok {
		return nil, ErrUnsupportedFontType
	}

	return e.extractFromSFNT(xiFont.font, gid, size)
}

// extractFromSFNT extracts outline from an sfnt.Font.
func (e *OutlineExtractor) extractFromSFNT(font *sfntFont, gid GlyphID, size float64) (*GlyphOutline, error) {
	ppem := fixed.Int26_6(size * 64) // Convert to 26.6 fixed point

	// Load glyph segments
	segments, err := font.LoadGlyph(&e.buffer, sfnt.GlyphIndex(gid), ppem, nil)
	if err != nil {
		// ErrNotFound means glyph doesn't exist
		// ErrColoredGlyph means it's a color glyph (COLR/sbix)
		return nil, err
	}

	// Check if glyph has no outline (like space)
	if len(segments) == 0 {
		// Still return an outline with advance info
		advance := getGlyphAdvance(font, &e.buffer, gid, size)
		return &GlyphOutline{
			Segments: nil,
			GID:      gid,
			Type:     GlyphTypeOutline,
			Advance:  float32(advance),
		}, nil
	}

	// Convert sfnt segments to our format
	outline := &GlyphOutline{
		Segments: make([]OutlineSegment, 0, len(segments)),
		GID:      gid,
		Type:     GlyphTypeOutline,
	}

	// Track bounds
	minX, minY := float64(1e10), float64(1e10)
	maxX, maxY := float64(-1e10), float64(-1e10)

	for _, seg := range segments {
		outSeg := OutlineSegment{}

		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			outSeg.Op = OutlineOpMoveTo
			outSeg.Points[0] = fixedPointToOutline(seg.Args[0])
			updateBounds(outSeg.Points[0], &minX, &minY, &maxX, &maxY)

		case sfnt.SegmentOpLineTo:
			outSeg.Op = OutlineOpLineTo
			outSeg.Points[0] = fixedPointToOutline(seg.Args[0])
			updateBounds(outSeg.Points[0], &minX, &minY, &maxX, &maxY)

		case sfnt.SegmentOpQuadTo:
			outSeg.Op = OutlineOpQuadTo
			outSeg.Points[0] = fixedPointToOutline(seg.Args[0]) // Control
			outSeg.Points[1] = fixedPointToOutline(seg.Args[1]) // Target
			updateBounds(outSeg.Points[0], &minX, &minY, &maxX, &maxY)
			updateBounds(outSeg.Points[1], &minX, &minY, &maxX, &maxY)

		case sfnt.SegmentOpCubeTo:
			outSeg.Op = OutlineOpCubicTo
			outSeg.Points[0] = fixedPointToOutline(seg.Args[0]) // Control 1
			outSeg.Points[1] = fixedPointToOutline(seg.Args[1]) // Control 2
			outSeg.Points[2] = fixedPointToOutline(seg.Args[2]) // Target
			updateBounds(outSeg.Points[0], &minX, &minY, &maxX, &maxY)
			updateBounds(outSeg.Points[1], &minX, &minY, &maxX, &maxY)
			updateBounds(outSeg.Points[2], &minX, &minY, &maxX, &maxY)
		}

		outline.Segments = append(outline.Segments, outSeg)
	}

	// Set bounds
	if len(outline.Segments) > 0 {
		outline.Bounds = Rect{
			MinX: minX,
			MinY: minY,
			MaxX: maxX,
			MaxY: maxY,
		}
	}

	// Get advance
	outline.Advance = float32(getGlyphAdvance(font, &e.buffer, gid, size))

	return outline, nil
}

// fixedPointToOutline converts a fixed.Point26_6 to OutlinePoint.
func fixedPointToOutline(p fixed.Point26_6) OutlinePoint {
	return OutlinePoint{
		X: float32(p.X) / 64.0,
		Y: float32(p.Y) / 64.0,
	}
}

// updateBounds updates the min/max bounds.
func updateBounds(p OutlinePoint, minX, minY, maxX, maxY *float64) {
	if float64(p.X) < *minX {
		*minX = float64(p.X)
	}
	if float64(p.Y) < *minY {
		*minY = float64(p.Y)
	}
	if float64(p.X) > *maxX {
		*maxX = float64(p.X)
	}
	if float64(p.Y) > *maxY {
		*maxY = float64(p.Y)
	}
}

// getGlyphAdvance returns the advance width for a glyph.
func getGlyphAdvance(font *sfntFont, buf *sfnt.Buffer, gid GlyphID, size float64) float64 {
	ppem := fixed.Int26_6(size * 64)
	advance, err := font.GlyphAdvance(buf, sfnt.GlyphIndex(gid), ppem, 0) // No hinting for outline extraction
	if err != nil {
		return 0
	}
	return float64(advance) / 64.0
}

// sfntFont is a type alias for easier access.
type sfntFont = sfnt.Font

// ErrUnsupportedFontType is returned when the font type is not supported.
var ErrUnsupportedFontType = &FontError{Reason: "unsupported font type for outline extraction"}

// FontError represents a font-related error.
type FontError struct {
	Reason string
}

func (e *FontError) Error() string {
	return "text: " + e.Reason
}
