package gtext

import (
	"fmt"

	thorvg "github.com/gogpu/thorvg"
	gotext "github.com/gogpu/thorvg/text"
)

// Build shapes str with font at the given options and returns a single
// Path containing every glyph's outline, already positioned, spaced,
// wrapped, aligned and (optionally) italic-sheared - ready to hand to
// Shape.SetFill/SetStroke and draw like any other path. Grounded on
// original_source/src/renderer/tvgText.cpp's load(): shape the string
// through the font's loader, then transform the resulting path by the
// italic shear.
func Build(font *Font, str string, opts Options) (*thorvg.Path, Metrics, error) {
	if opts.Size <= 0 {
		return nil, Metrics{}, fmt.Errorf("gtext: Build: size must be > 0")
	}
	if str == "" {
		return thorvg.NewPath(), Metrics{}, nil
	}

	face := font.faceAt(opts.Size)
	layout := gotext.LayoutText(str, face, opts.Size, opts.layoutOptions())
	if layout == nil || len(layout.Lines) == 0 {
		return thorvg.NewPath(), Metrics{}, nil
	}

	applyLetterSpacing(layout, opts.LetterSpacing)
	realign(layout, opts)

	out := thorvg.NewPath()
	for li := range layout.Lines {
		line := &layout.Lines[li]
		for gi := range line.Glyphs {
			g := &line.Glyphs[gi]
			outline, err := font.extractor.ExtractOutline(font.source.Parsed(), gotext.GlyphID(g.GID), opts.Size)
			if err != nil || outline == nil {
				continue
			}
			appendGlyphOutline(out, outline, g.X, line.Y+g.Y, clampItalicShear(opts.ItalicShear))
		}
	}

	metrics := Metrics{Width: layout.Width, Height: layout.Height, LineCount: len(layout.Lines)}
	return out, metrics, nil
}

// applyLetterSpacing widens every line by inserting `spacing` after each
// glyph but the last, the teacher's Text::spacing() intent (fm.spacing.x)
// that the shaping stack itself never applies.
func applyLetterSpacing(layout *gotext.Layout, spacing float64) {
	if spacing == 0 {
		return
	}
	for li := range layout.Lines {
		line := &layout.Lines[li]
		var extra float64
		for gi := range line.Glyphs {
			line.Glyphs[gi].X += extra
			if gi < len(line.Glyphs)-1 {
				extra += spacing
			}
		}
		line.Width += extra
		if line.Width > layout.Width {
			layout.Width = line.Width
		}
	}
}

// realign re-applies paragraph alignment after letter spacing has changed
// line widths, against opts.MaxWidth (the layout box width). With no box
// width, alignment has nothing to align against and is a no-op, matching
// ThorVG's unbounded single-line text.
func realign(layout *gotext.Layout, opts Options) {
	if opts.Align == AlignLeft || opts.MaxWidth <= 0 {
		return
	}
	for li := range layout.Lines {
		line := &layout.Lines[li]
		var offset float64
		switch opts.Align {
		case AlignCenter:
			offset = (opts.MaxWidth - line.Width) / 2
		case AlignRight:
			offset = opts.MaxWidth - line.Width
		default:
			continue
		}
		if offset <= 0 {
			continue
		}
		for gi := range line.Glyphs {
			line.Glyphs[gi].X += offset
		}
	}
}

// appendGlyphOutline places a single glyph's outline (font space, origin at
// its own baseline, Y up) at pen position (x, baselineY) in canvas space (Y
// down), applying an optional italic shear, and appends it to dst via
// GlyphOutline.AppendPath. shear is a raw shear factor (ThorVG's
// Text::italic() clamps it to [0, 0.5]), not an angle.
func appendGlyphOutline(dst *thorvg.Path, o *gotext.GlyphOutline, x, baselineY, shear float64) {
	shearM := thorvg.Identity()
	if shear != 0 {
		shearM = thorvg.Shear(-shear, 0)
	}
	place := thorvg.Translate(x, baselineY).Multiply(shearM)
	o.AppendPath(dst, place)
}
