package gtext

import (
	gotext "github.com/gogpu/thorvg/text"
)

// Alignment mirrors the teacher text package's paragraph alignment.
type Alignment = gotext.Alignment

const (
	AlignLeft    = gotext.AlignLeft
	AlignCenter  = gotext.AlignCenter
	AlignRight   = gotext.AlignRight
	AlignJustify = gotext.AlignJustify
)

// Wrap selects how a run of text folds across lines.
type Wrap int

const (
	// WrapNone never breaks a line; MaxWidth only serves as the
	// alignment box.
	WrapNone Wrap = iota
	// WrapWord breaks at word boundaries once a line exceeds MaxWidth,
	// ThorVG's TextWrap::Word.
	WrapWord
)

// Options configures Build. It is the Go-native analogue of ThorVG's
// Text::size/font/layout/spacing/wrapping setters (tvgText.h), collected
// into one value since this package has no retained Text object of its
// own - that lives in the root package's Text paint type.
type Options struct {
	Size float64

	// LetterSpacing adds extra horizontal gap after every glyph except a
	// line's last, in the same units as Size. Negative values tighten
	// tracking.
	LetterSpacing float64
	// LineSpacing multiplies the font's natural line height (1.0 = normal).
	LineSpacing float64

	Wrap     Wrap
	MaxWidth float64 // box width: wrap width for WrapWord, alignment box for AlignCenter/AlignRight

	Align Alignment

	// ItalicShear is a synthetic-italic shear factor in [0, 0.5], ThorVG's
	// Text::italic() clamp. 0 disables it.
	ItalicShear float64
}

// clampItalicShear mirrors Text::italic()'s [0, 0.5] clamp.
func clampItalicShear(shear float64) float64 {
	if shear < 0 {
		return 0
	}
	if shear > 0.5 {
		return 0.5
	}
	return shear
}

// DefaultOptions returns single-line, unspaced, non-italic defaults.
func DefaultOptions(size float64) Options {
	return Options{Size: size, LineSpacing: 1.0}
}

// Metrics summarizes the built text's extent, for callers sizing a
// surrounding layout box without re-walking the path.
type Metrics struct {
	Width, Height float64
	LineCount     int
}

// layoutOptions builds the options passed to the teacher's LayoutText.
// Alignment is always Left here: LayoutText has no notion of letter
// spacing, so Build reflows width and realigns itself after widening
// lines by LetterSpacing - doing both in one pass would double-shift.
func (o Options) layoutOptions() gotext.LayoutOptions {
	lo := gotext.DefaultLayoutOptions()
	lo.Alignment = gotext.AlignLeft
	if o.LineSpacing > 0 {
		lo.LineSpacing = o.LineSpacing
	}
	if o.Wrap == WrapWord && o.MaxWidth > 0 {
		lo.MaxWidth = o.MaxWidth
	}
	return lo
}
