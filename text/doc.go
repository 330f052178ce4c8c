// Package text shapes strings into positioned glyphs and lays them out
// into wrapped, aligned lines - the font-handling half of gtext.Build,
// which is in turn what backs thorvg.Text paints and Lottie text layers.
// It does not render anything itself: gtext.Build walks a Layout's Glyphs,
// extracts each one's vector outline, and bakes the result into a single
// thorvg.Path that a Shape fills/strokes like any other path.
//
// The pipeline separates concerns the way gtext needs them split:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF files,
//     one per loaded font file regardless of how many sizes/styles draw from it)
//   - Face: lightweight font instance at a specific size, vended by
//     FontSource.Face and cached by gtext.Font per size
//   - FontParser: pluggable font parsing backend (default: golang.org/x/image)
//
// # Example usage
//
//	source, err := text.NewFontSourceFromFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	layout := text.LayoutText("Hello, ThorVG!", source.Face(24), 24, text.DefaultLayoutOptions())
//
// gtext.Build wraps exactly this call, then appends each glyph's outline
// onto a thorvg.Path at the layout's computed positions.
//
// # Pluggable Parser Backend
//
// The font parsing is abstracted through the FontParser interface.
// By default, golang.org/x/image/font/opentype is used.
// Custom parsers can be registered for alternative implementations:
//
//	// Register a custom parser
//	text.RegisterParser("myparser", myCustomParser)
//
//	// Use the custom parser
//	source, err := text.NewFontSource(data, text.WithParser("myparser"))
//
// This design allows:
//   - Easy migration to different font libraries
//   - Pure Go implementations without external dependencies
//   - Custom font formats or optimized parsers
package text
