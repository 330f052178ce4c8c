package gtext

import (
	"fmt"
	"sync"

	gotext "github.com/gogpu/thorvg/text"
)

// Font is a loaded, shareable font resource: a thin wrapper over the
// teacher's text.FontSource that additionally caches the per-size
// text.Face and an outline extractor, since both are reused across every
// glyph of every Build call for a given font/size pair.
type Font struct {
	source *gotext.FontSource

	mu    sync.Mutex
	faces map[float64]gotext.Face

	extractor *gotext.OutlineExtractor
}

// NewFont parses TTF/OTF font data. data is copied internally by
// text.NewFontSource and may be reused by the caller afterward.
func NewFont(data []byte) (*Font, error) {
	src, err := gotext.NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("gtext: %w", err)
	}
	return &Font{
		source:    src,
		faces:     make(map[float64]gotext.Face),
		extractor: gotext.NewOutlineExtractor(),
	}, nil
}

// NewFontFromFile loads a font from a TTF/OTF file path.
func NewFontFromFile(path string) (*Font, error) {
	src, err := gotext.NewFontSourceFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("gtext: %w", err)
	}
	return &Font{
		source:    src,
		faces:     make(map[float64]gotext.Face),
		extractor: gotext.NewOutlineExtractor(),
	}, nil
}

// Name returns the font family name, as reported by its parser.
func (f *Font) Name() string { return f.source.Name() }

// Close releases the underlying font resource; every Face or Path built
// from it becomes invalid.
func (f *Font) Close() error { return f.source.Close() }

// faceAt returns (creating and caching on first use) the Face for size,
// in points/pixels.
func (f *Font) faceAt(size float64) gotext.Face {
	f.mu.Lock()
	defer f.mu.Unlock()
	if face, ok := f.faces[size]; ok {
		return face
	}
	face := f.source.Face(size)
	f.faces[size] = face
	return face
}
