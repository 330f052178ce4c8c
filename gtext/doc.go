// Package gtext turns a string plus a font into filled vector outlines
// ready to be handed to a Shape: glyph selection and positioning is
// delegated to the teacher's text package (FontSource/Face/Shaper/Layout),
// and this package's own job is the part that package stops short of -
// assembling the shaped glyphs' outlines into a single path with pen
// advance, letter/line spacing, an italic shear and paragraph alignment
// already baked in.
//
// Grounded on original_source/src/renderer/tvgText.h/.cpp: a Text paint
// node owns a font, a size, an italic shear angle and a wrap/box layout,
// and lazily rebuilds an internal Shape's path whenever any of those (or
// the string) change.
package gtext
