// Package software implements thorvg.RenderMethod on the CPU, grounded on
// the teacher's own SoftwareRenderer (gogpu-gg/software.go) and its
// internal/raster scanline/supersampling rasterizer. It fills the role
// original_source's tvgSwCanvas/sw_engine backend plays for ThorVG: the
// reference rasterizer every other backend is checked against.
//
// Differences from the teacher's SoftwareRenderer:
//
//   - It implements thorvg.RenderMethod's Prepare/RenderShape split instead
//     of the teacher's immediate-mode Fill/Stroke calls, so a Canvas can
//     cache render data across frames (spec.md C11).
//   - Fills sample color per pixel through thorvg.Fill.ColorAt instead of a
//     single constant color, so linear/radial gradients rasterize exactly
//     (the teacher's gg.Path only ever fills one solid color).
//   - Path.Subpaths splits fills by subpath before flattening, avoiding the
//     connecting-edge bug the teacher's own raster.FillAA carries (see its
//     Deprecated comment); this package always builds explicit edges via
//     raster.FillAAFromEdges.
package software
