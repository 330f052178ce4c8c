// Package thorvg is a portable 2D vector graphics engine.
//
// # Overview
//
// thorvg rasterizes vector scenes - shapes, gradients, images, and animated
// Lottie sequences - into pixel buffers. It retains a scene graph of Paint
// nodes under a Canvas; each frame the canvas walks the tree twice (an
// update pass that caches transforms, opacity and backend render data, and
// a render pass that emits draw commands) through the RenderMethod backend
// contract.
//
// # Quick start
//
//	eng := thorvg.NewEngine()
//	canvas := eng.NewCanvas(software.NewMethod(256, 256), 256, 256)
//
//	shape := thorvg.NewShape()
//	shape.MoveTo(0, 0)
//	shape.LineTo(100, 0)
//	shape.LineTo(50, 100)
//	shape.Close()
//	shape.SetFillColor(thorvg.RGB8(255, 0, 0))
//
//	canvas.Push(shape)
//	canvas.Update(nil)
//	canvas.Draw(false)
//	canvas.Sync()
//
// # Architecture
//
//   - Geometry & path: Point, Matrix, Path, Fill (this package)
//   - Paint tree: Paint, Shape, Scene, Picture, Canvas (this package)
//   - Backend contract: RenderMethod (this package), implemented by the
//     software package (CPU rasterizer).
//   - Stroking/tessellation: internal/tessellate
//   - Text: the gtext package shapes glyphs for the Text paint type.
//   - Animation: the lottie package builds a Scene per frame from a
//     keyframed composition.
//   - Scheduling: the schedule package is a work-stealing task pool used
//     for asynchronous Canvas.Draw.
//   - Persistence: the save package serializes a paint tree to the TVG
//     tagged binary format, or emits an animated GIF.
//
// # Coordinate system
//
// Origin (0,0) at top-left, X increases right, Y increases down. Angles
// are in radians, 0 is along +X, increasing clockwise.
package thorvg
