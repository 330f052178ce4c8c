package lottie

import "github.com/gogpu/thorvg"

// renderRepeater is a pending repeater instruction - LottieBuilder's
// RenderRepeater, applied when the enclosing group finishes emitting
// its children (spec.md 4.8 step 10).
type renderRepeater struct {
	count                  int
	offset                 float64
	position, anchor       thorvg.Point
	scale                  thorvg.Point
	rotation               float64
	startOpacity, endOpacity uint8
	inorder                bool
}

// renderContext is the per-branch scratch state threaded down the shape
// tree, LottieBuilder's RenderContext: a propagator Shape whose paint
// properties accumulate sibling fl/st/gf/gs/tr nodes, the last emitted
// mergeable Shape so consecutive rc/el/sh nodes concatenate into one
// draw call, and pending repeaters collected for the group's exit.
type renderContext struct {
	propagator *thorvg.Shape
	merging    *thorvg.Shape
	repeaters  []renderRepeater
}

// fork copies rhs into a new renderContext that shares rhs's repeater
// list and duplicates its propagator's paint state, the way
// RenderContext's copy-constructor forks a context when a sibling
// (e.g. a second fill after a stroke) cannot share the propagator -
// spec.md 4.8 step 4's "Fragmentation" bullet. mergeable controls
// whether the fork also inherits rhs.merging so a path-emitting sibling
// can still concatenate into the same Shape node.
func forkContext(rhs *renderContext, mergeable bool) *renderContext {
	next := &renderContext{repeaters: append([]renderRepeater(nil), rhs.repeaters...)}
	next.propagator = duplicateShapeStyle(rhs.propagator)
	if mergeable {
		next.merging = rhs.merging
	}
	return next
}

// duplicateShapeStyle copies a Shape's paint properties (fill, stroke,
// fill rule) into a fresh Shape with no path data, mirroring
// Shape::duplicate() used as `baseShape = static_cast<Shape*>(baseShape
// ->duplicate())` at _updateChildren's entry.
func duplicateShapeStyle(src *thorvg.Shape) *thorvg.Shape {
	dst := thorvg.NewShape()
	if src == nil {
		return dst
	}
	dst.SetFillRule(src.FillRule())
	if f := src.Fill(); f != nil {
		dst.SetFill(f.Clone())
	} else {
		dst.SetFillColor(src.FillColor())
	}
	dst.SetStroke(src.StrokeStyle())
	dst.SetOpacity(src.Opacity())
	return dst
}
