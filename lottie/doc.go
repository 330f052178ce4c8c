// Package lottie builds a thorvg.Scene per animation frame from a parsed
// Lottie/Bodymovin JSON composition, grounded on ThorVG's
// src/loaders/lottie tree (tvgLottieModel.h/.cpp, tvgLottieParser.h/.cpp,
// tvgLottieBuilder.h/.cpp). It keeps that codebase's three-stage split:
//
//   - parser.go builds a Composition (the static model: layers, shapes,
//     keyframed properties) straight off the JSON, the way LottieParser
//     does off a JSON token stream.
//   - merge.go carries a renderContext down the shape tree so sibling
//     Rect/Ellipse/Path nodes accumulate into one mergeable Shape and a
//     Transform/Fill/Stroke node mutates the shapes drawn above it,
//     mirroring LottieBuilder's propagator/mergingShape pattern.
//   - builder.go walks layers and groups for a given frame number and
//     pushes the resulting Shape/Scene nodes onto a root thorvg.Scene,
//     the way LottieBuilder::update/_updateLayer/_updateChildren do.
//
// Animation (animation.go) wraps a Composition and Builder behind the
// save.Animator surface (Duration/Render) so a Saver can flatten a
// Lottie file to an animated GIF, and exposes Scene() - the root scene
// for the frame last selected with Frame or Render - which the root
// package's NewPictureFromScene can wrap.
package lottie
