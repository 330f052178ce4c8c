package lottie

import (
	"math"

	"github.com/gogpu/thorvg"
)

// polyStarPath builds a star or regular-polygon outline at frameNo, the
// geometry the original's _updateChildren stubs with "TODO: update
// Polystar" (tvgLottieBuilder.cpp) rather than implementing; this is an
// original-source supplement rather than a port, following Lottie's
// documented polystar construction: ptsCnt vertices (doubled for a
// star, alternating outer/inner radius) walked clockwise from
// -90°+rotation and joined by straight LineTo segments. InnerRoundness
// and OuterRoundness are not applied: the outline has no curved corners.
func polyStarPath(s *PolyStar, frameNo float64) *thorvg.Path {
	pos := s.Position.Value(frameNo)
	outerR := s.OuterRadius.Value(frameNo)
	rotation := degToRad(s.Rotation.Value(frameNo) - 90)
	points := int(s.Points.Value(frameNo) + 0.5)
	if points < 3 {
		points = 3
	}

	path := thorvg.NewPath()
	isStar := s.Kind == PolyStarStar
	innerR := 0.0
	if isStar {
		innerR = s.InnerRadius.Value(frameNo)
	}

	vertexCount := points
	if isStar {
		vertexCount = points * 2
	}
	angleStep := 2 * math.Pi / float64(vertexCount)

	for i := 0; i < vertexCount; i++ {
		r := outerR
		if isStar && i%2 == 1 {
			r = innerR
		}
		angle := rotation + angleStep*float64(i)
		pt := thorvg.Point{X: pos.X + r*math.Cos(angle), Y: pos.Y + r*math.Sin(angle)}
		if i == 0 {
			path.MoveTo(pt.X, pt.Y)
		} else {
			path.LineTo(pt.X, pt.Y)
		}
	}
	path.Close()
	return path
}
