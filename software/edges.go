package software

import (
	"github.com/gogpu/thorvg"
	"github.com/gogpu/thorvg/internal/raster"
)

// subpathEdges flattens path one subpath at a time and builds the edge
// list raster.FillAAFromEdges needs, translating by (-offsetX, -offsetY)
// into a compositing target's local coordinate space. Each subpath is
// always closed for filling purposes (an open subpath's start/end are
// connected) regardless of whether it carries an explicit Close element,
// matching standard scanline-fill semantics (original_source's
// tvgSwShape treats every filled subpath as implicitly closed).
//
// Flattening per subpath, rather than the whole path in one
// Path.Flatten/FlattenCallback call, is what keeps separate contours
// (e.g. a ring shape's inner and outer edge) from being joined by a
// spurious edge - the same bug internal/raster.FillAA's Deprecated
// comment documents for its own point-stream input.
func subpathEdges(path *thorvg.Path, offsetX, offsetY int, tolerance float64) []raster.PathEdge {
	var edges []raster.PathEdge
	for _, sub := range path.Subpaths() {
		points := sub.Flatten(tolerance)
		if len(points) < 2 {
			continue
		}
		for i := 0; i < len(points)-1; i++ {
			edges = append(edges, makeEdge(points[i], points[i+1], offsetX, offsetY))
		}
		first, last := points[0], points[len(points)-1]
		if first != last {
			edges = append(edges, makeEdge(last, first, offsetX, offsetY))
		}
	}
	return edges
}

func makeEdge(a, b thorvg.Point, offsetX, offsetY int) raster.PathEdge {
	return raster.PathEdge{
		P0: raster.Point{X: a.X - float64(offsetX), Y: a.Y - float64(offsetY)},
		P1: raster.Point{X: b.X - float64(offsetX), Y: b.Y - float64(offsetY)},
	}
}
