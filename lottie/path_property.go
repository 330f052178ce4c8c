package lottie

import (
	"encoding/json"

	"github.com/gogpu/thorvg"
)

// PathVertices is one cubic-bezier control polygon as Lottie stores it:
// vertices plus per-vertex tangent handles relative to that vertex, and
// a closed flag - the "v"/"i"/"o"/"c" fields LottieParser::getPathSet
// reads into a PathSet.
type PathVertices struct {
	Vertices []thorvg.Point
	In       []thorvg.Point // "i", handle toward the previous vertex
	Out      []thorvg.Point // "o", handle toward the next vertex
	Closed   bool
}

// ToPath replays the vertex/tangent data into a thorvg.Path, elevating
// every edge to a cubic (control points are the vertex plus its out
// handle, and the next vertex plus its in handle) even when both
// handles are zero - the same "always cubic" approach TVG's own binary
// format and tvgLottieModel.h's PathSet use internally.
func (v *PathVertices) ToPath() *thorvg.Path {
	p := thorvg.NewPath()
	if len(v.Vertices) == 0 {
		return p
	}
	p.MoveTo(v.Vertices[0].X, v.Vertices[0].Y)
	n := len(v.Vertices)
	last := n - 1
	if v.Closed {
		last = n
	}
	for k := 0; k < last; k++ {
		cur := v.Vertices[k%n]
		next := v.Vertices[(k+1)%n]
		c1 := thorvg.Point{X: cur.X + v.Out[k%n].X, Y: cur.Y + v.Out[k%n].Y}
		c2 := thorvg.Point{X: next.X + v.In[(k+1)%n].X, Y: next.Y + v.In[(k+1)%n].Y}
		p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, next.X, next.Y)
	}
	if v.Closed {
		p.Close()
	}
	return p
}

type rawPathVertices struct {
	V [][2]float64 `json:"v"`
	I [][2]float64 `json:"i"`
	O [][2]float64 `json:"o"`
	C bool         `json:"c"`
}

func (r rawPathVertices) toVertices() PathVertices {
	conv := func(v [][2]float64) []thorvg.Point {
		pts := make([]thorvg.Point, len(v))
		for i, c := range v {
			pts[i] = thorvg.Point{X: c[0], Y: c[1]}
		}
		return pts
	}
	return PathVertices{Vertices: conv(r.V), In: conv(r.I), Out: conv(r.O), Closed: r.C}
}

// PathProperty is an animated free-form path ("ks"/"sh" shape property),
// LottiePathSet wrapped in its own Property.
type PathProperty struct {
	Static    bool
	value     PathVertices
	Keyframes []pathKeyframe
}

type pathKeyframe struct {
	Frame float64
	Value PathVertices
}

func (p *PathProperty) UnmarshalJSON(data []byte) error {
	var wrapper struct {
		K json.RawMessage `json:"k"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return err
	}
	var scalar rawPathVertices
	if err := json.Unmarshal(wrapper.K, &scalar); err == nil && len(scalar.V) > 0 {
		p.Static = true
		p.value = scalar.toVertices()
		return nil
	}
	var frames []struct {
		T float64           `json:"t"`
		S []rawPathVertices `json:"s"`
	}
	if err := json.Unmarshal(wrapper.K, &frames); err != nil {
		return err
	}
	p.Keyframes = make([]pathKeyframe, 0, len(frames))
	for _, f := range frames {
		var v PathVertices
		if len(f.S) > 0 {
			v = f.S[0].toVertices()
		}
		p.Keyframes = append(p.Keyframes, pathKeyframe{Frame: f.T, Value: v})
	}
	return nil
}

// Value returns the path vertices in effect at frameNo. Lottie path
// keyframes are always "hold" steps between exact shapes in practice
// (smooth morphing needs per-vertex interpolation the original
// supports via LottiePathSet's lerp - out of scope here); this
// implementation snaps to the nearest preceding keyframe.
func (p *PathProperty) Value(frameNo float64) PathVertices {
	if p.Static || len(p.Keyframes) == 0 {
		return p.value
	}
	v := p.Keyframes[0].Value
	for _, k := range p.Keyframes {
		if k.Frame > frameNo {
			break
		}
		v = k.Value
	}
	return v
}

// GradientStopProperty is a Lottie gradient's color-stop table ("g"
// object: {"p": stopCount, "k": Property<flat floats>}) -
// LottieGradient::colorStops. The flat encoding is 4 floats per stop
// (offset, r, g, b in [0,1]); any trailing per-stop alpha values some
// exporters append after the color stops are ignored, matching the
// original parser's own stop-count-driven read.
type GradientStopProperty struct {
	Count     int
	Static    bool
	value     []float64
	Keyframes []gradientStopKeyframe
}

type gradientStopKeyframe struct {
	Frame float64
	Value []float64
}

func (g *GradientStopProperty) UnmarshalJSON(data []byte) error {
	var wrapper struct {
		P int             `json:"p"`
		K json.RawMessage `json:"k"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return err
	}
	g.Count = wrapper.P
	var scalar []float64
	if err := json.Unmarshal(wrapper.K, &scalar); err == nil {
		g.Static = true
		g.value = scalar
		return nil
	}
	var frames []rawKeyframe
	if err := json.Unmarshal(wrapper.K, &frames); err != nil {
		return err
	}
	g.Keyframes = make([]gradientStopKeyframe, 0, len(frames))
	for _, f := range frames {
		g.Keyframes = append(g.Keyframes, gradientStopKeyframe{Frame: f.T, Value: f.S})
	}
	return nil
}

// Value decodes the stop table in effect at frameNo into thorvg.ColorStop
// entries, in the order the file lists them (the fill sorts them).
func (g *GradientStopProperty) Value(frameNo float64) []thorvg.ColorStop {
	flat := g.value
	if !g.Static && len(g.Keyframes) > 0 {
		flat = g.Keyframes[0].Value
		for _, k := range g.Keyframes {
			if k.Frame > frameNo {
				break
			}
			flat = k.Value
		}
	}
	n := g.Count
	if n == 0 || n*4 > len(flat) {
		n = len(flat) / 4
	}
	stops := make([]thorvg.ColorStop, 0, n)
	comp := func(v float64) uint8 {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return uint8(v*255 + 0.5)
	}
	for i := 0; i < n; i++ {
		base := i * 4
		stops = append(stops, thorvg.ColorStop{
			Offset: flat[base],
			Color:  thorvg.RGB8(comp(flat[base+1]), comp(flat[base+2]), comp(flat[base+3])),
		})
	}
	return stops
}
