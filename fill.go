package thorvg

import (
	"math"
	"sort"

	intcolor "github.com/gogpu/thorvg/internal/color"
)

// ColorStop is one entry in a gradient's stop table: an offset in [0,1]
// and the color at that offset.
type ColorStop struct {
	Offset float64
	Color  Color
}

// Fill is the closed set of paint fills a Shape/Text/Scene mask can use:
// a flat color (the zero value, via Shape.SetFillColor) or a gradient.
// Only LinearFill and RadialFill implement Fill - there is no sweep/conic
// gradient in this model.
type Fill interface {
	isFill()
	// Stops returns the stop table sorted by offset, with offsets clamped
	// to [0,1]; stops with equal offsets are all kept.
	Stops() []ColorStop
	// SpreadMethod returns how the gradient extends past [0,1].
	SpreadMethod() Spread
	// Clone returns a deep copy.
	Clone() Fill
	// ColorAt samples the gradient at a point in the fill's own coordinate
	// space (the Shape's local space before its transform is applied).
	ColorAt(p Point) Color
}

// sortStops sorts stops by offset and clamps offsets into [0,1], matching
// the teacher's gradient.go sortStops helper.
func sortStops(stops []ColorStop) []ColorStop {
	out := make([]ColorStop, len(stops))
	copy(out, stops)
	sort.Slice(out, func(i, j int) bool { return out[i].Offset < out[j].Offset })
	for i := range out {
		out[i].Offset = clamp01(out[i].Offset)
	}
	return out
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// applySpread maps a raw gradient parameter t into [0,1] according to the
// spread method, mirroring the teacher's applyExtendMode.
func applySpread(t float64, s Spread) float64 {
	switch s {
	case SpreadReflect:
		t = math.Mod(t, 2)
		if t < 0 {
			t += 2
		}
		if t > 1 {
			t = 2 - t
		}
		return t
	case SpreadRepeat:
		t = math.Mod(t, 1)
		if t < 0 {
			t += 1
		}
		return t
	default: // SpreadPad
		return clamp01(t)
	}
}

// SampleStops returns the interpolated color at parameter t (already
// spread-adjusted into [0,1]) across a sorted stop table, blending in
// linear space the way the teacher's interpolateColorLinear does via
// internal/color.
func SampleStops(stops []ColorStop, t float64) Color {
	if len(stops) == 0 {
		return Color{}
	}
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Offset {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t <= b.Offset {
			span := b.Offset - a.Offset
			if span <= 0 {
				return b.Color
			}
			local := (t - a.Offset) / span
			return lerpColorLinear(a.Color, b.Color, local)
		}
	}
	return last.Color
}

func lerpColorLinear(a, b Color, t float64) Color {
	tf := float32(t)
	lerp := func(av, bv uint8) uint8 {
		al := intcolor.SRGBToLinearFast(av)
		bl := intcolor.SRGBToLinearFast(bv)
		return intcolor.LinearToSRGBFast(al + (bl-al)*tf)
	}
	return Color{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
		A: uint8(float64(a.A) + (float64(b.A)-float64(a.A))*t),
	}
}

// LinearFill is a gradient that varies along a line from Start to End.
type LinearFill struct {
	Start, End Point
	stops      []ColorStop
	spread     Spread
}

// NewLinearFill creates a linear gradient fill between two points.
func NewLinearFill(start, end Point, stops []ColorStop, spread Spread) *LinearFill {
	return &LinearFill{Start: start, End: end, stops: sortStops(stops), spread: spread}
}

func (*LinearFill) isFill()                  {}
func (f *LinearFill) Stops() []ColorStop      { return f.stops }
func (f *LinearFill) SpreadMethod() Spread    { return f.spread }
func (f *LinearFill) Clone() Fill {
	c := *f
	c.stops = append([]ColorStop(nil), f.stops...)
	return &c
}

// ColorAt samples the gradient at a point in the fill's local space.
func (f *LinearFill) ColorAt(p Point) Color {
	d := f.End.Sub(f.Start)
	lenSq := d.LengthSquared()
	if lenSq == 0 {
		return SampleStops(f.stops, 0)
	}
	t := p.Sub(f.Start).Dot(d) / lenSq
	return SampleStops(f.stops, applySpread(t, f.spread))
}

// RadialFill is a gradient that varies radially from a focal point within
// a circle. When Focal equals Center the gradient is a simple concentric
// radial; otherwise the focal-correction invariant below applies.
type RadialFill struct {
	Center Point
	Radius float64
	Focal  Point
	stops  []ColorStop
	spread Spread
}

// NewRadialFill creates a radial gradient fill. If focal is outside the
// circle defined by (center, radius) it is pulled back onto the boundary,
// matching SVG's radialGradient focal-point clamping.
func NewRadialFill(center Point, radius float64, focal Point, stops []ColorStop, spread Spread) *RadialFill {
	f := &RadialFill{Center: center, Radius: radius, Focal: focal, stops: sortStops(stops), spread: spread}
	f.clampFocal()
	return f
}

// clampFocal pulls the focal point onto the gradient circle's boundary
// (minus a small epsilon) if it lies outside it, so the ray-circle solve
// in ColorAt always has a valid positive root. Grounded on the teacher's
// RadialGradientBrush focal handling in gradient_radial.go.
func (f *RadialFill) clampFocal() {
	const epsilon = 0.999
	d := f.Focal.Sub(f.Center)
	dist := d.Length()
	if f.Radius <= 0 {
		f.Focal = f.Center
		return
	}
	if dist > f.Radius*epsilon {
		scale := f.Radius * epsilon / dist
		f.Focal = f.Center.Add(d.Mul(scale))
	}
}

func (*RadialFill) isFill()               {}
func (f *RadialFill) Stops() []ColorStop   { return f.stops }
func (f *RadialFill) SpreadMethod() Spread { return f.spread }
func (f *RadialFill) Clone() Fill {
	c := *f
	c.stops = append([]ColorStop(nil), f.stops...)
	return &c
}

// ColorAt samples the gradient at a point in the fill's local space, applying the
// focal-point ray-circle correction (computeTFocal in the teacher's
// gradient_radial.go) when Focal != Center.
func (f *RadialFill) ColorAt(p Point) Color {
	if f.Radius <= 0 {
		return SampleStops(f.stops, 0)
	}
	if f.Focal == f.Center {
		t := p.Sub(f.Center).Length() / f.Radius
		return SampleStops(f.stops, applySpread(t, f.spread))
	}
	return SampleStops(f.stops, applySpread(f.computeTFocal(p), f.spread))
}

// computeTFocal solves for the gradient parameter t by intersecting the
// ray from the focal point through p with the gradient circle, exactly
// the quadratic ray-circle solve the teacher's RadialGradientBrush uses.
func (f *RadialFill) computeTFocal(p Point) float64 {
	fx, fy := f.Focal.X-f.Center.X, f.Focal.Y-f.Center.Y
	dx, dy := p.X-f.Focal.X, p.Y-f.Focal.Y

	a := dx*dx + dy*dy
	b := 2 * (dx*fx + dy*fy)
	c := fx*fx + fy*fy - f.Radius*f.Radius

	if a == 0 {
		return 0
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		disc = 0
	}
	sq := math.Sqrt(disc)
	root1 := (-b + sq) / (2 * a)
	root2 := (-b - sq) / (2 * a)
	root := math.Max(root1, root2)
	if root <= 0 {
		return 0
	}
	return 1 / root
}
