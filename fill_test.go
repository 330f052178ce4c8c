package thorvg

import "testing"

func TestApplySpread(t *testing.T) {
	tests := []struct {
		t      float64
		spread Spread
		want   float64
	}{
		{0.5, SpreadPad, 0.5},
		{1.5, SpreadPad, 1.0},
		{-0.5, SpreadPad, 0.0},
		{1.5, SpreadRepeat, 0.5},
		{-0.25, SpreadRepeat, 0.75},
		{0.5, SpreadReflect, 0.5},
		{1.5, SpreadReflect, 0.5},
		{2.5, SpreadReflect, 0.5},
	}
	for _, tt := range tests {
		if got := applySpread(tt.t, tt.spread); !almostEqual(got, tt.want, 1e-9) {
			t.Errorf("applySpread(%v, %v) = %v, want %v", tt.t, tt.spread, got, tt.want)
		}
	}
}

func TestSampleStops_Endpoints(t *testing.T) {
	stops := []ColorStop{
		{Offset: 0, Color: RGB8(255, 0, 0)},
		{Offset: 1, Color: RGB8(0, 0, 255)},
	}
	if got := SampleStops(stops, -1); got != stops[0].Color {
		t.Errorf("before first stop = %+v, want %+v", got, stops[0].Color)
	}
	if got := SampleStops(stops, 2); got != stops[1].Color {
		t.Errorf("after last stop = %+v, want %+v", got, stops[1].Color)
	}
	if got := SampleStops(nil, 0.5); got != (Color{}) {
		t.Errorf("empty stop table = %+v, want zero Color", got)
	}
}

func TestLinearFill_ColorAt(t *testing.T) {
	fill := NewLinearFill(
		Point{X: 0, Y: 0}, Point{X: 10, Y: 0},
		[]ColorStop{
			{Offset: 0, Color: RGB8(255, 0, 0)},
			{Offset: 1, Color: RGB8(0, 0, 255)},
		},
		SpreadPad,
	)
	if got := fill.ColorAt(Point{X: -5, Y: 0}); got != RGB8(255, 0, 0) {
		t.Errorf("before start (pad) = %+v, want pure red", got)
	}
	if got := fill.ColorAt(Point{X: 15, Y: 0}); got != RGB8(0, 0, 255) {
		t.Errorf("past end (pad) = %+v, want pure blue", got)
	}
}

func TestLinearFill_DegenerateLine(t *testing.T) {
	fill := NewLinearFill(
		Point{X: 5, Y: 5}, Point{X: 5, Y: 5},
		[]ColorStop{{Offset: 0, Color: RGB8(1, 2, 3)}},
		SpreadPad,
	)
	if got := fill.ColorAt(Point{X: 100, Y: 100}); got != RGB8(1, 2, 3) {
		t.Errorf("degenerate line = %+v, want first stop color", got)
	}
}

func TestRadialFill_ConcentricCenterAndEdge(t *testing.T) {
	fill := NewRadialFill(
		Point{X: 0, Y: 0}, 10, Point{X: 0, Y: 0},
		[]ColorStop{
			{Offset: 0, Color: RGB8(0, 0, 0)},
			{Offset: 1, Color: RGB8(200, 200, 200)},
		},
		SpreadPad,
	)
	center := fill.ColorAt(Point{X: 0, Y: 0})
	if center != RGB8(0, 0, 0) {
		t.Errorf("center color = %+v, want first stop", center)
	}
	edge := fill.ColorAt(Point{X: 10, Y: 0})
	if edge != RGB8(200, 200, 200) {
		t.Errorf("edge color = %+v, want last stop", edge)
	}
}

func TestRadialFill_ClampFocalOutsideCircle(t *testing.T) {
	fill := NewRadialFill(
		Point{X: 0, Y: 0}, 10, Point{X: 50, Y: 0},
		[]ColorStop{{Offset: 0, Color: RGB8(0, 0, 0)}, {Offset: 1, Color: RGB8(255, 255, 255)}},
		SpreadPad,
	)
	dist := fill.Focal.Sub(fill.Center).Length()
	if dist >= fill.Radius {
		t.Errorf("clamped focal distance %v should be pulled back inside radius %v", dist, fill.Radius)
	}
}

func TestLerpColorLinear_AlphaInterpolatesPlainly(t *testing.T) {
	a := RGBA8(0, 0, 0, 0)
	b := RGBA8(0, 0, 0, 200)
	mid := lerpColorLinear(a, b, 0.5)
	if mid.A < 90 || mid.A > 110 {
		t.Errorf("alpha at t=0.5 = %d, want roughly 100", mid.A)
	}
}
