package lottie

import (
	"encoding/json"

	"github.com/gogpu/thorvg"
)

// rawKeyframe mirrors one entry of a Lottie "k" array: a frame number
// ("t"), the segment's start ("s") and end ("e") values, a hold flag
// ("h") and bezier ease handles ("i"/"o") - tvgLottieParser.cpp's
// parseKeyFrame.
type rawKeyframe struct {
	T float64        `json:"t"`
	S []float64      `json:"s"`
	E []float64      `json:"e"`
	H float64        `json:"h"`
	I *bezierHandles `json:"i"`
	O *bezierHandles `json:"o"`
}

type bezierHandles struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

func (h *bezierHandles) at(i int) float64 {
	if h == nil || i >= len(h.X) {
		return 0
	}
	return h.X[i]
}

func (h *bezierHandles) aty(i int) float64 {
	if h == nil || i >= len(h.Y) {
		return 0
	}
	return h.Y[i]
}

// FloatKeyframe is one keyframed control point of a FloatProperty.
type FloatKeyframe struct {
	Frame                  float64
	Value                  float64
	OutX, OutY, InX, InY   float64
	Hold                   bool
}

// FloatProperty is a scalar animated value - opacity, rotation, stroke
// width and the like - grounded on LottieFloat (tvgLottieProperty.h).
type FloatProperty struct {
	Static    bool
	value     float64
	Keyframes []FloatKeyframe
}

// NewStaticFloat returns a non-animated FloatProperty, used by callers
// that build a Composition by hand (tests, programmatic scenes) rather
// than through Parse.
func NewStaticFloat(v float64) FloatProperty { return FloatProperty{Static: true, value: v} }

func (p *FloatProperty) UnmarshalJSON(data []byte) error {
	var wrapper struct {
		K json.RawMessage `json:"k"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return err
	}
	return p.unmarshalK(wrapper.K)
}

func (p *FloatProperty) unmarshalK(raw json.RawMessage) error {
	var scalar float64
	if err := json.Unmarshal(raw, &scalar); err == nil {
		p.Static = true
		p.value = scalar
		return nil
	}
	var frames []rawKeyframe
	if err := json.Unmarshal(raw, &frames); err != nil {
		return err
	}
	p.Keyframes = make([]FloatKeyframe, 0, len(frames))
	for _, f := range frames {
		kf := FloatKeyframe{Frame: f.T, Hold: f.H != 0}
		if len(f.S) > 0 {
			kf.Value = f.S[0]
		}
		kf.OutX, kf.OutY = f.O.at(0), f.O.aty(0)
		kf.InX, kf.InY = f.I.at(0), f.I.aty(0)
		p.Keyframes = append(p.Keyframes, kf)
	}
	return nil
}

// Value samples the property at frameNo, easing between bracketing
// keyframes with the segment's bezier handles unless the leading
// keyframe is a hold.
func (p *FloatProperty) Value(frameNo float64) float64 {
	if p.Static || len(p.Keyframes) == 0 {
		return p.value
	}
	frames := p.Keyframes
	if frameNo <= frames[0].Frame {
		return frames[0].Value
	}
	last := frames[len(frames)-1]
	if frameNo >= last.Frame {
		return last.Value
	}
	for i := 0; i < len(frames)-1; i++ {
		k0, k1 := frames[i], frames[i+1]
		if frameNo < k0.Frame || frameNo > k1.Frame {
			continue
		}
		if k0.Hold {
			return k0.Value
		}
		t := (frameNo - k0.Frame) / (k1.Frame - k0.Frame)
		e := cubicBezierEase(t, k0.OutX, k0.OutY, k0.InX, k0.InY)
		return k0.Value + (k1.Value-k0.Value)*e
	}
	return last.Value
}

// Opacity100 converts a [0,100] percentage property into a [0,255] byte,
// the conversion _updateFill/_updateStroke apply to "o" opacity channels.
func (p *FloatProperty) Opacity100(frameNo float64) uint8 {
	v := p.Value(frameNo) * 2.55
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// PointKeyframe is one keyframed control point of a PointProperty.
type PointKeyframe struct {
	Frame                 float64
	Value                 thorvg.Point
	OutX, OutY, InX, InY  float64
	Hold                  bool
}

// PointProperty is a 2D animated value - position, scale, anchor, size -
// grounded on LottiePoint.
type PointProperty struct {
	Static    bool
	value     thorvg.Point
	Keyframes []PointKeyframe
}

func NewStaticPoint(x, y float64) PointProperty {
	return PointProperty{Static: true, value: thorvg.Point{X: x, Y: y}}
}

func (p *PointProperty) UnmarshalJSON(data []byte) error {
	var wrapper struct {
		K json.RawMessage `json:"k"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return err
	}
	return p.unmarshalK(wrapper.K)
}

func (p *PointProperty) unmarshalK(raw json.RawMessage) error {
	var scalar []float64
	if err := json.Unmarshal(raw, &scalar); err == nil {
		p.Static = true
		p.value = pointFrom(scalar)
		return nil
	}
	var frames []rawKeyframe
	if err := json.Unmarshal(raw, &frames); err != nil {
		return err
	}
	p.Keyframes = make([]PointKeyframe, 0, len(frames))
	for _, f := range frames {
		kf := PointKeyframe{Frame: f.T, Hold: f.H != 0, Value: pointFrom(f.S)}
		kf.OutX, kf.OutY = f.O.at(0), f.O.aty(0)
		kf.InX, kf.InY = f.I.at(0), f.I.aty(0)
		p.Keyframes = append(p.Keyframes, kf)
	}
	return nil
}

func pointFrom(v []float64) thorvg.Point {
	var pt thorvg.Point
	if len(v) > 0 {
		pt.X = v[0]
	}
	if len(v) > 1 {
		pt.Y = v[1]
	}
	return pt
}

// isUnset reports whether p is the Go zero value, i.e. the JSON field it
// would decode from was absent - used by the parser to fill in Lottie's
// implicit defaults (scale 100,100) since PointProperty embeds a slice
// and so cannot be compared with == directly.
func (p PointProperty) isUnset() bool {
	return !p.Static && len(p.Keyframes) == 0 && p.value == (thorvg.Point{})
}

func (p *PointProperty) Value(frameNo float64) thorvg.Point {
	if p.Static || len(p.Keyframes) == 0 {
		return p.value
	}
	frames := p.Keyframes
	if frameNo <= frames[0].Frame {
		return frames[0].Value
	}
	last := frames[len(frames)-1]
	if frameNo >= last.Frame {
		return last.Value
	}
	for i := 0; i < len(frames)-1; i++ {
		k0, k1 := frames[i], frames[i+1]
		if frameNo < k0.Frame || frameNo > k1.Frame {
			continue
		}
		if k0.Hold {
			return k0.Value
		}
		t := (frameNo - k0.Frame) / (k1.Frame - k0.Frame)
		e := cubicBezierEase(t, k0.OutX, k0.OutY, k0.InX, k0.InY)
		return thorvg.Point{
			X: k0.Value.X + (k1.Value.X-k0.Value.X)*e,
			Y: k0.Value.Y + (k1.Value.Y-k0.Value.Y)*e,
		}
	}
	return last.Value
}

// ColorKeyframe is one keyframed control point of a ColorProperty.
type ColorKeyframe struct {
	Frame float64
	Value thorvg.Color
	Hold  bool
}

// ColorProperty is an animated RGB color (LottieColor), stored in the
// JSON as 3 (or 4, with an ignored alpha channel - opacity is its own
// property in Lottie) floats in [0,1].
type ColorProperty struct {
	Static    bool
	value     thorvg.Color
	Keyframes []ColorKeyframe
}

func NewStaticColor(c thorvg.Color) ColorProperty { return ColorProperty{Static: true, value: c} }

func (p *ColorProperty) UnmarshalJSON(data []byte) error {
	var wrapper struct {
		K json.RawMessage `json:"k"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return err
	}
	return p.unmarshalK(wrapper.K)
}

func (p *ColorProperty) unmarshalK(raw json.RawMessage) error {
	var scalar []float64
	if err := json.Unmarshal(raw, &scalar); err == nil {
		p.Static = true
		p.value = colorFrom(scalar)
		return nil
	}
	var frames []rawKeyframe
	if err := json.Unmarshal(raw, &frames); err != nil {
		return err
	}
	p.Keyframes = make([]ColorKeyframe, 0, len(frames))
	for _, f := range frames {
		p.Keyframes = append(p.Keyframes, ColorKeyframe{Frame: f.T, Hold: f.H != 0, Value: colorFrom(f.S)})
	}
	return nil
}

func colorFrom(v []float64) thorvg.Color {
	comp := func(i int) uint8 {
		if i >= len(v) {
			return 0
		}
		f := v[i]
		if f < 0 {
			f = 0
		}
		if f > 1 {
			f = 1
		}
		return uint8(f*255 + 0.5)
	}
	return thorvg.RGB8(comp(0), comp(1), comp(2))
}

func (p *ColorProperty) Value(frameNo float64) thorvg.Color {
	if p.Static || len(p.Keyframes) == 0 {
		return p.value
	}
	frames := p.Keyframes
	if frameNo <= frames[0].Frame {
		return frames[0].Value
	}
	last := frames[len(frames)-1]
	if frameNo >= last.Frame {
		return last.Value
	}
	for i := 0; i < len(frames)-1; i++ {
		k0, k1 := frames[i], frames[i+1]
		if frameNo < k0.Frame || frameNo > k1.Frame {
			continue
		}
		if k0.Hold {
			return k0.Value
		}
		t := (frameNo - k0.Frame) / (k1.Frame - k0.Frame)
		return thorvg.Color{
			R: lerp8(k0.Value.R, k1.Value.R, t),
			G: lerp8(k0.Value.G, k1.Value.G, t),
			B: lerp8(k0.Value.B, k1.Value.B, t),
			A: 255,
		}
	}
	return last.Value
}

func lerp8(a, b uint8, t float64) uint8 {
	v := float64(a) + (float64(b)-float64(a))*t
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
