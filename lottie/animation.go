package lottie

import (
	"github.com/gogpu/thorvg"
	"github.com/gogpu/thorvg/software"
)

// Animation wraps a parsed Composition and the Builder that replays it
// per frame behind the small surface a Saver needs (Duration/Render,
// satisfying package save's Animator interface structurally) and the
// surface Picture needs to host a Lottie source as a time-varying
// subtree - spec.md §6's `Animation: picture(), frame(n), curFrame,
// totalFrame, duration, segment(begin,end)`.
type Animation struct {
	comp    *Composition
	builder *Builder

	segBegin, segEnd float64 // fractional [0,1] playback segment
	curFrame         float64
}

// Load parses data into a new Animation ready to render.
func Load(data []byte) (*Animation, error) {
	comp, err := Parse(data)
	if err != nil {
		return nil, err
	}
	b := NewBuilder()
	b.Build(comp)
	return &Animation{comp: comp, builder: b, segEnd: 1}, nil
}

// TotalFrame is the composition's frame count - Animation::totalFrame.
func (a *Animation) TotalFrame() float64 { return a.comp.frameDuration() + 1 }

// CurFrame is the composition-relative frame last rendered via Frame or
// Render - Animation::curFrame.
func (a *Animation) CurFrame() float64 { return a.curFrame }

// Duration is the playable segment's length in seconds -
// Animation::duration, scoped to Segment when one is set.
func (a *Animation) Duration() float64 {
	full := a.comp.Duration()
	return full * (a.segEnd - a.segBegin)
}

// Segment restricts playback to the fractional range [begin,end] of the
// composition's frame range - Animation::segment.
func (a *Animation) Segment(begin, end float64) {
	a.segBegin, a.segEnd = begin, end
}

// Frame seeks to absolute frame number n (clamped to the composition's
// range) and rebuilds the scene graph for it - Animation::frame(n).
func (a *Animation) Frame(n float64) {
	a.curFrame = n
	a.builder.Update(a.comp, n)
}

// Scene returns the root thorvg.Scene for the frame last selected via
// Frame or Render - callers that want to push the live scene into their
// own Canvas (picture.go's lottie.Animation.Scene() doc reference)
// rather than rasterize through Render.
func (a *Animation) Scene() *thorvg.Scene { return a.builder.Build(a.comp) }

// Render seeks to the frame corresponding to t seconds within the
// current segment and rasterizes the scene into target, satisfying
// package save's Animator interface for GIF export.
func (a *Animation) Render(t float64, target *thorvg.Pixmap) {
	full := a.comp.Duration()
	segStartSec := a.segBegin * full
	frame := a.comp.FrameAtTime(segStartSec + t)
	a.Frame(frame)

	w, h := target.Width(), target.Height()
	method := software.NewMethod(w, h)
	canvas := thorvg.NewCanvas(method, w, h)
	if err := canvas.Push(a.Scene()); err != nil {
		return
	}
	if err := canvas.Draw(false); err != nil {
		return
	}
	copy(target.Data(), method.Pixmap().Data())
}
