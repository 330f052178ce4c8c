package thorvg

// Picture is a leaf paint node displaying a raw pixel buffer (a decoded
// raster image) or, once loaded via the lottie package, a synthesized
// per-frame Scene. ThorVG's Picture (tvgPicture.h) additionally owns file
// loaders; this port only carries the already-decoded raster path, since
// file I/O loaders other than Lottie are an explicit non-goal.
type Picture struct {
	Base

	pixels *Pixmap
	// scene, when non-nil, is used instead of pixels - the path taken by
	// NewPictureFromScene, e.g. wrapping the *Scene that
	// lottie.Animation.Scene() returns and rebuilds every frame.
	scene *Scene

	w, h float64 // logical (pre-scale) size for placement
}

// NewPicture creates a Picture from an already-decoded pixel buffer.
func NewPicture(pixels *Pixmap) *Picture {
	return &Picture{
		Base:   newBase(KindPicture),
		pixels: pixels,
		w:      float64(pixels.Width()),
		h:      float64(pixels.Height()),
	}
}

// NewPictureFromScene wraps a Scene (typically one synthesized per frame
// by an animation) as a Picture so it can be pushed onto a Canvas or
// nested inside another Scene like any other paint node.
func NewPictureFromScene(scene *Scene, w, h float64) *Picture {
	return &Picture{Base: newBase(KindPicture), scene: scene, w: w, h: h}
}

// Size returns the picture's logical width/height.
func (p *Picture) Size() (w, h float64) { return p.w, p.h }

// Pixels returns the picture's raw pixel buffer, or nil when the picture
// wraps a Scene instead (see SceneChild).
func (p *Picture) Pixels() *Pixmap { return p.pixels }

// SceneChild returns the Scene this picture wraps (the lottie.Animation
// per-frame path), or nil when it wraps a raster pixel buffer instead.
func (p *Picture) SceneChild() *Scene { return p.scene }

func (p *Picture) localBounds() Rect {
	return Rect{Max: Point{X: p.w, Y: p.h}}
}

func (p *Picture) duplicate() Paintable {
	dup := &Picture{Base: p.Base, pixels: p.pixels, w: p.w, h: p.h}
	if p.scene != nil {
		dup.scene = p.scene.duplicate().(*Scene)
	}
	dup.renderData = nil
	dup.dirty = true
	return dup
}

func (p *Picture) prepare(method RenderMethod, pm Matrix, opacity uint8) bool {
	if p.isSkippable() {
		return false
	}
	combined := pm.Multiply(p.transform)
	combinedOpacity := mulOpacity(opacity, p.opacity)
	if p.scene != nil {
		return p.scene.prepare(method, combined, combinedOpacity)
	}
	rp := RenderPicture{Pixels: p.pixels, Transform: combined, Opacity: combinedOpacity, Blend: p.blend}
	rd, changed := method.PreparePicture(p.renderData, rp)
	p.renderData = rd
	dirtied := p.dirty || changed
	p.dirty = false
	return dirtied
}

func (p *Picture) draw(method RenderMethod) {
	if p.isSkippable() {
		return
	}
	if p.scene != nil {
		p.scene.draw(method)
		return
	}
	method.RenderPicture(p.renderData)
}
