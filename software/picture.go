package software

import (
	"github.com/gogpu/thorvg"
	"github.com/gogpu/thorvg/internal/blend"
)

// pictureRenderData is the render data cached for a Picture node.
type pictureRenderData struct {
	pic thorvg.RenderPicture
}

// PreparePicture builds or refreshes a Picture's render data.
func (m *Method) PreparePicture(prev any, pic thorvg.RenderPicture) (any, bool) {
	data := &pictureRenderData{pic: pic}
	changed := true
	if old, ok := prev.(*pictureRenderData); ok {
		changed = !pictureEqual(old.pic, pic)
	}
	return data, changed
}

func pictureEqual(a, b thorvg.RenderPicture) bool {
	return a.Pixels == b.Pixels && a.Transform == b.Transform &&
		a.Opacity == b.Opacity && a.Blend == b.Blend
}

// RenderPicture draws a raw pixel buffer with rs.Transform applied,
// sampling the source with nearest-neighbor lookup through the inverse
// transform - the software backend's analogue of
// original_source/src/renderer/sw_engine/tvgSwRasterTexmap.cpp's affine
// texture mapping, minus its bilinear filter (left as a known
// simplification; see DESIGN.md).
func (m *Method) RenderPicture(data any) {
	pd, ok := data.(*pictureRenderData)
	if !ok || pd == nil || pd.pic.Pixels == nil {
		return
	}
	rp := pd.pic

	m.mu.Lock()
	tgt := m.active
	m.mu.Unlock()
	if tgt == nil {
		return
	}

	src := rp.Pixels
	inv := rp.Transform.Invert()
	opacity := float64(rp.Opacity) / 255
	blendFn := blend.GetBlendFunc(blendModeFor(rp.Blend))

	corners := []thorvg.Point{
		{X: 0, Y: 0}, {X: float64(src.Width()), Y: 0},
		{X: 0, Y: float64(src.Height())}, {X: float64(src.Width()), Y: float64(src.Height())},
	}
	minX, minY := 1e18, 1e18
	maxX, maxY := -1e18, -1e18
	for _, c := range corners {
		p := rp.Transform.TransformPoint(c)
		if p.X < minX {
			minX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	x0, y0 := int(minX)-tgt.offsetX, int(minY)-tgt.offsetY
	x1, y1 := int(maxX)+1-tgt.offsetX, int(maxY)+1-tgt.offsetY
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > tgt.pixmap.Width() {
		x1 = tgt.pixmap.Width()
	}
	if y1 > tgt.pixmap.Height() {
		y1 = tgt.pixmap.Height()
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			wx := float64(x+tgt.offsetX) + 0.5
			wy := float64(y+tgt.offsetY) + 0.5
			local := inv.TransformPoint(thorvg.Pt(wx, wy))
			sx, sy := int(local.X), int(local.Y)
			if sx < 0 || sy < 0 || sx >= src.Width() || sy >= src.Height() {
				continue
			}
			c := src.GetPixel(sx, sy)
			c.A *= opacity
			if c.A <= 0 {
				continue
			}
			compositeByteBlend(tgt, x, y, c, 255, blendFn)
		}
	}
}
