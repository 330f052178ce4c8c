package thorvg

import "testing"

func TestNewText(t *testing.T) {
	txt := NewText()
	if txt.Kind() != KindText {
		t.Errorf("Kind() = %v, want KindText", txt.Kind())
	}
	if txt.base().opacity != 255 {
		t.Errorf("default opacity = %d, want 255", txt.base().opacity)
	}
}

func TestText_SetOutline(t *testing.T) {
	txt := NewText()
	p := NewPath()
	p.Rectangle(0, 0, 10, 20)

	txt.SetOutline(p, 10, 20)
	bounds := txt.localBounds()
	if bounds.Width() != 10 || bounds.Height() != 20 {
		t.Errorf("localBounds = %+v, want 10x20", bounds)
	}
}

func TestText_Align(t *testing.T) {
	txt := NewText()
	p := NewPath()
	p.Rectangle(0, 0, 10, 20)

	txt.SetLayoutBox(100, 40)
	txt.Align(0.5, 0.5) // center within the box
	txt.SetOutline(p, 10, 20)

	tr := txt.shape.Transform()
	wantDX := -0.5 * (10 - 100)
	wantDY := -0.5 * (20 - 40)
	if tr.C != wantDX || tr.F != wantDY {
		t.Errorf("centering transform = (%v,%v), want (%v,%v)", tr.C, tr.F, wantDX, wantDY)
	}
}

func TestText_SetFillAndOutlineStroke(t *testing.T) {
	txt := NewText()
	txt.SetFillColor(RGB8(10, 20, 30))
	txt.SetOutlineStroke(2, RGB8(1, 2, 3))

	st := txt.shape.StrokeStyle()
	if st.Width != 2 {
		t.Errorf("stroke width = %v, want 2", st.Width)
	}
	if st.Color != RGB8(1, 2, 3) {
		t.Errorf("stroke color = %+v, want {1 2 3 255}", st.Color)
	}
}

func TestText_Duplicate(t *testing.T) {
	txt := NewText()
	p := NewPath()
	p.Rectangle(0, 0, 5, 5)
	txt.SetOutline(p, 5, 5)

	dup := txt.duplicate().(*Text)
	if dup == txt {
		t.Fatal("duplicate returned the same pointer")
	}
	if dup.localBounds() != txt.localBounds() {
		t.Errorf("duplicate bounds = %+v, want %+v", dup.localBounds(), txt.localBounds())
	}
}
