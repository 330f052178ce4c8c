package thorvg

import "testing"

func TestNewBase_Defaults(t *testing.T) {
	b := newBase(KindShape)
	if b.Kind() != KindShape {
		t.Errorf("Kind() = %v, want KindShape", b.Kind())
	}
	if b.Opacity() != 255 {
		t.Errorf("Opacity() = %d, want 255", b.Opacity())
	}
	if !b.Transform().IsIdentity() {
		t.Error("default transform should be identity")
	}
	if b.Hidden() {
		t.Error("default node should not be hidden")
	}
	if b.BlendMethod() != BlendMethodNormal {
		t.Errorf("BlendMethod() = %v, want BlendMethodNormal", b.BlendMethod())
	}
	if !b.dirty {
		t.Error("a freshly created node should start dirty")
	}
}

func TestBase_IsSkippable(t *testing.T) {
	tests := []struct {
		name    string
		hidden  bool
		opacity uint8
		want    bool
	}{
		{"visible opaque", false, 255, false},
		{"hidden", true, 255, true},
		{"transparent", false, 0, true},
		{"hidden and transparent", true, 0, true},
	}
	for _, tt := range tests {
		b := newBase(KindShape)
		b.hidden = tt.hidden
		b.opacity = tt.opacity
		if got := b.isSkippable(); got != tt.want {
			t.Errorf("%s: isSkippable() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestBase_TranslateScaleCompose(t *testing.T) {
	b := newBase(KindShape)
	b.Translate(10, 0)
	b.Scale(2)

	p := b.Transform().TransformPoint(Point{X: 1, Y: 1})
	want := Point{X: 22, Y: 2} // translate first, then the later Scale(2) scales the result
	if p != want {
		t.Errorf("composed transform * (1,1) = %+v, want %+v", p, want)
	}
}

func TestBase_SetMask(t *testing.T) {
	b := newBase(KindScene)
	target := NewShape()

	if err := b.SetMask(nil, MaskMethodAlpha); err == nil {
		t.Error("SetMask with nil target and a real method should error")
	}
	if err := b.SetMask(target, MaskMethodAlpha); err != nil {
		t.Fatalf("SetMask: %v", err)
	}
	if b.mask == nil || b.mask.target != Paintable(target) {
		t.Error("mask should bind the given target")
	}
	if err := b.SetMask(nil, MaskMethodNone); err != nil {
		t.Fatalf("SetMask(None): %v", err)
	}
	if b.mask != nil {
		t.Error("SetMask(None) should clear the mask")
	}
}

func TestBase_Clip(t *testing.T) {
	b := newBase(KindShape)
	clipper := NewShape()
	b.Clip(clipper)
	if b.clipper != clipper {
		t.Error("Clip should set the clipper shape")
	}
	b.Clip(nil)
	if b.clipper != nil {
		t.Error("Clip(nil) should clear the clipper")
	}
}

func TestDuplicateReturnsIndependentCopy(t *testing.T) {
	s := NewShape()
	s.SetFillColor(RGB8(1, 2, 3))
	clone := Duplicate(s)
	cs, ok := clone.(*Shape)
	if !ok {
		t.Fatalf("Duplicate(*Shape) = %T, want *Shape", clone)
	}
	cs.SetFillColor(RGB8(9, 9, 9))
	if s.FillColor() == cs.FillColor() {
		t.Error("Duplicate should return an independent copy")
	}
}
