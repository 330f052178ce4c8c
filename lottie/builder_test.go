package lottie

import (
	"testing"

	"github.com/gogpu/thorvg"
)

func TestBuilderBuildSimpleShapeLayer(t *testing.T) {
	comp, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	b := NewBuilder()
	scene := b.Build(comp)
	if scene == nil {
		t.Fatal("Build returned nil scene")
	}
	if len(scene.Children()) == 0 {
		t.Fatal("expected at least one child layer scene")
	}
}

func TestBuilderUpdateClampsFrame(t *testing.T) {
	comp, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	b := NewBuilder()
	b.Build(comp)
	// Out-of-range frames should clamp rather than panic.
	b.Update(comp, -100)
	b.Update(comp, 10000)
}

func TestMultiplyOpacity(t *testing.T) {
	if got := multiplyOpacity(255, 255); got != 255 {
		t.Errorf("multiplyOpacity(255,255) = %v, want 255", got)
	}
	if got := multiplyOpacity(0, 255); got != 0 {
		t.Errorf("multiplyOpacity(0,255) = %v, want 0", got)
	}
	if got := multiplyOpacity(128, 128); got == 0 || got == 255 {
		t.Errorf("multiplyOpacity(128,128) = %v, want a mid value", got)
	}
}

func TestLayerRemap(t *testing.T) {
	l := &Layer{StartFrame: 10, TimeStretch: 2}
	if got := l.Remap(20); got != 15 {
		t.Errorf("Remap(20) = %v, want 15", got)
	}
	l2 := &Layer{StartFrame: 0, TimeStretch: 0}
	if got := l2.Remap(5); got != 5 {
		t.Errorf("Remap with zero stretch should default to 1, got %v", got)
	}
}

func TestTransformMatrixIdentityDefaults(t *testing.T) {
	tr := &Transform{
		Position: NewStaticPoint(0, 0),
		Anchor:   NewStaticPoint(0, 0),
		Scale:    NewStaticPoint(100, 100),
		Rotation: NewStaticFloat(0),
		Opacity:  NewStaticFloat(100),
	}
	m, opacity := tr.matrix(0, 0)
	id := thorvg.Identity()
	if m != id {
		t.Errorf("matrix() = %+v, want identity %+v", m, id)
	}
	if opacity != 255 {
		t.Errorf("opacity = %v, want 255", opacity)
	}
}

func TestTransformMatrixTranslate(t *testing.T) {
	tr := &Transform{
		Position: NewStaticPoint(10, 20),
		Anchor:   NewStaticPoint(0, 0),
		Scale:    NewStaticPoint(100, 100),
		Rotation: NewStaticFloat(0),
		Opacity:  NewStaticFloat(100),
	}
	m, _ := tr.matrix(0, 0)
	if m.C != 10 || m.F != 20 {
		t.Errorf("translation = (%v,%v), want (10,20)", m.C, m.F)
	}
}

func TestAppendPathElevatesQuadToCubic(t *testing.T) {
	src := thorvg.NewPath()
	src.MoveTo(0, 0)
	src.QuadTo(5, 10, 10, 0)
	dst := thorvg.NewShape()
	appendPath(dst, src)
	var sawCubic bool
	for _, el := range dst.Path().Elements() {
		if _, ok := el.(thorvg.CubicTo); ok {
			sawCubic = true
		}
	}
	if !sawCubic {
		t.Error("expected QuadTo to be elevated to CubicTo")
	}
}

func TestUpdateRectRounded(t *testing.T) {
	b := NewBuilder()
	parent := thorvg.NewScene()
	base := thorvg.NewShape()
	r := &Rect{
		Position: NewStaticPoint(0, 0),
		Size:     NewStaticPoint(20, 20),
		Radius:   NewStaticFloat(5),
	}
	merging := b.updateRect(parent, r, 0, base, nil)
	if merging == nil {
		t.Fatal("expected a merging shape")
	}
	if len(merging.Path().Elements()) == 0 {
		t.Error("expected rounded rect to append path elements")
	}
}
