package thorvg

import "testing"

func TestNewShape_Defaults(t *testing.T) {
	s := NewShape()
	if s.Kind() != KindShape {
		t.Errorf("Kind() = %v, want KindShape", s.Kind())
	}
	if s.fillColor != RGB8(0, 0, 0) {
		t.Errorf("default fill color = %+v, want opaque black", s.fillColor)
	}
	if s.fillRule != FillRuleNonZero {
		t.Errorf("default fill rule = %v, want FillRuleNonZero", s.fillRule)
	}
}

func TestShape_SetFillColorClearsGradient(t *testing.T) {
	s := NewShape()
	s.SetFill(NewLinearFill(Point{}, Point{X: 1}, []ColorStop{{Offset: 0, Color: RGB8(1, 1, 1)}}, SpreadPad))
	s.SetFillColor(RGB8(9, 9, 9))
	if s.fill != nil {
		t.Error("SetFillColor should clear a previously set gradient fill")
	}
	if !s.fillSet {
		t.Error("fillSet should be true after SetFillColor")
	}
}

func TestShape_ResetFill(t *testing.T) {
	s := NewShape()
	s.SetFillColor(RGB8(1, 2, 3))
	s.ResetFill()
	if s.fillSet {
		t.Error("ResetFill should clear fillSet")
	}
	if s.fill != nil {
		t.Error("ResetFill should clear the gradient fill")
	}
}

func TestShape_AppendRectBounds(t *testing.T) {
	s := NewShape()
	s.AppendRect(0, 0, 10, 20)
	bounds := s.localBounds()
	if bounds.Width() != 10 || bounds.Height() != 20 {
		t.Errorf("localBounds = %+v, want 10x20", bounds)
	}
}

func TestShape_Duplicate(t *testing.T) {
	s := NewShape()
	s.AppendRect(0, 0, 5, 5)
	s.SetFillColor(RGB8(10, 20, 30))
	st := s.StrokeStyle()
	st.Width = 3
	s.SetStroke(st)

	dup := s.duplicate().(*Shape)
	if dup == s {
		t.Fatal("duplicate returned the same pointer")
	}
	if dup.fillColor != s.fillColor {
		t.Errorf("duplicate fillColor = %+v, want %+v", dup.fillColor, s.fillColor)
	}
	if dup.stroke.Width != 3 {
		t.Errorf("duplicate stroke width = %v, want 3", dup.stroke.Width)
	}

	// Mutating the duplicate's path must not affect the original.
	dup.AppendRect(100, 100, 1, 1)
	if dup.localBounds() == s.localBounds() {
		t.Error("duplicate's path should be independent of the original")
	}
}

func TestMulOpacity(t *testing.T) {
	tests := []struct {
		a, b, want uint8
	}{
		{255, 255, 255},
		{0, 255, 0},
		{255, 0, 0},
		{128, 128, 64},
	}
	for _, tt := range tests {
		if got := mulOpacity(tt.a, tt.b); got != tt.want {
			t.Errorf("mulOpacity(%d,%d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestShapeAppendEllipseMarksDirty(t *testing.T) {
	s := NewShape()
	s.AppendEllipse(5, 5, 3, 2)
	if len(s.Path().Elements()) == 0 {
		t.Error("AppendEllipse should append path elements")
	}
}

func TestShapeAppendRoundedRectMarksDirty(t *testing.T) {
	s := NewShape()
	s.AppendRoundedRect(0, 0, 20, 10, 3)
	if len(s.Path().Elements()) == 0 {
		t.Error("AppendRoundedRect should append path elements")
	}
}
