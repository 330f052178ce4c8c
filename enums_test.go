package thorvg

import "testing"

func TestMaskToColorSpace(t *testing.T) {
	tests := []struct {
		method MaskMethod
		want   ColorSpace
	}{
		{MaskMethodLuma, ColorSpaceGrayscale8},
		{MaskMethodInvLuma, ColorSpaceGrayscale8},
		{MaskMethodAlpha, ColorSpaceABGR8888},
		{MaskMethodAdd, ColorSpaceABGR8888},
		{MaskMethodNone, ColorSpaceABGR8888},
	}
	for _, tt := range tests {
		if got := MaskToColorSpace(tt.method); got != tt.want {
			t.Errorf("MaskToColorSpace(%v) = %v, want %v", tt.method, got, tt.want)
		}
	}
}
