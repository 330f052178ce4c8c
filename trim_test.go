package thorvg

import "testing"

func straightLine() *Path {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(100, 0)
	return p
}

func TestTrim_FullRangeClonesPath(t *testing.T) {
	p := straightLine()
	trimmed := p.Trim(0, 1, false)
	if len(trimmed.Elements()) != len(p.Elements()) {
		t.Fatalf("Trim(0,1) element count = %d, want %d", len(trimmed.Elements()), len(p.Elements()))
	}
}

func TestTrim_Half(t *testing.T) {
	p := straightLine()
	trimmed := p.Trim(0, 0.5, false)

	const accuracy = 0.001
	got := trimmed.Length(accuracy)
	want := p.Length(accuracy) * 0.5
	if !almostEqual(got, want, 0.5) {
		t.Errorf("Trim(0,0.5) length = %v, want ~%v", got, want)
	}
}

func TestTrim_EmptyRange(t *testing.T) {
	p := straightLine()
	trimmed := p.Trim(0.5, 0.5, false)
	if len(trimmed.Elements()) != 0 {
		t.Errorf("Trim(0.5,0.5) should produce an empty path, got %d elements", len(trimmed.Elements()))
	}
}

func TestTrim_Wraparound(t *testing.T) {
	p := straightLine()
	trimmed := p.Trim(0.75, 0.25, false)

	const accuracy = 0.001
	got := trimmed.Length(accuracy)
	want := p.Length(accuracy) * 0.5 // [0.75,1] + [0,0.25] = half the path
	if !almostEqual(got, want, 0.5) {
		t.Errorf("wraparound Trim length = %v, want ~%v", got, want)
	}
}

func TestTrim_SimultaneousPerSubpath(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.MoveTo(0, 10)
	p.LineTo(10, 10)

	trimmed := p.Trim(0, 0.5, true)

	const accuracy = 0.001
	got := trimmed.Length(accuracy)
	want := p.Length(accuracy) * 0.5
	if !almostEqual(got, want, 0.5) {
		t.Errorf("simultaneous Trim(0,0.5) length = %v, want ~%v", got, want)
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-1, 0}, {0, 0}, {0.5, 0.5}, {1, 1}, {2, 1},
	}
	for _, tt := range tests {
		if got := clamp01(tt.in); got != tt.want {
			t.Errorf("clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
