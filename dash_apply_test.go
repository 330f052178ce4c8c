package thorvg

import "testing"

func TestPath_Dashed_Solid(t *testing.T) {
	p := straightLine()
	if got := p.Dashed(nil); got != nil {
		t.Errorf("Dashed(nil) = %v, want nil", got)
	}
}

func TestPath_Dashed_SplitsIntoOnSegments(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(100, 0)

	dash := NewDash(10, 10) // 10 on, 10 off, repeating over a 100-unit line
	pieces := p.Dashed(dash)
	if len(pieces) != 5 {
		t.Fatalf("Dashed pieces = %d, want 5", len(pieces))
	}
	for _, piece := range pieces {
		const accuracy = 0.001
		if length := piece.Length(accuracy); length < 9 || length > 10.5 {
			t.Errorf("dash piece length = %v, want ~10", length)
		}
	}
}

func TestPath_Dashed_RespectsOffset(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(100, 0)

	dash := NewDash(10, 10).WithOffset(10) // starts at the beginning of the gap
	pieces := p.Dashed(dash)
	if len(pieces) == 0 {
		t.Fatal("expected at least one dash piece")
	}
}
