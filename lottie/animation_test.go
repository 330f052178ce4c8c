package lottie

import "testing"

func TestLoadAndBasicPlayback(t *testing.T) {
	anim, err := Load([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if anim.TotalFrame() != 31 {
		t.Errorf("TotalFrame() = %v, want 31 (0..30 inclusive)", anim.TotalFrame())
	}
	if anim.Duration() != 1 {
		t.Errorf("Duration() = %v, want 1s (30 frames @ 30fps)", anim.Duration())
	}
	anim.Frame(15)
	if anim.CurFrame() != 15 {
		t.Errorf("CurFrame() = %v, want 15", anim.CurFrame())
	}
	if anim.Scene() == nil {
		t.Error("Scene() should not be nil after Frame")
	}
}

func TestAnimationSegmentScopesDuration(t *testing.T) {
	anim, err := Load([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	anim.Segment(0.5, 1.0)
	if got := anim.Duration(); got <= 0 || got >= 1 {
		t.Errorf("Duration() after Segment(0.5,1.0) = %v, want strictly between 0 and 1", got)
	}
}
