package lottie

import "testing"

func TestNopEvaluatorAlwaysFallsBack(t *testing.T) {
	var e NopEvaluator
	got, ok := e.EvaluateFloat("wiggle(1,2)", Context{FrameNo: 5}, 3.14)
	if ok {
		t.Error("NopEvaluator should never report an override")
	}
	if got != 3.14 {
		t.Errorf("got = %v, want fallback 3.14", got)
	}
}
