package lottie

import (
	"testing"

	"github.com/gogpu/thorvg"
)

func TestDuplicateShapeStyleCopiesSolidFill(t *testing.T) {
	src := thorvg.NewShape()
	src.SetFillColor(thorvg.RGB8(10, 20, 30))
	src.SetFillRule(thorvg.FillRuleEvenOdd)

	dst := duplicateShapeStyle(src)
	if dst.FillColor() != src.FillColor() {
		t.Errorf("FillColor = %+v, want %+v", dst.FillColor(), src.FillColor())
	}
	if dst.FillRule() != thorvg.FillRuleEvenOdd {
		t.Errorf("FillRule = %v, want FillRuleEvenOdd", dst.FillRule())
	}
	if len(dst.Path().Elements()) != 0 {
		t.Error("duplicated style shape should start with an empty path")
	}
}

func TestDuplicateShapeStyleNilSource(t *testing.T) {
	dst := duplicateShapeStyle(nil)
	if dst == nil {
		t.Fatal("expected a non-nil fresh shape")
	}
}

func TestForkContextInheritsRepeatersAndStyle(t *testing.T) {
	base := thorvg.NewShape()
	base.SetFillColor(thorvg.RGB8(1, 2, 3))
	rhs := &renderContext{
		propagator: base,
		repeaters:  []renderRepeater{{count: 3}},
	}
	next := forkContext(rhs, true)
	if len(next.repeaters) != 1 {
		t.Fatalf("len(repeaters) = %v, want 1", len(next.repeaters))
	}
	if next.propagator.FillColor() != base.FillColor() {
		t.Error("forked propagator should copy the source's fill color")
	}
	if next.propagator == base {
		t.Error("forked propagator should be a distinct Shape instance")
	}
}

func TestForkContextNonMergeableDropsMerging(t *testing.T) {
	merging := thorvg.NewShape()
	rhs := &renderContext{propagator: thorvg.NewShape(), merging: merging}
	next := forkContext(rhs, false)
	if next.merging != nil {
		t.Error("non-mergeable fork should not inherit merging")
	}
}
