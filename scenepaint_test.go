package thorvg

import "testing"

func TestScene_PushRemoveClear(t *testing.T) {
	sc := NewScene()
	a := NewShape()
	b := NewShape()

	sc.Push(a)
	sc.Push(b)
	if len(sc.Children()) != 2 {
		t.Fatalf("len(Children()) = %d, want 2", len(sc.Children()))
	}
	if a.base().parent != Paintable(sc) {
		t.Error("pushed child's parent should be the scene")
	}

	if !sc.Remove(a) {
		t.Error("Remove(a) should report success")
	}
	if len(sc.Children()) != 1 {
		t.Fatalf("len(Children()) after Remove = %d, want 1", len(sc.Children()))
	}
	if sc.Remove(a) {
		t.Error("Remove of an already-removed child should report false")
	}

	sc.Clear()
	if len(sc.Children()) != 0 {
		t.Error("Clear should empty the children slice")
	}
}

func TestScene_LocalBoundsUnion(t *testing.T) {
	sc := NewScene()
	a := NewShape()
	a.AppendRect(0, 0, 10, 10)
	b := NewShape()
	b.AppendRect(20, 20, 10, 10)
	sc.Push(a)
	sc.Push(b)

	bounds := sc.localBounds()
	if bounds.Min.X != 0 || bounds.Min.Y != 0 || bounds.Max.X != 30 || bounds.Max.Y != 30 {
		t.Errorf("localBounds = %+v, want (0,0)-(30,30)", bounds)
	}
}

func TestScene_Duplicate(t *testing.T) {
	sc := NewScene()
	child := NewShape()
	child.AppendRect(0, 0, 1, 1)
	sc.Push(child)

	dup := sc.duplicate().(*Scene)
	if dup == sc {
		t.Fatal("duplicate returned the same pointer")
	}
	if len(dup.Children()) != 1 {
		t.Fatalf("duplicate children count = %d, want 1", len(dup.Children()))
	}
	if dup.Children()[0] == child {
		t.Error("duplicate's children should be deep copies, not shared pointers")
	}
	if dup.Children()[0].base().parent != Paintable(dup) {
		t.Error("duplicated child's parent should point at the duplicated scene")
	}
}

func TestScene_PushEffect(t *testing.T) {
	sc := NewScene()
	sc.PushEffect(GaussianBlurEffect{Sigma: 4})
	if len(sc.effects) != 1 {
		t.Fatalf("len(effects) = %d, want 1", len(sc.effects))
	}
}
