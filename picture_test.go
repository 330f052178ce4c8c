package thorvg

import "testing"

func TestNewPicture_SizeFromPixmap(t *testing.T) {
	pm := NewPixmap(40, 30)
	pic := NewPicture(pm)

	if pic.Kind() != KindPicture {
		t.Errorf("Kind() = %v, want KindPicture", pic.Kind())
	}
	w, h := pic.Size()
	if w != 40 || h != 30 {
		t.Errorf("Size() = (%v,%v), want (40,30)", w, h)
	}
	if pic.localBounds().Width() != 40 || pic.localBounds().Height() != 30 {
		t.Errorf("localBounds() = %+v, want 40x30", pic.localBounds())
	}
}

func TestNewPictureFromScene(t *testing.T) {
	sc := NewScene()
	pic := NewPictureFromScene(sc, 100, 50)
	w, h := pic.Size()
	if w != 100 || h != 50 {
		t.Errorf("Size() = (%v,%v), want (100,50)", w, h)
	}
}

func TestPicture_Duplicate(t *testing.T) {
	pm := NewPixmap(10, 10)
	pic := NewPicture(pm)
	dup := pic.duplicate().(*Picture)
	if dup == pic {
		t.Fatal("duplicate returned the same pointer")
	}
	if dup.pixels != pic.pixels {
		t.Error("duplicate should share the decoded pixel buffer (it is immutable)")
	}
	w, h := dup.Size()
	if w != 10 || h != 10 {
		t.Errorf("duplicate Size() = (%v,%v), want (10,10)", w, h)
	}
}

func TestPicture_DuplicateScene(t *testing.T) {
	sc := NewScene()
	sc.Push(NewShape())
	pic := NewPictureFromScene(sc, 10, 10)

	dup := pic.duplicate().(*Picture)
	if dup.scene == pic.scene {
		t.Error("duplicate should deep-copy the wrapped scene")
	}
	if len(dup.scene.Children()) != 1 {
		t.Errorf("duplicate scene children = %d, want 1", len(dup.scene.Children()))
	}
}
