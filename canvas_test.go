package thorvg

import (
	"testing"

	"github.com/gogpu/thorvg/schedule"
)

// fakeMethod is a minimal RenderMethod recording call counts, used to
// exercise Canvas without a real rasterizer backend.
type fakeMethod struct {
	preRenderCalls int
	syncCalls      int
	disposeCalls   int
	renderCalls    int
	region         RenderRegion
	logger         any
}

func (f *fakeMethod) PreRender() { f.preRenderCalls++ }
func (f *fakeMethod) Prepare(prev any, shape RenderShape) (any, bool) {
	return "rd", prev == nil
}
func (f *fakeMethod) PreparePicture(prev any, pic RenderPicture) (any, bool) {
	return "rd", prev == nil
}
func (f *fakeMethod) RenderShape(data any)         { f.renderCalls++ }
func (f *fakeMethod) RenderPicture(data any)       { f.renderCalls++ }
func (f *fakeMethod) Target(r RenderRegion, s ColorSpace) RenderCompositor { return nil }
func (f *fakeMethod) BeginComposite(c RenderCompositor, m MaskMethod, o uint8) bool { return true }
func (f *fakeMethod) EndComposite(c RenderCompositor)                              {}
func (f *fakeMethod) Region() RenderRegion                                         { return f.region }
func (f *fakeMethod) SetRegion(r RenderRegion)                                     { f.region = r }
func (f *fakeMethod) Surface() RenderSurface                                       { return RenderSurface{} }
func (f *fakeMethod) Sync()                                                        { f.syncCalls++ }
func (f *fakeMethod) Dispose(data any)                                             { f.disposeCalls++ }

func TestNewCanvas_Defaults(t *testing.T) {
	m := &fakeMethod{}
	c := NewCanvas(m, 100, 80)
	w, h := c.Size()
	if w != 100 || h != 80 {
		t.Errorf("Size() = (%v,%v), want (100,80)", w, h)
	}
	if c.DirtyTileCount() == 0 {
		t.Error("a freshly created canvas should start fully dirty")
	}
}

func TestCanvas_PushUpdateDraw(t *testing.T) {
	m := &fakeMethod{}
	c := NewCanvas(m, 100, 100)
	s := NewShape()
	s.AppendRect(0, 0, 10, 10)

	if err := c.Push(s); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if len(c.Paints()) != 1 {
		t.Fatalf("Paints() len = %d, want 1", len(c.Paints()))
	}

	if err := c.Draw(false); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if m.preRenderCalls != 1 {
		t.Errorf("preRenderCalls = %d, want 1", m.preRenderCalls)
	}
	if m.syncCalls != 1 {
		t.Errorf("syncCalls = %d, want 1", m.syncCalls)
	}
	if m.renderCalls != 1 {
		t.Errorf("renderCalls = %d, want 1", m.renderCalls)
	}
	if c.DirtyTileCount() != 0 {
		t.Error("Draw should clear the dirty region")
	}
}

func TestCanvas_AsyncDrawDispatchesThroughPool(t *testing.T) {
	m := &fakeMethod{}
	pool := schedule.NewPool(2)
	defer pool.Close()
	c := NewCanvas(m, 100, 100, WithPool(pool))
	s := NewShape()
	s.AppendRect(0, 0, 10, 10)
	c.Push(s)

	if err := c.Draw(true); err != nil {
		t.Fatalf("Draw(true): %v", err)
	}
	if m.syncCalls != 0 {
		t.Error("async Draw should not call the backend's Sync before the caller calls Canvas.Sync")
	}
	if err := c.Sync(); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if m.renderCalls != 1 {
		t.Errorf("renderCalls = %d, want 1", m.renderCalls)
	}
	if m.syncCalls != 1 {
		t.Errorf("syncCalls = %d, want 1", m.syncCalls)
	}
}

func TestCanvas_RemoveAndClear(t *testing.T) {
	m := &fakeMethod{}
	c := NewCanvas(m, 50, 50)
	a := NewShape()
	b := NewShape()
	c.Push(a)
	c.Push(b)

	if !c.Remove(a) {
		t.Error("Remove(a) should report success")
	}
	if len(c.Paints()) != 1 {
		t.Fatalf("Paints() len after Remove = %d, want 1", len(c.Paints()))
	}

	if err := c.Clear(true); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if len(c.Paints()) != 0 {
		t.Error("Clear should empty the retained tree")
	}
	if m.disposeCalls == 0 {
		t.Error("Clear(true) should dispose render data for remaining nodes")
	}
}

func TestCanvas_UpdateSingleNode(t *testing.T) {
	m := &fakeMethod{}
	c := NewCanvas(m, 50, 50)
	s := NewShape()
	c.Push(s)

	if err := c.Update(s); err != nil {
		t.Fatalf("Update: %v", err)
	}
}

func TestCanvas_NoMethodErrors(t *testing.T) {
	c := &Canvas{width: 10, height: 10}
	if err := c.Draw(false); err == nil {
		t.Error("Draw with no RenderMethod should error")
	}
	if err := c.Update(nil); err == nil {
		t.Error("Update with no RenderMethod should error")
	}
	if err := c.Clear(true); err == nil {
		t.Error("Clear with no RenderMethod should error")
	}
}
