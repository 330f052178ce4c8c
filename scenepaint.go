package thorvg

// Scene is an internal paint node holding an ordered list of child
// Paintables, ThorVG's Scene (tvgScene.cpp/tvgScene.h). Children are
// rendered back-to-front in push order; a Scene's own transform/opacity
// compose onto every descendant.
type Scene struct {
	Base

	children []Paintable
	effects  []RenderEffect
}

// NewScene creates an empty Scene.
func NewScene() *Scene {
	return &Scene{Base: newBase(KindScene)}
}

// Push appends a child paint node to the scene.
func (sc *Scene) Push(child Paintable) {
	base := child.base()
	base.parent = sc
	sc.children = append(sc.children, child)
	sc.markDirty()
}

// Remove removes the first occurrence of child from the scene.
func (sc *Scene) Remove(child Paintable) bool {
	for i, c := range sc.children {
		if c == child {
			sc.children = append(sc.children[:i], sc.children[i+1:]...)
			sc.markDirty()
			return true
		}
	}
	return false
}

// Clear removes every child.
func (sc *Scene) Clear() {
	sc.children = nil
	sc.markDirty()
}

// Children returns the scene's child list (in render order). The
// returned slice must not be mutated by the caller.
func (sc *Scene) Children() []Paintable { return sc.children }

// PushEffect appends a post-composite effect (applied in the order
// pushed, ThorVG's Scene::push(SceneEffect, ...) semantics).
func (sc *Scene) PushEffect(e RenderEffect) {
	sc.effects = append(sc.effects, e)
	sc.markDirty()
}

func (sc *Scene) localBounds() Rect {
	if len(sc.children) == 0 {
		return Rect{}
	}
	box := sc.children[0].localBounds()
	for _, c := range sc.children[1:] {
		box = box.Union(c.localBounds())
	}
	return box
}

func (sc *Scene) duplicate() Paintable {
	dup := &Scene{Base: sc.Base, effects: append([]RenderEffect(nil), sc.effects...)}
	for _, c := range sc.children {
		child := c.duplicate()
		child.base().parent = dup
		dup.children = append(dup.children, child)
	}
	dup.renderData = nil
	dup.dirty = true
	return dup
}

func (sc *Scene) prepare(method RenderMethod, pm Matrix, opacity uint8) bool {
	if sc.isSkippable() {
		return false
	}
	combined := pm.Multiply(sc.transform)
	combinedOpacity := mulOpacity(opacity, sc.opacity)
	changed := sc.dirty
	for _, c := range sc.children {
		if c.prepare(method, combined, combinedOpacity) {
			changed = true
		}
	}
	sc.dirty = false
	return changed
}

func (sc *Scene) draw(method RenderMethod) {
	if sc.isSkippable() {
		return
	}
	var cmp RenderCompositor
	if sc.mask != nil {
		region := method.Region()
		cmp = method.Target(region, MaskToColorSpace(sc.mask.method))
		if method.BeginComposite(cmp, MaskMethodNone, 255) {
			sc.mask.target.draw(method)
		}
		method.BeginComposite(cmp, sc.mask.method, sc.mask.target.base().opacity)
	}
	for _, c := range sc.children {
		c.draw(method)
	}
	if cmp != nil {
		method.EndComposite(cmp)
	}
}
