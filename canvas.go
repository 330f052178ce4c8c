package thorvg

import "github.com/gogpu/thorvg/schedule"

// Canvas owns a retained paint tree and a backend RenderMethod, and drives
// the two-pass update/render pipeline each frame. Grounded on
// original_source/src/lib/tvgCanvasImpl.h's Canvas::Impl (paints array +
// renderer pointer, push/clear/update/draw), translated from its pimpl
// idiom to a directly-owned Go struct.
type Canvas struct {
	method RenderMethod
	paints []Paintable
	dirty  *DirtyRegion
	width  int
	height int
	tile   int

	pool    *schedule.Pool
	pending []*schedule.Handle
}

// CanvasOption configures a Canvas at construction time, following the
// teacher's functional-option pattern (see options.go).
type CanvasOption func(*Canvas)

// WithTileSize overrides the dirty-region tile size (default
// DefaultTileSize).
func WithTileSize(size int) CanvasOption {
	return func(c *Canvas) {
		if size > 0 {
			c.tile = size
		}
	}
}

// WithPool attaches a task scheduler Draw(async=true) dispatches
// rasterization through. Without one, Draw(true) falls back to running
// synchronously (spec.md §7's "best-effort" degradation policy), since
// there is no scheduler available to hand work off to.
func WithPool(pool *schedule.Pool) CanvasOption {
	return func(c *Canvas) {
		c.pool = pool
	}
}

// NewCanvas creates a Canvas of the given pixel dimensions backed by
// method. method is registered to receive logger changes if it implements
// the loggerSetter interface (software.Method does, mirroring the
// teacher's GPU-accelerator logger propagation).
func NewCanvas(method RenderMethod, width, height int, opts ...CanvasOption) *Canvas {
	c := &Canvas{
		method: method,
		width:  width,
		height: height,
		tile:   DefaultTileSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.dirty = NewDirtyRegion(width, height, c.tile)
	if c.dirty != nil {
		c.dirty.MarkAll()
	}
	if ls, ok := method.(loggerSetter); ok {
		registerLoggerBackend(ls)
	}
	if c.pool != nil {
		registerLoggerBackend(c.pool)
	}
	return c
}

// Push appends paint to the canvas's retained tree and runs an initial
// prepare pass on it, mirroring Canvas::Impl::push's
// "paints.push(p); return update(p)".
func (c *Canvas) Push(paint Paintable) error {
	if paint == nil {
		return wrapf(ResultInvalidArguments, "Canvas.Push: nil paint")
	}
	c.paints = append(c.paints, paint)
	return c.Update(paint)
}

// Remove detaches paint from the canvas's retained tree without disposing
// its backend render data; the caller owns disposal if it wants one.
func (c *Canvas) Remove(paint Paintable) bool {
	for i, p := range c.paints {
		if p == paint {
			c.paints = append(c.paints[:i], c.paints[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the retained tree. When free is true, every node's
// backend render data is disposed first, mirroring
// Canvas::Impl::clear(bool free).
func (c *Canvas) Clear(free bool) error {
	if c.method == nil {
		return wrapf(ResultInsufficientCondition, "Canvas.Clear: no RenderMethod")
	}
	if free {
		for _, p := range c.paints {
			disposeTree(c.method, p)
		}
	}
	c.paints = nil
	if c.dirty != nil {
		c.dirty.MarkAll()
	}
	return nil
}

// disposeTree releases render data for paint and, if it is a Scene,
// recursively for its children - ThorVG's dispose is a v-table method
// reached the same way update/render are; here it is a free function
// switching on Kind since Dispose lives on RenderMethod, not Paintable.
func disposeTree(method RenderMethod, paint Paintable) {
	if scene, ok := paint.(*Scene); ok {
		for _, child := range scene.Children() {
			disposeTree(method, child)
		}
	}
	method.Dispose(paint.base().renderData)
}

// Update refreshes render data for paint's subtree under the accumulated
// root transform/opacity. Passing nil updates every retained paint node,
// matching Canvas::Impl::update(Paint* paint = nullptr).
func (c *Canvas) Update(paint Paintable) error {
	if c.method == nil {
		return wrapf(ResultInsufficientCondition, "Canvas.Update: no RenderMethod")
	}
	if paint != nil {
		if paint.prepare(c.method, Identity(), 255) {
			c.markNodeDirty(paint)
		}
		return nil
	}
	for _, p := range c.paints {
		if p.prepare(c.method, Identity(), 255) {
			c.markNodeDirty(p)
		}
	}
	return nil
}

// markNodeDirty marks the dirty-region tiles under a node's last prepared
// render bounds, so Draw can eventually drive partial redraws. It marks
// the node's localBounds mapped through its transform; for a Scene that
// is the union of its children's bounds.
func (c *Canvas) markNodeDirty(paint Paintable) {
	if c.dirty == nil {
		return
	}
	b := paint.localBounds()
	t := paint.base().Transform()
	min := t.TransformPoint(b.Min)
	max := t.TransformPoint(b.Max)
	region := RenderRegion{
		MinX: int(min.X), MinY: int(min.Y),
		MaxX: int(max.X) + 1, MaxY: int(max.Y) + 1,
	}
	c.dirty.MarkRegion(region)
}

// Draw issues draw commands for every retained paint node in push order,
// mirroring Canvas::Impl::draw's preRender/render-each/postRender
// sequence. When async is true and a task scheduler was attached via
// WithPool, each top-level paint's draw is dispatched as a separate
// task and Draw returns immediately without waiting - call Sync to
// block until every dispatched task (and the backend's own Sync) has
// completed, per spec.md §5's suspension-point rule ("draw returns
// immediately after enqueuing work; sync blocks until ... done").
// Without an attached pool, async is a best-effort request that falls
// back to running synchronously.
func (c *Canvas) Draw(async bool) error {
	if c.method == nil {
		return wrapf(ResultInsufficientCondition, "Canvas.Draw: no RenderMethod")
	}
	c.method.PreRender()

	if async && c.pool != nil {
		for _, p := range c.paints {
			paint := p
			c.pending = append(c.pending, c.pool.Request(&drawTask{method: c.method, paint: paint}))
		}
		return nil
	}

	for _, p := range c.paints {
		p.draw(c.method)
	}
	return c.Sync()
}

// Sync blocks until every task dispatched by an async Draw has
// completed, then calls the backend's own Sync and clears the
// dirty-region tracker. Safe to call after a synchronous Draw too (it
// is what Draw itself calls in that case).
func (c *Canvas) Sync() error {
	if c.method == nil {
		return wrapf(ResultInsufficientCondition, "Canvas.Sync: no RenderMethod")
	}
	for _, h := range c.pending {
		h.Wait()
	}
	c.pending = nil
	c.method.Sync()
	if c.dirty != nil {
		c.dirty.Clear()
	}
	return nil
}

// drawTask adapts a single paint's draw call to schedule.Task, used by
// Draw(async=true) to hand rasterization off to the attached pool.
type drawTask struct {
	method RenderMethod
	paint  Paintable
}

func (t *drawTask) Prepare() {}
func (t *drawTask) Run(int)  { t.paint.draw(t.method) }

// DirtyTileCount reports how many tiles are currently marked dirty,
// useful for diagnostics/logging around partial-redraw backends.
func (c *Canvas) DirtyTileCount() int {
	if c.dirty == nil {
		return 0
	}
	return c.dirty.Count()
}

// Size returns the canvas's pixel dimensions.
func (c *Canvas) Size() (width, height int) { return c.width, c.height }

// Paints returns the canvas's retained top-level paint nodes, in push
// order. The returned slice must not be mutated by the caller.
func (c *Canvas) Paints() []Paintable { return c.paints }

// Dispose releases the canvas's backend resources and unregisters it from
// logger propagation. Call once when the canvas is no longer needed.
func (c *Canvas) Dispose() {
	if ls, ok := c.method.(loggerSetter); ok {
		unregisterLoggerBackend(ls)
	}
	if c.method != nil {
		for _, p := range c.paints {
			disposeTree(c.method, p)
		}
	}
	c.paints = nil
}

// logCanvasEvent reports a canvas lifecycle event at Info level through
// the package logger. Nothing in the package calls it.
func logCanvasEvent(msg string, args ...any) {
	Logger().Info(msg, args...)
}
