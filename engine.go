package thorvg

import (
	"sync"

	"github.com/gogpu/thorvg/schedule"
)

// Engine is the explicit construction root for a thorvg session: it owns
// the scheduler worker count and accuracy constants that Canvas/Saver
// construction need. It replaces ThorVG's global Initializer::init/term
// pair (original_source/src/lib/tvgInit.cpp) with an ordinary value per
// design note §9 ("no hidden statics") - nothing about thorvg's behavior
// depends on a process-wide init call, matching the teacher's own
// avoidance of package-level mutable config beyond the logger.
type Engine struct {
	threads       int
	curveAccuracy float64

	poolOnce sync.Once
	pool     *schedule.Pool
}

// EngineOption configures an Engine at construction time, following the
// teacher's functional-option pattern (options.go's ContextOption).
type EngineOption func(*Engine)

// WithThreads sets the worker count a schedule.Pool constructed from this
// Engine should use. 0 means synchronous/inline execution.
func WithThreads(n int) EngineOption {
	return func(e *Engine) {
		if n >= 0 {
			e.threads = n
		}
	}
}

// WithCurveAccuracy overrides the curve-flattening tolerance the Engine
// stores and reports through CurveAccuracy. Nothing else reads it:
// Path.Flatten, Path.Length and Trim take their own tolerance arguments.
func WithCurveAccuracy(accuracy float64) EngineOption {
	return func(e *Engine) {
		if accuracy > 0 {
			e.curveAccuracy = accuracy
		}
	}
}

// defaultCurveAccuracy matches the tolerance original_source's
// tvgMath.h-derived constants use for bezier flattening.
const defaultCurveAccuracy = 0.25

// NewEngine builds an Engine with the given options applied over the
// defaults (zero worker threads, so tasks run inline on the caller, and
// the default curve accuracy).
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		threads:       0,
		curveAccuracy: defaultCurveAccuracy,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Threads returns the configured scheduler worker count.
func (e *Engine) Threads() int { return e.threads }

// CurveAccuracy returns the configured adaptive-subdivision tolerance.
func (e *Engine) CurveAccuracy() float64 { return e.curveAccuracy }

// Pool returns the Engine's lazily-constructed task scheduler, sized by
// Threads and shared by every Canvas this Engine creates. Constructing
// it lazily (rather than in NewEngine) avoids spawning worker goroutines
// for callers who never draw asynchronously.
func (e *Engine) Pool() *schedule.Pool {
	e.poolOnce.Do(func() {
		e.pool = schedule.NewPool(e.threads)
		registerLoggerBackend(e.pool)
	})
	return e.pool
}

// NewCanvas builds a Canvas backed by method, using this Engine's
// configured options. The Engine's shared task scheduler is attached
// automatically via WithPool so Draw(async=true) works out of the box;
// passing an explicit WithPool in opts overrides it.
func (e *Engine) NewCanvas(method RenderMethod, width, height int, opts ...CanvasOption) *Canvas {
	all := append([]CanvasOption{WithPool(e.Pool())}, opts...)
	return NewCanvas(method, width, height, all...)
}

// Close releases the Engine's scheduler, if one was ever constructed.
// Safe to call on an Engine that never drew asynchronously.
func (e *Engine) Close() {
	if e.pool != nil {
		unregisterLoggerBackend(e.pool)
		e.pool.Close()
	}
}
