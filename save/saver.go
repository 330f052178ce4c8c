package save

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gogpu/thorvg"
	"github.com/gogpu/thorvg/schedule"
	"github.com/gogpu/thorvg/software"
)

// Animator is the minimal surface SaveAnimation needs from an animated
// source to emit a GIF: its playback length and the ability to
// rasterize an arbitrary point in time into a caller-owned pixel buffer.
// Defined here rather than imported from package lottie so save carries
// no dependency on it - lottie.Animation satisfies this interface
// structurally.
type Animator interface {
	Duration() float64
	Render(t float64, target *thorvg.Pixmap)
}

// Saver persists a paint tree or animation to disk, mirroring the
// original's SaveModule/Task pairing (see doc.go) without its v-table
// indirection: the concrete format is chosen by path's extension.
// Matches spec.md §6's save/sync/background surface.
type Saver struct {
	pool   *schedule.Pool
	width  int
	height int

	mu      sync.Mutex
	bg      thorvg.RGBA
	pending *schedule.Handle
}

// NewSaver creates a Saver that rasterizes paints at width x height and
// dispatches save work through pool. A nil pool runs every save
// synchronously on the calling goroutine, matching schedule.Pool's own
// zero-thread fallback.
func NewSaver(pool *schedule.Pool, width, height int) *Saver {
	if pool != nil {
		registerLoggerBackend(pool)
	}
	return &Saver{pool: pool, width: width, height: height}
}

// Background sets the color new frames are cleared to before a static
// paint tree is rasterized - TvgSaver::background in the original.
func (s *Saver) Background(c thorvg.RGBA) {
	s.mu.Lock()
	s.bg = c
	s.mu.Unlock()
}

// Save persists paint to path. The format is chosen from path's
// extension: ".tvg" writes the tagged binary (spec.md §4.11); ".gif"
// rasterizes paint once through a software RenderMethod and writes a
// single-frame GIF. quality is accepted for parity with spec.md §6's
// save(paint, path, [quality, fps]) signature but currently unused -
// neither persisted format has a lossy mode. Save dispatches through
// the attached pool when one was given and returns immediately; call
// Sync to wait for completion.
func (s *Saver) Save(paint thorvg.Paintable, path string, quality int) error {
	return s.dispatch(func() error { return s.save(paint, path) })
}

// SaveAnimation samples anim at fps frames per second for its whole
// duration and persists the result to path as an animated GIF. quality
// is accepted for symmetry with Save and is currently unused.
func (s *Saver) SaveAnimation(anim Animator, path string, fps float64, quality int) error {
	return s.dispatch(func() error { return s.saveAnimation(anim, path, fps) })
}

// Sync blocks until any in-flight asynchronous save completes -
// spec.md §6's Saver.sync().
func (s *Saver) Sync() error {
	s.mu.Lock()
	h := s.pending
	s.pending = nil
	s.mu.Unlock()
	if h != nil {
		h.Wait()
	}
	return nil
}

func (s *Saver) dispatch(fn func() error) error {
	if s.pool == nil {
		return fn()
	}
	task := &saveTask{fn: fn}
	h := s.pool.Request(task)
	s.mu.Lock()
	s.pending = h
	s.mu.Unlock()
	return nil
}

// saveTask adapts a save closure to schedule.Task, the same pattern
// Canvas.Draw's drawTask uses to hand work to a *schedule.Pool.
type saveTask struct {
	fn  func() error
	err error
}

func (t *saveTask) Prepare() {}
func (t *saveTask) Run(int) {
	if err := t.fn(); err != nil {
		t.err = err
		thorvg.Logger().Warn("save failed", "error", err)
		return
	}
	thorvg.Logger().Info("save completed")
}

func (s *Saver) save(paint thorvg.Paintable, path string) error {
	switch {
	case strings.HasSuffix(path, ".tvg"):
		return SaveTVG(paint, path)
	case strings.HasSuffix(path, ".gif"):
		pm, err := s.rasterize(paint)
		if err != nil {
			return err
		}
		return SaveGIF([]GIFFrame{{Image: pm, DelayCentis: 0}}, path, false)
	default:
		return fmt.Errorf("save: unrecognized format for %q", path)
	}
}

func (s *Saver) saveAnimation(anim Animator, path string, fps float64) error {
	if !strings.HasSuffix(path, ".gif") {
		return fmt.Errorf("save: SaveAnimation only supports .gif, got %q", path)
	}
	if fps <= 0 {
		fps = 30
	}
	delayCentis := uint16(100/fps + 0.5)
	if delayCentis == 0 {
		delayCentis = 1
	}

	dt := 1.0 / fps
	var frames []GIFFrame
	for t := 0.0; t < anim.Duration(); t += dt {
		pm := thorvg.NewPixmap(s.width, s.height)
		pm.Clear(s.background())
		anim.Render(t, pm)
		frames = append(frames, GIFFrame{Image: pm, DelayCentis: delayCentis})
	}
	return SaveGIF(frames, path, true)
}

func (s *Saver) background() thorvg.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bg
}

// rasterize draws paint once through an ephemeral software.Method sized
// to the Saver's configured dimensions, the path Save takes to turn a
// static paint tree into pixels for a single-frame GIF.
func (s *Saver) rasterize(paint thorvg.Paintable) (*thorvg.Pixmap, error) {
	method := software.NewMethod(s.width, s.height)
	canvas := thorvg.NewCanvas(method, s.width, s.height)
	if err := canvas.Push(paint); err != nil {
		return nil, err
	}
	if err := canvas.Draw(false); err != nil {
		return nil, err
	}
	return method.Pixmap(), nil
}

// registerLoggerBackend forwards pool to thorvg's logger-propagation
// registry via the same SetLogger method schedule.Pool already exposes
// for Engine's own pool, so a Saver's scheduler logs at whatever level
// the caller configured through thorvg.SetLogger.
func registerLoggerBackend(pool *schedule.Pool) {
	pool.SetLogger(thorvg.Logger())
}
