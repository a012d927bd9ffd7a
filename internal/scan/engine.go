// Package scan runs the background pass that fills the pixel buffer one
// pixel at a time, and restarts it whenever the view changes.
package scan

import (
	"errors"
	"fmt"
	"image/color"
	"sync"
	"sync/atomic"
	"time"

	"fractal-explorer/internal/framebuffer"
	"fractal-explorer/internal/logging"
	"fractal-explorer/internal/viewport"
)

// Evaluator computes the escape-time iteration count for a point. It must be
// deterministic; a negative result means the point did not escape.
type Evaluator interface {
	Evaluate(c complex128) int
}

// ColorMapper turns an iteration count into a color. Negative counts map to
// black by convention.
type ColorMapper interface {
	ColorFor(count int) color.RGBA
}

// State is the engine's position in its Idle -> Scanning -> Idle cycle.
type State int32

const (
	Idle State = iota
	Scanning
	Resetting // a pass was abandoned and a new one is about to start
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Scanning:
		return "scanning"
	case Resetting:
		return "resetting"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// Engine owns the single background goroutine that scans the viewport into
// the buffer in row-major order.
//
// Cancellation is cooperative: Reset raises a flag that the scan checks
// before every pixel. The guard on the buffer is held only for each pixel
// write, never while the evaluator or color mapper run.
type Engine struct {
	vp     *viewport.Viewport
	buf    *framebuffer.Buffer
	eval   Evaluator
	colors ColorMapper
	opts   options

	needsReset atomic.Bool
	scanning   atomic.Bool
	halted     atomic.Bool
	state      atomic.Int32

	passes  atomic.Int64
	skipped atomic.Int64

	wake      chan struct{}
	stopCh    chan struct{}
	done      chan struct{}
	startOnce sync.Once
	stopOnce  sync.Once
}

// New creates an engine. It does not start scanning until Start is called.
func New(vp *viewport.Viewport, buf *framebuffer.Buffer, eval Evaluator, colors ColorMapper, opts ...Option) (*Engine, error) {
	switch {
	case vp == nil:
		return nil, errors.New("scan: nil viewport")
	case buf == nil:
		return nil, errors.New("scan: nil buffer")
	case eval == nil:
		return nil, errors.New("scan: nil evaluator")
	case colors == nil:
		return nil, errors.New("scan: nil color mapper")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Engine{
		vp:     vp,
		buf:    buf,
		eval:   eval,
		colors: colors,
		opts:   o,
		wake:   make(chan struct{}, 1),
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}, nil
}

// Start launches the background goroutine. The first pass begins
// immediately. Calling Start more than once, or after Stop, does nothing.
func (e *Engine) Start() {
	e.startOnce.Do(func() {
		e.needsReset.Store(true)
		go e.loop()
	})
}

// Stop ends the background goroutine and waits for it to exit. A pass in
// progress is abandoned at the next pixel. Stop is idempotent.
func (e *Engine) Stop() {
	e.stopOnce.Do(func() {
		e.halted.Store(true)
		close(e.stopCh)
	})
	// Never started: nothing to join, and no later Start may run.
	e.startOnce.Do(func() { close(e.done) })
	<-e.done
}

// Reset abandons the current pass, if any, and schedules a new one from the
// top. Repeated calls before the engine reacts collapse into one.
func (e *Engine) Reset() {
	e.needsReset.Store(true)
	select {
	case e.wake <- struct{}{}:
	default:
	}
}

// IsScanning reports whether a pass is in progress.
func (e *Engine) IsScanning() bool {
	return e.scanning.Load()
}

// State returns the current state.
func (e *Engine) State() State {
	return State(e.state.Load())
}

// Passes returns the number of passes that ran to completion.
func (e *Engine) Passes() int64 {
	return e.passes.Load()
}

// Skipped returns the total number of pixels skipped because rendering them
// failed.
func (e *Engine) Skipped() int64 {
	return e.skipped.Load()
}

func (e *Engine) setState(s State) {
	if State(e.state.Swap(int32(s))) != s {
		e.opts.onState(s)
	}
}

// loop is the engine's goroutine.
func (e *Engine) loop() {
	defer close(e.done)
	defer func() {
		e.scanning.Store(false)
		e.setState(Idle)
	}()

	ticker := time.NewTicker(e.opts.pollInterval)
	defer ticker.Stop()

	for {
		if e.halted.Load() {
			return
		}
		if e.needsReset.CompareAndSwap(true, false) {
			e.scanning.Store(true)
			e.setState(Scanning)
			if !e.scanPass() {
				// Interrupted; go straight round for the new pass.
				continue
			}
		}
		if e.scanning.CompareAndSwap(true, false) {
			e.setState(Idle)
			e.opts.redraw()
		}

		select {
		case <-e.stopCh:
			return
		case <-e.wake:
		case <-ticker.C:
		}
	}
}

// scanPass computes every pixel once, row by row. It returns false if the
// pass was abandoned before the last pixel.
func (e *Engine) scanPass() bool {
	window := e.vp.WindowBounds()
	w, h := int(window.Width), int(window.Height)
	if bw, bh := e.buf.Size(); bw != w || bh != h {
		logging.Logger().Warn("reallocating pixel buffer",
			"from_width", bw, "from_height", bh, "to_width", w, "to_height", h)
		e.buf.Reallocate(w, h)
	}

	logging.Logger().Debug("scan pass started", "width", w, "height", h)
	start := time.Now()
	var failures int

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if e.needsReset.Load() || e.halted.Load() {
				e.setState(Resetting)
				return false
			}

			err := e.renderPixel(x, y)
			if err == nil {
				continue
			}
			if errors.Is(err, framebuffer.ErrDimensionMismatch) {
				logging.Logger().Warn("scan pass aborted", "error", err)
				e.Reset()
				e.setState(Resetting)
				return false
			}
			failures++
			e.skipped.Add(1)
			if failures == 1 {
				logging.Logger().Warn("skipping pixel", "error", err)
			}
		}
		e.opts.redraw()
	}

	e.passes.Add(1)
	logging.Logger().Info("scan pass complete",
		"elapsed", time.Since(start), "skipped", failures)
	return true
}

// renderPixel computes and stores one pixel. A panic in a collaborator is
// turned into an error so that one bad pixel cannot end the pass.
func (e *Engine) renderPixel(x, y int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pixel (%d,%d): %v", x, y, r)
		}
	}()

	c, err := e.vp.ScreenToComplex(x, y)
	if err != nil {
		return fmt.Errorf("pixel (%d,%d): %w", x, y, err)
	}
	count := e.eval.Evaluate(c)
	col := e.colors.ColorFor(count)
	return e.buf.SetPixel(x, y, col)
}
