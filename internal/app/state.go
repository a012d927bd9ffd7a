// Package app provides the explorer session: viewport, pixel buffer, scan
// engine, and the events the UI listens to.
package app

import (
	"errors"
	"fmt"
	"image"
	"sync"
	"time"

	"fractal-explorer/internal/escape"
	"fractal-explorer/internal/framebuffer"
	"fractal-explorer/internal/logging"
	"fractal-explorer/internal/palette"
	"fractal-explorer/internal/scan"
	"fractal-explorer/internal/viewport"
	"fractal-explorer/internal/zoom"
	"fractal-explorer/pkg/geometry"
)

// State holds one exploration session. Zoom requests and frame reads come
// from the UI goroutine; the scan engine writes the buffer from its own.
type State struct {
	mu sync.RWMutex

	Viewport *viewport.Viewport
	Buffer   *framebuffer.Buffer
	Engine   *scan.Engine

	// Math bounds restored by ResetView.
	home geometry.Rect

	// Event listeners
	listeners map[EventType][]EventListener
}

// Config holds what NewState needs to build a session.
type Config struct {
	Window       geometry.Rect    // zero selects viewport.DefaultWindow
	Math         geometry.Rect    // zero selects viewport.DefaultMath
	Evaluator    scan.Evaluator   // nil selects escape.Mandelbrot with the default cap
	Colors       scan.ColorMapper // nil selects the default palette wheel
	PollInterval time.Duration
}

// EventType identifies different application events.
type EventType int

const (
	// EventFrameUpdated fires once per scanned row, at the end of a pass and
	// after a zoom pre-seed. Data is nil.
	EventFrameUpdated EventType = iota
	// EventBoundsChanged fires after the math bounds change. Data is the new
	// geometry.Rect.
	EventBoundsChanged
	// EventScanStateChanged fires on engine state transitions. Data is the
	// new scan.State.
	EventScanStateChanged
)

// EventListener is called when an event occurs. Listeners for frame and
// scan events run on the scan goroutine.
type EventListener func(data interface{})

// NewState creates a session. The engine is not started.
func NewState(cfg Config) (*State, error) {
	vp, err := viewport.New(cfg.Window, cfg.Math)
	if err != nil {
		return nil, fmt.Errorf("viewport: %w", err)
	}
	window := vp.WindowBounds()

	if cfg.Evaluator == nil {
		cfg.Evaluator = escape.Mandelbrot{}
	}
	if cfg.Colors == nil {
		cfg.Colors = palette.NewWheel(palette.DefaultCycle, 0)
	}

	s := &State{
		Viewport:  vp,
		Buffer:    framebuffer.New(int(window.Width), int(window.Height)),
		home:      vp.MathBounds(),
		listeners: make(map[EventType][]EventListener),
	}

	s.Engine, err = scan.New(vp, s.Buffer, cfg.Evaluator, cfg.Colors,
		scan.WithPollInterval(cfg.PollInterval),
		scan.WithRedraw(func() { s.Emit(EventFrameUpdated, nil) }),
		scan.WithStateListener(func(st scan.State) { s.Emit(EventScanStateChanged, st) }),
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// Start begins scanning.
func (s *State) Start() {
	s.Engine.Start()
}

// Stop ends scanning and waits for the engine goroutine to exit.
func (s *State) Stop() {
	s.Engine.Stop()
}

// CurrentFrame returns a private copy of the pixel buffer.
func (s *State) CurrentFrame() *image.RGBA {
	return s.Buffer.Snapshot()
}

// FrameSize returns the pixel buffer dimensions.
func (s *State) FrameSize() (width, height int) {
	return s.Buffer.Size()
}

// IsScanning reports whether a scan pass is in progress.
func (s *State) IsScanning() bool {
	return s.Engine.IsScanning()
}

// MathBounds returns the region of the complex plane on display.
func (s *State) MathBounds() geometry.Rect {
	return s.Viewport.MathBounds()
}

// RequestZoom zooms by the drag rectangle, given in window coordinates. On
// error the view is left as it was.
func (s *State) RequestZoom(drag geometry.Rect, dir zoom.Direction) error {
	if drag.IsDegenerate() {
		return zoom.ErrDegenerateDrag
	}

	window, current := s.Viewport.Bounds()
	next, err := zoom.Plan(dir, drag, window, current)
	if err != nil {
		return fmt.Errorf("zoom %v: %w", dir, err)
	}
	if err := s.Viewport.SetMathBounds(next); err != nil {
		return fmt.Errorf("zoom %v: %w", dir, err)
	}

	zoom.Preseed(s.Buffer, dir, drag)
	s.Engine.Reset()

	logging.Logger().Debug("zoomed", "direction", dir, "drag", drag, "bounds", next)
	s.Emit(EventBoundsChanged, next)
	s.Emit(EventFrameUpdated, nil)
	return nil
}

// CancelAndRescan abandons any pass in progress and scans again from the top.
func (s *State) CancelAndRescan() {
	s.Engine.Reset()
}

// ResetView restores the math bounds the session started with.
func (s *State) ResetView() error {
	if err := s.Viewport.SetMathBounds(s.home); err != nil {
		return err
	}
	s.Engine.Reset()
	s.Emit(EventBoundsChanged, s.home)
	return nil
}

// Resize changes the window size. The engine reallocates the buffer before
// its next pass.
func (s *State) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.New("resize: width and height must be positive")
	}
	if err := s.Viewport.SetWindowBounds(geometry.NewRect(0, 0, float64(width), float64(height))); err != nil {
		return err
	}
	s.Engine.Reset()
	return nil
}
