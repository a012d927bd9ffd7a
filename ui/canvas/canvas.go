// Package canvas provides the fractal display with drag-to-zoom selection.
package canvas

import (
	"image"
	"sync"

	"fractal-explorer/internal/zoom"
	"fractal-explorer/pkg/geometry"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// FrameSource supplies the pixels the canvas shows.
type FrameSource interface {
	CurrentFrame() *image.RGBA
	FrameSize() (width, height int)
	IsScanning() bool
}

// FractalCanvas shows the current frame and lets the user drag a box to zoom.
// A plain drag zooms in on the box; holding shift zooms out so the current
// view shrinks into the box.
type FractalCanvas struct {
	widget.BaseWidget

	source FrameSource
	raster *fynecanvas.Raster

	mu        sync.Mutex
	drag      selection
	pressed   bool
	cancelled bool // pointer left while the button was down
	shift     bool

	onZoom  func(drag geometry.Rect, dir zoom.Direction)
	onHover func(p geometry.Point2D)
}

var (
	_ fyne.Widget       = (*FractalCanvas)(nil)
	_ fyne.Draggable    = (*FractalCanvas)(nil)
	_ desktop.Mouseable = (*FractalCanvas)(nil)
	_ desktop.Hoverable = (*FractalCanvas)(nil)
)

// NewFractalCanvas creates a canvas over source.
func NewFractalCanvas(source FrameSource) *FractalCanvas {
	fc := &FractalCanvas{source: source}

	fc.raster = fynecanvas.NewRaster(fc.draw)
	fc.raster.ScaleMode = fynecanvas.ImageScalePixels
	w, h := source.FrameSize()
	fc.raster.SetMinSize(fyne.NewSize(float32(w), float32(h)))

	fc.ExtendBaseWidget(fc)
	return fc
}

// OnZoom sets the callback run when a drag ends with a box of non-zero width
// and height. The box is in frame pixels.
func (fc *FractalCanvas) OnZoom(callback func(drag geometry.Rect, dir zoom.Direction)) {
	fc.onZoom = callback
}

// OnHover sets the callback run as the pointer moves over the canvas, with the
// pointer position in frame pixels.
func (fc *FractalCanvas) OnHover(callback func(p geometry.Point2D)) {
	fc.onHover = callback
}

// Selection returns the box being dragged, in frame pixels, and whether a
// drag is in progress.
func (fc *FractalCanvas) Selection() (geometry.Rect, bool) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.drag.rect(), fc.drag.active
}

// MouseDown starts a drag.
func (fc *FractalCanvas) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	p := fc.toFrame(ev.Position)

	fc.mu.Lock()
	fc.pressed = true
	fc.cancelled = false
	fc.shift = ev.Modifier&fyne.KeyModifierShift != 0
	fc.drag.begin(p)
	fc.mu.Unlock()
	fc.Refresh()
}

// MouseUp ends a drag. Shift is read again here so it can be pressed after
// the drag has started.
func (fc *FractalCanvas) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	fc.mu.Lock()
	if fc.drag.active {
		fc.drag.end = fc.toFrame(ev.Position)
		fc.shift = ev.Modifier&fyne.KeyModifierShift != 0
	}
	fc.mu.Unlock()
	fc.finish()
}

// Dragged updates the selection box.
func (fc *FractalCanvas) Dragged(ev *fyne.DragEvent) {
	p := fc.toFrame(ev.Position)

	fc.mu.Lock()
	if fc.cancelled {
		fc.mu.Unlock()
		return
	}
	if !fc.drag.active {
		// No MouseDown seen; the drag began one delta ago.
		fc.drag.begin(fc.toFrame(ev.Position.Subtract(ev.Dragged)))
	}
	fc.drag.end = p
	fc.mu.Unlock()
	fc.Refresh()
}

// DragEnd completes the drag.
func (fc *FractalCanvas) DragEnd() {
	fc.finish()
}

// MouseIn implements desktop.Hoverable.
func (fc *FractalCanvas) MouseIn(*desktop.MouseEvent) {}

// MouseMoved reports the pointer position.
func (fc *FractalCanvas) MouseMoved(ev *desktop.MouseEvent) {
	if fc.onHover != nil {
		fc.onHover(fc.toFrame(ev.Position))
	}
}

// MouseOut cancels any drag in progress.
func (fc *FractalCanvas) MouseOut() {
	fc.mu.Lock()
	wasActive := fc.drag.active
	if fc.pressed {
		fc.cancelled = true
	}
	fc.drag.clear()
	fc.mu.Unlock()
	if wasActive {
		fc.Refresh()
	}
}

// finish fires the zoom callback for the current drag, if any, and clears it.
func (fc *FractalCanvas) finish() {
	fc.mu.Lock()
	active := fc.drag.active
	box := fc.drag.rect()
	moved := fc.drag.moved()
	dir := zoom.In
	if fc.shift {
		dir = zoom.Out
	}
	fc.drag.clear()
	fc.pressed = false
	fc.cancelled = false
	fc.mu.Unlock()

	if !active {
		return
	}
	fc.Refresh()
	if moved && fc.onZoom != nil {
		fc.onZoom(box, dir)
	}
}

// toFrame converts a widget position into frame pixel coordinates.
func (fc *FractalCanvas) toFrame(pos fyne.Position) geometry.Point2D {
	x, y := float64(pos.X), float64(pos.Y)
	size := fc.Size()
	w, h := fc.source.FrameSize()
	if size.Width > 0 && size.Height > 0 {
		x = x * float64(w) / float64(size.Width)
		y = y * float64(h) / float64(size.Height)
	}
	return geometry.NewPoint2D(float64(int(x)), float64(int(y)))
}

// Refresh redraws the raster.
func (fc *FractalCanvas) Refresh() {
	fc.raster.Refresh()
}

// draw is the raster drawing function. The frame is drawn at its own size;
// the raster scales it to the widget.
func (fc *FractalCanvas) draw(_, _ int) image.Image {
	output := fc.source.CurrentFrame()

	fc.mu.Lock()
	box, active := fc.drag.rect(), fc.drag.active
	fc.mu.Unlock()

	if active {
		drawSelectionRect(output, box.Pixels())
	}
	if fc.source.IsScanning() {
		drawScanIndicator(output)
	}
	return output
}

// CreateRenderer implements fyne.Widget.
func (fc *FractalCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(fc.raster)
}
