// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"log"

	"fractal-explorer/internal/app"
	"fractal-explorer/internal/scan"
	"fractal-explorer/internal/version"
	"fractal-explorer/internal/zoom"
	"fractal-explorer/pkg/geometry"
	"fractal-explorer/ui/canvas"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const appTitle = "Fractal Explorer"

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app        fyne.App
	state      *app.State
	canvas     *canvas.FractalCanvas
	boundsBar  *widget.Label
	pointerBar *widget.Label
	statusBar  *widget.Label
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State) *MainWindow {
	win := fyneApp.NewWindow(appTitle)

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()

	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.canvas = canvas.NewFractalCanvas(mw.state)
	mw.canvas.OnZoom(mw.onZoom)
	mw.canvas.OnHover(mw.onHover)

	// Create status bar
	mw.boundsBar = widget.NewLabel(formatBounds(mw.state.MathBounds()))
	mw.pointerBar = widget.NewLabel("")
	mw.statusBar = widget.NewLabel("Ready")

	toolbar := mw.createToolbar()

	statusRow := container.NewHBox(mw.statusBar, mw.boundsBar, mw.pointerBar)

	content := container.NewBorder(
		toolbar,   // top
		statusRow, // bottom
		nil,       // left
		nil,       // right
		mw.canvas, // center
	)

	mw.SetContent(content)
	mw.SetFixedSize(true)
}

// createToolbar creates the toolbar with view controls.
func (mw *MainWindow) createToolbar() fyne.CanvasObject {
	return widget.NewToolbar(
		widget.NewToolbarAction(theme.ViewRefreshIcon(), mw.onRescan),
		widget.NewToolbarAction(theme.HomeIcon(), mw.onResetView),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.InfoIcon(), mw.onAbout),
	)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Rescan", mw.onRescan),
		fyne.NewMenuItem("Reset View", mw.onResetView),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("Usage", mw.onUsage),
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu, helpMenu))
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventFrameUpdated, func(interface{}) {
		mw.canvas.Refresh()
	})

	mw.state.On(app.EventBoundsChanged, func(data interface{}) {
		if r, ok := data.(geometry.Rect); ok {
			mw.boundsBar.SetText(formatBounds(r))
		}
	})

	mw.state.On(app.EventScanStateChanged, func(data interface{}) {
		if st, ok := data.(scan.State); ok {
			switch st {
			case scan.Scanning:
				mw.updateStatus("Scanning...")
			case scan.Idle:
				if n := mw.state.Engine.Skipped(); n > 0 {
					mw.updateStatus(fmt.Sprintf("Done, %d pixels skipped", n))
				} else {
					mw.updateStatus("Done")
				}
			}
			mw.canvas.Refresh()
		}
	})
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

func formatBounds(r geometry.Rect) string {
	return fmt.Sprintf("re [%.6g, %.6g]  im [%.6g, %.6g]", r.Left(), r.Right(), r.Top(), r.Bottom())
}

func (mw *MainWindow) onZoom(drag geometry.Rect, dir zoom.Direction) {
	if err := mw.state.RequestZoom(drag, dir); err != nil {
		log.Printf("zoom %v by %+v: %v", dir, drag, err)
		mw.updateStatus("Zoom failed: " + err.Error())
	}
}

// onHover shows the point of the complex plane under the pointer.
func (mw *MainWindow) onHover(p geometry.Point2D) {
	m, err := mw.state.Viewport.ScreenToMath(p)
	if err != nil {
		return
	}
	mw.pointerBar.SetText(fmt.Sprintf("c = %.6g %+.6gi", m.X, m.Y))
}

func (mw *MainWindow) onRescan() {
	mw.state.CancelAndRescan()
}

func (mw *MainWindow) onResetView() {
	if err := mw.state.ResetView(); err != nil {
		dialog.ShowError(err, mw.Window)
	}
}

func (mw *MainWindow) onUsage() {
	dialog.ShowInformation("Usage",
		"Drag a box to zoom in on it.\n"+
			"Hold Shift while dragging to zoom out.\n"+
			"Move the pointer out of the picture to cancel a drag.",
		mw.Window)
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About "+appTitle,
		fmt.Sprintf("%s %s\n\n"+
			"An interactive Mandelbrot set explorer.",
			appTitle, version.String()),
		mw.Window)
}
