// Package main provides the entry point for the Fractal Explorer application.
package main

import (
	"log"
	"log/slog"
	"os"

	"fractal-explorer/internal/app"
	"fractal-explorer/internal/escape"
	"fractal-explorer/internal/logging"
	"fractal-explorer/internal/palette"
	"fractal-explorer/internal/version"
	"fractal-explorer/pkg/geometry"
	"fractal-explorer/ui/mainwindow"
	"fractal-explorer/ui/prefs"

	fyneapp "fyne.io/fyne/v2/app"
)

const appTitle = "Fractal Explorer"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s %s", appTitle, version.String())
	logging.SetLogger(slog.Default())

	appPrefs := loadPrefs()
	session := appPrefs.Session()
	log.Printf("Window %dx%d, %d iterations, preferences %s",
		session.WindowWidth, session.WindowHeight, session.MaxIterations, appPrefs.Path())

	colors := palette.NewWheel(session.PaletteCycle, session.HueOffset)
	log.Printf("Palette: %d colours, hue offset %g", colors.Cycle(), session.HueOffset)

	appState, err := app.NewState(app.Config{
		Window:       geometry.NewRect(0, 0, float64(session.WindowWidth), float64(session.WindowHeight)),
		Evaluator:    escape.Mandelbrot{MaxIterations: session.MaxIterations},
		Colors:       colors,
		PollInterval: session.PollInterval,
	})
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}

	a := fyneapp.NewWithID("io.github.fractal-explorer")
	a.Settings().SetTheme(&app.ExplorerTheme{})

	win := mainwindow.New(a, appState)
	win.SetOnClosed(func() {
		appState.Stop()
		appPrefs.SetSession(session)
		if err := appPrefs.Save(); err != nil {
			log.Printf("Failed to save preferences to %s: %v", appPrefs.Path(), err)
		}
	})

	appState.Start()
	win.ShowAndRun()
}

// loadPrefs reads the preferences file named on the command line, or the
// default one.
func loadPrefs() *prefs.Prefs {
	if len(os.Args) > 1 {
		p, err := prefs.LoadFrom(os.Args[1])
		if err != nil {
			log.Printf("Failed to load preferences %s: %v", os.Args[1], err)
		}
		return p
	}
	return prefs.Load()
}
