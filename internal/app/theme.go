package app

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ExplorerTheme provides a dark custom theme so the fractal stands out.
type ExplorerTheme struct{}

var _ fyne.Theme = (*ExplorerTheme)(nil)

func (t *ExplorerTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0xE0, G: 0x40, B: 0x40, A: 0xFF} // Matches the scan indicator
	case theme.ColorNameSelection:
		return color.NRGBA{R: 0xFF, G: 0xD5, B: 0x00, A: 0x80} // Gold, like the zoom box
	default:
		return theme.DefaultTheme().Color(name, theme.VariantDark)
	}
}

func (t *ExplorerTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *ExplorerTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *ExplorerTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 2 // Keep the canvas close to the window edge
	default:
		return theme.DefaultTheme().Size(name)
	}
}
