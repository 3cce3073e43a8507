package terminal

import (
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kitty-run/config"
)

// Palette holds every style the terminal backend paints with
type Palette struct {
	Letterbox tcell.Style
	Field     tcell.Style
	Player    tcell.Style
	Pickup    tcell.Style
	HUD       tcell.Style
	Overlay   tcell.Style
	Title     tcell.Style
}

// NewPalette builds styles for the resolved color mode
func NewPalette(mode config.ColorMode) Palette {
	if ResolveTrueColor(mode) {
		return Palette{
			Letterbox: tcell.StyleDefault,
			Field:     tcell.StyleDefault.Background(tcell.NewRGBColor(24, 28, 40)),
			Player:    tcell.StyleDefault.Background(tcell.NewRGBColor(255, 176, 120)).Foreground(tcell.NewRGBColor(40, 24, 16)).Bold(true),
			Pickup:    tcell.StyleDefault.Background(tcell.NewRGBColor(24, 28, 40)).Foreground(tcell.NewRGBColor(255, 220, 90)).Bold(true),
			HUD:       tcell.StyleDefault.Background(tcell.NewRGBColor(48, 54, 72)).Foreground(tcell.NewRGBColor(230, 230, 240)),
			Overlay:   tcell.StyleDefault.Background(tcell.NewRGBColor(70, 40, 90)).Foreground(tcell.NewRGBColor(240, 230, 250)),
			Title:     tcell.StyleDefault.Background(tcell.NewRGBColor(70, 40, 90)).Foreground(tcell.NewRGBColor(255, 150, 200)).Bold(true),
		}
	}
	return Palette{
		Letterbox: tcell.StyleDefault,
		Field:     tcell.StyleDefault.Background(tcell.PaletteColor(234)),
		Player:    tcell.StyleDefault.Background(tcell.PaletteColor(216)).Foreground(tcell.PaletteColor(52)).Bold(true),
		Pickup:    tcell.StyleDefault.Background(tcell.PaletteColor(234)).Foreground(tcell.PaletteColor(221)).Bold(true),
		HUD:       tcell.StyleDefault.Background(tcell.PaletteColor(238)).Foreground(tcell.PaletteColor(255)),
		Overlay:   tcell.StyleDefault.Background(tcell.PaletteColor(54)).Foreground(tcell.PaletteColor(255)),
		Title:     tcell.StyleDefault.Background(tcell.PaletteColor(54)).Foreground(tcell.PaletteColor(218)).Bold(true),
	}
}

// ResolveTrueColor decides 24-bit support; auto inspects the environment
func ResolveTrueColor(mode config.ColorMode) bool {
	switch mode {
	case config.ColorTrue:
		return true
	case config.Color256:
		return false
	}

	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return true
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return true
	}

	term := os.Getenv("TERM")
	return strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct")
}
