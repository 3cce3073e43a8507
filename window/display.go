package window

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/muesli/reflow/wordwrap"

	"github.com/lixenwraith/kitty-run/constants"
	"github.com/lixenwraith/kitty-run/game"
)

// Debug font cell size in pixels
const (
	glyphW = 6
	glyphH = 16
)

var overlayColor = color.RGBA{0x46, 0x28, 0x5a, 0xe0}

// Display keeps overlay and text state and paints it over the replayed frame
type Display struct {
	visible [3]bool
	texts   [2]string
	width   float64
	height  float64
}

func NewDisplay(width, height float64) *Display {
	d := &Display{width: width, height: height}
	d.texts[game.FieldScore] = game.ScoreText(0)
	return d
}

func (d *Display) Show(s game.Screen) {
	if int(s) < len(d.visible) {
		d.visible[s] = true
	}
}

func (d *Display) Hide(s game.Screen) {
	if int(s) < len(d.visible) {
		d.visible[s] = false
	}
}

func (d *Display) SetText(f game.Field, text string) {
	if int(f) < len(d.texts) {
		d.texts[f] = text
	}
}

func (d *Display) Visible(s game.Screen) bool {
	return int(s) < len(d.visible) && d.visible[s]
}

func (d *Display) Text(f game.Field) string {
	if int(f) < len(d.texts) {
		return d.texts[f]
	}
	return ""
}

// Lines returns the overlay text for s wrapped to cols characters
func (d *Display) Lines(s game.Screen, cols int) []string {
	var lines []string
	add := func(t string) {
		lines = append(lines, strings.Split(wordwrap.String(t, cols), "\n")...)
	}

	switch s {
	case game.ScreenStart:
		add(constants.TitleText)
		add("")
		add(constants.StartHintText)
		add("")
		add(constants.ControlsHintText)
	case game.ScreenGameOver:
		add(constants.GameOverText)
		add(d.texts[game.FieldFinalScore])
		add("")
		add(constants.RestartHintText)
	case game.ScreenPaused:
		add(constants.PausedText)
		add("")
		add(constants.ControlsHintText)
	}
	return lines
}

// Draw paints the score and any visible overlays
func (d *Display) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, d.texts[game.FieldScore], 8, 4)

	boxW := float32(constants.OverlayWidth * glyphW * 2)
	cols := int(boxW)/glyphW - 2*constants.OverlayPadding
	for s := range d.visible {
		if !d.visible[s] {
			continue
		}
		lines := d.Lines(game.Screen(s), cols)
		boxH := float32((len(lines) + 2) * glyphH)
		x := (float32(d.width) - boxW) / 2
		y := (float32(d.height) - boxH) / 2
		vector.DrawFilledRect(screen, x, y, boxW, boxH, overlayColor, false)

		for i, l := range lines {
			lx := int(x) + (int(boxW)-len([]rune(l))*glyphW)/2
			ebitenutil.DebugPrintAt(screen, l, lx, int(y)+(i+1)*glyphH)
		}
	}
}
