package terminal

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"github.com/lixenwraith/kitty-run/constants"
	"github.com/lixenwraith/kitty-run/game"
)

type overlayLine struct {
	text  string
	title bool
}

// overlayLines returns the text block for a screen wrapped to width cells
func (s *Screen) overlayLines(sc game.Screen, width int) []overlayLine {
	var lines []overlayLine
	title := func(t string) { lines = append(lines, overlayLine{text: t, title: true}) }
	body := func(t string) {
		for _, l := range strings.Split(wordwrap.String(t, width), "\n") {
			lines = append(lines, overlayLine{text: l})
		}
	}
	blank := func() { lines = append(lines, overlayLine{}) }

	switch sc {
	case game.ScreenStart:
		title(constants.TitleText)
		blank()
		body(constants.StartHintText)
		blank()
		body(constants.ControlsHintText)
	case game.ScreenGameOver:
		title(constants.GameOverText)
		body(s.texts[game.FieldFinalScore])
		blank()
		body(constants.RestartHintText)
	case game.ScreenPaused:
		title(constants.PausedText)
		blank()
		body(constants.ControlsHintText)
	}
	return lines
}

// drawOverlays paints visible overlays centered on the field; later screens stack on top
func (s *Screen) drawOverlays() {
	for sc := range s.visible {
		if s.visible[sc] {
			s.drawBox(s.overlayLines(game.Screen(sc), s.boxWidth()-2*constants.OverlayPadding))
		}
	}
}

func (s *Screen) boxWidth() int {
	w, _ := s.screen.Size()
	return max(min(constants.OverlayWidth, w), 2*constants.OverlayPadding+1)
}

func (s *Screen) drawBox(lines []overlayLine) {
	sw, sh := s.screen.Size()
	bw := s.boxWidth()
	bh := len(lines) + 2

	// Center on the field when it exists, on the screen otherwise
	cx, cy := sw/2, sh/2
	if v := s.view; !v.Empty() {
		cx, cy = v.OffX+v.Cols/2, v.OffY+v.Rows/2
	}
	x0 := max(cx-bw/2, 0)
	y0 := max(cy-bh/2, 0)

	s.fill(x0, y0, x0+bw, y0+bh, ' ', s.palette.Overlay)
	for i, l := range lines {
		style := s.palette.Overlay
		if l.title {
			style = s.palette.Title
		}
		tw := runewidth.StringWidth(l.text)
		s.drawText(x0+max((bw-tw)/2, 0), y0+1+i, l.text, style, x0+bw)
	}
}

// drawHUD paints the score on the left of the top row and the controls hint on the right
func (s *Screen) drawHUD() {
	w, _ := s.screen.Size()
	s.fill(0, 0, w, 1, ' ', s.palette.HUD)
	s.drawText(1, 0, s.texts[game.FieldScore], s.palette.HUD, w)

	hint := constants.ControlsHintText
	hw := runewidth.StringWidth(hint)
	if hx := w - hw - 1; hx > runewidth.StringWidth(s.texts[game.FieldScore])+2 {
		s.drawText(hx, 0, hint, s.palette.HUD, w)
	}
}

// drawText writes text from x, stopping before limit
func (s *Screen) drawText(x, y int, text string, style tcell.Style, limit int) {
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if x+rw > limit {
			return
		}
		s.screen.SetContent(x, y, r, nil, style)
		x += max(rw, 1)
	}
}
