// Package terminal is the tcell backend: it scales the canvas into the cell grid,
// paints overlays and translates key events
package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kitty-run/game"
	"github.com/lixenwraith/kitty-run/render"
)

// Facing glyphs by atlas row: up, right, down, left
var facingGlyphs = [4]rune{'▲', '▶', '▼', '◀'}

// Stride glyphs by atlas column, drawn behind the head
var strideGlyphs = [4]rune{'·', '•', '·', '∘'}

const pickupGlyph = '✦'

type drawCmd struct {
	sprite   render.Sprite
	src, dst render.Rect
}

// Screen implements render.Surface and game.Display on a tcell screen
// The last frame's draw list is kept so overlays and resizes can repaint without a tick
type Screen struct {
	screen  tcell.Screen
	palette Palette
	canvasW float64
	canvasH float64

	frame   []drawCmd
	visible [3]bool
	texts   [2]string
	view    Viewport
}

// Open creates and initializes the terminal screen
func Open(palette Palette, canvasW, canvasH float64) (*Screen, error) {
	ts, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := ts.Init(); err != nil {
		return nil, err
	}
	return New(ts, palette, canvasW, canvasH), nil
}

// New wraps an initialized tcell screen
func New(ts tcell.Screen, palette Palette, canvasW, canvasH float64) *Screen {
	ts.HideCursor()
	s := &Screen{
		screen:  ts,
		palette: palette,
		canvasW: canvasW,
		canvasH: canvasH,
		frame:   make([]drawCmd, 0, 16),
	}
	s.texts[game.FieldScore] = game.ScoreText(0)
	s.layout()
	return s
}

// Fini restores the terminal
func (s *Screen) Fini() {
	s.screen.Fini()
}

// Viewport returns the current canvas-to-cell mapping
func (s *Screen) Viewport() Viewport {
	return s.view
}

// Resize recomputes the letterbox and repaints from the kept frame
func (s *Screen) Resize() {
	s.screen.Sync()
	s.layout()
	s.Redraw()
}

// layout reserves the top row for the HUD and fits the canvas below it
func (s *Screen) layout() {
	w, h := s.screen.Size()
	s.view = FitViewport(w, h-1, s.canvasW, s.canvasH)
	s.view.OffY++
}

func (s *Screen) Clear() {
	s.frame = s.frame[:0]
}

func (s *Screen) Draw(sprite render.Sprite, src, dst render.Rect) {
	s.frame = append(s.frame, drawCmd{sprite: sprite, src: src, dst: dst})
}

func (s *Screen) Present() {
	s.Redraw()
}

// Redraw paints the kept frame, the HUD and visible overlays, then flushes
func (s *Screen) Redraw() {
	s.screen.Clear()
	s.fill(0, 0, 1<<15, 1<<15, ' ', s.palette.Letterbox)

	v := s.view
	if !v.Empty() {
		s.fill(v.OffX, v.OffY, v.OffX+v.Cols, v.OffY+v.Rows, ' ', s.palette.Field)
		for _, cmd := range s.frame {
			switch cmd.sprite {
			case render.SpritePickup:
				s.drawPickup(cmd.dst)
			case render.SpritePlayer:
				s.drawPlayer(cmd.src, cmd.dst)
			}
		}
	}

	s.drawHUD()
	s.drawOverlays()
	s.screen.Show()
}

func (s *Screen) drawPickup(dst render.Rect) {
	x0, y0, x1, y1 := s.view.CellRect(dst)
	s.fill(x0, y0, x1, y1, pickupGlyph, s.palette.Pickup)
}

// drawPlayer fills the player block, puts the facing glyph at its center
// and a stride glyph one cell behind
func (s *Screen) drawPlayer(src, dst render.Rect) {
	x0, y0, x1, y1 := s.view.CellRect(dst)
	if x1 <= x0 || y1 <= y0 {
		return
	}
	s.fill(x0, y0, x1, y1, ' ', s.palette.Player)

	row, col := atlasIndex(src)
	cx, cy := (x0+x1-1)/2, (y0+y1-1)/2
	s.screen.SetContent(cx, cy, facingGlyphs[row], nil, s.palette.Player)

	bx, by := cx, cy
	switch game.Direction(row) {
	case game.DirUp:
		by++
	case game.DirDown:
		by--
	case game.DirLeft:
		bx++
	case game.DirRight:
		bx--
	}
	if bx >= x0 && bx < x1 && by >= y0 && by < y1 && (bx != cx || by != cy) {
		s.screen.SetContent(bx, by, strideGlyphs[col], nil, s.palette.Player)
	}
}

// atlasIndex recovers the atlas row and column from a source cell rect
func atlasIndex(src render.Rect) (row, col int) {
	if src.W > 0 {
		col = int(src.X/src.W) % len(strideGlyphs)
	}
	if src.H > 0 {
		row = int(src.Y/src.H) % len(facingGlyphs)
	}
	return max(row, 0), max(col, 0)
}

func (s *Screen) fill(x0, y0, x1, y1 int, r rune, style tcell.Style) {
	w, h := s.screen.Size()
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, w), min(y1, h)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.screen.SetContent(x, y, r, nil, style)
		}
	}
}

// Display

func (s *Screen) Show(sc game.Screen) {
	if int(sc) < len(s.visible) {
		s.visible[sc] = true
	}
	s.Redraw()
}

func (s *Screen) Hide(sc game.Screen) {
	if int(sc) < len(s.visible) {
		s.visible[sc] = false
	}
	s.Redraw()
}

func (s *Screen) SetText(f game.Field, text string) {
	if int(f) < len(s.texts) {
		s.texts[f] = text
	}
}

// Visible reports whether an overlay is showing
func (s *Screen) Visible(sc game.Screen) bool {
	return int(sc) < len(s.visible) && s.visible[sc]
}

// Text returns the current value of a display field
func (s *Screen) Text(f game.Field) string {
	if int(f) < len(s.texts) {
		return s.texts[f]
	}
	return ""
}
