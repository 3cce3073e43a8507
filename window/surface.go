package window

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/kitty-run/render"
)

type drawCmd struct {
	sprite   render.Sprite
	src, dst render.Rect
}

// Surface records one frame of draw calls and replays them on every ebiten Draw
// The session only renders while a round is running, so the last frame persists
type Surface struct {
	pending []drawCmd
	frame   []drawCmd
	frames  int
}

func NewSurface() *Surface {
	return &Surface{
		pending: make([]drawCmd, 0, 16),
		frame:   make([]drawCmd, 0, 16),
	}
}

func (s *Surface) Clear() {
	s.pending = s.pending[:0]
}

func (s *Surface) Draw(sprite render.Sprite, src, dst render.Rect) {
	s.pending = append(s.pending, drawCmd{sprite: sprite, src: src, dst: dst})
}

// Present publishes the pending commands as the visible frame
func (s *Surface) Present() {
	s.pending, s.frame = s.frame, s.pending
	s.frames++
}

// Frames returns how many frames were presented
func (s *Surface) Frames() int {
	return s.frames
}

// Commands returns the number of draw calls in the visible frame
func (s *Surface) Commands() int {
	return len(s.frame)
}

// Replay draws the visible frame onto screen
func (s *Surface) Replay(screen *ebiten.Image, images *Images) {
	for _, cmd := range s.frame {
		var src *ebiten.Image
		var sw, sh float64

		switch cmd.sprite {
		case render.SpritePlayer:
			rect := image.Rect(int(cmd.src.X), int(cmd.src.Y), int(cmd.src.X+cmd.src.W), int(cmd.src.Y+cmd.src.H))
			src = images.Atlas.SubImage(rect).(*ebiten.Image)
			sw, sh = cmd.src.W, cmd.src.H
		case render.SpritePickup:
			// The pickup image is drawn whole whatever its pixel size
			src = images.Pickup
			b := src.Bounds()
			sw, sh = float64(b.Dx()), float64(b.Dy())
		default:
			continue
		}
		if sw <= 0 || sh <= 0 {
			continue
		}

		op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
		op.GeoM.Scale(cmd.dst.W/sw, cmd.dst.H/sh)
		op.GeoM.Translate(cmd.dst.X, cmd.dst.Y)
		screen.DrawImage(src, op)
	}
}
