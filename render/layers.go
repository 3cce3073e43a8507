package render

import "github.com/lixenwraith/kitty-run/game"

// PickupRenderer draws every uncollected pickup at its own size
type PickupRenderer struct{}

func (PickupRenderer) Render(surface Surface, session *game.Session) {
	for i := range session.Pickups {
		p := &session.Pickups[i]
		if p.Collected {
			continue
		}
		surface.Draw(SpritePickup,
			Rect{W: p.Width, H: p.Height},
			Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height},
		)
	}
}

// PlayerRenderer draws the atlas cell selected by the player's animation row and column
type PlayerRenderer struct {
	atlas Atlas
}

func NewPlayerRenderer(atlas Atlas) PlayerRenderer {
	return PlayerRenderer{atlas: atlas}
}

func (r PlayerRenderer) Render(surface Surface, session *game.Session) {
	p := &session.Player
	surface.Draw(SpritePlayer,
		r.atlas.Cell(p.FrameY, p.FrameX),
		Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height},
	)
}
