package render

import "github.com/lixenwraith/kitty-run/game"

// LayerRenderer draws one part of the session
type LayerRenderer interface {
	Render(surface Surface, session *game.Session)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
