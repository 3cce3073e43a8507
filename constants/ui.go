package constants

// Overlay text
const (
	TitleText        = "Love the Kitty Adventure"
	GameOverText     = "Game Over"
	StartHintText    = "Move with the arrow keys or WASD and collect every powerup. Press SPACE to start."
	RestartHintText  = "Press SPACE to play again."
	ControlsHintText = "p pause · esc quit"
	PausedText       = "PAUSED"
)

// Overlay layout (terminal cells)
const (
	OverlayWidth   = 44
	OverlayPadding = 2
)
