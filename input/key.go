// Package input tracks which keys are held and maps them to game actions
// Key names follow browser KeyboardEvent.key values so every backend speaks the same names
package input

// Key identifies a physical key by name
type Key string

const (
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyW          Key = "w"
	KeyA          Key = "a"
	KeyS          Key = "s"
	KeyD          Key = "d"
	KeySpace      Key = " "
	KeyEscape     Key = "Escape"
	KeyP          Key = "p"
)

// Action is what a key means to the game
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionConfirm
	ActionPause
	ActionQuit
)

var actionNames = [...]string{
	ActionNone:    "none",
	ActionUp:      "up",
	ActionDown:    "down",
	ActionLeft:    "left",
	ActionRight:   "right",
	ActionConfirm: "confirm",
	ActionPause:   "pause",
	ActionQuit:    "quit",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}
