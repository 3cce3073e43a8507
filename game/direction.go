package game

import "github.com/lixenwraith/kitty-run/constants"

// Direction is the way the player faces
type Direction uint8

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// Row returns the sprite atlas row drawn for the direction
func (d Direction) Row() int {
	switch d {
	case DirUp:
		return constants.RowUp
	case DirRight:
		return constants.RowRight
	case DirLeft:
		return constants.RowLeft
	default:
		return constants.RowDown
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}
