package render

import "github.com/lixenwraith/kitty-run/constants"

// Atlas describes a sprite sheet of equal square cells
// Rows are facing directions, columns are animation phases
type Atlas struct {
	CellSize float64
	Columns  int
	Rows     int
}

// DefaultAtlas is the 4x4 grid of 192 unit cells
func DefaultAtlas() Atlas {
	return Atlas{
		CellSize: constants.SpriteCellSize,
		Columns:  constants.SpriteGridSize,
		Rows:     constants.SpriteGridSize,
	}
}

// Cell returns the source rectangle for row, col
// Out of range indices wrap so a short sheet still renders
func (a Atlas) Cell(row, col int) Rect {
	if a.Columns > 0 {
		col = wrap(col, a.Columns)
	}
	if a.Rows > 0 {
		row = wrap(row, a.Rows)
	}
	return Rect{
		X: float64(col) * a.CellSize,
		Y: float64(row) * a.CellSize,
		W: a.CellSize,
		H: a.CellSize,
	}
}

// Size returns the full sheet dimensions
func (a Atlas) Size() (float64, float64) {
	return float64(a.Columns) * a.CellSize, float64(a.Rows) * a.CellSize
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
