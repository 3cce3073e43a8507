package terminal

import (
	"math"

	"github.com/lixenwraith/kitty-run/render"
)

// cellAspect is the height of a terminal cell relative to its width
const cellAspect = 2.0

// Viewport maps canvas units onto a letterboxed block of cells
type Viewport struct {
	OffX, OffY int
	Cols, Rows int
	CellW      float64 // canvas units per cell column
	CellH      float64 // canvas units per cell row
}

// FitViewport letterboxes a canvas into cols x rows cells, keeping the canvas aspect ratio
func FitViewport(cols, rows int, canvasW, canvasH float64) Viewport {
	if cols < 1 || rows < 1 || canvasW <= 0 || canvasH <= 0 {
		return Viewport{}
	}

	cw := math.Max(canvasW/float64(cols), canvasH/(float64(rows)*cellAspect))
	ch := cw * cellAspect

	vc := min(int(math.Ceil(canvasW/cw-1e-9)), cols)
	vr := min(int(math.Ceil(canvasH/ch-1e-9)), rows)

	return Viewport{
		OffX:  (cols - vc) / 2,
		OffY:  (rows - vr) / 2,
		Cols:  vc,
		Rows:  vr,
		CellW: cw,
		CellH: ch,
	}
}

// Empty reports a viewport too small to draw into
func (v Viewport) Empty() bool {
	return v.Cols < 1 || v.Rows < 1
}

// CellRect returns the screen cells covered by r as a half-open range
// Every non-empty rect covers at least one cell; results are clipped to the viewport
func (v Viewport) CellRect(r render.Rect) (x0, y0, x1, y1 int) {
	if v.Empty() {
		return 0, 0, 0, 0
	}

	x0 = int(math.Floor(r.X / v.CellW))
	y0 = int(math.Floor(r.Y / v.CellH))
	x1 = max(int(math.Ceil((r.X+r.W)/v.CellW)), x0+1)
	y1 = max(int(math.Ceil((r.Y+r.H)/v.CellH)), y0+1)

	x0 = min(max(x0, 0), v.Cols)
	y0 = min(max(y0, 0), v.Rows)
	x1 = min(max(x1, 0), v.Cols)
	y1 = min(max(y1, 0), v.Rows)

	return x0 + v.OffX, y0 + v.OffY, x1 + v.OffX, y1 + v.OffY
}
