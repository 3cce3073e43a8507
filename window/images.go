package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/kitty-run/render"
)

// Images are the two source images the renderer draws from
type Images struct {
	Atlas  *ebiten.Image
	Pickup *ebiten.Image
}

var (
	furColor    = color.RGBA{0xf4, 0xa2, 0x61, 0xff}
	stripeColor = color.RGBA{0xc8, 0x6b, 0x2a, 0xff}
	eyeColor    = color.RGBA{0x22, 0x22, 0x2e, 0xff}
	pawColor    = color.RGBA{0xff, 0xe0, 0xc8, 0xff}
	pickupColor = color.RGBA{0xff, 0xd7, 0x4a, 0xff}
	glowColor   = color.RGBA{0xff, 0xf4, 0xb0, 0xff}
	fieldColor  = color.RGBA{0x18, 0x1c, 0x28, 0xff}
)

// LoadImages reads the sprite atlas from path, or draws a placeholder sheet when path is empty
func LoadImages(path string, atlas render.Atlas, pickupSize float64) (*Images, error) {
	var sheet *ebiten.Image
	if path != "" {
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading atlas %q: %w", path, err)
		}
		w, h := atlas.Size()
		if b := img.Bounds(); float64(b.Dx()) < w || float64(b.Dy()) < h {
			return nil, fmt.Errorf("atlas %q is %dx%d, need at least %gx%g", path, b.Dx(), b.Dy(), w, h)
		}
		sheet = img
	} else {
		sheet = placeholderAtlas(atlas)
	}

	return &Images{Atlas: sheet, Pickup: placeholderPickup(pickupSize)}, nil
}

// placeholderAtlas draws a round cat face per cell; the row sets where the eyes look,
// the column swings the paws
func placeholderAtlas(atlas render.Atlas) *ebiten.Image {
	w, h := atlas.Size()
	sheet := ebiten.NewImage(int(w), int(h))

	cs := float32(atlas.CellSize)
	for row := 0; row < atlas.Rows; row++ {
		for col := 0; col < atlas.Columns; col++ {
			cell := atlas.Cell(row, col)
			x, y := float32(cell.X), float32(cell.Y)
			cx, cy := x+cs/2, y+cs/2

			vector.DrawFilledCircle(sheet, cx, cy, cs*0.38, furColor, true)
			vector.DrawFilledRect(sheet, cx-cs*0.05, cy-cs*0.36, cs*0.1, cs*0.2, stripeColor, true)

			// Ears
			vector.DrawFilledCircle(sheet, cx-cs*0.26, cy-cs*0.3, cs*0.1, furColor, true)
			vector.DrawFilledCircle(sheet, cx+cs*0.26, cy-cs*0.3, cs*0.1, furColor, true)

			lx, ly := lookOffset(row, cs*0.06)
			vector.DrawFilledCircle(sheet, cx-cs*0.12+lx, cy-cs*0.04+ly, cs*0.05, eyeColor, true)
			vector.DrawFilledCircle(sheet, cx+cs*0.12+lx, cy-cs*0.04+ly, cs*0.05, eyeColor, true)

			swing := float32(col%2*2-1) * cs * 0.06
			vector.DrawFilledCircle(sheet, cx-cs*0.2, cy+cs*0.34+swing, cs*0.07, pawColor, true)
			vector.DrawFilledCircle(sheet, cx+cs*0.2, cy+cs*0.34-swing, cs*0.07, pawColor, true)
		}
	}
	return sheet
}

// lookOffset shifts the eyes toward the facing of an atlas row
func lookOffset(row int, d float32) (float32, float32) {
	switch row {
	case 0:
		return 0, -d
	case 1:
		return d, 0
	case 2:
		return 0, d
	case 3:
		return -d, 0
	}
	return 0, 0
}

func placeholderPickup(size float64) *ebiten.Image {
	px := max(int(size), 1)
	img := ebiten.NewImage(px, px)
	r := float32(px) / 2
	vector.DrawFilledCircle(img, r, r, r, pickupColor, true)
	vector.DrawFilledCircle(img, r*0.8, r*0.8, r*0.35, glowColor, true)
	return img
}
