// Package render draws session state onto a backend Surface using the sprite atlas
package render

// Rect is an axis-aligned rectangle in canvas or atlas units
type Rect struct {
	X, Y, W, H float64
}

// Sprite names a source image owned by the backend
type Sprite uint8

const (
	SpritePlayer Sprite = iota // the direction x animation atlas
	SpritePickup               // single pickup image
)

// Surface is a fixed-size 2D drawing target
// Draw copies src from sprite into dst, scaling as needed
type Surface interface {
	Clear()
	Draw(sprite Sprite, src, dst Rect)
	Present()
}
