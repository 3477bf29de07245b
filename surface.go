package buttonpanel

import (
	"image"
)

// Point is a position in window coordinates.
type Point struct {
	X, Y float64
}

// Size is the width and height of a rectangle.
type Size struct {
	W, H float64
}

// Rect is an axis aligned rectangle anchored at its top-left corner.
type Rect struct {
	Min  Point
	Size Size
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Min.X+r.Size.W &&
		p.Y >= r.Min.Y && p.Y < r.Min.Y+r.Size.H
}

// Texture is a loaded image. *ebiten.Image and *image.RGBA both satisfy it.
type Texture interface {
	Bounds() image.Rectangle
}

// Surface is what buttons draw onto during a frame.
type Surface interface {
	// DrawTexture draws t stretched to fill dst.
	DrawTexture(t Texture, dst Rect)
	// MeasureText returns the width and height of s in the label font.
	MeasureText(s string) (w, h float64)
	// LineHeight is the height of one line of label text.
	LineHeight() float64
	// DrawText draws s with its top-left corner at at.
	DrawText(s string, at Point)
}

// AssetLoader resolves asset names into textures.
type AssetLoader interface {
	LoadTexture(name string) (Texture, error)
}
