package display

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/jahkeup/buttonpanel"
)

var labelColor = color.Black

// screenSurface draws on one frame's screen image.
type screenSurface struct {
	screen *ebiten.Image
	face   *text.GoTextFace
}

func (s *screenSurface) DrawTexture(t buttonpanel.Texture, dst buttonpanel.Rect) {
	img, ok := t.(*ebiten.Image)
	if !ok {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.Size.W/float64(b.Dx()), dst.Size.H/float64(b.Dy()))
	op.GeoM.Translate(dst.Min.X, dst.Min.Y)
	s.screen.DrawImage(img, op)
}

func (s *screenSurface) MeasureText(str string) (float64, float64) {
	return text.Measure(str, s.face, 0)
}

// LineHeight is the character size, the way the label offset was tuned.
func (s *screenSurface) LineHeight() float64 {
	return s.face.Size
}

func (s *screenSurface) DrawText(str string, at buttonpanel.Point) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(at.X, at.Y)
	op.ColorScale.ScaleWithColor(labelColor)
	text.Draw(s.screen, str, s.face, op)
}
