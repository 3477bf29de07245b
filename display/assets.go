// Package display runs a button panel in an ebiten window.
package display

import (
	"bytes"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/pkg/errors"

	"github.com/jahkeup/buttonpanel"
)

// Assets loads images and fonts from a base directory. Images are cached by
// name since several variants share the same files.
type Assets struct {
	baseDir    string
	imageCache map[string]*ebiten.Image
}

func NewAssets(baseDir string) *Assets {
	return &Assets{
		baseDir:    baseDir,
		imageCache: make(map[string]*ebiten.Image),
	}
}

func (a *Assets) Path(name string) string {
	return filepath.Join(a.baseDir, name)
}

func (a *Assets) LoadTexture(name string) (buttonpanel.Texture, error) {
	return a.LoadImage(name)
}

func (a *Assets) LoadImage(name string) (*ebiten.Image, error) {
	if cached, ok := a.imageCache[name]; ok {
		return cached, nil
	}

	path := a.Path(name)
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open image file %s", path)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode image %s", path)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	a.imageCache[name] = ebitenImg
	return ebitenImg, nil
}

func (a *Assets) LoadFont(name string, size float64) (*text.GoTextFace, error) {
	path := a.Path(name)
	fontData, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read font file %s", path)
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create font source for %s", path)
	}

	return &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}, nil
}
