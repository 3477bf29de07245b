package display

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/sirupsen/logrus"

	"github.com/jahkeup/buttonpanel"
)

var background = color.White

// Panel implements ebiten.Game for a button registry.
type Panel struct {
	log      logrus.FieldLogger
	registry *buttonpanel.Registry
	surface  screenSurface
	width    int
	height   int
}

func NewPanel(registry *buttonpanel.Registry, face *text.GoTextFace, window buttonpanel.WindowConfig) *Panel {
	return &Panel{
		log:      buttonpanel.Logger("panel"),
		registry: registry,
		surface:  screenSurface{face: face},
		width:    window.Width,
		height:   window.Height,
	}
}

// Update dispatches left clicks to the registry.
func (p *Panel) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		pt := buttonpanel.Point{X: float64(x), Y: float64(y)}
		if !p.registry.DispatchClick(pt) {
			p.log.Debugf("Click at (%d,%d) hit no button", x, y)
		}
	}
	return nil
}

func (p *Panel) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	p.surface.screen = screen
	p.registry.RenderAll(&p.surface)
}

func (p *Panel) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.width, p.height
}

// Run opens the window and blocks until it is closed.
func Run(p *Panel, window buttonpanel.WindowConfig) error {
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	return ebiten.RunGame(p)
}
