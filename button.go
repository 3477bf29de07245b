package buttonpanel

import (
	"github.com/pkg/errors"
)

// Variant describes one kind of button: the two images it alternates between
// and the size of its clickable rectangle.
type Variant struct {
	Name     string
	OnAsset  string
	OffAsset string
	Size     Size
}

var (
	PowerSwitch = Variant{
		Name:     "power",
		OnAsset:  "marche.png",
		OffAsset: "arret.png",
		Size:     Size{W: 78, H: 142},
	}
	ToggleSwitch = Variant{
		Name:     "toggle",
		OnAsset:  "toggleup.png",
		OffAsset: "toggledown.png",
		Size:     Size{W: 64, H: 70},
	}
	ButtonSwitch = Variant{
		Name:     "button",
		OnAsset:  "toggleup.png",
		OffAsset: "toggledown.png",
		Size:     Size{W: 64, H: 64},
	}
)

var knownVariants = map[string]Variant{
	PowerSwitch.Name:  PowerSwitch,
	ToggleSwitch.Name: ToggleSwitch,
	ButtonSwitch.Name: ButtonSwitch,
}

func LookupVariant(name string) (Variant, bool) {
	v, ok := knownVariants[name]
	return v, ok
}

const (
	textureOn  = 0
	textureOff = 1
)

// Button is a two state image button. It starts OFF.
type Button struct {
	Label string

	variant  Variant
	rect     Rect
	on       bool
	textures [2]Texture

	onEnter func()
	onExit  func()
}

// NewButton loads both images of v. A button cannot be built without them.
func NewButton(v Variant, loader AssetLoader) (*Button, error) {
	on, err := loader.LoadTexture(v.OnAsset)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load %q image for %s button", v.OnAsset, v.Name)
	}
	off, err := loader.LoadTexture(v.OffAsset)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load %q image for %s button", v.OffAsset, v.Name)
	}

	return &Button{
		variant:  v,
		rect:     Rect{Size: v.Size},
		textures: [2]Texture{textureOn: on, textureOff: off},
	}, nil
}

func (b *Button) Variant() Variant {
	return b.variant
}

func (b *Button) SetPosition(p Point) {
	b.rect.Min = p
}

func (b *Button) Rect() Rect {
	return b.rect
}

func (b *Button) IsOn() bool {
	return b.on
}

// ActiveTexture is the image matching the current state.
func (b *Button) ActiveTexture() Texture {
	if b.on {
		return b.textures[textureOn]
	}
	return b.textures[textureOff]
}

// SetCallbacks registers the actions run when the button turns on and off.
// Either may be nil.
func (b *Button) SetCallbacks(onEnter, onExit func()) {
	b.onEnter = onEnter
	b.onExit = onExit
}

// SetState changes the state without running any callback.
func (b *Button) SetState(on bool) {
	b.on = on
}

func (b *Button) HitTest(p Point) bool {
	return b.rect.Contains(p)
}

// Click toggles the button when p is inside it and reports whether it did.
func (b *Button) Click(p Point) bool {
	if !b.HitTest(p) {
		return false
	}
	b.Toggle()
	return true
}

// Toggle flips the state and runs the callback for the new state.
func (b *Button) Toggle() {
	b.on = !b.on

	cb := b.onExit
	if b.on {
		cb = b.onEnter
	}
	if cb != nil {
		cb()
	}
}

// LabelPosition is where the label's top-left corner goes: centered under
// the image, raised by the text height and lowered by one line.
func (b *Button) LabelPosition(s Surface) Point {
	w, h := s.MeasureText(b.Label)
	return Point{
		X: b.rect.Min.X + b.rect.Size.W/2 - w/2,
		Y: b.rect.Min.Y + b.rect.Size.H - h + s.LineHeight(),
	}
}

func (b *Button) Render(s Surface) {
	s.DrawTexture(b.ActiveTexture(), b.rect)
	if b.Label != "" {
		s.DrawText(b.Label, b.LabelPosition(s))
	}
}
