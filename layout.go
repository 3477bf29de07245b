package buttonpanel

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Layout lists the panel's buttons in creation order.
type Layout struct {
	Buttons []LayoutEntry `yaml:"buttons"`
}

type LayoutEntry struct {
	Label   string  `yaml:"label"`
	Variant string  `yaml:"variant"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
}

// DefaultLayout is the GEMMA control desk.
func DefaultLayout() Layout {
	return Layout{Buttons: []LayoutEntry{
		{Label: "AU", Variant: PowerSwitch.Name, X: 100, Y: 100},
		{Label: "Dcy", Variant: ButtonSwitch.Name, X: 200, Y: 100},
		{Label: "Acy", Variant: ButtonSwitch.Name, X: 200, Y: 200},
		{Label: "Rearm", Variant: ButtonSwitch.Name, X: 300, Y: 100},
		{Label: "Valid", Variant: ButtonSwitch.Name, X: 300, Y: 200},
		{Label: "Manu", Variant: ButtonSwitch.Name, X: 400, Y: 150},
		{Label: "Avance", Variant: ButtonSwitch.Name, X: 500, Y: 100},
		{Label: "Recule", Variant: ButtonSwitch.Name, X: 500, Y: 200},
		{Label: "Temp", Variant: ToggleSwitch.Name, X: 600, Y: 150},
	}}
}

func LoadLayout(file string) (Layout, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return Layout{}, errors.Wrapf(err, "could not read layout %s", file)
	}
	return ParseLayout(data)
}

func ParseLayout(data []byte) (Layout, error) {
	var layout Layout
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return Layout{}, errors.Wrap(err, "could not decode layout")
	}
	if err := layout.Validate(); err != nil {
		return Layout{}, err
	}
	return layout, nil
}

// Validate rejects empty labels and unknown variants. Duplicate labels are
// allowed; they share a topic.
func (l Layout) Validate() error {
	if len(l.Buttons) == 0 {
		return errors.New("layout has no buttons")
	}
	for i, entry := range l.Buttons {
		if entry.Label == "" {
			return errors.Errorf("layout button %d is missing a label", i)
		}
		if _, ok := LookupVariant(entry.Variant); !ok {
			return errors.Errorf("layout button %q has unknown variant %q", entry.Label, entry.Variant)
		}
	}
	return nil
}
