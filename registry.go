package buttonpanel

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// StateSink receives button state changes.
type StateSink interface {
	PublishState(label string, on bool)
}

// Registry owns the panel's buttons in creation order.
type Registry struct {
	log     logrus.FieldLogger
	loader  AssetLoader
	sink    StateSink
	presses Accepter

	buttons []*Button
}

type RegistryOption func(*Registry)

// WithPressSuppression installs an Accepter consulted before a clicked
// button toggles.
func WithPressSuppression(a Accepter) RegistryOption {
	return func(r *Registry) {
		r.presses = a
	}
}

func NewRegistry(loader AssetLoader, sink StateSink, opts ...RegistryOption) *Registry {
	r := &Registry{
		log:     appLogger.WithField("comp", "registry"),
		loader:  loader,
		sink:    sink,
		presses: acceptAll{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register builds a button of variant v at pos and appends it. Its callbacks
// report the new state of label to the registry's sink.
func (r *Registry) Register(v Variant, label string, pos Point) (*Button, error) {
	b, err := NewButton(v, r.loader)
	if err != nil {
		return nil, errors.Wrapf(err, "could not create button %q", label)
	}
	b.Label = label
	b.SetPosition(pos)

	sink := r.sink
	b.SetCallbacks(
		func() { sink.PublishState(label, true) },
		func() { sink.PublishState(label, false) },
	)

	r.buttons = append(r.buttons, b)
	r.log.WithFields(logrus.Fields{
		"label":   label,
		"variant": v.Name,
	}).Debugf("Registered button at (%.0f,%.0f)", pos.X, pos.Y)
	return b, nil
}

// RegisterLayout registers every entry of layout in order.
func (r *Registry) RegisterLayout(layout Layout) error {
	for _, entry := range layout.Buttons {
		v, ok := LookupVariant(entry.Variant)
		if !ok {
			return errors.Errorf("unknown variant %q for button %q", entry.Variant, entry.Label)
		}
		if _, err := r.Register(v, entry.Label, Point{X: entry.X, Y: entry.Y}); err != nil {
			return err
		}
	}
	return nil
}

// DispatchClick offers p to each button in order and stops at the first one
// containing it. It reports whether any button took the click.
func (r *Registry) DispatchClick(p Point) bool {
	for _, b := range r.buttons {
		if !b.HitTest(p) {
			continue
		}
		if !r.presses.Accept(b.Label) {
			r.log.WithField("label", b.Label).Debug("Suppressing press")
			return true
		}
		return b.Click(p)
	}
	return false
}

// RenderAll draws the buttons in order, later ones on top.
func (r *Registry) RenderAll(s Surface) {
	for _, b := range r.buttons {
		b.Render(s)
	}
}

func (r *Registry) Buttons() []*Button {
	return r.buttons
}
