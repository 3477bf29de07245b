package buttonpanel

import (
	"image"

	"github.com/pkg/errors"
)

type fakeLoader struct {
	textures map[string]Texture
	loaded   []string
}

func newFakeLoader(names ...string) *fakeLoader {
	l := &fakeLoader{textures: make(map[string]Texture)}
	for i, name := range names {
		// Distinct sizes keep the textures distinguishable.
		l.textures[name] = image.NewRGBA(image.Rect(0, 0, i+1, i+1))
	}
	return l
}

func allAssetsLoader() *fakeLoader {
	return newFakeLoader("marche.png", "arret.png", "toggleup.png", "toggledown.png")
}

func (l *fakeLoader) LoadTexture(name string) (Texture, error) {
	l.loaded = append(l.loaded, name)
	t, ok := l.textures[name]
	if !ok {
		return nil, errors.Errorf("no such asset %s", name)
	}
	return t, nil
}

type stateCall struct {
	Label string
	On    bool
}

type recordingSink struct {
	calls []stateCall
}

func (s *recordingSink) PublishState(label string, on bool) {
	s.calls = append(s.calls, stateCall{Label: label, On: on})
}

type recordingPublisher struct {
	messages []Message
	err      error
}

func (p *recordingPublisher) Publish(msg Message) error {
	p.messages = append(p.messages, msg)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

type drawCall struct {
	Texture Texture
	Dst     Rect
}

type textCall struct {
	Text string
	At   Point
}

type fakeSurface struct {
	textW, textH, line float64
	draws              []drawCall
	texts              []textCall
}

func (s *fakeSurface) DrawTexture(t Texture, dst Rect) {
	s.draws = append(s.draws, drawCall{Texture: t, Dst: dst})
}

func (s *fakeSurface) MeasureText(string) (float64, float64) { return s.textW, s.textH }

func (s *fakeSurface) LineHeight() float64 { return s.line }

func (s *fakeSurface) DrawText(str string, at Point) {
	s.texts = append(s.texts, textCall{Text: str, At: at})
}
