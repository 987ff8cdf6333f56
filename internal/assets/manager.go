// Package assets is the read-only registry of textures, audio sources and
// sprite animations. Everything is loaded once, before the simulation
// starts; afterwards the simulation only reads shared references.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/vovakirdan/tui-contra/internal/core"
	"github.com/vovakirdan/tui-contra/internal/sprite"
)

//go:embed manifest.yaml
var defaultManifest []byte

// ErrUnknownAsset is returned by Lookup for names that were never loaded.
var ErrUnknownAsset = errors.New("assets: unknown asset")

// Kind selects one of the asset tables.
type Kind int

const (
	KindTexture Kind = iota
	KindAudio
	KindAnimation
)

// String returns the kind name used in listings.
func (k Kind) String() string {
	switch k {
	case KindTexture:
		return "texture"
	case KindAudio:
		return "audio"
	case KindAnimation:
		return "animation"
	default:
		return "unknown"
	}
}

// PathPrefix is the asset root every file path starts with.
const PathPrefix = "./assets/"

// QualifiedName derives the lookup key for an asset file path:
// lower-cased, '/' replaced by '.', the asset root prefix stripped and the
// file extension removed. "./assets/textures/Foo.png" becomes
// "textures.foo".
func QualifiedName(filePath string) string {
	name := strings.ToLower(filePath)
	name = strings.TrimSuffix(name, strings.ToLower(path.Ext(filePath)))
	name = strings.ReplaceAll(name, "/", ".")
	if len(name) >= len(PathPrefix) {
		name = name[len(PathPrefix):]
	}
	return name
}

// Texture is a sprite atlas. In the terminal a texture is drawn with a
// single glyph and color.
type Texture struct {
	Name   string
	Path   string
	Width  int
	Height int
	Glyph  rune
	Color  core.Color
}

// Waveform selects the oscillator of a synthesized audio source.
type Waveform string

const (
	WaveSine   Waveform = "sine"
	WaveSquare Waveform = "square"
)

// AudioSource is a short synthesized clip: a note sequence played at a
// fixed tempo. A zero note is a rest.
type AudioSource struct {
	Name  string
	Path  string
	Wave  Waveform
	Tempo time.Duration
	Notes []float64
}

// Duration returns the clip length.
func (a *AudioSource) Duration() time.Duration {
	return a.Tempo * time.Duration(len(a.Notes))
}

// Manager owns all loaded assets.
type Manager struct {
	textures   map[string]*Texture
	audio      map[string]*AudioSource
	animations map[string]*sprite.Animation
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{
		textures:   make(map[string]*Texture),
		audio:      make(map[string]*AudioSource),
		animations: make(map[string]*sprite.Animation),
	}
}

// LoadDefault builds a manager from the embedded manifest.
func LoadDefault() (*Manager, error) {
	return Load(defaultManifest)
}

// AddTexture registers a texture under the qualified name of its path.
func (m *Manager) AddTexture(t Texture) *Texture {
	t.Name = QualifiedName(t.Path)
	m.textures[t.Name] = &t
	return &t
}

// AddAudio registers an audio source under the qualified name of its path.
func (m *Manager) AddAudio(a AudioSource) *AudioSource {
	a.Name = QualifiedName(a.Path)
	m.audio[a.Name] = &a
	return &a
}

// AddAnimation registers an animation under its own name.
// Animations must have at least one frame.
func (m *Manager) AddAnimation(a sprite.Animation) (*sprite.Animation, error) {
	if len(a.Frames) == 0 {
		return nil, fmt.Errorf("assets: animation %q has no frames", a.Name)
	}
	m.animations[a.Name] = &a
	return &a, nil
}

// Get resolves a name of the given kind and panics if it is unknown.
// Unknown names are a programming error: everything is loaded up front.
func (m *Manager) Get(kind Kind, name string) any {
	v, err := m.Lookup(kind, name)
	if err != nil {
		panic(err.Error())
	}
	return v
}

// Lookup resolves a name of the given kind.
func (m *Manager) Lookup(kind Kind, name string) (any, error) {
	var (
		v  any
		ok bool
	)
	switch kind {
	case KindTexture:
		v, ok = m.textures[name]
	case KindAudio:
		v, ok = m.audio[name]
	case KindAnimation:
		v, ok = m.animations[name]
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s %q", ErrUnknownAsset, kind, name)
	}
	return v, nil
}

// Texture returns a loaded texture. Panics on unknown names.
func (m *Manager) Texture(name string) *Texture {
	return m.Get(KindTexture, name).(*Texture)
}

// Audio returns a loaded audio source. Panics on unknown names.
func (m *Manager) Audio(name string) *AudioSource {
	return m.Get(KindAudio, name).(*AudioSource)
}

// Animation returns a loaded animation. Panics on unknown names.
func (m *Manager) Animation(name string) *sprite.Animation {
	return m.Get(KindAnimation, name).(*sprite.Animation)
}

// Names lists the loaded names of one kind in sorted order.
func (m *Manager) Names(kind Kind) []string {
	var names []string
	switch kind {
	case KindTexture:
		for n := range m.textures {
			names = append(names, n)
		}
	case KindAudio:
		for n := range m.audio {
			names = append(names, n)
		}
	case KindAnimation:
		for n := range m.animations {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}
