package assets

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-contra/internal/core"
	"github.com/vovakirdan/tui-contra/internal/sprite"
)

// Manifest is the YAML structure listing every asset.
type Manifest struct {
	Textures   []ManifestTexture   `yaml:"textures"`
	Audio      []ManifestAudio     `yaml:"audio"`
	Animations []ManifestAnimation `yaml:"animations"`
}

// ManifestTexture describes one texture.
type ManifestTexture struct {
	Path   string `yaml:"path"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Glyph  string `yaml:"glyph"`
	Color  string `yaml:"color"`
}

// ManifestAudio describes one synthesized audio source.
type ManifestAudio struct {
	Path  string    `yaml:"path"`
	Wave  string    `yaml:"wave"`
	Tempo string    `yaml:"tempo"`
	Notes []float64 `yaml:"notes"`
}

// ManifestAnimation describes one frame animation.
type ManifestAnimation struct {
	Name    string       `yaml:"name"`
	Texture string       `yaml:"texture"`
	Speed   float32      `yaml:"speed"`
	Frames  [][4]float32 `yaml:"frames"`
}

// Load parses a YAML manifest and builds a manager from it.
func Load(data []byte) (*Manager, error) {
	var mf Manifest
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("assets: parse manifest: %w", err)
	}
	return FromManifest(mf)
}

// FromManifest builds a manager from an already parsed manifest.
// Animations may only reference textures declared in the same manifest.
func FromManifest(mf Manifest) (*Manager, error) {
	m := NewManager()

	for _, t := range mf.Textures {
		glyph, _ := utf8.DecodeRuneInString(t.Glyph)
		if glyph == utf8.RuneError {
			glyph = '#'
		}
		color, ok := core.ParseColor(t.Color)
		if !ok && t.Color != "" {
			return nil, fmt.Errorf("assets: texture %s: unknown color %q", t.Path, t.Color)
		}
		m.AddTexture(Texture{
			Path:   t.Path,
			Width:  t.Width,
			Height: t.Height,
			Glyph:  glyph,
			Color:  color,
		})
	}

	for _, a := range mf.Audio {
		tempo, err := time.ParseDuration(a.Tempo)
		if err != nil {
			return nil, fmt.Errorf("assets: audio %s: %w", a.Path, err)
		}
		wave := Waveform(a.Wave)
		switch wave {
		case WaveSine, WaveSquare:
		case "":
			wave = WaveSine
		default:
			return nil, fmt.Errorf("assets: audio %s: unknown wave %q", a.Path, a.Wave)
		}
		m.AddAudio(AudioSource{
			Path:  a.Path,
			Wave:  wave,
			Tempo: tempo,
			Notes: a.Notes,
		})
	}

	for _, a := range mf.Animations {
		if _, err := m.Lookup(KindTexture, a.Texture); err != nil {
			return nil, fmt.Errorf("assets: animation %q: %w", a.Name, err)
		}
		anim := sprite.Animation{Name: a.Name, Speed: a.Speed}
		for _, uv := range a.Frames {
			anim.Frames = append(anim.Frames, sprite.Frame{
				Texture: a.Texture,
				UV:      mgl32.Vec4(uv),
			})
		}
		if _, err := m.AddAnimation(anim); err != nil {
			return nil, err
		}
	}

	return m, nil
}
