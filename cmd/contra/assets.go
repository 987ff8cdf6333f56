package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-contra/internal/assets"
	"github.com/vovakirdan/tui-contra/internal/sprite"
)

var assetsCmd = &cobra.Command{
	Use:   "assets [name]",
	Short: "List the asset catalogue",
	Long: `List every texture, audio clip and animation by qualified name, or
show the details of one asset.

Examples:
  contra assets
  contra assets textures.contra_player_sprite
  contra assets player_state_running_gun_forward`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAssets,
}

var assetKinds = []assets.Kind{assets.KindTexture, assets.KindAudio, assets.KindAnimation}

func runAssets(_ *cobra.Command, args []string) error {
	m, err := assets.LoadDefault()
	if err != nil {
		return err
	}

	if len(args) == 1 {
		return describeAsset(m, args[0])
	}

	for _, kind := range assetKinds {
		names := m.Names(kind)
		fmt.Printf("%s (%d)\n", kind, len(names))
		for _, name := range names {
			fmt.Printf("  %s\n", name)
		}
		fmt.Println()
	}
	return nil
}

// describeAsset prints the first asset of any kind with the given name.
func describeAsset(m *assets.Manager, name string) error {
	for _, kind := range assetKinds {
		v, err := m.Lookup(kind, name)
		if err != nil {
			continue
		}
		switch a := v.(type) {
		case *assets.Texture:
			fmt.Printf("texture %s\n  path   %s\n  size   %dx%d\n  glyph  %q\n", a.Name, a.Path, a.Width, a.Height, a.Glyph)
		case *assets.AudioSource:
			fmt.Printf("audio %s\n  path   %s\n  wave   %s\n  notes  %d\n  length %s\n", a.Name, a.Path, a.Wave, len(a.Notes), a.Duration())
		case *sprite.Animation:
			fmt.Printf("animation %s\n  speed  %.3f\n  frames %d\n", a.Name, a.Speed, len(a.Frames))
			for i, f := range a.Frames {
				fmt.Printf("  %2d  %-32s uv %v\n", i, f.Texture, f.UV)
			}
		}
		return nil
	}
	return fmt.Errorf("%w: %q", assets.ErrUnknownAsset, name)
}
