package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-contra/internal/audio"
	"github.com/vovakirdan/tui-contra/internal/config"
	"github.com/vovakirdan/tui-contra/internal/core"
	"github.com/vovakirdan/tui-contra/internal/games/contra"
	"github.com/vovakirdan/tui-contra/internal/platform/tui"
	"github.com/vovakirdan/tui-contra/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagAudio      bool
	flagDebug      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the stage",
	Long: `Start the stage directly.

Controls:
  A/D, Left/Right  - Run
  W/S, Up/Down     - Aim up / aim down, prone when standing
  Space            - Jump
  J/F              - Fire
  E/Q              - Zoom in / out
  H/L/K/N          - Pan camera
  Tab/F1           - Debug panel
  P/Esc            - Pause
  R                - Restart (after the stage ends)
  Ctrl+S           - Screenshot to ~/.contra/screenshots
  Ctrl+C           - Quit

Difficulty options:
  easy   - Half the enemy line, faster trigger, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, slower trigger and bullets
  fixed  - No progression, stays at config's initial level

Examples:
  contra play
  contra play --difficulty hard
  contra play --audio
  contra play --config ./my-contra.yaml --debug`,
	Args:        cobra.NoArgs,
	Annotations: tuiCommand,
	RunE:        runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		cmd.Flags().BoolVar(&flagAudio, "audio", false, "Play music and sound effects")
		cmd.Flags().BoolVar(&flagDebug, "debug", false, "Start with the debug panel open")
	}
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// runtimeConfig builds the runtime config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Debug:    flagDebug,
	}
}

// openStore opens the runs database. The game still works without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database", "err", err)
		return nil
	}
	return store
}

// startAudio opens the speaker when --audio is set. Audio failures leave
// the game silent.
func startAudio() *audio.Player {
	if !flagAudio {
		return nil
	}
	p := audio.NewPlayer(audio.DefaultSampleRate)
	if err := p.StartSpeaker(); err != nil {
		log.Warn("audio disabled", "err", err)
		return nil
	}
	return p
}

// newGame creates the stage with the command's config and the given
// difficulty.
func newGame(preset config.DifficultyPreset, player *audio.Player) *contra.Game {
	return contra.New(contra.Options{
		ConfigPath: flagConfig,
		Preset:     preset,
		Audio:      player,
	})
}

func runPlay(_ *cobra.Command, _ []string) error {
	// Without --difficulty the config file's own settings apply.
	var preset config.DifficultyPreset
	if flagDifficulty != "" {
		p, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		preset = p
	}

	player := startAudio()
	if player != nil {
		defer player.Close()
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	game := newGame(preset, player)
	log.Info("starting stage", "difficulty", flagDifficulty, "fps", flagFPS, "audio", player != nil)

	if err := tui.Run(game, store, runtimeConfig()); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
