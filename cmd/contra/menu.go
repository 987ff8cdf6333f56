package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-contra/internal/games/contra"
	"github.com/vovakirdan/tui-contra/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title screen",
	Long: `Start at the title screen.

Pick a difficulty with the arrow keys or j/k and press Enter to play.
Tab opens the scoreboard. After a run ends you return to the title screen.

Examples:
  contra menu
  contra menu --fps 30 --audio
  contra menu --db ./scores.db`,
	Args:        cobra.NoArgs,
	Annotations: tuiCommand,
	RunE:        runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	player := startAudio()
	if player != nil {
		defer player.Close()
	}

	cfg := runtimeConfig()

	for {
		result, err := tui.RunMenu(store, contra.ID, cfg)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, contra.ID, "Contra", cfg.TickRate, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return fmt.Errorf("scoreboard: %w", err)
			}
			if !goBack {
				return nil
			}
			continue
		}

		// Fresh seed for each run
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(newGame(result.Preset, player), store, cfg); err != nil {
			return fmt.Errorf("error running game: %w", err)
		}
	}
}
