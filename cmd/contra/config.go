package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-contra/internal/config"
)

var (
	flagConfigPath   string
	flagConfigPreset string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the game config as YAML after the search order and an optional
difficulty preset are applied. Redirect the output to start a custom config.

Search order: --config, ~/.contra/configs/contra.yaml,
./configs/contra.yaml, built-in defaults.

Examples:
  contra config
  contra config --difficulty hard
  contra config > ~/.contra/configs/contra.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigPath, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagConfigPreset, "difficulty", "", "Apply a difficulty preset: easy, normal, hard, fixed")
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadContra(flagConfigPath)
	if err != nil {
		return err
	}

	if flagConfigPreset != "" {
		preset, ok := config.ParsePreset(flagConfigPreset)
		if !ok {
			return fmt.Errorf("unknown difficulty %q", flagConfigPreset)
		}
		config.ApplyContraPreset(&cfg, preset)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
