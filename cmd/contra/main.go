// contra is a side-scrolling run-and-gun stage played in the terminal.
//
// Usage:
//
//	contra play              - Play the stage
//	contra menu              - Title screen with difficulty picker and scores
//	contra serve             - Start SSH server for remote play
//	contra scores            - Show the best runs
//	contra list              - List registered games
//	contra assets            - List the asset catalogue
//	contra config            - Print the effective game config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.contra/scores.db)
//	--log-level <level>  - debug, info, warn, error (default: info)
//	--log-file <path>    - Log destination (default: ~/.contra/contra.log for TUI commands)
//	--profile <mode>     - Write a cpu or mem profile to ./profile
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
	flagProfile  string
)

// Commands that take over the terminal log to a file by default.
var tuiCommand = map[string]string{"tui": "true"}

var (
	logOutput   io.Closer
	profileStop interface{ Stop() }
)

func main() {
	err := rootCmd.Execute()
	cleanup()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "contra",
	Short: "Contra - a run-and-gun stage in your terminal",
	Long: `Contra is a side-scrolling run-and-gun stage rendered in the terminal.
Run along the block line, jump, and shoot every enemy to clear the stage.

Available commands:
  play     - Play the stage directly
  menu     - Title screen with difficulty picker and scoreboard
  serve    - Start SSH server for remote play
  scores   - View the best runs
  list     - Show registered games
  assets   - List textures, audio and animations
  config   - Print the effective game config

Examples:
  contra play
  contra play --difficulty hard --audio
  contra menu
  contra serve --ssh :2222
  contra scores`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.contra/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (default: stderr, or ~/.contra/contra.log for TUI commands)")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "Write a profile to ./profile: cpu or mem")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(assetsCmd)
	rootCmd.AddCommand(configCmd)
}

// setup installs the default logger and starts profiling.
func setup(cmd *cobra.Command, _ []string) error {
	if err := setupLogging(cmd.Annotations["tui"] == "true"); err != nil {
		return err
	}

	switch flagProfile {
	case "":
	case "cpu":
		profileStop = profile.Start(profile.CPUProfile, profile.ProfilePath("profile"), profile.NoShutdownHook, profile.Quiet)
	case "mem":
		profileStop = profile.Start(profile.MemProfile, profile.ProfilePath("profile"), profile.NoShutdownHook, profile.Quiet)
	default:
		return fmt.Errorf("unknown profile mode %q (want cpu or mem)", flagProfile)
	}
	return nil
}

func setupLogging(tui bool) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	path := expandHome(flagLogFile)
	if path == "" && tui {
		path = expandHome("~/.contra/contra.log")
	}

	var out io.Writer = os.Stderr
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logOutput = f
		out = f
	}

	log.SetDefault(log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "contra",
	}))
	return nil
}

func cleanup() {
	if profileStop != nil {
		profileStop.Stop()
	}
	if logOutput != nil {
		logOutput.Close()
	}
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
