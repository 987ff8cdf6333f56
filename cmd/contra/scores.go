package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-contra/internal/games/contra"
	"github.com/vovakirdan/tui-contra/internal/platform/tui"
	"github.com/vovakirdan/tui-contra/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best runs and overall statistics.

Examples:
  contra scores
  contra scores --limit 20
  contra scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(contra.ID); err != nil {
			return err
		}
		fmt.Println("All runs deleted.")
		return nil
	}

	runs, err := store.TopRuns(contra.ID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	fmt.Println("High Scores - Contra")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'contra play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-6s  %-5s  %s\n", "Rank", "Score", "Kills", "Acc", "Time", "", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-6s  %-5s  %s\n", "----", "-----", "-----", "---", "----", "", "----")

	for i, r := range runs {
		mark := ""
		if r.Cleared {
			mark = "CLEAR"
		}
		fmt.Printf("  %-4d  %-8d  %-5d  %-5s  %-6s  %-5s  %s\n",
			i+1, r.Score, r.Kills,
			fmt.Sprintf("%.0f%%", r.Accuracy()*100),
			runTime(r.Ticks),
			mark,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	stats, err := store.GameStats(contra.ID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Clears: %d  Best: %d  Accuracy: %.0f%%\n",
			stats.Runs, stats.Clears, stats.HighScore, stats.Accuracy()*100)
		if stats.FastestTicks > 0 {
			fmt.Printf("Fastest clear: %s\n", runTime(stats.FastestTicks))
		}
	}
	return nil
}

// runTime converts a tick count at the current --fps to m:ss.
func runTime(ticks int) string {
	return tui.FormatRunLength(tui.RunLength(ticks, flagFPS))
}
