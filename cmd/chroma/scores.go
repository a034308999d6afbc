package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chroma/internal/platform/tui"
	"github.com/vovakirdan/tui-chroma/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show saved sessions",
	Long: `Display the top 10 saved sessions and overall statistics.

Examples:
  chroma scores
  chroma scores --tui
  chroma scores --clear
  chroma scores --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse all sessions in an interactive table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every saved session")
}

func runScores(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		err = store.ClearSessions()
		if err == nil {
			fmt.Println("All sessions cleared.")
		}
	case flagScoresTUI:
		width, height := terminalSize()
		err = tui.RunScoreboard(store, width, height)
	default:
		err = printScores(store)
	}

	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printScores writes the top sessions and aggregate stats to stdout.
func printScores(store *storage.Store) error {
	sessions, err := store.TopSessions(10)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Chroma")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'chroma play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-11s  %-8s  %-9s  %s\n", "#", "Score", "Rank", "Avg", "Hit/Miss", "Date")
	fmt.Printf("  %-4s  %-6s  %-11s  %-8s  %-9s  %s\n", "--", "-----", "----", "---", "--------", "----")

	for i, s := range sessions {
		fmt.Printf("  %-4d  %-6d  %-11s  %-8s  %-9s  %s\n",
			i+1,
			s.Score,
			s.Rank,
			fmt.Sprintf("%.2fs", s.AvgResponse),
			fmt.Sprintf("%d/%d", s.Hits, s.Misses),
			s.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Best: %d   Sessions: %d   Avg score: %.1f   Avg response: %.2fs\n",
		stats.HighScore, stats.Sessions, stats.AvgScore, stats.AvgResponse)
	return nil
}
