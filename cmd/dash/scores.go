package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dash/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top 20 runs, ranked by coins.

Examples:
  dash scores
  dash scores --db ./scores.db
  dash scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete every recorded score")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClearScores {
		if err := store.Clear(); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Fprintln(out, "Leaderboard cleared.")
		return nil
	}

	scores, err := store.TopScores(storage.MaxEntries)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}
	printScores(cmd, scores)
	return nil
}

// printScores writes the leaderboard table.
func printScores(cmd *cobra.Command, scores []storage.ScoreEntry) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Top Scores - Square Dash")
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'dash play' to set the first high score!")
		return
	}

	fmt.Fprintf(out, "  %-4s  %-4s  %-6s  %s\n", "Rank", "Name", "Coins", "Date")
	fmt.Fprintf(out, "  %-4s  %-4s  %-6s  %s\n", "----", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-4s  %-6d  %s\n", i+1, entry.Name, entry.Score, entry.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d\n", scores[0].Score)
}
