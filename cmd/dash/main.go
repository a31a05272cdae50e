// dash is a scrolling square platformer for the terminal.
//
// Usage:
//
//	dash play                - Play a run
//	dash menu                - Title menu with level picker and high scores
//	dash scores              - Show the leaderboard
//	dash levels              - List levels
//	dash levels show <index> - Print the generated layout of a level
//	dash serve               - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.dash/scores.db)
//	--config <path>       - Game config YAML
//	--levels <path>       - Level table YAML
//	--difficulty <preset> - easy, normal or hard
//	--log <path>          - Log file (default: ~/.dash/dash.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagLevels     string
	flagDifficulty string
	flagLogPath    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dash",
	Short: "Square Dash - a scrolling platformer in your terminal",
	Long: `Square Dash is a terminal platformer. Hop across seeded platforms,
dodge obstacles and the spike strip, and collect coins before each
level's timer runs out.

Available commands:
  play     - Play a run directly
  menu     - Title menu with level picker and high scores
  scores   - View the leaderboard
  levels   - List levels or print a generated layout
  serve    - Start SSH server for remote play

Examples:
  dash play
  dash play --level 2 --difficulty hard
  dash menu
  dash levels show 0
  dash serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dash/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Path to custom level table YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.dash/dash.log", "Log file path")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(serveCmd)
}
