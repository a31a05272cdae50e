package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dash/internal/audio"
	"github.com/vovakirdan/tui-dash/internal/core"
	"github.com/vovakirdan/tui-dash/internal/games/dash"
	"github.com/vovakirdan/tui-dash/internal/platform/tui"
	"github.com/vovakirdan/tui-dash/internal/storage"
)

var (
	flagLevel int
	flagMute  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run at the first level (or --level).

Controls:
  Left/Right, A/D  - Move
  Space, X, Up     - Jump (press again in the air to double jump)
  C                - Start charging; press again to release a charged jump
  P/Esc            - Pause (B while paused returns)
  Ctrl+S           - Screenshot to ~/.dash/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 15 lives, generous coyote time
  normal - 10 lives
  hard   - 5 lives, tight coyote time

Examples:
  dash play
  dash play --level 2
  dash play --difficulty hard --mute
  dash play --config ./my-dash.yaml --levels ./my-levels.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start at the title menu. Pick a start level with Left/Right on the
Play row, open the high scores with Tab, and return to the menu after
each run.

Examples:
  dash menu
  dash menu --fps 30
  dash menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start level index (0-based)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

// startAudio opens the speaker unless muted. A failed start is retried
// on later key presses.
func startAudio(logger *log.Logger) (*audio.SoundManager, func()) {
	if flagMute {
		return nil, func() {}
	}
	sm := audio.NewSoundManager()
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio unavailable, will retry on input", "err", err)
	}
	return sm, sm.Cleanup
}

// playOnce runs one game until the player quits or asks for the menu.
func playOnce(s setup, store storage.Leaderboard, sm *audio.SoundManager, cfg core.RuntimeConfig, level int) (backToMenu bool, err error) {
	opts := []tui.ModelOption{
		tui.WithLogger(s.logger),
		tui.WithStartLevel(level),
	}
	var sounds dash.Sounds
	if sm != nil {
		sounds = sm
		opts = append(opts, tui.WithAudio(sm))
	}

	game := s.newGame(store, sounds, s.logger)
	s.logger.Info("run started", "level", level, "lives", s.cfg.Session.Lives)
	return tui.Run(game, cfg, opts...)
}

func runPlay(_ *cobra.Command, _ []string) error {
	s, err := loadSetupWithLog()
	if err != nil {
		return err
	}
	defer s.Close()

	if flagLevel < 0 || flagLevel >= s.levels.Len() {
		return fmt.Errorf("level %d out of range (0-%d)", flagLevel, s.levels.Len()-1)
	}

	store, closeStore := openScores(s.logger)
	defer closeStore()

	sm, stopAudio := startAudio(s.logger)
	defer stopAudio()

	if _, err := playOnce(s, store, sm, runtimeConfig(), flagLevel); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

func runMenu(_ *cobra.Command, _ []string) error {
	s, err := loadSetupWithLog()
	if err != nil {
		return err
	}
	defer s.Close()

	store, closeStore := openScores(s.logger)
	defer closeStore()

	sm, stopAudio := startAudio(s.logger)
	defer stopAudio()

	cfg := runtimeConfig()
	for {
		result, err := tui.RunMenu(store, s.levelNames(), cfg)
		if err != nil {
			return err
		}
		cfg = result.Config
		if result.Quit {
			return nil
		}

		switch result.Choice {
		case tui.ChoiceScores:
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				return nil
			}

		case tui.ChoicePlay:
			goBack, playErr := playOnce(s, store, sm, cfg, result.StartLevel)
			if playErr != nil {
				return fmt.Errorf("running game: %w", playErr)
			}
			if !goBack {
				return nil
			}
		}
	}
}
