package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dash/internal/config"
	"github.com/vovakirdan/tui-dash/internal/core"
	"github.com/vovakirdan/tui-dash/internal/games/dash"
	"github.com/vovakirdan/tui-dash/internal/storage"
)

// setup is everything a command needs to build games.
type setup struct {
	cfg    config.DashConfig
	levels config.LevelTable
	logger *log.Logger
	closer io.Closer
}

func (s setup) Close() {
	if s.closer != nil {
		s.closer.Close()
	}
}

// expandHome resolves a leading ~ to the home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// openLogger logs to the given file. The TUI owns the terminal, so log
// lines must not go to stderr while a game runs. An empty path or a file
// that cannot be opened discards logs.
func openLogger(path string) (*log.Logger, io.Closer) {
	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "dash",
	}
	if flagDebug {
		opts.Level = log.DebugLevel
	}

	if path == "" {
		return log.NewWithOptions(io.Discard, opts), nil
	}
	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot create log directory: %v\n", err)
		return log.NewWithOptions(io.Discard, opts), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot open log file: %v\n", err)
		return log.NewWithOptions(io.Discard, opts), nil
	}
	return log.NewWithOptions(f, opts), f
}

// loadSetup loads config and levels from the global flags. Bad custom
// files are fatal; everything else falls back to defaults.
func loadSetup(logger *log.Logger) (setup, error) {
	cfg, err := config.LoadDash(flagConfig)
	if err != nil {
		return setup{}, err
	}
	if flagDifficulty != "" {
		preset := config.ParseDifficulty(flagDifficulty)
		if preset == "" {
			return setup{}, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
		}
		config.ApplyDashPreset(&cfg, preset)
	}

	levels, err := config.LoadLevels(flagLevels)
	if err != nil {
		return setup{}, err
	}

	return setup{cfg: cfg, levels: levels, logger: logger}, nil
}

// loadSetupWithLog opens the log file then loads config.
func loadSetupWithLog() (setup, error) {
	logger, closer := openLogger(flagLogPath)
	s, err := loadSetup(logger)
	if err != nil {
		if closer != nil {
			closer.Close()
		}
		return setup{}, err
	}
	s.closer = closer
	return s, nil
}

// newGame builds a game from the setup.
func (s setup) newGame(scores dash.ScoreStore, sounds dash.Sounds, logger *log.Logger) *dash.Game {
	opts := []dash.Option{
		dash.WithConfig(s.cfg),
		dash.WithLevels(s.levels),
		dash.WithAssets(dash.NewConfigAssets(s.cfg.Sprites)),
		dash.WithLogger(logger),
	}
	if scores != nil {
		opts = append(opts, dash.WithScores(scores))
	}
	if sounds != nil {
		opts = append(opts, dash.WithSounds(sounds))
	}
	return dash.New(opts...)
}

// levelNames lists level names for the menu.
func (s setup) levelNames() []string {
	names := make([]string, s.levels.Len())
	for i, l := range s.levels.Levels {
		names[i] = l.Name
	}
	return names
}

// openScores opens the sqlite leaderboard, falling back to memory.
func openScores(logger *log.Logger) (storage.Leaderboard, func()) {
	store, err := storage.Open(flagDBPath, storage.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores kept in memory", "path", flagDBPath, "err", err)
		return storage.NewMemoryStore(), func() {}
	}
	return store, func() {
		if err := store.Close(); err != nil {
			logger.Warn("could not close scores database", "err", err)
		}
	}
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
