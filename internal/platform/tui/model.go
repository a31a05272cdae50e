package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dash/internal/core"
	"github.com/vovakirdan/tui-dash/internal/games/dash"
)

// Terminals report key presses but not releases. A held direction is
// latched for holdTicks after the first press; auto-repeat events then
// refresh it for repeatTicks.
const (
	holdTicks   = 30
	repeatTicks = 6
)

// AudioRetrier re-attempts audio setup after a failed start.
type AudioRetrier interface {
	Retry() error
}

// Model is the Bubble Tea model that runs the platformer.
type Model struct {
	game       *dash.Game
	screen     *core.Screen
	palette    Palette
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	audio      AudioRetrier
	logger     *log.Logger
	shotDir    string
	startLevel int
	standalone bool

	held    map[core.Action]int // latched direction -> ticks left
	pending core.InputFrame     // one-shot commands for the next tick
	ticking bool

	quitting   bool
	backToMenu bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithAudio retries audio setup on user input.
func WithAudio(a AudioRetrier) ModelOption {
	return func(m *Model) { m.audio = a }
}

// WithPalette sets the color palette.
func WithPalette(p Palette) ModelOption {
	return func(m *Model) { m.palette = p }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) { m.logger = l }
}

// WithScreenshotDir sets where ctrl+s writes screenshots.
func WithScreenshotDir(dir string) ModelOption {
	return func(m *Model) { m.shotDir = dir }
}

// WithStartLevel starts the run at the given level index.
func WithStartLevel(level int) ModelOption {
	return func(m *Model) { m.startLevel = level }
}

// NewModel creates a new Bubble Tea model for the given game. The bottom
// row of the terminal is reserved for the help bar.
func NewModel(game *dash.Game, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	m := Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		config:  cfg,
		keys:    NewKeyMapper(),
		help:    help.New(),
		logger:  log.Default(),
		held:    make(map[core.Action]int),
		pending: core.NewInputFrame(),
		ticking: true,
	}
	m.palette = NewPalette(nil)
	m.help.Width = cfg.ScreenW
	if home, err := os.UserHomeDir(); err == nil {
		m.shotDir = filepath.Join(home, ".dash", "screenshots")
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func playHeight(h int) int {
	return max(h-1, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.ResetAt(m.config, m.startLevel)
	return tea.Batch(tea.SetWindowTitle(m.game.Title()), tickCmd(m.config.TickRate))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.audio != nil {
		if err := m.audio.Retry(); err != nil {
			m.logger.Debug("audio still unavailable", "err", err)
		}
	}

	keys := m.keys.Keys()
	if key.Matches(msg, keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if m.game.Waiting() {
		return m.resume(msg)
	}

	if key.Matches(msg, keys.Back) && m.game.Paused() {
		return m.leave(false)
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		return m.leave(true)
	case core.ActionLeft, core.ActionRight:
		m.hold(action)
	case core.ActionChargeStart:
		// One key toggles: press to charge, press again to jump.
		if m.game.Player().Charging {
			m.pending.Set(core.ActionChargeRelease)
		} else {
			m.pending.Set(core.ActionChargeStart)
		}
	case core.ActionNone:
	default:
		m.pending.Set(action)
	}

	return m, nil
}

// resume feeds a key to the overlay the game is waiting on and restarts
// the tick loop once the game plays again.
func (m Model) resume(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	frame := core.NewInputFrame()

	if m.game.State() == dash.StateOutOfLives {
		if m.keys.MapText(msg, &frame) {
			return m.leave(true)
		}
	} else {
		keys := m.keys.Keys()
		switch {
		case key.Matches(msg, keys.Quit):
			return m.leave(true)
		case key.Matches(msg, keys.Back) && m.game.State() == dash.StateScoreboard:
			return m.leave(false)
		}
		frame.Set(core.ActionConfirm)
	}

	m.game.Resume(frame)
	if !m.game.Waiting() && !m.ticking {
		m.ticking = true
		return m, tickCmd(m.config.TickRate)
	}
	return m, nil
}

// leave ends the game, either quitting or going back to the menu.
func (m Model) leave(quit bool) (tea.Model, tea.Cmd) {
	if quit {
		m.quitting = true
	} else {
		m.backToMenu = true
	}
	if m.standalone || quit {
		return m, tea.Quit
	}
	return m, nil
}

// hold latches a direction and drops the opposite one.
func (m *Model) hold(a core.Action) {
	opposite := core.ActionLeft
	if a == core.ActionLeft {
		opposite = core.ActionRight
	}
	delete(m.held, opposite)

	n := holdTicks
	if m.held[a] > 0 {
		n = repeatTicks
	}
	m.held[a] = max(m.held[a], n)
}

// handleResize processes window resize events. The simulation runs in
// design units, so only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks. The loop stops while an overlay
// waits for input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	frame := m.pending.Clone()
	for a, left := range m.held {
		if left > 0 {
			frame.Set(a)
			m.held[a] = left - 1
		}
	}
	m.pending.Clear()

	res := m.game.Step(frame)
	switch {
	case res.Died:
		m.logger.Debug("player died", "level", res.Status.Level, "lives", res.Status.Lives)
	case res.Completed:
		m.logger.Debug("level complete", "level", res.Status.Level, "coins", res.Status.Coins)
	}

	if m.game.Waiting() {
		clear(m.held)
		m.ticking = false
		return m, nil
	}
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	if m.shotDir == "" {
		return
	}
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "dir", m.shotDir, "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return m.palette.Render(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for the game. It reports
// whether the player asked to go back to the menu.
func Run(game *dash.Game, cfg core.RuntimeConfig, opts ...ModelOption) (backToMenu bool, err error) {
	model := NewModel(game, cfg, opts...)
	model.standalone = true

	m, err := runProgram(model)
	if err != nil {
		return false, err
	}
	return m.BackToMenu(), nil
}
