package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dash/internal/config"
	"github.com/vovakirdan/tui-dash/internal/core"
	"github.com/vovakirdan/tui-dash/internal/games/dash"
	"github.com/vovakirdan/tui-dash/internal/storage"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func shortLevel(name string, seed int64) config.LevelDescriptor {
	d := config.DefaultLevelDescriptor()
	d.Name = name
	d.Seed = seed
	d.Duration = 1
	d.ObstacleChance = 0
	d.CoinChance = 0
	return d
}

func newTestGame(store storage.Leaderboard) *dash.Game {
	if store == nil {
		store = storage.NewMemoryStore()
	}
	return dash.New(
		dash.WithLevels(config.LevelTable{Levels: []config.LevelDescriptor{
			shortLevel("one", 1),
			shortLevel("two", 2),
		}}),
		dash.WithScores(store),
		dash.WithLogger(quietLogger()),
	)
}

func newTestModel(t *testing.T, game *dash.Game, opts ...ModelOption) Model {
	t.Helper()
	opts = append([]ModelOption{
		WithLogger(quietLogger()),
		WithScreenshotDir(t.TempDir()),
	}, opts...)
	m := NewModel(game, core.DefaultConfig(), opts...)
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

// tickUntilWaiting runs ticks until the model stops the loop.
func tickUntilWaiting(t *testing.T, m Model) Model {
	t.Helper()
	for range 1000 {
		var cmd tea.Cmd
		m, cmd = update(t, m, TickMsg{})
		if cmd == nil {
			return m
		}
	}
	t.Fatal("tick loop never stopped")
	return m
}

func TestModelInitSetsWindowTitle(t *testing.T) {
	m := NewModel(newTestGame(nil), core.DefaultConfig(), WithLogger(quietLogger()))
	batch, ok := m.Init()().(tea.BatchMsg)
	if !ok || len(batch) == 0 {
		t.Fatalf("Init should batch the title with the tick loop, got %T", batch)
	}
	if title := fmt.Sprint(batch[0]()); title != "Square Dash" {
		t.Errorf("window title = %q, expected Square Dash", title)
	}
}

func TestModelStopsTickingWhileWaiting(t *testing.T) {
	game := newTestGame(nil)
	m := newTestModel(t, game)

	m = tickUntilWaiting(t, m)
	if !game.Waiting() {
		t.Fatal("loop stopped but the game is not waiting")
	}
	if m.ticking {
		t.Error("model should record that ticking stopped")
	}

	// Stray ticks change nothing while waiting
	before := game.Snapshot()
	m, _ = update(t, m, TickMsg{})
	if game.Snapshot() != before {
		t.Error("a tick advanced the game while an overlay was up")
	}

	m, cmd := update(t, m, runeKey('z'))
	if game.Waiting() {
		t.Fatalf("any key should dismiss %v", game.State())
	}
	if cmd == nil || !m.ticking {
		t.Error("dismissing the overlay should restart the tick loop")
	}
	if game.State() != dash.StatePlaying {
		t.Errorf("state = %v, expected playing", game.State())
	}
}

func TestModelHeldDirectionLatches(t *testing.T) {
	game := newTestGame(nil)
	m := newTestModel(t, game)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.held[core.ActionRight] != holdTicks {
		t.Fatalf("held right = %d, expected %d", m.held[core.ActionRight], holdTicks)
	}

	startX := game.Player().X
	m, _ = update(t, m, TickMsg{})
	if game.Player().X <= startX {
		t.Errorf("latched right should move the player: x %v -> %v", startX, game.Player().X)
	}
	if m.held[core.ActionRight] != holdTicks-1 {
		t.Errorf("latch should count down, got %d", m.held[core.ActionRight])
	}

	// Auto-repeat never shortens the latch
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.held[core.ActionRight] != holdTicks-1 {
		t.Errorf("repeat shortened the latch to %d", m.held[core.ActionRight])
	}

	// The opposite direction replaces it
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if _, ok := m.held[core.ActionRight]; ok {
		t.Error("pressing left should drop the right latch")
	}
	if m.held[core.ActionLeft] != holdTicks {
		t.Errorf("held left = %d, expected %d", m.held[core.ActionLeft], holdTicks)
	}
}

func TestModelLatchExpires(t *testing.T) {
	game := newTestGame(nil)
	m := newTestModel(t, game)

	m.held[core.ActionLeft] = 1
	m, _ = update(t, m, TickMsg{})
	if m.held[core.ActionLeft] != 0 {
		t.Fatalf("held left = %d, expected 0", m.held[core.ActionLeft])
	}

	x := game.Player().X
	m, _ = update(t, m, TickMsg{})
	if game.Player().X != x {
		t.Errorf("an expired latch still moved the player: %v -> %v", x, game.Player().X)
	}
}

func TestModelChargeKeyToggles(t *testing.T) {
	game := newTestGame(nil)
	m := newTestModel(t, game)

	m, _ = update(t, m, runeKey('c'))
	if !m.pending.Has(core.ActionChargeStart) || m.pending.Has(core.ActionChargeRelease) {
		t.Fatalf("first press should start charging, pending = %v", m.pending.Actions)
	}
	m.pending.Clear()

	game.Player().Charging = true
	m, _ = update(t, m, runeKey('c'))
	if !m.pending.Has(core.ActionChargeRelease) || m.pending.Has(core.ActionChargeStart) {
		t.Errorf("press while charging should release, pending = %v", m.pending.Actions)
	}
}

func TestModelPendingClearedAfterTick(t *testing.T) {
	game := newTestGame(nil)
	m := newTestModel(t, game)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if !m.pending.Has(core.ActionJump) {
		t.Fatal("space should queue a jump")
	}
	m, _ = update(t, m, TickMsg{})
	if !m.pending.Empty() {
		t.Errorf("pending should be empty after a tick, got %v", m.pending.Actions)
	}
}

func TestModelPauseAndBack(t *testing.T) {
	game := newTestGame(nil)
	m := newTestModel(t, game)

	// b does nothing while playing
	m, _ = update(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Fatal("b should only leave while paused")
	}

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg{})
	if !game.Paused() {
		t.Fatal("p should pause on the next tick")
	}

	m, cmd := update(t, m, runeKey('b'))
	if !m.BackToMenu() || m.IsQuitting() {
		t.Error("b while paused should go back to the menu")
	}
	if cmd != nil {
		t.Error("an embedded model must not quit the program on back")
	}
	if m.View() != "" {
		t.Error("a model that left should render nothing")
	}
}

func TestModelQuit(t *testing.T) {
	game := newTestGame(nil)
	m := newTestModel(t, game)

	m, cmd := update(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

func TestModelInitialsFlow(t *testing.T) {
	store := storage.NewMemoryStore()
	game := newTestGame(store)
	m := newTestModel(t, game)

	// Finish both levels or lose every life, whichever comes first.
	for range 50 {
		if game.State() == dash.StateOutOfLives {
			break
		}
		m = tickUntilWaiting(t, m)
		if game.State() != dash.StateOutOfLives {
			m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		}
	}
	if game.State() != dash.StateOutOfLives {
		t.Fatalf("state = %v, expected initials entry", game.State())
	}

	// q is a letter here
	for _, r := range "qz" {
		m, _ = update(t, m, runeKey(r))
	}
	if m.IsQuitting() {
		t.Fatal("typing q in the initials prompt quit the game")
	}
	if game.Initials() != "QZ" {
		t.Errorf("initials = %q, expected QZ", game.Initials())
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if game.State() != dash.StateScoreboard {
		t.Fatalf("state = %v, expected scoreboard", game.State())
	}
	top, err := store.TopScores(1)
	if err != nil || len(top) != 1 || top[0].Name != "QZA" {
		t.Errorf("stored = %v (%v), expected QZA", top, err)
	}

	// b on the scoreboard goes back to the menu
	m, _ = update(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("b on the scoreboard should go back to the menu")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	game := newTestGame(nil)
	m := newTestModel(t, game)

	for range 5 {
		m, _ = update(t, m, TickMsg{})
	}
	before := game.Snapshot()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if game.Snapshot() != before {
		t.Error("resize should not reset the game")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 120x39", m.screen.Width(), m.screen.Height())
	}
}

func TestModelView(t *testing.T) {
	game := newTestGame(nil)
	m := newTestModel(t, game)

	view := m.View()
	if !strings.Contains(view, "Level: 1 / 2") {
		t.Errorf("view should carry the HUD, got:\n%s", view)
	}
	if !strings.Contains(view, "jump") {
		t.Error("view should end with the help bar")
	}
}

func TestModelScreenshot(t *testing.T) {
	game := newTestGame(nil)
	dir := t.TempDir()
	m := newTestModel(t, game, WithScreenshotDir(dir))

	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "dash_") {
		t.Fatalf("expected one dash_ screenshot, got %v", entries)
	}
}

type flakyAudio struct {
	retries int
}

func (a *flakyAudio) Retry() error {
	a.retries++
	return errors.New("no device")
}

func TestModelRetriesAudioOnInput(t *testing.T) {
	game := newTestGame(nil)
	audio := &flakyAudio{}
	m := newTestModel(t, game, WithAudio(audio))

	m, _ = update(t, m, runeKey('x'))
	update(t, m, TickMsg{})
	if audio.retries != 1 {
		t.Errorf("retries = %d, expected one per key press", audio.retries)
	}
}
