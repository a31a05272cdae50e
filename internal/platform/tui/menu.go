package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dash/internal/core"
	"github.com/vovakirdan/tui-dash/internal/storage"
)

// MenuChoice is an entry of the title menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceQuit
)

// String returns the menu label.
func (c MenuChoice) String() string {
	switch c {
	case ChoicePlay:
		return "Play"
	case ChoiceScores:
		return "High Scores"
	case ChoiceQuit:
		return "Quit"
	default:
		return ""
	}
}

var menuChoices = []MenuChoice{ChoicePlay, ChoiceScores, ChoiceQuit}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	menuDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuCurStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	levels    []string // level names, for the start level picker
	level     int
	cursor    int
	best      int
	hasBest   bool
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	selected  MenuChoice
}

// NewMenuModel creates a new menu model. levels lists the level names;
// store, when set, supplies the best score shown under the title.
func NewMenuModel(store storage.Leaderboard, levels []string, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		levels:    levels,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	if store != nil {
		if best, err := store.HighScore(); err == nil && best > 0 {
			m.best, m.hasBest = best, true
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Left/right pick the start level on the Play row
	if menuChoices[m.cursor] == ChoicePlay && len(m.levels) > 1 {
		switch msg.String() {
		case "left", "h", "a":
			m.level = (m.level - 1 + len(m.levels)) % len(m.levels)
			return m, nil
		case "right", "l", "d":
			m.level = (m.level + 1) % len(m.levels)
			return m, nil
		}
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuChoices)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.selected = menuChoices[m.cursor]
		if m.selected == ChoiceQuit {
			m.quitting = true
		}
		return m, tea.Quit

	case MenuActionScoreboard:
		m.selected = ChoiceScores
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("S Q U A R E   D A S H"), m.width))
	b.WriteString("\n\n")

	subtitle := "Hop the platforms, grab the coins, mind the spikes"
	if m.hasBest {
		subtitle = fmt.Sprintf("Best run: %d coins", m.best)
	}
	b.WriteString(centerText(menuDimStyle.Render(subtitle), m.width))
	b.WriteString("\n\n")

	for i, c := range menuChoices {
		label := c.String()
		if c == ChoicePlay && len(m.levels) > 1 {
			label = fmt.Sprintf("Play  < %d. %s >", m.level+1, m.levels[m.level])
		}
		line := "  " + label
		if i == m.cursor {
			line = menuCurStyle.Render("> " + label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Level  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen entry, or ChoiceNone.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// StartLevel returns the level index picked on the Play row.
func (m MenuModel) StartLevel() int {
	return m.level
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers a single line within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice     MenuChoice
	StartLevel int
	Config     core.RuntimeConfig
	Quit       bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store storage.Leaderboard, levels []string, cfg core.RuntimeConfig) (MenuResult, error) {
	m, err := runProgram(NewMenuModel(store, levels, cfg))
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	result := MenuResult{
		Choice:     m.Selected(),
		StartLevel: m.StartLevel(),
		Config:     m.Config(),
	}
	if m.IsQuitting() || m.Selected() == ChoiceNone {
		result.Quit = true
	}
	return result, nil
}
