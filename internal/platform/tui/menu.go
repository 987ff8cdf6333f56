package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-contra/internal/config"
	"github.com/vovakirdan/tui-contra/internal/core"
	"github.com/vovakirdan/tui-contra/internal/storage"
)

// MenuItem is a selectable difficulty on the title screen.
type MenuItem struct {
	Preset config.DifficultyPreset
	Title  string
	Hint   string
}

// DefaultMenuItems lists the difficulty presets in menu order.
func DefaultMenuItems() []MenuItem {
	return []MenuItem{
		{config.DifficultyEasy, "Easy", "half the enemies, quick trigger"},
		{config.DifficultyNormal, "Normal", "most of the enemy line"},
		{config.DifficultyHard, "Hard", "dense enemy line, slow trigger"},
		{config.DifficultyFixed, "Fixed", "config level, no progression"},
	}
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	menuItemStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	menuCurStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the title screen.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	best           int
	config         core.RuntimeConfig
	keys           KeyMap
	quitting       bool
	selected       *MenuItem // Set when user picks a difficulty
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model. The best score for gameID is
// shown when a store is available.
func NewMenuModel(store *storage.Store, gameID string, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		items:  DefaultMenuItems(),
		cursor: 1, // Normal
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   DefaultKeyMap(),
	}
	if store != nil {
		if best, err := store.HighScore(gameID); err == nil {
			m.best = best
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
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		selected := m.items[m.cursor]
		m.selected = &selected
		return m, tea.Quit

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	lines := []string{
		menuTitleStyle.Render("C O N T R A"),
		"",
		menuHintStyle.Render("Select difficulty"),
		"",
	}

	for i, item := range m.items {
		if i == m.cursor {
			lines = append(lines, menuCurStyle.Render(fmt.Sprintf("> %-7s", item.Title))+"  "+menuHintStyle.Render(item.Hint))
			continue
		}
		lines = append(lines, menuItemStyle.Render(fmt.Sprintf("  %-7s", item.Title))+"  "+menuHintStyle.Render(strings.Repeat(" ", len(item.Hint))))
	}

	lines = append(lines, "")
	if m.best > 0 {
		lines = append(lines, fmt.Sprintf("Best: %d", m.best), "")
	}
	lines = append(lines, menuHintStyle.Render("↑/↓: Navigate  |  Enter: Start  |  Tab: Scores  |  Esc: Quit"))

	block := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, block)
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Preset          config.DifficultyPreset
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the title screen and returns the selection result.
func RunMenu(store *storage.Store, gameID string, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, gameID, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.Preset = m.Selected().Preset
	default:
		result.Quit = true
	}

	return result, nil
}
