package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-contra/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 90  // Minimum width to show the stats sidebar
	sidebarWidth       = 24  // Width of stats sidebar
	maxRuns            = 100 // Max runs to load
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	gameID      string
	title       string
	tickRate    int
	store       *storage.Store
	runs        []storage.Run
	stats       *storage.Stats
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool // Whether to show the stats sidebar
}

// NewScoreboardModel creates a new scoreboard model. tickRate converts
// run lengths from ticks to time.
func NewScoreboardModel(store *storage.Store, gameID, title string, tickRate, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		gameID:      gameID,
		title:       title,
		tickRate:    max(tickRate, 1),
		store:       store,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	m.loadRuns()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 8},
		{Title: "Kills", Width: 6},
		{Title: "Acc", Width: 5},
		{Title: "Time", Width: 7},
		{Title: "", Width: 5},
		{Title: "Date", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns loads runs and aggregate stats from the store.
func (m *ScoreboardModel) loadRuns() {
	m.runs, m.stats = nil, nil
	if m.store != nil {
		if runs, err := m.store.TopRuns(m.gameID, maxRuns); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.GameStats(m.gameID); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

// runLength formats a run's tick count as m:ss.
func (m ScoreboardModel) runLength(ticks int) string {
	return FormatRunLength(RunLength(ticks, m.tickRate))
}

// updateTableRows updates the table with current runs.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		mark := ""
		if r.Cleared {
			mark = "CLEAR"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Kills),
			fmt.Sprintf("%.0f%%", r.Accuracy()*100),
			m.runLength(r.Ticks),
			mark,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Width(m.width).
		Align(lipgloss.Center).
		MarginBottom(1)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	body := boxStyle.Render(m.renderTableContent())
	if m.showSidebar {
		sidebar := boxStyle.Width(sidebarWidth).Render(m.renderStats())
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", body)
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(fmt.Sprintf("HIGH SCORES - %s", m.title)),
		body,
		helpStyle.Render(m.help.View(m.keys)),
	)
}

// renderStats renders the aggregate statistics sidebar.
func (m ScoreboardModel) renderStats() string {
	if m.stats == nil || m.stats.Runs == 0 {
		return "Stats\n" + strings.Repeat("-", sidebarWidth-4) + "\nno runs yet"
	}
	s := m.stats

	fastest := "-"
	if s.FastestTicks > 0 {
		fastest = m.runLength(s.FastestTicks)
	}
	lines := []string{
		"Stats",
		strings.Repeat("-", sidebarWidth-4),
		fmt.Sprintf("%-9s %d", "Runs", s.Runs),
		fmt.Sprintf("%-9s %d", "Clears", s.Clears),
		fmt.Sprintf("%-9s %d", "Best", s.HighScore),
		fmt.Sprintf("%-9s %.0f", "Average", s.AvgScore),
		fmt.Sprintf("%-9s %d", "Kills", s.TotalKills),
		fmt.Sprintf("%-9s %.0f%%", "Accuracy", s.Accuracy()*100),
		fmt.Sprintf("%-9s %s", "Fastest", fastest),
	}
	if !s.LastPlayed.IsZero() {
		lines = append(lines, fmt.Sprintf("%-9s %s", "Last", s.LastPlayed.Format("Jan 02")))
	}
	return strings.Join(lines, "\n")
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nClear the stage to set a high score!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, gameID, title string, tickRate, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, gameID, title, tickRate, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
