package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-contra/internal/core"
	"github.com/vovakirdan/tui-contra/internal/registry"
	"github.com/vovakirdan/tui-contra/internal/storage"
)

// Debug panel layout
const (
	panelWidth = 30 // Including the border
	helpHeight = 1
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(panelWidth - 2)
	panelTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	panelLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	palette    *Palette
	store      *storage.Store
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	holds      *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	logger     *log.Logger
	now        func() time.Time
	width      int
	height     int
	quitting   bool

	// Current run, saved once when it ends
	kills    int
	shots    int
	ticks    int
	runSaved bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		palette:    NewPalette(nil),
		store:      store,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		holds:      NewHoldTracker(DefaultHoldInitial, DefaultHoldRepeat),
		inputFrame: core.NewInputFrame(),
		logger:     log.Default().WithPrefix("tui"),
		now:        time.Now,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.syncViewport()
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The game picks up the new play area on the next tick; the stage
		// itself is not rebuilt.
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.holds.Press(action, m.now())
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.inputFrame.Clear()
	m.holds.Frame(now, &m.inputFrame)

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = now.UnixNano()
		m.game.Reset(m.config)
		m.syncViewport()
		m.gameState = m.game.State()
		m.kills, m.shots, m.ticks = 0, 0, 0
		m.runSaved = false
		m.holds.Reset()
		return m, tickCmd(m.config.TickRate)
	}

	m.syncViewport()
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if !m.runSaved && !result.State.Paused {
		m.ticks++
	}
	m.kills += result.Kills
	m.shots += result.Shots

	if m.gameState.GameOver {
		m.saveRun()
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun stores the current run once. Empty runs are not recorded.
func (m *Model) saveRun() {
	if m.runSaved {
		return
	}
	m.runSaved = true
	if m.store == nil || (m.gameState.Score == 0 && !m.gameState.Cleared) {
		return
	}

	_, err := m.store.SaveRun(storage.Run{
		GameID:  m.game.ID(),
		Score:   m.gameState.Score,
		Kills:   m.kills,
		Shots:   m.shots,
		Ticks:   m.ticks,
		Cleared: m.gameState.Cleared,
	})
	if err != nil {
		m.logger.Warn("could not save run", "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".contra", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// inspector returns the game's debug view while it is enabled.
func (m Model) inspector() (registry.Inspectable, bool) {
	insp, ok := m.game.(registry.Inspectable)
	if !ok || !insp.DebugEnabled() {
		return nil, false
	}
	return insp, true
}

// playArea returns the size of the game screen: the terminal minus the
// help line and, while shown, the debug panel.
func (m Model) playArea() (int, int) {
	w, h := m.width, m.height-helpHeight
	if _, ok := m.inspector(); ok && w > panelWidth*2 {
		w -= panelWidth
	}
	return max(w, 1), max(h, 1)
}

// syncViewport tells the game the size it is drawn at.
func (m Model) syncViewport() {
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.playArea())
	}
}

func (m Model) debugPanel(height int) string {
	insp, ok := m.inspector()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("DEBUG"))
	for _, row := range insp.DebugRows() {
		b.WriteString("\n")
		b.WriteString(panelLabelStyle.Render(fmt.Sprintf("%-10s", row.Label)))
		b.WriteString(" ")
		b.WriteString(row.Value)
	}
	return panelStyle.Height(max(height-2, 1)).Render(b.String())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w, h := m.playArea()
	m.screen.Resize(w, h)
	m.game.Render(m.screen)

	view := m.palette.Render(m.screen)
	if w < m.width {
		if panel := m.debugPanel(h); panel != "" {
			view = lipgloss.JoinHorizontal(lipgloss.Top, view, panel)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, view, helpStyle.Render(m.help.View(m.keys)))
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	if c, ok := game.(registry.Closer); ok {
		c.Close()
	}
	return err
}
