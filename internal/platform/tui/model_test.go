package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-contra/internal/core"
	"github.com/vovakirdan/tui-contra/internal/registry"
	"github.com/vovakirdan/tui-contra/internal/storage"
)

// stubGame records its input and ends after a scripted number of ticks.
type stubGame struct {
	resets  int
	inputs  []core.InputFrame
	endAt   int
	score   int
	over    bool
	debug   bool
	renderW int
	viewW   int
	viewH   int
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.inputs = nil
	g.score = 0
	g.over = false
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	if in.Has(core.ActionDebug) {
		g.debug = !g.debug
	}
	res := core.StepResult{}
	if !g.over && in.Has(core.ActionFire) {
		g.score += 100
		res.Shots, res.Kills = 1, 1
	}
	if g.endAt > 0 && len(g.inputs) >= g.endAt {
		g.over = true
	}
	res.State = g.State()
	return res
}

func (g *stubGame) Render(dst *core.Screen) {
	g.renderW = dst.Width()
	dst.Clear()
	dst.DrawText(0, 0, "STUB")
}

func (g *stubGame) Resize(width, height int) {
	g.viewW, g.viewH = width, height
}

func (g *stubGame) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.over, Cleared: g.over}
}

func (g *stubGame) DebugEnabled() bool { return g.debug }
func (g *stubGame) DebugRows() []registry.DebugRow {
	return []registry.DebugRow{{Label: "inputs", Value: "n"}}
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestModel(g *stubGame, store *storage.Store) (Model, *clock) {
	c := &clock{t: time.Unix(1000, 0)}
	m := NewModel(g, store, core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60, Seed: 1})
	m.now = c.now
	m.Init()
	return m, c
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func tick(t *testing.T, m Model, c *clock, d time.Duration) Model {
	t.Helper()
	c.t = c.t.Add(d)
	return send(t, m, TickMsg(c.t))
}

func TestModelKeyBecomesHeldInput(t *testing.T) {
	g := &stubGame{}
	m, c := newTestModel(g, nil)

	m = send(t, m, runeKey('d'))
	m = tick(t, m, c, 16*time.Millisecond)
	m = tick(t, m, c, 16*time.Millisecond)

	if len(g.inputs) != 2 {
		t.Fatalf("steps = %d, expected 2", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionRight) {
		t.Error("first tick should see the press")
	}
	if g.inputs[1].Has(core.ActionRight) || !g.inputs[1].Down(core.ActionRight) {
		t.Error("second tick should see the key held, not pressed again")
	}

	m = tick(t, m, c, time.Second)
	if !g.inputs[2].Released(core.ActionRight) {
		t.Error("key should be released once no repeats arrive")
	}
	_ = m
}

func TestModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	g := &stubGame{endAt: 3}
	m, c := newTestModel(g, store)

	m = send(t, m, runeKey('j'))
	for range 5 {
		m = tick(t, m, c, 16*time.Millisecond)
	}

	runs, err := store.TopRuns("stub", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs = %d, expected 1", len(runs))
	}
	r := runs[0]
	if r.Score != 100 || r.Kills != 1 || r.Shots != 1 || !r.Cleared || r.Ticks != 3 {
		t.Errorf("saved run = %+v", r)
	}

	// Restart after the game ended starts a fresh run.
	m = send(t, m, runeKey('r'))
	m = tick(t, m, c, 16*time.Millisecond)
	if g.resets != 2 {
		t.Errorf("resets = %d, expected 2", g.resets)
	}
	if m.runSaved || m.kills != 0 || m.ticks != 0 {
		t.Error("restart should reset the run tally")
	}
}

func TestModelQuitSavesAbandonedRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	g := &stubGame{}
	m, c := newTestModel(g, store)
	m = send(t, m, runeKey('j'))
	m = tick(t, m, c, 16*time.Millisecond)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if v := next.(Model).View(); v != "" {
		t.Errorf("view after quit = %q", v)
	}

	runs, _ := store.TopRuns("stub", 10)
	if len(runs) != 1 || runs[0].Cleared {
		t.Errorf("runs = %+v, expected one uncleared run", runs)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &stubGame{}
	m, _ := newTestModel(g, nil)

	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if g.resets != 1 {
		t.Errorf("resize reset the game (%d resets)", g.resets)
	}
	m.View()
	if g.renderW != 120 {
		t.Errorf("render width = %d, expected 120", g.renderW)
	}
}

func TestModelSyncsViewportBeforeStep(t *testing.T) {
	g := &stubGame{}
	m, c := newTestModel(g, nil)
	if g.viewW != 100 || g.viewH != 30-helpHeight {
		t.Fatalf("viewport after init = %dx%d, expected %dx%d", g.viewW, g.viewH, 100, 30-helpHeight)
	}

	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m = tick(t, m, c, 16*time.Millisecond)
	if g.viewW != 120 || g.viewH != 40-helpHeight {
		t.Errorf("viewport after resize = %dx%d, expected %dx%d", g.viewW, g.viewH, 120, 40-helpHeight)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = tick(t, m, c, 16*time.Millisecond)
	tick(t, m, c, 16*time.Millisecond)
	if g.viewW != 120-panelWidth {
		t.Errorf("viewport width with debug panel = %d, expected %d", g.viewW, 120-panelWidth)
	}
}

func TestModelDebugPanel(t *testing.T) {
	g := &stubGame{}
	m, c := newTestModel(g, nil)

	if strings.Contains(m.View(), "DEBUG") {
		t.Error("panel shown before debug was enabled")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = tick(t, m, c, 16*time.Millisecond)
	if !g.debug {
		t.Fatal("tab should toggle debug")
	}

	view := m.View()
	if !strings.Contains(view, "DEBUG") || !strings.Contains(view, "inputs") {
		t.Errorf("debug panel missing from view:\n%s", view)
	}
	if g.renderW != 100-panelWidth {
		t.Errorf("render width = %d, expected %d", g.renderW, 100-panelWidth)
	}
	if !strings.Contains(view, "STUB") {
		t.Error("game screen missing from view")
	}
}
