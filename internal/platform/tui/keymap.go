package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-contra/internal/core"
)

// KeyMap holds the key bindings of a game session. It implements
// help.KeyMap so the bindings double as the help line.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	Jump       key.Binding
	Fire       key.Binding
	ZoomIn     key.Binding
	ZoomOut    key.Binding
	PanLeft    key.Binding
	PanRight   key.Binding
	PanUp      key.Binding
	PanDown    key.Binding
	Debug      key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Confirm    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:       key.NewBinding(key.WithKeys("a", "left"), key.WithHelp("a/←", "left")),
		Right:      key.NewBinding(key.WithKeys("d", "right"), key.WithHelp("d/→", "right")),
		Up:         key.NewBinding(key.WithKeys("w", "up"), key.WithHelp("w/↑", "aim up")),
		Down:       key.NewBinding(key.WithKeys("s", "down"), key.WithHelp("s/↓", "aim down")),
		Jump:       key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "jump")),
		Fire:       key.NewBinding(key.WithKeys("j", "f"), key.WithHelp("j/f", "fire")),
		ZoomIn:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "zoom in")),
		ZoomOut:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "zoom out")),
		PanLeft:    key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "pan left")),
		PanRight:   key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "pan right")),
		PanUp:      key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "pan up")),
		PanDown:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "pan down")),
		Debug:      key.NewBinding(key.WithKeys("tab", "f1"), key.WithHelp("tab", "debug")),
		Pause:      key.NewBinding(key.WithKeys("p", "esc"), key.WithHelp("p", "pause")),
		Restart:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Confirm:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Fire, k.Debug, k.Pause, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down, k.Jump, k.Fire},
		{k.ZoomIn, k.ZoomOut, k.PanLeft, k.PanRight, k.PanUp, k.PanDown},
		{k.Debug, k.Pause, k.Restart, k.Screenshot, k.Quit},
	}
}

// actions returns the bindings that translate to game actions, in match
// order.
func (k KeyMap) actions() []struct {
	binding key.Binding
	action  core.Action
} {
	return []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Jump, core.ActionJump},
		{k.Fire, core.ActionFire},
		{k.ZoomIn, core.ActionZoomIn},
		{k.ZoomOut, core.ActionZoomOut},
		{k.PanLeft, core.ActionPanLeft},
		{k.PanRight, core.ActionPanRight},
		{k.PanUp, core.ActionPanUp},
		{k.PanDown, core.ActionPanDown},
		{k.Debug, core.ActionDebug},
		{k.Pause, core.ActionPause},
		{k.Restart, core.ActionRestart},
		{k.Confirm, core.ActionConfirm},
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	if key.Matches(msg, k.Quit) {
		return core.ActionQuit, true
	}
	for _, b := range k.actions() {
		if key.Matches(msg, b.binding) {
			return b.action, false
		}
	}
	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (k KeyMap) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "esc":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
