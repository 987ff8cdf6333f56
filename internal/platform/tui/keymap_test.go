package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-contra/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"a", runeKey('a'), core.ActionLeft, false},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"w", runeKey('w'), core.ActionUp, false},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump, false},
		{"j", runeKey('j'), core.ActionFire, false},
		{"f", runeKey('f'), core.ActionFire, false},
		{"e", runeKey('e'), core.ActionZoomIn, false},
		{"q", runeKey('q'), core.ActionZoomOut, false},
		{"h", runeKey('h'), core.ActionPanLeft, false},
		{"n", runeKey('n'), core.ActionPanDown, false},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionDebug, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tc.msg.String(), action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}
	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
		}
	}
}

func TestHelpCoversGameplayKeys(t *testing.T) {
	km := DefaultKeyMap()
	seen := 0
	for _, col := range km.FullHelp() {
		seen += len(col)
	}
	if seen < len(km.actions()) {
		t.Errorf("full help lists %d bindings, expected at least %d", seen, len(km.actions()))
	}
	if len(km.ShortHelp()) == 0 {
		t.Error("short help is empty")
	}
}
