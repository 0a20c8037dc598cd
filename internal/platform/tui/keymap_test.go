package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rosowskimik/tui-snake/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name       string
		msg        tea.KeyMsg
		wantAction core.Action
		wantQuit   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"s", runeKey('s'), core.ActionDown, false},
		{"w", runeKey('w'), core.ActionUp, false},
		{"h", runeKey('h'), core.ActionLeft, false},
		{"l", runeKey('l'), core.ActionRight, false},
		{"j", runeKey('j'), core.ActionDown, false},
		{"k", runeKey('k'), core.ActionUp, false},
		{"q quits", runeKey('q'), core.ActionNone, true},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionNone, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionNone, true},
		{"unbound key", runeKey('x'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, isQuit := keys.MapKey(tt.msg)
			if action != tt.wantAction {
				t.Errorf("action = %v, want %v", action, tt.wantAction)
			}
			if isQuit != tt.wantQuit {
				t.Errorf("isQuit = %v, want %v", isQuit, tt.wantQuit)
			}
		})
	}
}
