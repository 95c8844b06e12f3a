package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mergedrop/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapCommand(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Command
		ok       bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.CommandMoveLeft, true},
		{"h", runeKey('h'), core.CommandMoveLeft, true},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.CommandMoveRight, true},
		{"l", runeKey('l'), core.CommandMoveRight, true},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.CommandSoftDrop, true},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.CommandHardDrop, true},
		{"p", runeKey('p'), core.CommandTogglePause, true},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.CommandTogglePause, true},
		{"r", runeKey('r'), core.CommandRestart, true},
		{"up arrow is unbound", tea.KeyMsg{Type: tea.KeyUp}, core.CommandNone, false},
		{"quit is not a game command", runeKey('q'), core.CommandNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd, ok := km.Command(tc.msg)
			if cmd != tc.expected || ok != tc.ok {
				t.Errorf("Command(%q) = (%v, %v), expected (%v, %v)", tc.msg.String(), cmd, ok, tc.expected, tc.ok)
			}
		})
	}
}
