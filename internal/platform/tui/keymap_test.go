package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mlevkov/stacktower/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	cases := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionFreeze},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")}, core.ActionSettings},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionCancel},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")}, core.ActionCancel},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, core.ActionNone},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionNone},
	}

	for _, c := range cases {
		if got := km.MapKey(c.msg); got != c.want {
			t.Errorf("MapKey(%q) = %v, want %v", c.msg.String(), got, c.want)
		}
	}
}
