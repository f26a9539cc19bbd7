package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mlevkov/stacktower/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a session action. The session decides
// what each action means in its current state; unbound keys map to
// ActionNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "enter":
		return core.ActionConfirm
	case " ":
		return core.ActionFreeze
	case "s":
		return core.ActionSettings
	case "q":
		return core.ActionQuit
	case "esc", "b":
		return core.ActionCancel
	}
	return core.ActionNone
}
