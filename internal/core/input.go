package core

// Action is a semantic input event, abstracted from physical key presses.
// The platform layer maps keys to actions; the session reacts to actions
// according to its current state.
type Action int

const (
	ActionNone     Action = iota
	ActionConfirm         // Enter - start the game from the menu
	ActionSettings        // S - open settings from the menu
	ActionQuit            // Q - quit from the menu
	ActionFreeze          // Space - freeze the moving platform
	ActionCancel          // Escape - leave settings
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionSettings:
		return "Settings"
	case ActionQuit:
		return "Quit"
	case ActionFreeze:
		return "Freeze"
	case ActionCancel:
		return "Cancel"
	default:
		return "Unknown"
	}
}
