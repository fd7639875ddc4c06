package core

// Action is a semantic inspector action, abstracted from physical keys.
type Action int

const (
	ActionNone       Action = iota
	ActionRotate            // Space, X - quarter turn
	ActionRotateBack        // Z - reverse quarter turn
	ActionNextKind          // Tab, N - next kind in catalog order
	ActionPrevKind          // Shift+Tab, P - previous kind
	ActionMoveLeft          // Left arrow, H
	ActionMoveRight         // Right arrow, L
	ActionMoveUp            // Up arrow, K
	ActionMoveDown          // Down arrow, J
	ActionReset             // R - rebuild the piece from the catalog
	ActionQuit              // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRotate:
		return "Rotate"
	case ActionRotateBack:
		return "RotateBack"
	case ActionNextKind:
		return "NextKind"
	case ActionPrevKind:
		return "PrevKind"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionReset:
		return "Reset"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
