package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetromino/internal/core"
)

// KeyMap defines the key bindings for the inspector.
type KeyMap struct {
	Rotate     key.Binding
	RotateBack key.Binding
	NextKind   key.Binding
	PrevKind   key.Binding
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	Reset      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Rotate, k.RotateBack, k.NextKind, k.Reset, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Rotate, k.RotateBack, k.NextKind, k.PrevKind},
		{k.Left, k.Right, k.Up, k.Down},
		{k.Reset, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Rotate: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space/x", "rotate"),
		),
		RotateBack: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "rotate back"),
		),
		NextKind: key.NewBinding(
			key.WithKeys("tab", "n"),
			key.WithHelp("tab/n", "next kind"),
		),
		PrevKind: key.NewBinding(
			key.WithKeys("shift+tab", "p"),
			key.WithHelp("S-tab/p", "prev kind"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "anchor left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "anchor right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "anchor up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "anchor down"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to an inspector action.
// The help toggle is handled by the model and maps to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Rotate):
		return core.ActionRotate
	case key.Matches(msg, k.RotateBack):
		return core.ActionRotateBack
	case key.Matches(msg, k.NextKind):
		return core.ActionNextKind
	case key.Matches(msg, k.PrevKind):
		return core.ActionPrevKind
	case key.Matches(msg, k.Left):
		return core.ActionMoveLeft
	case key.Matches(msg, k.Right):
		return core.ActionMoveRight
	case key.Matches(msg, k.Up):
		return core.ActionMoveUp
	case key.Matches(msg, k.Down):
		return core.ActionMoveDown
	case key.Matches(msg, k.Reset):
		return core.ActionReset
	}
	return core.ActionNone
}
