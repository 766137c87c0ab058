package tui

import "github.com/charmbracelet/bubbles/key"

// editorKeys are the bindings of the gradient editor.
type editorKeys struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	LeftFast  key.Binding
	RightFast key.Binding
	Commit    key.Binding
	Add       key.Binding
	Delete    key.Binding
	Color     key.Binding
	Position  key.Binding
	AngleDown key.Binding
	AngleUp   key.Binding
	AngleDec  key.Binding
	AngleInc  key.Binding
	Copy      key.Binding
	Focus     key.Binding
	Close     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newEditorKeys() editorKeys {
	return editorKeys{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "move stop"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "move stop"),
		),
		LeftFast: key.NewBinding(
			key.WithKeys("shift+left", "H"),
			key.WithHelp("H", "move -10"),
		),
		RightFast: key.NewBinding(
			key.WithKeys("shift+right", "L"),
			key.WithHelp("L", "move +10"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "drop stop"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add stop"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "delete stop"),
		),
		Color: key.NewBinding(
			key.WithKeys("c", " "),
			key.WithHelp("c", "color"),
		),
		Position: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "position"),
		),
		AngleDown: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "angle -1"),
		),
		AngleUp: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "angle +1"),
		),
		AngleDec: key.NewBinding(
			key.WithKeys("{"),
			key.WithHelp("{", "angle -15"),
		),
		AngleInc: key.NewBinding(
			key.WithKeys("}"),
			key.WithHelp("}", "angle +15"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy css"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "presets"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k editorKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Delete, k.Color, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k editorKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.LeftFast, k.RightFast, k.Commit},
		{k.Add, k.Delete, k.Color, k.Position},
		{k.AngleDown, k.AngleUp, k.AngleDec, k.AngleInc},
		{k.Copy, k.Focus, k.Close, k.Help, k.Quit},
	}
}
