package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Field nudging (keyboard alternative to mouse dragging)
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	NextField key.Binding
	PrevField key.Binding

	// Cheque appearance
	CyclePreset    key.Binding
	ToggleLanguage key.Binding
	ToggleACPayee  key.Binding
	ToggleBearer   key.Binding
	FontBigger     key.Binding
	FontSmaller    key.Binding
	Reset          key.Binding

	// Application
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "nudge up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "nudge down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "nudge left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "nudge right"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("Shift+Tab", "previous field"),
		),

		CyclePreset: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "cycle bank"),
		),
		ToggleLanguage: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "thai/english"),
		),
		ToggleACPayee: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "A/C payee stamp"),
		),
		ToggleBearer: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "bearer strike"),
		),
		FontBigger: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "font bigger"),
		),
		FontSmaller: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "font smaller"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset positions"),
		),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.CyclePreset, k.Reset, k.Help, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.NextField, k.PrevField, k.Reset},
		{k.CyclePreset, k.ToggleLanguage, k.ToggleACPayee, k.ToggleBearer},
		{k.FontBigger, k.FontSmaller, k.Help, k.Quit},
	}
}
