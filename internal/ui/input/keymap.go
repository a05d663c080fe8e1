package input

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every key binding of the browser
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	NextDict  key.Binding
	PrevDict  key.Binding
	Submit    key.Binding
	Backspace key.Binding
	Copy      key.Binding
	Pager     key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous word")),
		Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next word")),
		PageUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("PgUp", "page up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("PgDn", "page down")),
		NextDict:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next dictionary")),
		PrevDict:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous dictionary")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "look up")),
		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete char")),
		Copy:      key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("Ctrl+Y", "copy")),
		Pager:     key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("Ctrl+O", "open in pager")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("Ctrl+C", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Copy, k.PrevDict, k.NextDict, k.Pager}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Submit, k.Backspace},
		{k.PrevDict, k.NextDict},
		{k.Copy, k.Pager, k.Quit},
	}
}
