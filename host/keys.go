package host

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the host's own bindings. Controllers see keys first (via
// KeyHandler), so these only fire when the front controller passes.
type KeyMap struct {
	Quit    key.Binding
	Dismiss key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Dismiss, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Dismiss, k.Quit}}
}
