package effect

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the component key bindings. A zero KeyMap handles no keys.
type KeyMap struct {
	Restart key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
	}
}
