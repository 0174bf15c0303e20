package provider

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the provider key bindings. It implements help.KeyMap.
type KeyMap struct {
	DismissNewest key.Binding
	DismissAll    key.Binding
}

// DefaultKeyMap binds x to dismiss the newest toast and X to dismiss all.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		DismissNewest: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "dismiss"),
		),
		DismissAll: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "dismiss all"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.DismissNewest, k.DismissAll}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
