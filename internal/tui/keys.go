package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the explorer's key bindings.
type KeyMap struct {
	PaymentUp   key.Binding
	PaymentDown key.Binding
	ExtraUp     key.Binding
	ExtraDown   key.Binding
	ToggleGrace key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PaymentUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "payment +$25"),
		),
		PaymentDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "payment -$25"),
		),
		ExtraUp: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "annual extra +$100"),
		),
		ExtraDown: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "annual extra -$100"),
		),
		ToggleGrace: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "toggle grace period"),
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
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PaymentUp, k.PaymentDown, k.ExtraUp, k.ExtraDown, k.ToggleGrace, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PaymentUp, k.PaymentDown},
		{k.ExtraUp, k.ExtraDown},
		{k.ToggleGrace, k.Help, k.Quit},
	}
}
