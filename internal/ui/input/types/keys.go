package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the dropdown
type KeyMap struct {
	Open         key.Binding
	Close        key.Binding
	Up           key.Binding
	Down         key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	Favorite     key.Binding
	NextCategory key.Binding
	Favorites    key.Binding
	AllCoins     key.Binding
	Help         key.Binding
	Quit         key.Binding
	ForceQuit    key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter", " ", "/"),
			key.WithHelp("enter", "open search"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑/ctrl+p", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓/ctrl+n", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Favorite: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "toggle favorite"),
		),
		NextCategory: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch list"),
		),
		Favorites: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", "favorites"),
		),
		AllCoins: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "all coins"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ClosedHelp returns the bindings shown while the panel is closed
func (k KeyMap) ClosedHelp() []key.Binding {
	return []key.Binding{k.Open, k.Help, k.Quit}
}

// OpenHelp returns the bindings shown while the panel is open
func (k KeyMap) OpenHelp() []key.Binding {
	return []key.Binding{k.Favorite, k.NextCategory, k.Up, k.Down, k.Close}
}

// FullHelp returns every binding grouped by purpose
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Open, k.Close, k.Help, k.Quit, k.ForceQuit},
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Favorite, k.NextCategory, k.Favorites, k.AllCoins},
	}
}
