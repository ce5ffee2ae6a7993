package timer

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	start   key.Binding
	stop    key.Binding
	refresh key.Binding
	table   key.Binding
	quit    key.Binding
}

func defaultKeymap() keymap {
	return keymap{
		start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start"),
		),
		stop: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "stop"),
		),
		refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		table: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle sessions"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp only lists the bindings that apply to the current state.
func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.start, k.stop, k.refresh, k.table, k.quit}
}

func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// sync enables start or stop depending on whether a session is running.
func (k *keymap) sync(running bool) {
	k.start.SetEnabled(!running)
	k.stop.SetEnabled(running)
}
