package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit  key.Binding
	Back  key.Binding
	Help  key.Binding
	Enter key.Binding
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Tab   key.Binding

	// Editor actions, active while no field is being edited
	Edit       key.Binding
	Optimize   key.Binding
	Variations key.Binding
	Suggest    key.Binding
	Save       key.Binding
	Copy       key.Binding
	New        key.Binding
	Chips      key.Binding
	Model      key.Binding
	Aspect     key.Binding
	History    key.Binding
	Templates  key.Binding
	Board      key.Binding
	Settings   key.Binding
	DefaultNeg key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("up/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("down/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("left/h", "previous"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("right/l", "next"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	Edit: key.NewBinding(
		key.WithKeys("i", "enter"),
		key.WithHelp("i", "edit field"),
	),
	Optimize: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "optimize"),
	),
	Variations: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "variations"),
	),
	Suggest: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "suggest"),
	),
	Save: key.NewBinding(
		key.WithKeys("s", "ctrl+s"),
		key.WithHelp("s", "save"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new prompt"),
	),
	Chips: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "chips"),
	),
	Model: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "target model"),
	),
	Aspect: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "aspect ratio"),
	),
	History: key.NewBinding(
		key.WithKeys("H"),
		key.WithHelp("H", "history"),
	),
	Templates: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "templates"),
	),
	Board: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "send to board"),
	),
	Settings: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "settings"),
	),
	DefaultNeg: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "default negative"),
	),
}
