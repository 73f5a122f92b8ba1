package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up          key.Binding
	down        key.Binding
	enter       key.Binding
	esc         key.Binding
	tab         key.Binding
	backtab     key.Binding
	quit        key.Binding
	search      key.Binding
	history     key.Binding
	reports     key.Binding
	about       key.Binding
	addEntry    key.Binding
	removeEntry key.Binding
	cycleType   key.Binding
	delete      key.Binding
	clearAll    key.Binding
	copy        key.Binding
	copyEmail   key.Binding
	yes         key.Binding
	no          key.Binding
}

var keys = keyMap{
	up:          key.NewBinding(key.WithKeys("up", "k")),
	down:        key.NewBinding(key.WithKeys("down", "j")),
	enter:       key.NewBinding(key.WithKeys("enter")),
	esc:         key.NewBinding(key.WithKeys("esc")),
	tab:         key.NewBinding(key.WithKeys("tab")),
	backtab:     key.NewBinding(key.WithKeys("shift+tab")),
	quit:        key.NewBinding(key.WithKeys("ctrl+c")),
	search:      key.NewBinding(key.WithKeys("f1")),
	history:     key.NewBinding(key.WithKeys("f2")),
	reports:     key.NewBinding(key.WithKeys("f3")),
	about:       key.NewBinding(key.WithKeys("f4")),
	addEntry:    key.NewBinding(key.WithKeys("ctrl+a")),
	removeEntry: key.NewBinding(key.WithKeys("ctrl+x")),
	cycleType:   key.NewBinding(key.WithKeys("ctrl+t")),
	delete:      key.NewBinding(key.WithKeys("d")),
	clearAll:    key.NewBinding(key.WithKeys("D")),
	copy:        key.NewBinding(key.WithKeys("c")),
	copyEmail:   key.NewBinding(key.WithKeys("y")),
	yes:         key.NewBinding(key.WithKeys("y")),
	no:          key.NewBinding(key.WithKeys("n")),
}
