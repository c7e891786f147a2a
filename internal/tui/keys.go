package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	create  key.Binding
	logout  key.Binding
	reload  key.Binding
	toggle  key.Binding
	setup   key.Binding
	change  key.Binding
	copy    key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	create:  key.NewBinding(key.WithKeys("ctrl+n")),
	logout:  key.NewBinding(key.WithKeys("ctrl+l")),
	reload:  key.NewBinding(key.WithKeys("r")),
	toggle:  key.NewBinding(key.WithKeys("t")),
	setup:   key.NewBinding(key.WithKeys("s")),
	change:  key.NewBinding(key.WithKeys("p")),
	copy:    key.NewBinding(key.WithKeys("c")),
}
