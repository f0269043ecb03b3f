package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	left       key.Binding
	right      key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	reload     key.Binding
	sortColumn key.Binding
	sortDir    key.Binding
	prevPeriod key.Binding
	nextPeriod key.Binding
	copy       key.Binding
	yes        key.Binding
	no         key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	left:       key.NewBinding(key.WithKeys("left")),
	right:      key.NewBinding(key.WithKeys("right")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	reload:     key.NewBinding(key.WithKeys("r")),
	sortColumn: key.NewBinding(key.WithKeys("s")),
	sortDir:    key.NewBinding(key.WithKeys("o")),
	prevPeriod: key.NewBinding(key.WithKeys("[")),
	nextPeriod: key.NewBinding(key.WithKeys("]")),
	copy:       key.NewBinding(key.WithKeys("c")),
	yes:        key.NewBinding(key.WithKeys("y")),
	no:         key.NewBinding(key.WithKeys("n")),
}
