package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up          key.Binding
	down        key.Binding
	prevDay     key.Binding
	nextDay     key.Binding
	today       key.Binding
	enter       key.Binding
	esc         key.Binding
	tab         key.Binding
	backtab     key.Binding
	quit        key.Binding
	logout      key.Binding
	addFood     key.Binding
	addExercise key.Binding
	delete      key.Binding
	metrics     key.Binding
	assistant   key.Binding
	reload      key.Binding
	copy        key.Binding
	submit      key.Binding
	version     key.Binding
	yes         key.Binding
	no          key.Binding
}

var keys = keyMap{
	up:          key.NewBinding(key.WithKeys("up", "k")),
	down:        key.NewBinding(key.WithKeys("down", "j")),
	prevDay:     key.NewBinding(key.WithKeys("left", "h")),
	nextDay:     key.NewBinding(key.WithKeys("right")),
	today:       key.NewBinding(key.WithKeys("t")),
	enter:       key.NewBinding(key.WithKeys("enter")),
	esc:         key.NewBinding(key.WithKeys("esc")),
	tab:         key.NewBinding(key.WithKeys("tab")),
	backtab:     key.NewBinding(key.WithKeys("shift+tab")),
	quit:        key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:      key.NewBinding(key.WithKeys("l")),
	addFood:     key.NewBinding(key.WithKeys("f")),
	addExercise: key.NewBinding(key.WithKeys("e")),
	delete:      key.NewBinding(key.WithKeys("d")),
	metrics:     key.NewBinding(key.WithKeys("m")),
	assistant:   key.NewBinding(key.WithKeys("a")),
	reload:      key.NewBinding(key.WithKeys("r")),
	copy:        key.NewBinding(key.WithKeys("c")),
	submit:      key.NewBinding(key.WithKeys("ctrl+s")),
	version:     key.NewBinding(key.WithKeys("v")),
	yes:         key.NewBinding(key.WithKeys("y")),
	no:          key.NewBinding(key.WithKeys("n")),
}
