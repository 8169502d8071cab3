package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	quit key.Binding
	copy key.Binding
}

var keys = keyMap{
	quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	copy: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy identifiers")),
}
