package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Path    key.Binding
	Sidebar key.Binding
	Open    key.Binding
	Help    key.Binding
}

var keys = keyMap{
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Pause:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause/resume")),
	Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
	Path:    key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "path overlay")),
	Sidebar: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "files")),
	Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Restart, k.Path, k.Sidebar, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Restart, k.Path},
		{k.Sidebar, k.Open, k.Help, k.Quit},
	}
}
