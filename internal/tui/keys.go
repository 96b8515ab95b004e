package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Enter    key.Binding
	Escape   key.Binding
	Filter   key.Binding
	Refresh  key.Binding
	Logs     key.Binding
	YAML     key.Binding
	Sort     key.Binding
	Previous key.Binding
	Wrap     key.Binding
	Copy     key.Binding
	Tab1     key.Binding
	Tab2     key.Binding
	Tab3     key.Binding
	Tab4     key.Binding
	Tab5     key.Binding
	Tab6     key.Binding
	TabNext  key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
	Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
	Top:      key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "top")),
	Bottom:   key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "bottom")),
	PageUp:   key.NewBinding(key.WithKeys("ctrl+u", "pgup"), key.WithHelp("C-u", "page up")),
	PageDown: key.NewBinding(key.WithKeys("ctrl+d", "pgdown"), key.WithHelp("C-d", "page dn")),
	Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Escape:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Filter:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
	Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Logs:     key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "logs")),
	YAML:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yaml")),
	Sort:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "sort")),
	Previous: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "previous logs")),
	Wrap:     key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "wrap")),
	Copy:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy name")),
	Tab1:     key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "namespaces")),
	Tab2:     key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "pods")),
	Tab3:     key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "jobs")),
	Tab4:     key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "rcs")),
	Tab5:     key.NewBinding(key.WithKeys("5"), key.WithHelp("5", "daemonsets")),
	Tab6:     key.NewBinding(key.WithKeys("6"), key.WithHelp("6", "deploys")),
	TabNext:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}
