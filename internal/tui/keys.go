package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Add    key.Binding
	Toggle key.Binding
	Delete key.Binding
	Edit   key.Binding
	Search key.Binding
	Hide   key.Binding
	Copy   key.Binding
	Quit   key.Binding

	// ForceQuit also works while an input box has focus.
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Toggle: key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "check")),
		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Hide:   key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hide checked")),
		Copy:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),

		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Delete, k.Edit, k.Search, k.Hide, k.Copy}
}
