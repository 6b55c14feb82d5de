package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"propedit/internal/tui/widgets/helpoverlay"
)

type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
	Insert   key.Binding
	Back     key.Binding
	Diff     key.Binding
	View     key.Binding
	Copy     key.Binding
	Save     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Next:     key.NewBinding(key.WithKeys("tab", "down", "j"), key.WithHelp("tab/↓", "next field")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab", "up", "k"), key.WithHelp("shift+tab/↑", "previous field")),
		Activate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "press, toggle or edit")),
		Insert:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "INSERT mode")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "CMD mode / cancel sub-editor")),
		Diff:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "show changes")),
		View:     key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "toggle unified/side-by-side")),
		Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy document")),
		Save:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) sections() []helpoverlay.Section {
	return []helpoverlay.Section{
		{Title: "Navigation", Keys: []key.Binding{k.Next, k.Prev}},
		{Title: "Actions", Keys: []key.Binding{k.Activate, k.Save, k.Copy}},
		{Title: "View", Keys: []key.Binding{k.Diff, k.View, k.Help}},
		{Title: "Editor", Keys: []key.Binding{k.Insert, k.Back, k.Quit}},
	}
}
