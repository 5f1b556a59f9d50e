package tui

import "github.com/charmbracelet/bubbles/key"

// listKeys are active while browsing files
type listKeys struct {
	Prev       key.Binding
	Next       key.Binding
	NotStarted key.Binding
	InProgress key.Binding
	Completed  key.Binding
	Notes      key.Binding
	Save       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

func newListKeys() listKeys {
	return listKeys{
		Prev:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev status")),
		Next:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next status")),
		NotStarted: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "not started")),
		InProgress: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "in progress")),
		Completed:  key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "completed")),
		Notes:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "notes")),
		Save:       key.NewBinding(key.WithKeys("s", "ctrl+s"), key.WithHelp("s", "save")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "save & quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit without saving")),
	}
}

// ShortHelp implements help.KeyMap
func (k listKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Notes, k.Save, k.Quit}
}

// FullHelp implements help.KeyMap
func (k listKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.NotStarted, k.InProgress, k.Completed},
		{k.Notes, k.Save, k.Quit, k.ForceQuit},
	}
}

// editorKeys are active in the notes editor
type editorKeys struct {
	Save      key.Binding
	SaveClose key.Binding
	Close     key.Binding
}

func newEditorKeys() editorKeys {
	return editorKeys{
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		SaveClose: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "save & close")),
		Close:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

// ShortHelp implements help.KeyMap
func (k editorKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.SaveClose, k.Close}
}

// FullHelp implements help.KeyMap
func (k editorKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
