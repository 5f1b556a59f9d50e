package tui

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ytget/video-tracker/internal/model"
	"github.com/ytget/video-tracker/internal/tracker"
)

const notesPreviewWidth = 60

// reserved rows around the list and the editor
const (
	headerHeight = 3
	footerHeight = 3
)

type item struct {
	file   string
	record model.VideoRecord
}

func (i item) FilterValue() string { return i.file }

type itemDelegate struct{}

func (d itemDelegate) Height() int                             { return 2 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(item)
	if !ok {
		return
	}

	status := StatusStyle(i.record.Status).Render(i.record.Status.Label())
	str := fmt.Sprintf("%s  %s", i.file, status)

	fn := ItemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return SelectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprintf(w, "%s\n%s", fn(str), NotesPreviewStyle.Render(notesPreview(i.record.Notes)))
}

// notesPreview returns the first line of notes, shortened for the list
func notesPreview(notes string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(notes), "\n")
	runes := []rune(line)
	if len(runes) > notesPreviewWidth {
		return string(runes[:notesPreviewWidth-1]) + "…"
	}
	return line
}

// Model is the bubbletea model of the terminal shell
type Model struct {
	tracker tracker.Dispatcher

	list     list.Model
	notes    textarea.Model
	help     help.Model
	listKeys listKeys
	edKeys   editorKeys

	// editing is the file whose notes are open, "" while browsing
	editing string

	// stored notes and the text the textarea made of them; the textarea
	// expands tabs, so unedited notes are saved from stored
	stored string
	shown  string

	message  string
	isError  bool
	quitting bool
}

// New creates the terminal model over a tracker
func New(t tracker.Dispatcher) Model {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.Title = filepath.Base(t.Folder())
	l.Styles.Title = TitleStyle
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)

	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.CharLimit = 0

	m := Model{
		tracker:  t,
		list:     l,
		notes:    ta,
		help:     help.New(),
		listKeys: newListKeys(),
		edKeys:   newEditorKeys(),
	}
	m.list.SetItems(m.items())
	return m
}

func (m Model) items() []list.Item {
	files := m.tracker.Files()
	items := make([]list.Item, 0, len(files))
	for _, file := range files {
		rec, _ := m.tracker.Record(file)
		items = append(items, item{file: file, record: rec})
	}
	return items
}

func (m Model) selected() (item, bool) {
	i, ok := m.list.SelectedItem().(item)
	return i, ok
}

// Editing returns the file whose notes editor is open
func (m Model) Editing() string {
	return m.editing
}

// Message returns the current status line
func (m Model) Message() string {
	return m.message
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := AppStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v-headerHeight-footerHeight)
		m.notes.SetWidth(msg.Width - h)
		m.notes.SetHeight(msg.Height - v - headerHeight - footerHeight)
		m.help.Width = msg.Width - h
		return m, nil

	case tea.KeyMsg:
		if m.editing != "" {
			return m.updateEditor(msg)
		}
		// let the list own the keyboard while typing a filter
		if m.list.FilterState() == list.Filtering {
			break
		}
		return m.updateList(msg)
	}

	var cmd tea.Cmd
	if m.editing != "" {
		m.notes, cmd = m.notes.Update(msg)
		return m, cmd
	}
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.listKeys.ForceQuit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.listKeys.Quit):
		result := m.dispatch(tracker.SaveAndQuit{})
		if result.Quit {
			m.quitting = true
			return m, tea.Quit
		}
		m.message += " (ctrl+q quits without saving)"
		return m, nil

	case key.Matches(msg, m.listKeys.Save):
		m.dispatch(tracker.Save{})
		return m, nil
	}

	sel, ok := m.selected()
	if !ok {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.listKeys.Prev):
		m.dispatch(tracker.SetStatus{Name: sel.file, Status: sel.record.Status.Prev()})
	case key.Matches(msg, m.listKeys.Next):
		m.dispatch(tracker.SetStatus{Name: sel.file, Status: sel.record.Status.Next()})
	case key.Matches(msg, m.listKeys.NotStarted):
		m.dispatch(tracker.SetStatus{Name: sel.file, Status: model.StatusNotStarted})
	case key.Matches(msg, m.listKeys.InProgress):
		m.dispatch(tracker.SetStatus{Name: sel.file, Status: model.StatusInProgress})
	case key.Matches(msg, m.listKeys.Completed):
		m.dispatch(tracker.SetStatus{Name: sel.file, Status: model.StatusCompleted})
	case key.Matches(msg, m.listKeys.Notes):
		m.editing = sel.file
		m.notes.SetValue(strings.ReplaceAll(sel.record.Notes, "\r\n", "\n"))
		m.stored = sel.record.Notes
		m.shown = m.notes.Value()
		m.message = ""
		cmd := m.notes.Focus()
		return m, cmd
	default:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	m.list.SetItems(m.items())
	return m, nil
}

func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.edKeys.Save):
		m.saveNotes()
		return m, nil

	case key.Matches(msg, m.edKeys.SaveClose):
		m.saveNotes()
		return m.closeEditor(), nil

	case key.Matches(msg, m.edKeys.Close):
		return m.closeEditor(), nil
	}

	var cmd tea.Cmd
	m.notes, cmd = m.notes.Update(msg)
	return m, cmd
}

// saveNotes stores the editor text, or the original notes if nothing changed
func (m *Model) saveNotes() {
	notes := m.stored
	if value := m.notes.Value(); value != m.shown {
		notes = value
	}
	m.dispatch(tracker.SetNotes{Name: m.editing, Notes: notes})
	m.stored = notes
	m.shown = m.notes.Value()
}

func (m Model) closeEditor() Model {
	m.editing = ""
	m.notes.Blur()
	m.list.SetItems(m.items())
	return m
}

// dispatch sends ev to the tracker and records the outcome in the status line
func (m *Model) dispatch(ev tracker.Event) tracker.Result {
	result := m.tracker.Dispatch(ev)
	switch {
	case result.Err != nil:
		m.message = "Error: " + result.Err.Error()
		m.isError = true
	case result.Saved:
		m.message = "Saved"
		m.isError = false
	}
	return result
}

func (m Model) summary() string {
	s := m.tracker.Summary()
	text := fmt.Sprintf("%d completed · %d in progress · %d not started",
		s[model.StatusCompleted], s[model.StatusInProgress], s[model.StatusNotStarted])
	if stale := len(m.tracker.Stale()); stale > 0 {
		text += fmt.Sprintf(" · %d missing", stale)
	}
	return text
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	if m.editing != "" {
		b.WriteString(TitleStyle.Render("Notes: " + m.editing))
		b.WriteString("\n\n")
		b.WriteString(m.notes.View())
	} else {
		b.WriteString(SummaryStyle.Render(m.summary()))
		b.WriteString("\n\n")
		if len(m.list.Items()) == 0 {
			b.WriteString("No video files in " + m.tracker.Folder())
		} else {
			b.WriteString(m.list.View())
		}
	}

	b.WriteString("\n")
	if m.message != "" {
		style := SuccessStyle
		if m.isError {
			style = ErrorStyle
		}
		b.WriteString(style.Render(m.message))
	}
	b.WriteString("\n")
	if m.editing != "" {
		b.WriteString(m.help.View(m.edKeys))
	} else {
		b.WriteString(m.help.View(m.listKeys))
	}

	return AppStyle.Render(b.String())
}
