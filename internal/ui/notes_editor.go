package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/video-tracker/internal/store"
	"github.com/ytget/video-tracker/internal/tracker"
)

// saveShortcut is Ctrl+S (Cmd+S on macOS)
var saveShortcut = &desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierShortcutDefault}

// notesEntry is a multi-line entry that also reacts to the save shortcut and
// Escape while focused. Select all, copy, paste, undo and redo are handled by
// widget.Entry itself.
type notesEntry struct {
	widget.Entry

	onSave   func()
	onEscape func()
}

func newNotesEntry() *notesEntry {
	e := &notesEntry{}
	e.MultiLine = true
	e.Wrapping = fyne.TextWrapWord
	e.ExtendBaseWidget(e)
	return e
}

// TypedShortcut intercepts the save shortcut and forwards everything else
func (e *notesEntry) TypedShortcut(s fyne.Shortcut) {
	if cs, ok := s.(*desktop.CustomShortcut); ok &&
		cs.KeyName == saveShortcut.KeyName && cs.Modifier == saveShortcut.Modifier {
		if e.onSave != nil {
			e.onSave()
		}
		return
	}
	e.Entry.TypedShortcut(s)
}

// TypedKey closes the editor on Escape
func (e *notesEntry) TypedKey(key *fyne.KeyEvent) {
	if key.Name == fyne.KeyEscape && e.onEscape != nil {
		e.onEscape()
		return
	}
	e.Entry.TypedKey(key)
}

// NotesEditor is the notes window of one file
type NotesEditor struct {
	window       fyne.Window
	file         string
	localization *Localization

	entry        *notesEntry
	statusLabel  *widget.Label
	saveBtn      *widget.Button
	saveCloseBtn *widget.Button

	// onSave persists the text and reports the outcome
	onSave func(file, notes string) tracker.Result
	// onClosed runs once the window is gone
	onClosed func(file string)
}

// NewNotesEditor creates the editor window for file, pre-filled with notes
func NewNotesEditor(app fyne.App, file, notes string, localization *Localization,
	onSave func(file, notes string) tracker.Result, onClosed func(file string)) *NotesEditor {
	ne := &NotesEditor{
		window:       app.NewWindow(localization.Format(KeyNotesTitle, file)),
		file:         file,
		localization: localization,
		onSave:       onSave,
		onClosed:     onClosed,
	}
	ne.createUI(notes)
	return ne
}

func (ne *NotesEditor) createUI(notes string) {
	ne.entry = newNotesEntry()
	ne.entry.SetText(notes)
	ne.entry.onSave = ne.Save
	ne.entry.onEscape = ne.Close

	ne.statusLabel = widget.NewLabel("")
	ne.statusLabel.Truncation = fyne.TextTruncateEllipsis

	ne.saveBtn = widget.NewButton(ne.localization.GetText(KeySave), ne.Save)
	ne.saveCloseBtn = widget.NewButton(ne.localization.GetText(KeySaveAndClose), ne.SaveAndClose)
	ne.saveCloseBtn.Importance = widget.HighImportance

	buttons := container.NewHBox(ne.saveBtn, ne.saveCloseBtn)
	bottom := container.NewBorder(nil, nil, nil, buttons, ne.statusLabel)

	ne.window.SetContent(container.NewBorder(nil, bottom, nil, nil, ne.entry))
	ne.window.Resize(fyne.NewSize(NotesEditorWidth, NotesEditorHeight))
	ne.window.Canvas().AddShortcut(saveShortcut, func(fyne.Shortcut) { ne.Save() })
	ne.window.SetOnClosed(func() {
		if ne.onClosed != nil {
			ne.onClosed(ne.file)
		}
	})
}

// Show displays the editor and focuses the text
func (ne *NotesEditor) Show() {
	ne.window.Show()
	ne.window.Canvas().Focus(ne.entry)
}

// Focus brings an already open editor to the front
func (ne *NotesEditor) Focus() {
	ne.window.RequestFocus()
}

// Text returns the current editor contents
func (ne *NotesEditor) Text() string {
	return ne.entry.Text
}

// Save persists the notes and keeps the window open
func (ne *NotesEditor) Save() {
	if ne.onSave == nil {
		return
	}
	result := ne.onSave(ne.file, ne.entry.Text)
	if result.Err != nil {
		ne.statusLabel.SetText(IconError + " " + ne.localization.Format(KeySaveFailed, result.Err))
		return
	}
	ne.statusLabel.SetText(IconSaved + " " + ne.localization.Format(KeySavedTo, store.FileName))
}

// SaveAndClose persists the notes and closes the window. The in-memory notes
// are kept even if writing the file failed; the main window reports that.
func (ne *NotesEditor) SaveAndClose() {
	ne.Save()
	ne.Close()
}

// Close closes the window without saving
func (ne *NotesEditor) Close() {
	ne.window.Close()
}
