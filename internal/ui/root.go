package ui

import (
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/video-tracker/internal/config"
	"github.com/ytget/video-tracker/internal/model"
	"github.com/ytget/video-tracker/internal/platform"
	"github.com/ytget/video-tracker/internal/store"
	"github.com/ytget/video-tracker/internal/tracker"
)

// RootUI represents the main window
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	tracker      tracker.Dispatcher
	settings     *config.Settings
	localization *Localization

	rows    map[string]*VideoRow
	editors map[string]*NotesEditor

	summaryLabel      *widget.Label
	notificationLabel *widget.Label
	saveCloseBtn      *widget.Button

	// quit terminates the application; replaced in tests
	quit func()
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, t tracker.Dispatcher) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		tracker:      t,
		settings:     settings,
		localization: localization,
		rows:         make(map[string]*VideoRow),
		editors:      make(map[string]*NotesEditor),
		quit:         app.Quit,
	}

	ui.tracker.SetUpdateCallback(ui.onTrackerUpdate)

	ui.setupUI()
	window.SetCloseIntercept(ui.onCloseRequested)
	window.Canvas().AddShortcut(saveShortcut, func(fyne.Shortcut) { ui.dispatch(tracker.Save{}) })

	log.Printf("RootUI initialized for %s with %d files", t.Folder(), len(t.Files()))
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.window.SetTitle(ui.title())
	ui.createMenu()

	header := widget.NewLabel(IconFolder + " " + ui.tracker.Folder())
	header.TextStyle = fyne.TextStyle{Bold: true}
	header.Truncation = fyne.TextTruncateEllipsis

	ui.summaryLabel = widget.NewLabel("")
	ui.refreshSummary()

	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Truncation = fyne.TextTruncateEllipsis

	ui.saveCloseBtn = widget.NewButton(ui.localization.GetText(KeySaveAndClose), func() {
		ui.dispatch(tracker.SaveAndQuit{})
	})
	ui.saveCloseBtn.Importance = widget.HighImportance

	top := container.NewVBox(header, ui.summaryLabel, widget.NewSeparator())
	bottom := container.NewBorder(widget.NewSeparator(), nil, nil, ui.saveCloseBtn, ui.notificationLabel)

	content := container.NewBorder(top, bottom, nil, nil, ui.createRowList())
	ui.window.SetContent(content)
}

// createRowList builds one VideoRow per present file inside a scroll container
func (ui *RootUI) createRowList() fyne.CanvasObject {
	files := ui.tracker.Files()
	if len(files) == 0 {
		empty := widget.NewLabel(ui.localization.GetText(KeyNoVideos))
		empty.Alignment = fyne.TextAlignCenter
		return container.NewCenter(empty)
	}

	list := container.NewVBox()
	ui.rows = make(map[string]*VideoRow, len(files))
	for _, file := range files {
		rec, _ := ui.tracker.Record(file)
		row := NewVideoRow(file, rec, ui.localization)
		row.SetCallbacks(ui.onStatusChange, ui.onEditNotes, ui.onPlay, ui.onReveal)
		ui.rows[file] = row
		list.Add(row)
	}
	return container.NewVScroll(list)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	fileMenu := fyne.NewMenu(ui.localization.GetText(KeyFile),
		fyne.NewMenuItem(ui.localization.GetText(KeySave), func() { ui.dispatch(tracker.Save{}) }),
		fyne.NewMenuItem(ui.localization.GetText(KeyOpenFolder), ui.onOpenFolder),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(ui.localization.GetText(KeySaveAndClose), func() { ui.dispatch(tracker.SaveAndQuit{}) }),
	)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(fileMenu, languageMenu))
}

func (ui *RootUI) title() string {
	return ui.localization.GetText(KeyAppTitle) + TitleSeparator + filepath.Base(ui.tracker.Folder())
}

// dispatch sends an event to the tracker and acts on the outcome
func (ui *RootUI) dispatch(ev tracker.Event) tracker.Result {
	result := ui.tracker.Dispatch(ev)
	if result.Quit {
		ui.settings.SetWindowSize(ui.window.Canvas().Size())
		ui.quit()
	}
	return result
}

// onTrackerUpdate refreshes the affected row, the summary and the status bar
func (ui *RootUI) onTrackerUpdate(result tracker.Result) {
	if file := result.File(); file != "" {
		if row, ok := ui.rows[file]; ok {
			if rec, ok := ui.tracker.Record(file); ok {
				row.UpdateRecord(rec)
			}
		}
	}
	ui.refreshSummary()

	switch {
	case store.IsSaveError(result.Err):
		ui.showNotification(IconError + " " + ui.localization.Format(KeySaveFailed, result.Err))
	case result.Err != nil:
		ui.showNotification(IconError + " " + result.Err.Error())
	case result.Saved:
		ui.showNotification(IconSaved + " " + ui.localization.Format(KeySavedTo, filepath.Base(ui.tracker.Folder())))
	}
}

func (ui *RootUI) refreshSummary() {
	summary := ui.tracker.Summary()
	text := ui.localization.Format(KeySummary,
		summary[model.StatusCompleted],
		summary[model.StatusInProgress],
		summary[model.StatusNotStarted],
	)
	if stale := len(ui.tracker.Stale()); stale > 0 {
		text += ui.localization.Format(KeySummaryMissing, stale)
	}
	ui.summaryLabel.SetText(text)
}

// showNotification displays a message in the status bar
func (ui *RootUI) showNotification(message string) {
	if ui.notificationLabel == nil {
		return
	}
	ui.notificationLabel.SetText(message)
}

// onStatusChange handles a status selector change
func (ui *RootUI) onStatusChange(file string, status model.WatchStatus) {
	ui.dispatch(tracker.SetStatus{Name: file, Status: status})
}

// onEditNotes opens the notes editor of a file, or focuses it if already open
func (ui *RootUI) onEditNotes(file string) {
	if editor, ok := ui.editors[file]; ok {
		editor.Focus()
		return
	}

	rec, _ := ui.tracker.Record(file)
	editor := NewNotesEditor(ui.app, file, rec.Notes, ui.localization,
		func(file, notes string) tracker.Result {
			return ui.dispatch(tracker.SetNotes{Name: file, Notes: notes})
		},
		func(file string) {
			delete(ui.editors, file)
		},
	)
	ui.editors[file] = editor
	editor.Show()
}

// onPlay opens the video with the default application
func (ui *RootUI) onPlay(file string) {
	path := filepath.Join(ui.tracker.Folder(), file)
	if err := platform.OpenFileWithDefaultApp(path); err != nil {
		log.Printf("Failed to open %s: %v", path, err)
		ui.showNotification(IconError + " " + ui.localization.Format(KeyErrorOpeningFile, err))
	}
}

// onReveal shows the video in the file manager
func (ui *RootUI) onReveal(file string) {
	path := filepath.Join(ui.tracker.Folder(), file)
	if err := platform.RevealFile(path); err != nil {
		log.Printf("Failed to reveal %s: %v", path, err)
		ui.showNotification(IconError + " " + ui.localization.Format(KeyErrorOpeningFile, err))
	}
}

// onOpenFolder reveals the tracked folder in the file manager
func (ui *RootUI) onOpenFolder() {
	if err := platform.OpenFolderInManager(ui.tracker.Folder()); err != nil {
		log.Printf("Failed to open folder: %v", err)
		ui.showNotification(IconError + " " + ui.localization.Format(KeyErrorOpeningFile, err))
	}
}

// onCloseRequested saves before the window closes. When the save fails the
// user decides whether to quit anyway.
func (ui *RootUI) onCloseRequested() {
	result := ui.dispatch(tracker.SaveAndQuit{})
	if result.Quit {
		return
	}

	dialog.ShowConfirm(
		ui.localization.GetText(KeyQuitUnsaved),
		ui.localization.Format(KeyQuitUnsavedDetail, result.Err),
		func(confirmed bool) {
			if confirmed {
				ui.quit()
			}
		},
		ui.window,
	)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	// Rebuild texts, rows and menu for the new language
	ui.setupUI()
}
