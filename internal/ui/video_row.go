package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/video-tracker/internal/model"
)

// VideoRow renders one tracked file: name, status selector, status label and
// action buttons. It holds no state of its own beyond the last rendered
// record; every change is reported through callbacks keyed by filename.
type VideoRow struct {
	widget.BaseWidget

	file         string
	record       model.VideoRecord
	localization *Localization

	// UI components
	indicator    *canvas.Rectangle
	nameLabel    *widget.Label
	statusSelect *widget.Select
	statusLabel  *widget.Label
	notesBtn     *widget.Button
	playBtn      *widget.Button
	revealBtn    *widget.Button

	// set while the selector is updated programmatically
	updating bool

	// Callbacks
	onStatusChange func(file string, status model.WatchStatus)
	onEditNotes    func(file string)
	onPlay         func(file string)
	onReveal       func(file string)
}

// NewVideoRow creates a new row widget
func NewVideoRow(file string, record model.VideoRecord, localization *Localization) *VideoRow {
	vr := &VideoRow{
		file:         file,
		record:       record,
		localization: localization,
	}
	vr.ExtendBaseWidget(vr)
	vr.createUI()
	vr.updateFromRecord()
	return vr
}

// SetCallbacks sets the action callbacks
func (vr *VideoRow) SetCallbacks(
	onStatusChange func(file string, status model.WatchStatus),
	onEditNotes func(file string),
	onPlay func(file string),
	onReveal func(file string),
) {
	if onStatusChange == nil {
		log.Printf("Warning: onStatusChange callback is nil for %s", vr.file)
	}
	vr.onStatusChange = onStatusChange
	vr.onEditNotes = onEditNotes
	vr.onPlay = onPlay
	vr.onReveal = onReveal
}

// File returns the filename shown by the row
func (vr *VideoRow) File() string {
	return vr.file
}

// UpdateRecord re-renders the row from a record
func (vr *VideoRow) UpdateRecord(record model.VideoRecord) {
	vr.record = record
	vr.updateFromRecord()
	vr.Refresh()
}

// statusOptions returns the selector options in status order
func (vr *VideoRow) statusOptions() []string {
	statuses := model.AllStatuses()
	options := make([]string, 0, len(statuses))
	for _, status := range statuses {
		options = append(options, vr.localization.StatusText(status))
	}
	return options
}

// statusFromOption maps a selector option back to its status
func (vr *VideoRow) statusFromOption(option string) (model.WatchStatus, bool) {
	for _, status := range model.AllStatuses() {
		if vr.localization.StatusText(status) == option {
			return status, true
		}
	}
	return "", false
}

func (vr *VideoRow) createUI() {
	vr.indicator = canvas.NewRectangle(StatusColor(vr.record.Status))
	vr.indicator.SetMinSize(fyne.NewSize(StatusIndicatorW, RowMinHeight))

	vr.nameLabel = widget.NewLabel(vr.file)
	vr.nameLabel.Truncation = fyne.TextTruncateEllipsis

	vr.statusSelect = widget.NewSelect(vr.statusOptions(), vr.onSelectChanged)

	vr.statusLabel = widget.NewLabel("")

	vr.notesBtn = widget.NewButton(IconNotes, func() {
		if vr.onEditNotes != nil {
			vr.onEditNotes(vr.file)
		}
	})
	vr.notesBtn.Importance = widget.LowImportance

	vr.playBtn = widget.NewButton(IconPlay, func() {
		if vr.onPlay != nil {
			vr.onPlay(vr.file)
		}
	})
	vr.playBtn.Importance = widget.LowImportance

	vr.revealBtn = widget.NewButton(IconFolder, func() {
		if vr.onReveal != nil {
			vr.onReveal(vr.file)
		}
	})
	vr.revealBtn.Importance = widget.LowImportance
}

func (vr *VideoRow) onSelectChanged(option string) {
	if vr.updating {
		return
	}
	status, ok := vr.statusFromOption(option)
	if !ok {
		log.Printf("Unknown status option %q for %s", option, vr.file)
		return
	}
	if vr.onStatusChange != nil {
		vr.onStatusChange(vr.file, status)
	}
}

// updateFromRecord syncs widgets with the current record and localization
func (vr *VideoRow) updateFromRecord() {
	vr.updating = true
	defer func() { vr.updating = false }()

	vr.statusSelect.Options = vr.statusOptions()
	vr.statusSelect.SetSelected(vr.localization.StatusText(vr.record.Status))
	vr.statusLabel.SetText(vr.localization.StatusText(vr.record.Status))
	vr.indicator.FillColor = StatusColor(vr.record.Status)
	vr.indicator.Refresh()
}

// CreateRenderer creates the widget renderer
func (vr *VideoRow) CreateRenderer() fyne.WidgetRenderer {
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.Transparent)
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	actions := container.NewHBox(
		fixedWidth(StatusSelectWidth, vr.statusSelect),
		fixedWidth(StatusLabelWidth, vr.statusLabel),
		vr.notesBtn,
		vr.playBtn,
		vr.revealBtn,
	)

	// Border keeps the actions pinned right and lets the name take the rest
	content := container.NewBorder(nil, nil, vr.indicator, actions, vr.nameLabel)
	return widget.NewSimpleRenderer(content)
}
