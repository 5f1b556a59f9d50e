package tracker

import (
	"fmt"

	"github.com/ytget/video-tracker/internal/model"
)

// Event is a single user action. Row-level events carry the filename so a
// handler never needs a reference to the widget that produced it.
type Event interface {
	// File returns the affected filename, or "" for folder-wide events
	File() string
}

// SetStatus changes the watch status of one file
type SetStatus struct {
	Name   string
	Status model.WatchStatus
}

// SetNotes replaces the notes of one file
type SetNotes struct {
	Name  string
	Notes string
}

// Save persists the state without changing it
type Save struct{}

// SaveAndQuit persists the state and asks the shell to exit
type SaveAndQuit struct{}

func (e SetStatus) File() string   { return e.Name }
func (e SetNotes) File() string    { return e.Name }
func (e Save) File() string        { return "" }
func (e SaveAndQuit) File() string { return "" }

// Apply mutates state according to ev. It performs no I/O.
func Apply(state *model.TrackerState, ev Event) error {
	switch e := ev.(type) {
	case SetStatus:
		return state.SetStatus(e.Name, e.Status)
	case SetNotes:
		return state.SetNotes(e.Name, e.Notes)
	case Save, SaveAndQuit:
		return nil
	default:
		return fmt.Errorf("unsupported event: %T", ev)
	}
}
