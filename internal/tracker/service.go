package tracker

import (
	"fmt"
	"log"

	"github.com/ytget/video-tracker/internal/model"
	"github.com/ytget/video-tracker/internal/platform"
	"github.com/ytget/video-tracker/internal/store"
)

// Result reports the outcome of one dispatched event
type Result struct {
	Event Event
	Saved bool  // state was written to disk
	Err   error // apply or save failure; the in-memory state is kept either way
	Quit  bool  // the shell should exit
}

// File returns the filename the event targeted
func (r Result) File() string {
	if r.Event == nil {
		return ""
	}
	return r.Event.File()
}

var (
	_ Dispatcher = (*Service)(nil)
	_ Persister  = (*store.Store)(nil)
)

// Service owns the TrackerState of one folder
type Service struct {
	folder    string
	state     *model.TrackerState
	persister Persister
	onUpdate  func(Result) // callback for UI updates
}

// NewService creates a tracker over an already loaded state
func NewService(folder string, state *model.TrackerState, persister Persister) *Service {
	return &Service{
		folder:    folder,
		state:     state,
		persister: persister,
	}
}

// Open scans folder, loads its tracker file and returns a ready service.
// It fails only when the folder itself cannot be read.
func Open(folder string) (*Service, error) {
	if err := platform.EnsureDirectory(folder); err != nil {
		return nil, err
	}

	files, err := platform.ScanFolder(folder)
	if err != nil {
		return nil, fmt.Errorf("scan folder: %w", err)
	}
	log.Printf("Found %d video files in %s", len(files), folder)

	st := store.New(folder)
	return NewService(folder, st.Load(files), st), nil
}

// SetUpdateCallback sets the callback invoked after every dispatch
func (s *Service) SetUpdateCallback(callback func(Result)) {
	s.onUpdate = callback
}

// Folder returns the tracked folder
func (s *Service) Folder() string {
	return s.folder
}

// Files returns the present video files in display order
func (s *Service) Files() []string {
	return append([]string(nil), s.state.Files...)
}

// Record returns a copy of the record for name
func (s *Service) Record(name string) (model.VideoRecord, bool) {
	rec, ok := s.state.Record(name)
	if !ok {
		return model.VideoRecord{}, false
	}
	return *rec, true
}

// Summary counts present files per status
func (s *Service) Summary() map[model.WatchStatus]int {
	return s.state.Summary()
}

// Stale returns files that still have a record but left the folder
func (s *Service) Stale() []string {
	return s.state.StaleFiles()
}

// Dispatch applies ev and persists the state. A SaveAndQuit whose save fails
// does not set Quit, so unsaved changes are never discarded silently.
func (s *Service) Dispatch(ev Event) Result {
	result := Result{Event: ev}

	if err := Apply(s.state, ev); err != nil {
		log.Printf("Rejected %T: %v", ev, err)
		result.Err = err
		s.notifyUpdate(result)
		return result
	}

	if err := s.persister.Save(s.state); err != nil {
		log.Printf("[Error] %v", err)
		result.Err = err
	} else {
		result.Saved = true
	}

	if _, quit := ev.(SaveAndQuit); quit && result.Saved {
		result.Quit = true
	}

	s.notifyUpdate(result)
	return result
}

// Close performs the final save at shutdown
func (s *Service) Close() error {
	return s.persister.Save(s.state)
}

func (s *Service) notifyUpdate(result Result) {
	if s.onUpdate != nil {
		s.onUpdate(result)
	}
}
