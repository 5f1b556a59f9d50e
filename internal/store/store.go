package store

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/video-tracker/internal/model"
)

// FileName is the hidden persistence file kept inside the tracked folder
const FileName = ".video_tracker.json"

// File permissions
const (
	DefaultFilePermissions = 0o644
)

// Temporary file naming
const (
	TempFileSuffix = ".tmp"
)

// renameFunc is replaced in tests to simulate failing renames
var renameFunc = os.Rename

// Store reads and writes the tracker file of one folder
type Store struct {
	folder string
	path   string
}

// New creates a store for folder
func New(folder string) *Store {
	return &Store{
		folder: folder,
		path:   filepath.Join(folder, FileName),
	}
}

// Folder returns the tracked folder
func (s *Store) Folder() string {
	return s.folder
}

// Path returns the persistence file path
func (s *Store) Path() string {
	return s.path
}

// Load returns the persisted state merged with knownFiles. It never fails:
// a missing file, an unreadable file or invalid JSON all yield a state with a
// default record for every known file. Persisted records are kept verbatim,
// including those of files that are no longer in knownFiles.
func (s *Store) Load(knownFiles []string) *model.TrackerState {
	state, err := s.read(knownFiles)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("No tracker file in %s, starting with defaults", s.folder)
		} else {
			log.Printf("[Error] Loading data: %v", &LoadError{Path: s.path, Err: err})
		}
		return model.NewTrackerState(knownFiles)
	}

	state.SetFiles(knownFiles)
	log.Printf("Loaded %d records from %s", len(state.Records), s.path)
	return state
}

func (s *Store) read(knownFiles []string) (*model.TrackerState, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("file is empty")
	}
	return Decode(data, knownFiles)
}

// Save overwrites the persistence file with the full state. The data is
// written to a temporary file in the same folder and renamed over the target.
func (s *Store) Save(state *model.TrackerState) error {
	if state == nil {
		return &SaveError{Path: s.path, Err: errors.New("nil state")}
	}

	data, err := Encode(state)
	if err != nil {
		return &SaveError{Path: s.path, Err: err}
	}

	if err := s.writeAtomic(data); err != nil {
		return &SaveError{Path: s.path, Err: err}
	}

	log.Printf("[Success] Saved to %s", s.path)
	return nil
}

func (s *Store) writeAtomic(data []byte) error {
	tmp := s.path + "." + tempID() + TempFileSuffix

	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("open tmp: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("write tmp: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("sync tmp: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("close tmp: %w", err)
	}
	if err := renameFunc(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename tmp: %w", err)
	}
	return nil
}

// tempID returns a UUID v7 so concurrent temp files never collide
func tempID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return id.String()
}

// Load reads the tracker file of folder, see Store.Load
func Load(folder string, knownFiles []string) *model.TrackerState {
	return New(folder).Load(knownFiles)
}

// Save writes state to the tracker file of folder, see Store.Save
func Save(folder string, state *model.TrackerState) error {
	return New(folder).Save(state)
}
