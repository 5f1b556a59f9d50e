package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// VideoRecord is the tracked data for one video file. Extra holds any other
// fields found in the stored record; they are written back unchanged.
type VideoRecord struct {
	Status WatchStatus                `json:"status"`
	Notes  string                     `json:"notes"`
	Extra  map[string]json.RawMessage `json:"-"`
}

// MarshalJSON writes status and notes together with the extra fields.
// status and notes win over extra fields of the same name.
func (r VideoRecord) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Extra)+2)
	for key, value := range r.Extra {
		out[key] = value
	}
	out["status"] = r.Status
	out["notes"] = r.Notes

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Equal reports whether two records hold the same data
func (r VideoRecord) Equal(other VideoRecord) bool {
	if r.Status != other.Status || r.Notes != other.Notes || len(r.Extra) != len(other.Extra) {
		return false
	}
	for key, raw := range r.Extra {
		if o, ok := other.Extra[key]; !ok || string(o) != string(raw) {
			return false
		}
	}
	return true
}

// DefaultRecord returns the record assigned to newly discovered files
func DefaultRecord() VideoRecord {
	return VideoRecord{Status: StatusNotStarted, Notes: ""}
}

// TrackerState holds every record known for one folder.
//
// Files lists the videos currently present in the folder in display order.
// Records may also hold entries for files that disappeared from the folder;
// those are kept so a temporarily moved file does not lose its notes. Extra
// keeps top-level JSON values that are not records so they survive a save.
type TrackerState struct {
	Files   []string
	Records map[string]*VideoRecord
	Extra   map[string]json.RawMessage
}

// NewTrackerState creates a state with a default record for every file
func NewTrackerState(files []string) *TrackerState {
	s := &TrackerState{
		Records: make(map[string]*VideoRecord, len(files)),
		Extra:   make(map[string]json.RawMessage),
	}
	s.SetFiles(files)
	return s
}

// SetFiles replaces the display order and injects default records for files
// that have none yet. Existing records are never modified or removed. A
// present file shadowed by a non-record extra value gets a record and the
// extra value is dropped, so a key is never written twice.
func (s *TrackerState) SetFiles(files []string) {
	if s.Records == nil {
		s.Records = make(map[string]*VideoRecord, len(files))
	}
	if s.Extra == nil {
		s.Extra = make(map[string]json.RawMessage)
	}
	s.Files = append([]string(nil), files...)
	for _, name := range s.Files {
		if _, exists := s.Records[name]; !exists {
			rec := DefaultRecord()
			s.Records[name] = &rec
			delete(s.Extra, name)
		}
	}
}

// Record returns the record for a file
func (s *TrackerState) Record(name string) (*VideoRecord, bool) {
	rec, exists := s.Records[name]
	return rec, exists
}

// SetStatus updates the status of a file
func (s *TrackerState) SetStatus(name string, status WatchStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status %q for %s", status, name)
	}
	rec, exists := s.Records[name]
	if !exists {
		return fmt.Errorf("no record for file: %s", name)
	}
	rec.Status = status
	return nil
}

// SetNotes replaces the notes of a file. Text is stored exactly as given.
func (s *TrackerState) SetNotes(name string, notes string) error {
	rec, exists := s.Records[name]
	if !exists {
		return fmt.Errorf("no record for file: %s", name)
	}
	rec.Notes = notes
	return nil
}

// StaleFiles returns names that have a record but are not in Files, sorted
func (s *TrackerState) StaleFiles() []string {
	present := make(map[string]struct{}, len(s.Files))
	for _, name := range s.Files {
		present[name] = struct{}{}
	}
	var stale []string
	for name := range s.Records {
		if _, ok := present[name]; !ok {
			stale = append(stale, name)
		}
	}
	sort.Strings(stale)
	return stale
}

// Summary counts present files per status
func (s *TrackerState) Summary() map[WatchStatus]int {
	counts := map[WatchStatus]int{
		StatusNotStarted: 0,
		StatusInProgress: 0,
		StatusCompleted:  0,
	}
	for _, name := range s.Files {
		if rec, ok := s.Records[name]; ok {
			counts[rec.Status]++
		}
	}
	return counts
}

// Equal reports whether two states hold the same records and extra values.
// Display order is not compared.
func (s *TrackerState) Equal(other *TrackerState) bool {
	if s == nil || other == nil {
		return s == other
	}
	if len(s.Records) != len(other.Records) || len(s.Extra) != len(other.Extra) {
		return false
	}
	for name, rec := range s.Records {
		o, ok := other.Records[name]
		if !ok || !o.Equal(*rec) {
			return false
		}
	}
	for key, raw := range s.Extra {
		o, ok := other.Extra[key]
		if !ok || string(o) != string(raw) {
			return false
		}
	}
	return true
}
