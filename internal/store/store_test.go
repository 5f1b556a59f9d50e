package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ytget/video-tracker/internal/model"
)

func writeTrackerFile(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write tracker file: %v", err)
	}
}

func readTrackerFile(t *testing.T, dir string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("Failed to read tracker file: %v", err)
	}
	return string(data)
}

func assertRecord(t *testing.T, state *model.TrackerState, name string, status model.WatchStatus, notes string) {
	t.Helper()
	rec, ok := state.Record(name)
	if !ok {
		t.Fatalf("Expected record for %s", name)
	}
	if rec.Status != status || rec.Notes != notes {
		t.Errorf("Record %s = {%s %q}, expected {%s %q}", name, rec.Status, rec.Notes, status, notes)
	}
}

func TestNew(t *testing.T) {
	s := New("/videos")

	if s.Folder() != "/videos" {
		t.Errorf("Expected folder '/videos', got '%s'", s.Folder())
	}
	if s.Path() != filepath.Join("/videos", ".video_tracker.json") {
		t.Errorf("Unexpected path: %s", s.Path())
	}
}

func TestLoad_NoFileYieldsDefaults(t *testing.T) {
	dir := t.TempDir()

	state := Load(dir, []string{"a.mp4", "b.mkv"})

	if len(state.Records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(state.Records))
	}
	assertRecord(t, state, "a.mp4", model.StatusNotStarted, "")
	assertRecord(t, state, "b.mkv", model.StatusNotStarted, "")

	if _, err := os.Stat(filepath.Join(dir, FileName)); !os.IsNotExist(err) {
		t.Error("Load must not create the tracker file")
	}
}

func TestSaveThenLoad_StatusSurvives(t *testing.T) {
	dir := t.TempDir()
	state := Load(dir, []string{"a.mp4", "b.mkv"})

	if err := state.SetStatus("a.mp4", model.StatusCompleted); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}
	if err := Save(dir, state); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded := Load(dir, []string{"a.mp4", "b.mkv"})
	assertRecord(t, reloaded, "a.mp4", model.StatusCompleted, "")
	assertRecord(t, reloaded, "b.mkv", model.StatusNotStarted, "")
}

func TestSaveThenLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	writeTrackerFile(t, dir, `{
		"a.mp4": {"status": "in_progress", "notes": "  hello  "},
		"old.avi": {"status": "completed", "notes": "moved away"},
		"version": 2,
		"tags": ["x", "y"]
	}`)
	files := []string{"a.mp4", "b.mkv"}

	saved := Load(dir, files)
	if err := Save(dir, saved); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	reloaded := Load(dir, files)

	if !reloaded.Equal(saved) {
		t.Errorf("Reloaded state differs from saved state:\nsaved:    %+v\nreloaded: %+v", saved.Records, reloaded.Records)
	}
	assertRecord(t, reloaded, "a.mp4", model.StatusInProgress, "  hello  ")
	assertRecord(t, reloaded, "old.avi", model.StatusCompleted, "moved away")
	if string(reloaded.Extra["version"]) != "2" {
		t.Errorf("Expected extra key 'version' to survive, got %q", reloaded.Extra["version"])
	}
	if string(reloaded.Extra["tags"]) != `["x","y"]` {
		t.Errorf("Expected extra key 'tags' to survive, got %q", reloaded.Extra["tags"])
	}
}

func TestSave_Idempotent(t *testing.T) {
	dir := t.TempDir()
	state := Load(dir, []string{"a.mp4", "b.mkv", "c.mov"})
	state.SetNotes("b.mkv", "second")

	if err := Save(dir, state); err != nil {
		t.Fatalf("First save failed: %v", err)
	}
	first := readTrackerFile(t, dir)

	if err := Save(dir, state); err != nil {
		t.Fatalf("Second save failed: %v", err)
	}
	second := readTrackerFile(t, dir)

	if first != second {
		t.Errorf("Repeated saves differ:\n%s\n---\n%s", first, second)
	}
}

func TestLoad_InjectsOnlyMissingFiles(t *testing.T) {
	dir := t.TempDir()
	writeTrackerFile(t, dir, `{"a.mp4": {"status": "completed", "notes": "great"}}`)

	state := Load(dir, []string{"a.mp4", "b.mkv"})

	assertRecord(t, state, "a.mp4", model.StatusCompleted, "great")
	assertRecord(t, state, "b.mkv", model.StatusNotStarted, "")
	if len(state.Records) != 2 {
		t.Errorf("Expected 2 records, got %d", len(state.Records))
	}
}

func TestLoad_KeepsStaleRecords(t *testing.T) {
	dir := t.TempDir()
	writeTrackerFile(t, dir, `{"gone.mp4": {"status": "in_progress", "notes": "halfway"}}`)

	state := Load(dir, []string{"a.mp4"})

	assertRecord(t, state, "gone.mp4", model.StatusInProgress, "halfway")
	if len(state.Files) != 1 || state.Files[0] != "a.mp4" {
		t.Errorf("Stale files must not be displayed, got %v", state.Files)
	}
}

func TestLoad_CorruptFileMatchesNoFile(t *testing.T) {
	files := []string{"a.mp4", "b.mkv"}
	expected := Load(t.TempDir(), files)

	tests := []struct {
		name    string
		content string
	}{
		{"truncated", `{"a.mp4": {"status": "comp`},
		{"garbage", `not json at all`},
		{"empty", ``},
		{"null", `null`},
		{"array", `["a.mp4"]`},
		{"string", `"a.mp4"`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dir := t.TempDir()
			writeTrackerFile(t, dir, test.content)

			state := Load(dir, files)
			if !state.Equal(expected) {
				t.Errorf("Expected defaults for corrupt file, got %+v", state.Records)
			}
		})
	}
}

func TestLoad_MissingFieldsUseDefaults(t *testing.T) {
	dir := t.TempDir()
	writeTrackerFile(t, dir, `{
		"a.mp4": {"notes": "only notes"},
		"b.mkv": {"status": "completed"},
		"c.mov": {},
		"d.avi": {"status": "paused", "notes": "x"},
		"e.flv": {"status": 3, "notes": 4}
	}`)

	state := Load(dir, []string{"a.mp4", "b.mkv", "c.mov", "d.avi", "e.flv"})

	assertRecord(t, state, "a.mp4", model.StatusNotStarted, "only notes")
	assertRecord(t, state, "b.mkv", model.StatusCompleted, "")
	assertRecord(t, state, "c.mov", model.StatusNotStarted, "")
	assertRecord(t, state, "d.avi", model.StatusNotStarted, "x")
	assertRecord(t, state, "e.flv", model.StatusNotStarted, "")
}

func TestLoad_PresentFileShadowedByExtraValue(t *testing.T) {
	dir := t.TempDir()
	writeTrackerFile(t, dir, `{"a.mp4": "completed"}`)

	state := Load(dir, []string{"a.mp4"})

	assertRecord(t, state, "a.mp4", model.StatusNotStarted, "")
	if _, ok := state.Extra["a.mp4"]; ok {
		t.Error("Extra value must be dropped once the file has a record")
	}
}

func TestSaveThenLoad_UnknownValuesUnchanged(t *testing.T) {
	dir := t.TempDir()
	original := `{
  "_meta": {
    "tags": [
      "a",
      "b"
    ],
    "version": 2
  },
  "a.mp4": {
    "notes": "",
    "rating": 5,
    "status": "completed"
  },
  "gone.avi": {
    "notes": "x",
    "status": "in_progress",
    "watched_at": "2024-01-02"
  },
  "schema": 1
}
`
	writeTrackerFile(t, dir, original)

	state := Load(dir, []string{"a.mp4"})
	if _, ok := state.Record("_meta"); ok {
		t.Error("_meta must not become a record")
	}
	if err := Save(dir, state); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if content := readTrackerFile(t, dir); content != original {
		t.Errorf("Expected file unchanged after load and save, got:\n%s", content)
	}
}

func TestSave_KeepsRecordExtraFieldsAfterEdit(t *testing.T) {
	dir := t.TempDir()
	writeTrackerFile(t, dir, `{"a.mp4": {"status": "in_progress", "notes": "", "rating": 5}}`)

	state := Load(dir, []string{"a.mp4"})
	if err := state.SetStatus("a.mp4", model.StatusCompleted); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}
	if err := Save(dir, state); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded := Load(dir, []string{"a.mp4"})
	assertRecord(t, reloaded, "a.mp4", model.StatusCompleted, "")
	if rec, _ := reloaded.Record("a.mp4"); string(rec.Extra["rating"]) != "5" {
		t.Errorf("Expected rating 5 to survive, got %q", rec.Extra["rating"])
	}
}

func TestSave_WritesReadableJSON(t *testing.T) {
	dir := t.TempDir()
	state := Load(dir, []string{"a.mp4"})
	state.SetNotes("a.mp4", "مرحبا <b>&")

	if err := Save(dir, state); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	content := readTrackerFile(t, dir)
	if !strings.Contains(content, "مرحبا <b>&") {
		t.Errorf("Expected unescaped notes in file, got:\n%s", content)
	}
	if !strings.Contains(content, `"status": "not_started"`) {
		t.Errorf("Expected indented status field, got:\n%s", content)
	}
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	state := Load(dir, []string{"a.mp4"})

	if err := Save(dir, state); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != FileName {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("Expected only %s, got %v", FileName, names)
	}
}

func TestSave_MissingFolderReturnsSaveError(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	state := model.NewTrackerState([]string{"a.mp4"})

	err := Save(dir, state)
	if err == nil {
		t.Fatal("Expected error for missing folder, got nil")
	}
	if !IsSaveError(err) {
		t.Errorf("Expected SaveError, got %T: %v", err, err)
	}

	var saveErr *SaveError
	if errors.As(err, &saveErr) && saveErr.Path != filepath.Join(dir, FileName) {
		t.Errorf("Unexpected SaveError path: %s", saveErr.Path)
	}
}

func TestSave_RenameFailureCleansUp(t *testing.T) {
	dir := t.TempDir()
	state := model.NewTrackerState([]string{"a.mp4"})

	orig := renameFunc
	renameFunc = func(string, string) error { return errors.New("disk full") }
	defer func() { renameFunc = orig }()

	err := Save(dir, state)
	if !IsSaveError(err) {
		t.Fatalf("Expected SaveError, got %v", err)
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("Expected cause in message, got %v", err)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("Expected temp file to be removed, found %d entries", len(entries))
	}
}

func TestSave_NilState(t *testing.T) {
	if err := Save(t.TempDir(), nil); !IsSaveError(err) {
		t.Errorf("Expected SaveError for nil state, got %v", err)
	}
}

func TestLoad_UnreadableFileFallsBack(t *testing.T) {
	dir := t.TempDir()
	// a directory in place of the tracker file cannot be read
	if err := os.Mkdir(filepath.Join(dir, FileName), 0o755); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}

	state := Load(dir, []string{"a.mp4"})
	assertRecord(t, state, "a.mp4", model.StatusNotStarted, "")
}
