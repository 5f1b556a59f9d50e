package model

import "fmt"

// WatchStatus represents how far the user got with a video
type WatchStatus string

const (
	// StatusNotStarted means the video has not been watched yet
	StatusNotStarted WatchStatus = "not_started"

	// StatusInProgress means the user started but did not finish the video
	StatusInProgress WatchStatus = "in_progress"

	// StatusCompleted means the video was watched to the end
	StatusCompleted WatchStatus = "completed"
)

// Status display icons
const (
	IconNotStarted = "❌"
	IconInProgress = "⏳"
	IconCompleted  = "✅"
)

// AllStatuses returns the statuses in selector order
func AllStatuses() []WatchStatus {
	return []WatchStatus{StatusNotStarted, StatusInProgress, StatusCompleted}
}

// String returns the string representation of WatchStatus
func (ws WatchStatus) String() string {
	return string(ws)
}

// IsValid reports whether ws is one of the three known statuses
func (ws WatchStatus) IsValid() bool {
	switch ws {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Icon returns the emoji shown next to the status
func (ws WatchStatus) Icon() string {
	switch ws {
	case StatusInProgress:
		return IconInProgress
	case StatusCompleted:
		return IconCompleted
	default:
		return IconNotStarted
	}
}

// Label returns the English display label, e.g. "✅ Completed"
func (ws WatchStatus) Label() string {
	switch ws {
	case StatusNotStarted:
		return IconNotStarted + " Not Started"
	case StatusInProgress:
		return IconInProgress + " In Progress"
	case StatusCompleted:
		return IconCompleted + " Completed"
	default:
		return string(ws)
	}
}

// Next returns the following status in selector order, wrapping around
func (ws WatchStatus) Next() WatchStatus {
	switch ws {
	case StatusNotStarted:
		return StatusInProgress
	case StatusInProgress:
		return StatusCompleted
	default:
		return StatusNotStarted
	}
}

// Prev returns the preceding status in selector order, wrapping around
func (ws WatchStatus) Prev() WatchStatus {
	switch ws {
	case StatusCompleted:
		return StatusInProgress
	case StatusInProgress:
		return StatusNotStarted
	default:
		return StatusCompleted
	}
}

// ParseStatus converts a persisted status string into a WatchStatus
func ParseStatus(s string) (WatchStatus, error) {
	ws := WatchStatus(s)
	if !ws.IsValid() {
		return StatusNotStarted, fmt.Errorf("unknown status: %q", s)
	}
	return ws, nil
}
