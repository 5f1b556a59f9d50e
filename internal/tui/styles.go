package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ytget/video-tracker/internal/model"
)

var (
	TitleStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	SummaryStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	ItemStyle         = lipgloss.NewStyle().PaddingLeft(2)
	SelectedItemStyle = lipgloss.NewStyle().PaddingLeft(0).Foreground(lipgloss.Color("3"))
	NotesPreviewStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).PaddingLeft(4)
	ErrorStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	SuccessStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	AppStyle          = lipgloss.NewStyle().Padding(1, 2)

	notStartedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("202"))
	inProgressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	completedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// StatusStyle returns the color used for a status label
func StatusStyle(status model.WatchStatus) lipgloss.Style {
	switch status {
	case model.StatusInProgress:
		return inProgressStyle
	case model.StatusCompleted:
		return completedStyle
	default:
		return notStartedStyle
	}
}
