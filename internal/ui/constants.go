package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconNotes  = "✍️"
	IconPlay   = "▶"
	IconFolder = "📁"
	IconError  = "❌"
	IconSaved  = "💾"
)

// Text fragments
const (
	TitleSeparator = " – "
)

// Layout sizing (VideoRow / windows)
const (
	StatusSelectWidth float32 = 150
	StatusLabelWidth  float32 = 120
	StatusIndicatorW  float32 = 4
	RowMinHeight      float32 = 36

	MainWindowMinWidth float32 = 480

	NotesEditorWidth  float32 = 600
	NotesEditorHeight float32 = 450
)
