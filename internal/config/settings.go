package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage     = "app_language"
	KeyWindowWidth  = "window_width"
	KeyWindowHeight = "window_height"
)

// Default values
const (
	DefaultLanguage     = "system"
	DefaultWindowWidth  = 740
	DefaultWindowHeight = 650

	MinWindowWidth  = 320
	MinWindowHeight = 240
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetWindowSize returns the last main window size
func (s *Settings) GetWindowSize() fyne.Size {
	prefs := s.app.Preferences()
	w := prefs.FloatWithFallback(KeyWindowWidth, DefaultWindowWidth)
	h := prefs.FloatWithFallback(KeyWindowHeight, DefaultWindowHeight)
	return fyne.NewSize(float32(w), float32(h))
}

// SetWindowSize stores the main window size, clamped to a usable minimum
func (s *Settings) SetWindowSize(size fyne.Size) {
	w, h := float64(size.Width), float64(size.Height)
	if w < MinWindowWidth {
		w = MinWindowWidth
	}
	if h < MinWindowHeight {
		h = MinWindowHeight
	}
	s.app.Preferences().SetFloat(KeyWindowWidth, w)
	s.app.Preferences().SetFloat(KeyWindowHeight, h)
}
