package config

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("ru")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "ru" {
		t.Errorf("Expected language 'ru', got %s", retrievedLang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}

func TestWindowSize(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	size := settings.GetWindowSize()
	if size.Width != DefaultWindowWidth || size.Height != DefaultWindowHeight {
		t.Errorf("Expected default size %dx%d, got %v", DefaultWindowWidth, DefaultWindowHeight, size)
	}

	settings.SetWindowSize(fyne.NewSize(1024, 768))
	size = settings.GetWindowSize()
	if size.Width != 1024 || size.Height != 768 {
		t.Errorf("Expected 1024x768, got %v", size)
	}

	// Test boundary values
	settings.SetWindowSize(fyne.NewSize(10, 10))
	size = settings.GetWindowSize()
	if size.Width != MinWindowWidth || size.Height != MinWindowHeight {
		t.Errorf("Expected size clamped to %dx%d, got %v", MinWindowWidth, MinWindowHeight, size)
	}
}
