package ui

import (
	"testing"

	"github.com/ytget/video-tracker/internal/model"
)

func TestLocalization_Fallbacks(t *testing.T) {
	l := NewLocalization()

	if l.GetText(KeySave) != "Save" {
		t.Errorf("Expected English default, got %s", l.GetText(KeySave))
	}

	l.SetLanguage("de")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Unknown language must be ignored, got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("System language should map to en, got %s", l.GetCurrentLanguage())
	}

	if l.GetText("missing_key") != "missing_key" {
		t.Errorf("Expected key fallback, got %s", l.GetText("missing_key"))
	}
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()
	for lang := range l.GetAvailableLanguages() {
		if len(l.texts[lang]) != len(l.texts["en"]) {
			t.Errorf("Language %s has %d texts, expected %d", lang, len(l.texts[lang]), len(l.texts["en"]))
		}
	}
}

func TestLocalization_StatusText(t *testing.T) {
	l := NewLocalization()

	tests := []struct {
		status   model.WatchStatus
		expected string
	}{
		{model.StatusNotStarted, "❌ Not Started"},
		{model.StatusInProgress, "⏳ In Progress"},
		{model.StatusCompleted, "✅ Completed"},
	}

	for _, test := range tests {
		if result := l.StatusText(test.status); result != test.expected {
			t.Errorf("StatusText(%s) = %s, expected %s", test.status, result, test.expected)
		}
		// English labels match the model's labels
		if result := l.StatusText(test.status); result != test.status.Label() {
			t.Errorf("StatusText(%s) = %s, model label %s", test.status, result, test.status.Label())
		}
	}
}
