package ui

import (
	"fmt"

	"github.com/ytget/video-tracker/internal/model"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeySave              = "save"
	KeySaveAndClose      = "save_and_close"
	KeyOpenFolder        = "open_folder"
	KeyNotesTitle        = "notes_title"
	KeyNoVideos          = "no_videos"
	KeySavedTo           = "saved_to"
	KeySaveFailed        = "save_failed"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyQuitUnsaved       = "quit_unsaved"
	KeyQuitUnsavedDetail = "quit_unsaved_detail"
	KeySummary           = "summary"
	KeySummaryMissing    = "summary_missing"
	KeyStatusNotStarted  = "status_not_started"
	KeyStatusInProgress  = "status_in_progress"
	KeyStatusCompleted   = "status_completed"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Format returns the localized text for key formatted with args
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// StatusText returns the localized status label including its icon
func (l *Localization) StatusText(status model.WatchStatus) string {
	var key string
	switch status {
	case model.StatusInProgress:
		key = KeyStatusInProgress
	case model.StatusCompleted:
		key = KeyStatusCompleted
	default:
		key = KeyStatusNotStarted
	}
	return status.Icon() + " " + l.GetText(key)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Video Tracker",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeySave:              "Save",
		KeySaveAndClose:      "Save & Close",
		KeyOpenFolder:        "Open Folder",
		KeyNotesTitle:        "Notes: %s",
		KeyNoVideos:          "No video files in this folder",
		KeySavedTo:           "Saved to %s",
		KeySaveFailed:        "Save failed: %v",
		KeyErrorOpeningFile:  "Error opening file: %v",
		KeyQuitUnsaved:       "Quit without saving?",
		KeyQuitUnsavedDetail: "The tracker file could not be written:\n%v",
		KeySummary:           "%d completed · %d in progress · %d not started",
		KeySummaryMissing:    " · %d missing",
		KeyStatusNotStarted:  "Not Started",
		KeyStatusInProgress:  "In Progress",
		KeyStatusCompleted:   "Completed",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Трекер видео",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeySave:              "Сохранить",
		KeySaveAndClose:      "Сохранить и закрыть",
		KeyOpenFolder:        "Открыть папку",
		KeyNotesTitle:        "Заметки: %s",
		KeyNoVideos:          "В этой папке нет видеофайлов",
		KeySavedTo:           "Сохранено в %s",
		KeySaveFailed:        "Ошибка сохранения: %v",
		KeyErrorOpeningFile:  "Ошибка открытия файла: %v",
		KeyQuitUnsaved:       "Выйти без сохранения?",
		KeyQuitUnsavedDetail: "Не удалось записать файл трекера:\n%v",
		KeySummary:           "%d просмотрено · %d в процессе · %d не начато",
		KeySummaryMissing:    " · отсутствуют: %d",
		KeyStatusNotStarted:  "Не начато",
		KeyStatusInProgress:  "В процессе",
		KeyStatusCompleted:   "Просмотрено",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Video Tracker",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeySave:              "Salvar",
		KeySaveAndClose:      "Salvar e Fechar",
		KeyOpenFolder:        "Abrir Pasta",
		KeyNotesTitle:        "Notas: %s",
		KeyNoVideos:          "Nenhum vídeo nesta pasta",
		KeySavedTo:           "Salvo em %s",
		KeySaveFailed:        "Falha ao salvar: %v",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo: %v",
		KeyQuitUnsaved:       "Sair sem salvar?",
		KeyQuitUnsavedDetail: "Não foi possível gravar o arquivo do rastreador:\n%v",
		KeySummary:           "%d concluídos · %d em andamento · %d não iniciados",
		KeySummaryMissing:    " · %d ausentes",
		KeyStatusNotStarted:  "Não Iniciado",
		KeyStatusInProgress:  "Em Andamento",
		KeyStatusCompleted:   "Concluído",
	}
}
