package ui

// Package ui contains the Fyne-based desktop user interface. It renders one
// row per tracked video and a notes editor window per file, and turns every
// user action into a tracker event. All UI strings are localized via
// Localization.
