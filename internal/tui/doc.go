package tui

// Package tui is the terminal presentation shell. It renders the tracked
// files with bubbles/list, edits notes with bubbles/textarea and sends the
// same tracker events as the desktop shell.
