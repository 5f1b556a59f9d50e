package tui

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/ytget/video-tracker/internal/tracker"
)

// ErrNotTerminal is returned when stdin is not an interactive terminal
var ErrNotTerminal = errors.New("the terminal interface needs an interactive terminal")

// Run starts the terminal shell and blocks until the user quits
func Run(t tracker.Dispatcher) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ErrNotTerminal
	}

	p := tea.NewProgram(New(t), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal interface: %w", err)
	}
	return nil
}
