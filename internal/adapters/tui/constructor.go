// Package tui provides an interactive terminal renderer for verification and recovery progress.
package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultBarWidth  = 40
	maxBarWidth      = 80
	maxNotifications = 5
)

// NewModel creates a new TUI model with the given title.
func NewModel(title string) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorIris)

	return Model{
		Title:   title,
		spinner: s,
		bar:     progress.New(progress.WithGradient("#5D3FD3", "#22A06B"), progress.WithWidth(defaultBarWidth)),
	}
}

// WithInterrupt sets the function called when the user presses ctrl+c.
//
//nolint:gocritic // hugeParam ignored
func (m Model) WithInterrupt(fn func()) Model {
	m.interrupt = fn
	return m
}
