package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/vlr/internal/core/domain"
)

const durationPrecision = time.Millisecond

// Renderer wraps the TUI Bubble Tea model as a ports.Renderer.
// Every event is handed to the program's message queue; the worker never touches the model.
type Renderer struct {
	program *tea.Program
	model   *Model
	errCh   chan error
}

// NewRenderer creates a new TUI renderer.
func NewRenderer(model *Model, opts ...tea.ProgramOption) *Renderer {
	program := tea.NewProgram(model, opts...)
	return &Renderer{
		program: program,
		model:   model,
		errCh:   make(chan error, 1),
	}
}

// Start launches the TUI in a background goroutine.
func (r *Renderer) Start(_ context.Context) error {
	go func() {
		_, err := r.program.Run()
		r.errCh <- err
	}()
	return nil
}

// Stop signals the TUI to quit.
func (r *Renderer) Stop() error {
	r.program.Quit()
	return nil
}

// Wait blocks until the TUI has terminated. A program killed through its
// context counts as a clean exit.
func (r *Renderer) Wait() error {
	err := <-r.errCh
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// OnProgress forwards a progress update to the TUI.
func (r *Renderer) OnProgress(label string, fraction float64) {
	r.program.Send(MsgProgress{Label: label, Fraction: fraction})
}

// OnNotification forwards an extractor status message to the TUI.
func (r *Renderer) OnNotification(text string) {
	r.program.Send(MsgNotification{Text: text})
}

// OnError forwards a failure message to the TUI.
func (r *Renderer) OnError(message string) {
	r.program.Send(MsgError{Message: message})
}

// OnDone forwards the final outcome to the TUI.
func (r *Renderer) OnDone(outcome domain.Outcome) {
	r.program.Send(MsgDone{Outcome: outcome})
}
