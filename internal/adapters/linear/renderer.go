// Package linear provides a synchronous, line-oriented renderer for CI environments.
package linear

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/muesli/termenv"
	"go.trai.ch/vlr/internal/core/domain"
)

const durationPrecision = time.Millisecond

// Renderer implements ports.Renderer for CI/non-interactive environments.
// Progress is written as one line per distinct caption.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output

	mu        sync.Mutex
	lastLabel string
	stopped   bool
}

// NewRenderer creates a new linear Renderer.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stdout: stdout,
		stderr: stderr,
		output: termenv.NewOutput(stderr, termenv.WithProfile(colorProfile())),
	}
}

// colorProfile returns the color profile based on environment.
func colorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// Start is a no-op for linear renderer (synchronous).
func (r *Renderer) Start(_ context.Context) error {
	return nil
}

// Stop marks the renderer stopped; later events are dropped.
func (r *Renderer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopped = true
	return nil
}

// Wait is a no-op for linear renderer (synchronous).
func (r *Renderer) Wait() error {
	return nil
}

// OnProgress prints the caption unless it repeats the previous one.
func (r *Renderer) OnProgress(label string, fraction float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped || label == r.lastLabel {
		return
	}
	r.lastLabel = label

	prefix := r.output.String(fmt.Sprintf("[%3.0f%%]", clamp(fraction)*100)).Faint().String()
	_, _ = fmt.Fprintf(r.stderr, "%s %s\n", prefix, label)
}

// OnNotification prints a status message from the extractor.
func (r *Renderer) OnNotification(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped {
		return
	}
	prefix := r.output.String("[extractor]").Faint().String()
	_, _ = fmt.Fprintf(r.stdout, "%s %s\n", prefix, text)
}

// OnError prints a failure message.
func (r *Renderer) OnError(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped {
		return
	}
	symbol := r.output.String("✗").Foreground(termenv.ANSIRed).String()
	_, _ = fmt.Fprintf(r.stderr, "%s %s\n", symbol, message)
}

// OnDone prints the final status of a verification run.
func (r *Renderer) OnDone(outcome domain.Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped {
		return
	}

	switch outcome.Kind {
	case domain.OutcomeSucceeded:
		symbol := r.output.String("✓").Foreground(termenv.ANSIGreen).String()
		detail := fmt.Sprintf("in %v", outcome.Duration.Round(durationPrecision))
		if outcome.Skipped {
			detail = "(already verified)"
		}
		_, _ = fmt.Fprintf(r.stderr, "%s Verified %s %s\n",
			symbol, humanize.IBytes(uint64(outcome.TotalBytes)), detail) //nolint:gosec // sizes are non-negative
	case domain.OutcomeCancelled:
		symbol := r.output.String("~").Foreground(termenv.ANSIYellow).String()
		_, _ = fmt.Fprintf(r.stderr, "%s Cancelled after %s of %s\n", symbol,
			humanize.IBytes(uint64(outcome.VerifiedBytes)), //nolint:gosec // sizes are non-negative
			humanize.IBytes(uint64(outcome.TotalBytes)))    //nolint:gosec // sizes are non-negative
	default:
		symbol := r.output.String("✗").Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.stderr, "%s Verification failed at %.0f%%\n", symbol, outcome.Fraction()*100)
	}
}

func clamp(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}
