package tui

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"go.trai.ch/vlr/internal/core/domain"
)

// View renders the UI.
func (m *Model) View() string {
	var s strings.Builder

	header := titleStyle
	if m.ErrorMessage != "" || (m.Outcome != nil && m.Outcome.Kind == domain.OutcomeFailed) {
		header = failureTitleStyle
	}
	s.WriteString(header.Render(strings.ToUpper(m.Title)) + "\n\n")

	if m.Outcome == nil {
		label := m.Label
		if label == "" {
			label = "Starting..."
		}
		if m.Interrupted {
			label = "Stopping..."
		}
		s.WriteString(m.spinner.View() + " " + labelStyle.Render(label) + "\n")
	}
	s.WriteString(m.bar.ViewAs(clamp(m.Fraction)) + "\n")

	if len(m.Notifications) > 0 {
		s.WriteString("\n")
		for _, n := range m.Notifications {
			s.WriteString(notificationStyle.Render(n) + "\n")
		}
	}

	if m.ErrorMessage != "" {
		s.WriteString("\n" + errorStyle.Render("✗ "+m.ErrorMessage) + "\n")
	}
	if m.Outcome != nil {
		s.WriteString("\n" + summary(m.Outcome) + "\n")
	}

	return bodyStyle.Render(s.String())
}

func summary(o *domain.Outcome) string {
	switch o.Kind {
	case domain.OutcomeSucceeded:
		if o.Skipped {
			return doneStyle.Render("✓ Already verified")
		}
		return doneStyle.Render(fmt.Sprintf("✓ Verified %s in %v",
			humanize.IBytes(uint64(o.TotalBytes)), o.Duration.Round(durationPrecision))) //nolint:gosec // sizes are non-negative
	case domain.OutcomeCancelled:
		return cancelledStyle.Render(fmt.Sprintf("~ Cancelled after %s of %s",
			humanize.IBytes(uint64(o.VerifiedBytes)), //nolint:gosec // sizes are non-negative
			humanize.IBytes(uint64(o.TotalBytes))))   //nolint:gosec // sizes are non-negative
	default:
		return errorStyle.Render(fmt.Sprintf("✗ Verification failed at %.0f%%", o.Fraction()*100))
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
