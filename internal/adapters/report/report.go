// Package report renders verification outcomes for humans and machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"go.trai.ch/vlr/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Format selects the report encoding.
type Format string

const (
	// FormatText is a short human-readable summary.
	FormatText Format = "text"
	// FormatJSON is an indented JSON document.
	FormatJSON Format = "json"
	// FormatYAML is a YAML document.
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user supplied format name. Empty selects text.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML:
		return Format(s), nil
	default:
		return "", zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "unknown report format"), "format", s)
	}
}

// Report is the serializable view of a verification outcome.
type Report struct {
	JobID         string  `json:"job_id" yaml:"job_id"`
	Manifest      string  `json:"manifest" yaml:"manifest"`
	DataRoot      string  `json:"data_root" yaml:"data_root"`
	Outcome       string  `json:"outcome" yaml:"outcome"`
	Path          string  `json:"path,omitempty" yaml:"path,omitempty"`
	Error         string  `json:"error,omitempty" yaml:"error,omitempty"`
	VerifiedBytes int64   `json:"verified_bytes" yaml:"verified_bytes"`
	TotalBytes    int64   `json:"total_bytes" yaml:"total_bytes"`
	Fraction      float64 `json:"fraction" yaml:"fraction"`
	Duration      string  `json:"duration" yaml:"duration"`
	Skipped       bool    `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

// New builds a report from an outcome.
func New(outcome *domain.Outcome, manifestPath, dataRoot string) Report {
	r := Report{
		Manifest:      manifestPath,
		DataRoot:      dataRoot,
		Outcome:       string(outcome.Kind),
		Path:          outcome.Path,
		VerifiedBytes: outcome.VerifiedBytes,
		TotalBytes:    outcome.TotalBytes,
		Fraction:      outcome.Fraction(),
		Duration:      outcome.Duration.Round(time.Millisecond).String(),
		Skipped:       outcome.Skipped,
	}
	if outcome.JobID != uuid.Nil {
		r.JobID = outcome.JobID.String()
	}
	if outcome.Err != nil {
		r.Error = outcome.Err.Error()
	}
	return r
}

// Write encodes the report to w in the given format.
func Write(w io.Writer, format Format, r *Report) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return zerr.Wrap(err, "failed to encode json report")
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return zerr.Wrap(err, "failed to encode yaml report")
		}
		if err := enc.Close(); err != nil {
			return zerr.Wrap(err, "failed to encode yaml report")
		}
		return nil
	default:
		return writeText(w, r)
	}
}

func writeText(w io.Writer, r *Report) error {
	lines := []string{
		fmt.Sprintf("outcome:  %s", r.Outcome),
		fmt.Sprintf("manifest: %s", r.Manifest),
		fmt.Sprintf("verified: %s of %s (%.0f%%)",
			humanize.IBytes(uint64(max(r.VerifiedBytes, 0))), //nolint:gosec // clamped
			humanize.IBytes(uint64(max(r.TotalBytes, 0))),    //nolint:gosec // clamped
			r.Fraction*100),
		fmt.Sprintf("duration: %s", r.Duration),
	}
	if r.Skipped {
		lines = append(lines, "skipped:  already verified")
	}
	if r.Path != "" {
		lines = append(lines, fmt.Sprintf("path:     %s", r.Path))
	}
	if r.Error != "" {
		lines = append(lines, fmt.Sprintf("error:    %s", r.Error))
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return zerr.Wrap(err, "failed to write report")
		}
	}
	return nil
}
