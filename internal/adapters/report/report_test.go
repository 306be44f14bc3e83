package report_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vlr/internal/adapters/report"
	"go.trai.ch/vlr/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

func failedOutcome() *domain.Outcome {
	return &domain.Outcome{
		Kind:          domain.OutcomeFailed,
		Err:           zerr.Wrap(domain.ErrCorruptFile, "checksum mismatch"),
		Path:          "a.bin",
		JobID:         uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
		VerifiedBytes: 512,
		TotalBytes:    2048,
		Duration:      1234567 * time.Microsecond,
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]report.Format{
		"":     report.FormatText,
		"text": report.FormatText,
		"json": report.FormatJSON,
		"yaml": report.FormatYAML,
	} {
		got, err := report.ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := report.ParseFormat("xml")
	require.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestNew(t *testing.T) {
	r := report.New(failedOutcome(), "/disc/Checksums", "/disc")

	assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", r.JobID)
	assert.Equal(t, "failed", r.Outcome)
	assert.Equal(t, "a.bin", r.Path)
	assert.Contains(t, r.Error, "checksum mismatch")
	assert.InDelta(t, 0.25, r.Fraction, 1e-9)
	assert.Equal(t, "1.235s", r.Duration)
}

func TestNew_ZeroJobID(t *testing.T) {
	r := report.New(&domain.Outcome{Kind: domain.OutcomeSucceeded, Skipped: true}, "m", "d")

	assert.Empty(t, r.JobID)
	assert.True(t, r.Skipped)
	assert.InDelta(t, 1.0, r.Fraction, 1e-9)
}

func TestWrite_JSON(t *testing.T) {
	r := report.New(failedOutcome(), "/disc/Checksums", "/disc")
	var buf bytes.Buffer

	require.NoError(t, report.Write(&buf, report.FormatJSON, &r))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "failed", decoded["outcome"])
	assert.Equal(t, "a.bin", decoded["path"])
	assert.InDelta(t, 2048, decoded["total_bytes"], 0)
	assert.NotContains(t, decoded, "skipped")
}

func TestWrite_YAML(t *testing.T) {
	r := report.New(failedOutcome(), "/disc/Checksums", "/disc")
	var buf bytes.Buffer

	require.NoError(t, report.Write(&buf, report.FormatYAML, &r))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "failed", decoded["outcome"])
	assert.Equal(t, "/disc", decoded["data_root"])
	assert.Equal(t, 512, decoded["verified_bytes"])
}

func TestWrite_Text(t *testing.T) {
	r := report.New(failedOutcome(), "/disc/Checksums", "/disc")
	var buf bytes.Buffer

	require.NoError(t, report.Write(&buf, report.FormatText, &r))

	out := buf.String()
	assert.Contains(t, out, "outcome:  failed\n")
	assert.Contains(t, out, "verified: 512 B of 2.0 KiB (25%)\n")
	assert.Contains(t, out, "path:     a.bin\n")
	assert.Contains(t, out, "error:    checksum mismatch")
}
