package logger_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/vlr/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf, log.InfoLevel)

	lg.Info("some message", "path", "/mnt/disc")

	assert.Contains(t, buf.String(), "some message")
	assert.Contains(t, buf.String(), "INFO")
	assert.Contains(t, buf.String(), "path=/mnt/disc")
}

func TestLogger_DebugFilteredByLevel(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf, log.InfoLevel)

	lg.Debug("hidden")
	assert.Empty(t, buf.String())

	lg.SetLevel(log.DebugLevel)
	lg.Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestLogger_Warn(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf, log.InfoLevel)

	lg.Warn("careful")

	assert.Contains(t, buf.String(), "WARN")
	assert.Contains(t, buf.String(), "careful")
}

func TestLogger_ErrorIncludesMetadata(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf, log.InfoLevel)

	err := zerr.With(zerr.Wrap(zerr.New("disk gone"), "failed to read"), "path", "data/a.img")
	lg.Error(err)

	out := buf.String()
	assert.Contains(t, out, "ERRO")
	assert.Contains(t, out, "failed to read: disk gone")
	assert.Contains(t, out, "data/a.img")
}

func TestLogger_ErrorNil(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf, log.InfoLevel)

	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_SetOutput(t *testing.T) {
	var first, second bytes.Buffer
	lg := logger.NewWithWriter(&first, log.InfoLevel)

	lg.SetOutput(&second)
	lg.Info("moved")

	assert.Empty(t, first.String())
	assert.Contains(t, second.String(), "moved")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, log.DebugLevel, logger.ParseLevel("debug"))
	assert.Equal(t, log.WarnLevel, logger.ParseLevel("warn"))
	assert.Equal(t, log.InfoLevel, logger.ParseLevel("nonsense"))
}
