// Package logger implements a logging adapter using charmbracelet/log.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"go.trai.ch/vlr/internal/core/ports"
	"go.trai.ch/zerr"
)

// Logger implements ports.Logger using charmbracelet/log.
// Errors are routed through zerr so their metadata becomes structured fields.
type Logger struct {
	mu    sync.RWMutex
	charm *log.Logger
	slog  *slog.Logger
}

// New creates a new Logger writing to stderr at info level.
func New() ports.Logger {
	return NewWithWriter(os.Stderr, log.InfoLevel)
}

// NewWithWriter creates a Logger writing to w at the given level.
func NewWithWriter(w io.Writer, level log.Level) *Logger {
	l := &Logger{}
	l.reset(w, level)
	return l
}

// ParseLevel parses a textual level, falling back to info for unknown values.
func ParseLevel(s string) log.Level {
	lvl, err := log.ParseLevel(s)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

func (l *Logger) reset(w io.Writer, level log.Level) {
	if w == nil {
		w = os.Stderr
	}
	charm := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "vlr",
		ReportTimestamp: true,
	})
	l.charm = charm
	l.slog = slog.New(charm)
}

// SetOutput updates the logger's output destination.
// If w is nil, os.Stderr is used as the default.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.reset(w, l.charm.GetLevel())
}

// SetLevel changes the minimum level that is written.
func (l *Logger) SetLevel(level log.Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.charm.SetLevel(level)
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, keyvals ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.charm.Debug(msg, keyvals...)
}

// Info logs an informational message.
func (l *Logger) Info(msg string, keyvals ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.charm.Info(msg, keyvals...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, keyvals ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.charm.Warn(msg, keyvals...)
}

// Error logs an error together with the metadata attached along its chain.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	zerr.Log(context.Background(), l.slog, err)
}
