package progrock

import (
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/vlr/internal/core/ports"
)

// LogWriter is a progrock.Writer that logs every vertex once it completes.
// Vertex output is dropped; the launcher logs child output itself.
type LogWriter struct {
	logger ports.Logger
}

// NewLogWriter creates a LogWriter.
func NewLogWriter(logger ports.Logger) *LogWriter {
	return &LogWriter{logger: logger}
}

// WriteStatus logs the completed vertices of an update.
func (w *LogWriter) WriteStatus(update *progrock.StatusUpdate) error {
	for _, v := range update.Vertexes {
		if v.Completed == nil {
			continue
		}
		switch {
		case v.Error != nil:
			w.logger.Warn("step failed", "step", v.Name, "duration", v.Duration().String(), "error", *v.Error)
		case v.Canceled:
			w.logger.Debug("step cancelled", "step", v.Name)
		case v.Cached:
			w.logger.Debug("step answered from ledger", "step", v.Name)
		default:
			w.logger.Debug("step completed", "step", v.Name, "duration", v.Duration().String())
		}
	}
	return nil
}

// Close implements progrock.Writer.
func (w *LogWriter) Close() error {
	return nil
}

// syncWriter serialises status updates; vertices are written from the
// child's output goroutines and the event relay at the same time.
type syncWriter struct {
	mu sync.Mutex
	w  progrock.Writer
}

func (s *syncWriter) WriteStatus(update *progrock.StatusUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.WriteStatus(update)
}

func (s *syncWriter) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Close()
}
