// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/vlr/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements the ports.Telemetry interface using the vito/progrock library.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a Recorder that reports finished vertices to logger.
func New(logger ports.Logger) *Recorder {
	return NewRecorder(NewLogWriter(logger))
}

// NewJournal creates a Recorder that reports to logger and also writes every
// status update as a JSON line to the file at path.
func NewJournal(path string, logger ports.Logger) (*Recorder, error) {
	journal, err := progrock.CreateJournal(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create trace journal"), "path", path)
	}
	return NewRecorder(progrock.MultiWriter{journal, NewLogWriter(logger)}), nil
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	w = &syncWriter{w: w}
	rec := progrock.NewRecorder(w)
	return &Recorder{
		w:   w,
		rec: rec,
	}
}

// Record starts recording a new vertex.
func (r *Recorder) Record(ctx context.Context, name string, opts ...ports.VertexOption) (context.Context, ports.Vertex) {
	cfg := ports.NewVertexConfig(name, opts...)
	v := r.rec.Vertex(digest.FromString(cfg.Key), name)
	vertex := &Vertex{vertex: v}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Close completes the recording session and closes the writer.
func (r *Recorder) Close() error {
	r.rec.Complete()
	return r.rec.Close()
}
