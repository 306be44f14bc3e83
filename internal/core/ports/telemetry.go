package ports

import (
	"context"
	"io"

	"go.trai.ch/vlr/internal/core/domain"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records units of work as vertices.
type Telemetry interface {
	// Record starts a new vertex and returns a context carrying it.
	Record(ctx context.Context, name string, opts ...VertexOption) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex is a single recorded unit of work.
type Vertex interface {
	Stdout() io.Writer
	Stderr() io.Writer
	// Log records a message associated with this vertex.
	Log(level domain.LogLevel, msg string)
	// Complete marks the vertex as finished, successfully when err is nil.
	Complete(err error)
	// Cached marks the vertex as answered without doing the work.
	Cached()
}

// VertexConfig holds configuration for a starting vertex.
type VertexConfig struct {
	// Key identifies the vertex. It defaults to the vertex name.
	Key string
}

// VertexOption is a functional option for configuring a vertex.
type VertexOption func(*VertexConfig)

// WithKey identifies the vertex by key instead of by name, so that equally named
// units of work stay distinct.
func WithKey(key string) VertexOption {
	return func(c *VertexConfig) {
		c.Key = key
	}
}

// NewVertexConfig applies opts over the defaults for a vertex called name.
func NewVertexConfig(name string, opts ...VertexOption) VertexConfig {
	cfg := VertexConfig{Key: name}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

type vertexKey struct{}

// ContextWithVertex returns a copy of ctx carrying v.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexKey{}, v)
}

// VertexFromContext returns the vertex carried by ctx, if any.
func VertexFromContext(ctx context.Context) (Vertex, bool) {
	v, ok := ctx.Value(vertexKey{}).(Vertex)
	return v, ok
}
