package ports

import (
	"context"

	"go.trai.ch/vlr/internal/core/domain"
)

//go:generate mockgen -source=eventchannel.go -destination=mocks/mock_eventchannel.go -package=mocks

// EventChannelDialer connects to the extractor's event channel.
type EventChannelDialer interface {
	// Dial returns an error right away when nothing is listening at address yet.
	Dial(ctx context.Context, address string) (EventChannel, error)
}

// EventChannel is a live connection to the extractor.
type EventChannel interface {
	// Subscribe opens the event stream.
	Subscribe(ctx context.Context) (EventStream, error)
	// Start tells the extractor to begin work.
	Start(ctx context.Context) error
	// Close releases the connection.
	Close() error
}

// EventStream yields events in arrival order.
type EventStream interface {
	// Recv blocks for the next event and returns io.EOF when the extractor closes the stream.
	Recv() (domain.ChildEvent, error)
}
