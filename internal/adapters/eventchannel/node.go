package eventchannel

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vlr/internal/core/ports"
)

// NodeID is the unique identifier for the event channel dialer Graft node.
const NodeID graft.ID = "adapter.event_channel"

func init() {
	graft.Register(graft.Node[ports.EventChannelDialer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.EventChannelDialer, error) {
			return NewDialer(), nil
		},
	})
}
