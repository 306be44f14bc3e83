package eventchannel

import (
	"context"
	"errors"
	"io"
	"time"

	"go.trai.ch/vlr/internal/core/domain"
	"go.trai.ch/vlr/internal/core/ports"
	"go.trai.ch/zerr"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/emptypb"
)

const defaultProbeTimeout = time.Second

var (
	_ ports.EventChannelDialer = (*Dialer)(nil)
	_ ports.EventChannel       = (*Client)(nil)
	_ ports.EventStream        = (*stream)(nil)
)

// Dialer implements ports.EventChannelDialer over gRPC.
type Dialer struct {
	probeTimeout time.Duration
}

// NewDialer creates a new Dialer.
func NewDialer() *Dialer {
	return &Dialer{probeTimeout: defaultProbeTimeout}
}

// Dial connects to the extractor at address and probes it with a Ping.
// Note: grpc.NewClient connects lazily, so the probe is what tells whether the
// extractor is listening yet. It fails fast instead of waiting for readiness.
func (d *Dialer) Dial(ctx context.Context, address string) (ports.EventChannel, error) {
	conn, err := grpc.NewClient(target(address),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "event channel client creation failed"), "address", address)
	}

	client := &Client{conn: conn}

	probeCtx, cancel := context.WithTimeout(ctx, d.probeTimeout)
	defer cancel()
	if err := client.Ping(probeCtx); err != nil {
		_ = conn.Close()
		return nil, zerr.With(zerr.Wrap(err, "event channel not available"), "address", address)
	}

	return client, nil
}

// Client implements ports.EventChannel.
type Client struct {
	conn *grpc.ClientConn
}

// Ping checks that the extractor is serving.
func (c *Client) Ping(ctx context.Context) error {
	return c.conn.Invoke(ctx, pingMethod, &emptypb.Empty{}, &emptypb.Empty{})
}

// Start tells the extractor to begin work.
func (c *Client) Start(ctx context.Context) error {
	if err := c.conn.Invoke(ctx, startMethod, &emptypb.Empty{}, &emptypb.Empty{}); err != nil {
		return zerr.Wrap(err, "failed to start extractor")
	}
	return nil
}

// Subscribe opens the event stream. It returns once the extractor has registered
// the subscription, so events emitted after a following Start are not missed.
func (c *Client) Subscribe(ctx context.Context) (ports.EventStream, error) {
	cs, err := c.conn.NewStream(ctx, &serviceDesc.Streams[0], subscribeMethod)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to subscribe to extractor events")
	}
	if err := cs.SendMsg(&emptypb.Empty{}); err != nil {
		return nil, zerr.Wrap(err, "failed to subscribe to extractor events")
	}
	if err := cs.CloseSend(); err != nil {
		return nil, zerr.Wrap(err, "failed to subscribe to extractor events")
	}
	if _, err := cs.Header(); err != nil {
		return nil, zerr.Wrap(err, "extractor did not confirm subscription")
	}
	return &stream{cs: cs}, nil
}

// Close releases the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

type stream struct {
	cs grpc.ClientStream
}

// Recv returns the next known event, skipping payload types it does not understand.
func (s *stream) Recv() (domain.ChildEvent, error) {
	for {
		msg := new(anypb.Any)
		if err := s.cs.RecvMsg(msg); err != nil {
			if errors.Is(err, io.EOF) {
				return domain.ChildEvent{}, io.EOF
			}
			return domain.ChildEvent{}, zerr.Wrap(err, "event stream failed")
		}
		event, ok, err := decodeEvent(msg)
		if err != nil {
			return domain.ChildEvent{}, err
		}
		if ok {
			return event, nil
		}
	}
}
