// Package eventchannel implements the inter-process event channel between vlr and
// the extractor: a small gRPC service served by the extractor on a unix socket.
//
// The service uses protobuf well-known types only. Subscribe streams Any values
// wrapping a StringValue for notifications and a DoubleValue for progress in [0, 100].
package eventchannel

import (
	"context"
	"path/filepath"
	"strings"

	"go.trai.ch/vlr/internal/core/domain"
	"go.trai.ch/zerr"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	// ServiceName is the fully qualified gRPC service name.
	ServiceName = "vlr.extractor.v1.Extractor"

	pingMethod      = "/" + ServiceName + "/Ping"
	startMethod     = "/" + ServiceName + "/Start"
	subscribeMethod = "/" + ServiceName + "/Subscribe"

	// subscribedHeader is sent once the server has registered a subscriber.
	subscribedHeader = "vlr-subscribed"
)

// ExtractorService is implemented by the extractor side of the channel.
type ExtractorService interface {
	Ping(ctx context.Context) error
	Begin(ctx context.Context) error
	Subscribe(stream grpc.ServerStream) error
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ExtractorService)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Ping",
			Handler: func(srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
				if err := dec(new(emptypb.Empty)); err != nil {
					return nil, err
				}
				return &emptypb.Empty{}, srv.(ExtractorService).Ping(ctx)
			},
		},
		{
			MethodName: "Start",
			Handler: func(srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
				if err := dec(new(emptypb.Empty)); err != nil {
					return nil, err
				}
				return &emptypb.Empty{}, srv.(ExtractorService).Begin(ctx)
			},
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName: "Subscribe",
			Handler: func(srv any, stream grpc.ServerStream) error {
				if err := stream.RecvMsg(new(emptypb.Empty)); err != nil {
					return err
				}
				return srv.(ExtractorService).Subscribe(stream)
			},
			ServerStreams: true,
		},
	},
}

// encodeEvent packs an event for the wire.
func encodeEvent(event domain.ChildEvent) (*anypb.Any, error) {
	switch event.Kind {
	case domain.EventNotification:
		return anypb.New(wrapperspb.String(event.Message))
	case domain.EventProgress:
		return anypb.New(wrapperspb.Double(event.Percent))
	default:
		return nil, zerr.With(zerr.New("unknown event kind"), "kind", int(event.Kind))
	}
}

// decodeEvent unpacks an event. ok is false for payloads this version does not know.
func decodeEvent(msg *anypb.Any) (domain.ChildEvent, bool, error) {
	payload, err := msg.UnmarshalNew()
	if err != nil {
		return domain.ChildEvent{}, false, zerr.Wrap(err, "failed to decode event")
	}
	switch v := payload.(type) {
	case *wrapperspb.StringValue:
		return domain.ChildEvent{Kind: domain.EventNotification, Message: v.GetValue()}, true, nil
	case *wrapperspb.DoubleValue:
		return domain.ChildEvent{Kind: domain.EventProgress, Percent: v.GetValue()}, true, nil
	default:
		return domain.ChildEvent{}, false, nil
	}
}

// target converts an address into a gRPC target. Bare paths are unix sockets.
func target(address string) string {
	if strings.Contains(address, "://") {
		return address
	}
	if abs, err := filepath.Abs(address); err == nil {
		address = abs
	}
	return "unix://" + address
}

// socketPath strips a unix:// scheme from address.
func socketPath(address string) string {
	return strings.TrimPrefix(address, "unix://")
}
