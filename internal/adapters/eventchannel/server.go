package eventchannel

import (
	"context"
	"errors"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/vlr/internal/core/domain"
	"go.trai.ch/zerr"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/anypb"
)

const subscriberBuffer = 64

// Server is the extractor side of the event channel. Events published before any
// subscriber is registered are dropped.
type Server struct {
	grpcServer *grpc.Server
	listener   net.Listener
	path       string

	startOnce sync.Once
	started   chan struct{}

	mu     sync.Mutex
	subs   map[int]*subscriber
	nextID int
	closed bool
}

type subscriber struct {
	ch   chan *anypb.Any
	done chan struct{}
}

var _ ExtractorService = (*Server)(nil)

// Listen serves the event channel on a unix socket at address, replacing a stale socket.
func Listen(address string) (*Server, error) {
	path := socketPath(address)

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create socket directory"), "path", path)
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, zerr.With(zerr.Wrap(err, "failed to remove stale socket"), "path", path)
	}

	lis, err := net.Listen("unix", path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to listen"), "path", path)
	}

	s := &Server{
		grpcServer: grpc.NewServer(),
		listener:   lis,
		path:       path,
		started:    make(chan struct{}),
		subs:       make(map[int]*subscriber),
	}
	s.grpcServer.RegisterService(&serviceDesc, s)

	go func() {
		_ = s.grpcServer.Serve(lis)
	}()

	return s, nil
}

// Address returns the socket path the server listens on.
func (s *Server) Address() string {
	return s.path
}

// Ping implements ExtractorService.
func (s *Server) Ping(_ context.Context) error {
	return nil
}

// Begin implements ExtractorService. It releases WaitStarted.
func (s *Server) Begin(_ context.Context) error {
	s.startOnce.Do(func() { close(s.started) })
	return nil
}

// WaitStarted blocks until the supervisor has called Start.
func (s *Server) WaitStarted(ctx context.Context) error {
	select {
	case <-s.started:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Subscribe implements ExtractorService.
func (s *Server) Subscribe(stream grpc.ServerStream) error {
	id, sub, ok := s.register()
	if !ok {
		return nil
	}
	defer s.unregister(id)
	defer close(sub.done)

	if err := stream.SendHeader(metadata.Pairs(subscribedHeader, "1")); err != nil {
		return err
	}

	ctx := stream.Context()
	for {
		select {
		case msg, open := <-sub.ch:
			if !open {
				return nil
			}
			if err := stream.SendMsg(msg); err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Notify publishes a notification.
func (s *Server) Notify(text string) error {
	return s.publish(domain.ChildEvent{Kind: domain.EventNotification, Message: text})
}

// Progress publishes a progress percentage in [0, 100].
func (s *Server) Progress(percent float64) error {
	return s.publish(domain.ChildEvent{Kind: domain.EventProgress, Percent: percent})
}

func (s *Server) publish(event domain.ChildEvent) error {
	msg, err := encodeEvent(event)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return zerr.New("event channel closed")
	}
	for _, sub := range s.subs {
		select {
		case sub.ch <- msg:
		case <-sub.done:
		}
	}
	return nil
}

func (s *Server) register() (int, *subscriber, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, nil, false
	}
	id := s.nextID
	s.nextID++
	sub := &subscriber{
		ch:   make(chan *anypb.Any, subscriberBuffer),
		done: make(chan struct{}),
	}
	s.subs[id] = sub
	return id, sub, true
}

func (s *Server) unregister(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}

// Close ends every subscription after its queued events are sent and stops serving.
func (s *Server) Close() error {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		for _, sub := range s.subs {
			close(sub.ch)
		}
	}
	s.mu.Unlock()

	s.grpcServer.GracefulStop()
	_ = os.Remove(s.path)
	return nil
}
