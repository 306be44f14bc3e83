package supervisor

import (
	"errors"
	"fmt"
	"io"

	"go.trai.ch/vlr/internal/core/domain"
	"go.trai.ch/vlr/internal/core/ports"
)

// Hooks receive the extractor's events. Every hook is optional.
// Events are delivered from a single goroutine in arrival order.
type Hooks struct {
	// Pump services the caller's foreground loop while the supervisor waits for the channel.
	Pump func()
	// OnNotification receives status messages.
	OnNotification func(text string)
	// OnProgress receives completion percentages in [0, 100].
	OnProgress func(percent float64)
	// OnCaption receives "{notification} ({percent}%)" and the matching fraction on every event.
	OnCaption func(caption string, fraction float64)
}

func (h *Hooks) pump() {
	if h.Pump != nil {
		h.Pump()
	}
}

// relay forwards events until the stream ends. A clean end returns nil.
func relay(stream ports.EventStream, hooks *Hooks) error {
	var notification string
	var percent float64

	for {
		ev, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch ev.Kind {
		case domain.EventNotification:
			notification = ev.Message
			if hooks.OnNotification != nil {
				hooks.OnNotification(ev.Message)
			}
		case domain.EventProgress:
			percent = ev.Percent
			if hooks.OnProgress != nil {
				hooks.OnProgress(ev.Percent)
			}
		default:
			continue
		}

		if hooks.OnCaption != nil {
			hooks.OnCaption(Caption(notification, percent), fraction(percent))
		}
	}
}

// Caption formats the composite progress caption.
func Caption(notification string, percent float64) string {
	return fmt.Sprintf("%s (%.0f%%)", notification, percent)
}

func fraction(percent float64) float64 {
	f := percent / 100
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}
