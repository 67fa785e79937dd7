package dispatch

import (
	"context"
	"log/slog"
	"time"

	"event-reminder/internal/domain/event"
)

// Channel is one delivery transport for a formatted reminder.
type Channel interface {
	Name() string
	Send(ctx context.Context, ev *event.Event, label string) error
}

// Dispatcher fans a reminder out over every configured channel. Each
// channel is attempted independently under its own deadline, so one slow
// or broken channel can neither stall nor suppress the others.
type Dispatcher struct {
	channels []Channel
	timeout  time.Duration
	logger   *slog.Logger
}

func NewDispatcher(channels []Channel, timeout time.Duration, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{channels: channels, timeout: timeout, logger: logger}
}

func (d *Dispatcher) Send(ctx context.Context, ev *event.Event, label string) map[string]bool {
	results := make(map[string]bool, len(d.channels))
	for _, ch := range d.channels {
		results[ch.Name()] = d.sendOne(ctx, ch, ev, label)
	}
	return results
}

func (d *Dispatcher) sendOne(ctx context.Context, ch Channel, ev *event.Event, label string) bool {
	sendCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	if err := ch.Send(sendCtx, ev, label); err != nil {
		d.logger.Error("channel send failed",
			"channel", ch.Name(), "event_id", ev.ID(), "category", ev.Category().String(), "label", label, "error", err)
		return false
	}
	d.logger.Info("channel send ok",
		"channel", ch.Name(), "event_id", ev.ID(), "label", label)
	return true
}
