package commands

import (
	"context"
	"time"

	"event-reminder/internal/domain/event"
)

// EventSource supplies raw rows for one category. Cells are strings;
// empty cells arrive as empty strings, trailing empties may be absent.
type EventSource interface {
	Read(ctx context.Context, cat event.Category) ([][]string, error)
}

// Dispatcher fans one reminder out over every configured channel and
// reports per-channel success. One channel's failure must never suppress
// another channel's attempt.
type Dispatcher interface {
	Send(ctx context.Context, ev *event.Event, label string) map[string]bool
}

// NotificationKey uniquely identifies one deliverable reminder. It is the
// ledger's primary key: at most one entry ever exists per key.
type NotificationKey struct {
	EventID  string
	Category event.Category
	Label    string
}

// LedgerEntry records one delivered reminder. Entries are written once,
// never updated, never removed.
type LedgerEntry struct {
	Key       NotificationKey
	EventDate string
	SentAt    time.Time
	Channels  map[string]bool
}

// Ledger is the durable idempotency set behind exactly-once delivery.
//
// Exists lookup failures are handled by the caller with a fail-open
// policy. Record must be a conditional insert: a duplicate key is
// accepted as a no-op so overlapping runs cannot double-write.
type Ledger interface {
	Exists(ctx context.Context, key NotificationKey) (bool, error)
	Record(ctx context.Context, entry LedgerEntry) error
}
