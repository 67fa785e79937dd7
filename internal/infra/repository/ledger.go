package repository

import (
	"context"
	"encoding/json"

	"event-reminder/internal/infra"
	"event-reminder/internal/usecase/commands"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of pgxpool.Pool the ledger needs; tests substitute a
// mock.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// LedgerRepository is the Postgres delivery ledger. The table's composite
// primary key (event_id, event_type, label) plus ON CONFLICT DO NOTHING
// makes Record an idempotent insert, which closes the window left open by
// the evaluate-then-write sequence when two runs overlap.
type LedgerRepository struct {
	db DBTX
}

func NewLedgerRepository(db DBTX) *LedgerRepository {
	return &LedgerRepository{db: db}
}

const existsQuery = `
SELECT EXISTS (
	SELECT 1 FROM sent_notifications
	WHERE event_id = $1 AND event_type = $2 AND label = $3
)`

func (r *LedgerRepository) Exists(ctx context.Context, key commands.NotificationKey) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, existsQuery, key.EventID, key.Category.String(), key.Label).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to look up notification key", err)
	}
	return exists, nil
}

const recordQuery = `
INSERT INTO sent_notifications (event_id, event_type, label, event_date, sent_at, channels)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (event_id, event_type, label) DO NOTHING`

func (r *LedgerRepository) Record(ctx context.Context, entry commands.LedgerEntry) error {
	channels, err := json.Marshal(entry.Channels)
	if err != nil {
		return infra.WrapRepoErr("failed to encode channel results", err)
	}

	_, err = r.db.Exec(ctx, recordQuery,
		entry.Key.EventID,
		entry.Key.Category.String(),
		entry.Key.Label,
		entry.EventDate,
		entry.SentAt,
		channels,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to record notification", err)
	}
	return nil
}
