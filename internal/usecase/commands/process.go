package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"event-reminder/internal/domain/event"
	"event-reminder/internal/domain/schedule"
	"event-reminder/internal/pkg/errs"
)

// CategoryResult is the per-category outcome of one run.
type CategoryResult struct {
	Category          event.Category `json:"category"`
	EventsProcessed   int            `json:"events_processed"`
	NotificationsSent int            `json:"notifications_sent"`
	Errors            []string       `json:"errors"`
	Skipped           bool           `json:"skipped"`
	Failed            bool           `json:"failed"`
}

// Processor walks the rows of one category: normalize, evaluate the
// notification window, dispatch, record. A bad row never aborts the
// batch; every failure lands in the result's error list instead.
type Processor struct {
	evaluator  *schedule.Evaluator
	ledger     Ledger
	dispatcher Dispatcher
	logger     *slog.Logger
}

func NewProcessor(evaluator *schedule.Evaluator, ledger Ledger, dispatcher Dispatcher, logger *slog.Logger) *Processor {
	return &Processor{
		evaluator:  evaluator,
		ledger:     ledger,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// ProcessCategory evaluates every row of cat against its rules at now.
func (p *Processor) ProcessCategory(
	ctx context.Context,
	cat event.Category,
	rows [][]string,
	rules []schedule.Rule,
	now time.Time,
	granularity schedule.Granularity,
) CategoryResult {
	result := CategoryResult{Category: cat, Errors: []string{}}
	profile := event.ProfileFor(cat)

	p.logger.Info("processing events", "category", cat.String(), "rows", len(rows), "granularity", granularity.String())

	for i, row := range rows {
		ev, err := profile.Normalize(row)
		if err != nil {
			msg := fmt.Sprintf("row %d: %v", i+1, err)
			p.logger.Warn("skipping invalid row", "category", cat.String(), "row", i+1, "error", err)
			result.Errors = append(result.Errors, msg)
			continue
		}
		result.EventsProcessed++

		labels, err := p.evaluator.DueLabels(ev, rules, now, granularity, p.sentChecker(ctx, ev))
		if err != nil {
			// Unparseable date/time is a row-level defect, distinct from
			// "no rule matched".
			if errs.Is(err, event.ErrNoSchedule) {
				p.logger.Warn("event has no usable schedule", "category", cat.String(), "event_id", ev.ID())
			}
			result.Errors = append(result.Errors, fmt.Sprintf("event %s: %v", ev.ID(), err))
			continue
		}

		for _, label := range labels {
			if p.sendAndTrack(ctx, ev, label, now, &result) {
				result.NotificationsSent++
			}
		}
	}

	return result
}

// sentChecker adapts the ledger to the evaluator's de-duplication hook.
// Lookup failures fail open: better a duplicate reminder than a lost one.
func (p *Processor) sentChecker(ctx context.Context, ev *event.Event) schedule.SentChecker {
	return func(label string) bool {
		key := NotificationKey{EventID: ev.ID(), Category: ev.Category(), Label: label}
		sent, err := p.ledger.Exists(ctx, key)
		if err != nil {
			p.logger.Error("ledger lookup failed, assuming not yet notified",
				"event_id", ev.ID(), "category", ev.Category().String(), "label", label, "error", err)
			return false
		}
		return sent
	}
}

// sendAndTrack dispatches one reminder and records it when at least one
// channel succeeded. A ledger write failure after a successful dispatch
// is logged but does not undo the send; at-least-once is the accepted
// tradeoff over losing a reminder.
func (p *Processor) sendAndTrack(ctx context.Context, ev *event.Event, label string, now time.Time, result *CategoryResult) bool {
	channels := p.dispatcher.Send(ctx, ev, label)

	delivered := false
	for _, ok := range channels {
		if ok {
			delivered = true
			break
		}
	}
	if !delivered {
		result.Errors = append(result.Errors, fmt.Sprintf("event %s: all channels failed for %s", ev.ID(), label))
		return false
	}

	entry := LedgerEntry{
		Key:       NotificationKey{EventID: ev.ID(), Category: ev.Category(), Label: label},
		EventDate: ev.Date(),
		SentAt:    now,
		Channels:  channels,
	}
	if err := p.ledger.Record(ctx, entry); err != nil {
		p.logger.Error("failed to record delivered notification",
			"event_id", ev.ID(), "category", ev.Category().String(), "label", label, "error", err)
	} else {
		p.logger.Info("notification tracked",
			"event_id", ev.ID(), "category", ev.Category().String(), "label", label, "channels", channels)
	}
	return true
}
