package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"event-reminder/internal/domain/event"
	"event-reminder/internal/domain/schedule"
	"event-reminder/internal/pkg/clock"

	"github.com/google/uuid"
)

// RunSummary aggregates one full pass over every category.
type RunSummary struct {
	RunID                  uuid.UUID            `json:"run_id"`
	Granularity            schedule.Granularity `json:"trigger_granularity"`
	ExecutedAt             time.Time            `json:"execution_time"`
	Duration               time.Duration        `json:"duration"`
	Categories             []CategoryResult     `json:"categories"`
	TotalEventsProcessed   int                  `json:"total_events_processed"`
	TotalNotificationsSent int                  `json:"total_notifications_sent"`
}

type RunCommands interface {
	// Execute runs one full reminder pass. Per-category infrastructure
	// failures are folded into the summary; only a run-level defect (an
	// unknown granularity, no rules at all) comes back as an error.
	Execute(ctx context.Context, granularity schedule.Granularity) (*RunSummary, error)
}

type runUseCaseImpl struct {
	source    EventSource
	processor *Processor
	rules     schedule.RuleSet
	clock     clock.Clock
	logger    *slog.Logger
}

func NewRunCommands(
	source EventSource,
	processor *Processor,
	rules schedule.RuleSet,
	clk clock.Clock,
	logger *slog.Logger,
) RunCommands {
	return &runUseCaseImpl{
		source:    source,
		processor: processor,
		rules:     rules,
		clock:     clk,
		logger:    logger,
	}
}

func (r *runUseCaseImpl) Execute(ctx context.Context, granularity schedule.Granularity) (*RunSummary, error) {
	if _, err := schedule.ParseGranularity(granularity.String()); err != nil {
		return nil, err
	}

	now := r.clock.Now()
	summary := &RunSummary{
		RunID:       uuid.New(),
		Granularity: granularity,
		ExecutedAt:  now,
	}

	r.logger.Info("starting reminder run", "run_id", summary.RunID, "granularity", granularity.String())

	for _, cat := range event.Categories() {
		summary.Categories = append(summary.Categories, r.processCategory(ctx, cat, now, granularity))
	}

	for _, res := range summary.Categories {
		summary.TotalEventsProcessed += res.EventsProcessed
		summary.TotalNotificationsSent += res.NotificationsSent
	}
	summary.Duration = r.clock.Now().Sub(now)

	r.logger.Info("reminder run complete",
		"run_id", summary.RunID,
		"total_events_processed", summary.TotalEventsProcessed,
		"total_notifications_sent", summary.TotalNotificationsSent,
		"duration", summary.Duration,
	)
	return summary, nil
}

func (r *runUseCaseImpl) processCategory(ctx context.Context, cat event.Category, now time.Time, granularity schedule.Granularity) CategoryResult {
	if cat == event.CategoryStudy && !granularity.IncludesStudy() {
		r.logger.Info("skipping study schedule", "granularity", granularity.String())
		return CategoryResult{Category: cat, Errors: []string{}, Skipped: true}
	}

	rows, err := r.source.Read(ctx, cat)
	if err != nil {
		// Source unreachable fails this category's batch only; the other
		// categories still run.
		r.logger.Error("event source read failed", "category", cat.String(), "error", err)
		return CategoryResult{
			Category: cat,
			Errors:   []string{fmt.Sprintf("event source read failed: %v", err)},
			Failed:   true,
		}
	}

	return r.processor.ProcessCategory(ctx, cat, rows, r.rules[cat], now, granularity)
}
