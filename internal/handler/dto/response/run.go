package response

import (
	"time"

	"event-reminder/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CategoryResultResponse struct {
	Category          string   `json:"category"`
	EventsProcessed   int      `json:"events_processed"`
	NotificationsSent int      `json:"notifications_sent"`
	Errors            []string `json:"errors"`
	Skipped           bool     `json:"skipped"`
	Failed            bool     `json:"failed"`
}

type RunResponse struct {
	RunID                  uuid.UUID                `json:"run_id"`
	TriggerGranularity     string                   `json:"trigger_granularity"`
	ExecutionTime          time.Time                `json:"execution_time"`
	DurationMillis         int64                    `json:"duration_ms"`
	Categories             []CategoryResultResponse `json:"categories"`
	TotalEventsProcessed   int                      `json:"total_events_processed"`
	TotalNotificationsSent int                      `json:"total_notifications_sent"`
}

func FromRunSummary(summary *commands.RunSummary) RunResponse {
	resp := RunResponse{
		RunID:                  summary.RunID,
		TriggerGranularity:     summary.Granularity.String(),
		ExecutionTime:          summary.ExecutedAt,
		DurationMillis:         summary.Duration.Milliseconds(),
		TotalEventsProcessed:   summary.TotalEventsProcessed,
		TotalNotificationsSent: summary.TotalNotificationsSent,
	}
	for _, cat := range summary.Categories {
		var item CategoryResultResponse
		_ = copier.Copy(&item, &cat)
		item.Category = cat.Category.String()
		resp.Categories = append(resp.Categories, item)
	}
	return resp
}
