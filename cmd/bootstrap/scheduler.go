package bootstrap

import (
	"context"
	"log/slog"

	"event-reminder/internal/domain/schedule"
	"event-reminder/internal/pkg/config"
	"event-reminder/internal/usecase/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(StartScheduler),
)

// StartScheduler registers the two in-process triggers: the frequent
// (hourly) pass with narrow windows and the evening pass that also
// covers study sessions. The manual granularity has no schedule; it is
// driven through the HTTP API.
func StartScheduler(lc fx.Lifecycle, cfg config.Config, cmds commands.RunCommands, logger *slog.Logger) error {
	c := cron.New()

	entries := []struct {
		spec        string
		granularity schedule.Granularity
	}{
		{cfg.Reminder.FrequentCron, schedule.GranularityFrequent},
		{cfg.Reminder.EveningCron, schedule.GranularityNormal},
	}

	for _, e := range entries {
		granularity := e.granularity
		if _, err := c.AddFunc(e.spec, func() {
			if _, err := cmds.Execute(context.Background(), granularity); err != nil {
				logger.Error("scheduled run failed", "granularity", granularity.String(), "error", err)
			}
		}); err != nil {
			return err
		}
		logger.Info("scheduled reminder pass", "cron", e.spec, "granularity", granularity.String())
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			c.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopped := c.Stop()
			select {
			case <-stopped.Done():
			case <-ctx.Done():
			}
			return nil
		},
	})

	return nil
}
