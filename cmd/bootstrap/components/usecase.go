package components

import (
	"event-reminder/internal/domain/schedule"
	"event-reminder/internal/pkg/clock"
	"event-reminder/internal/pkg/config"
	"event-reminder/internal/usecase/commands"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewEvaluator,
		NewRuleSet,
		commands.NewProcessor,
		commands.NewRunCommands,
	),
)

func NewEvaluator(cfg config.Config) (*schedule.Evaluator, error) {
	return schedule.NewEvaluator(cfg.Reminder.TimeZone)
}

func NewRuleSet(cfg config.Config) (schedule.RuleSet, error) {
	return schedule.LoadRuleSet(cfg.Reminder.RulesFile)
}
