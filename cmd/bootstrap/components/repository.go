package components

import (
	"context"
	"log/slog"

	"event-reminder/internal/infra/dispatch"
	"event-reminder/internal/infra/repository"
	"event-reminder/internal/infra/sheets"
	"event-reminder/internal/pkg/config"
	"event-reminder/internal/usecase/commands"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repository.NewLedgerRepository,
			fx.As(new(commands.Ledger)),
		),
		fx.Annotate(
			NewSheetsClient,
			fx.As(new(commands.EventSource)),
		),
		NewSESClient,
		NewChannels,
		fx.Annotate(
			NewDispatcher,
			fx.As(new(commands.Dispatcher)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) repository.DBTX {
	return pool
}

func NewSheetsClient(cfg config.Config, logger *slog.Logger) *sheets.Client {
	return sheets.NewClient(cfg.Sheets, logger)
}

func NewSESClient() (*sesv2.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		return nil, err
	}
	return sesv2.NewFromConfig(awsCfg), nil
}

func NewChannels(ses *sesv2.Client, cfg config.Config) []dispatch.Channel {
	return []dispatch.Channel{
		dispatch.NewEmailChannel(ses, cfg.Notify),
		dispatch.NewDiscordChannel(cfg.Notify),
	}
}

func NewDispatcher(channels []dispatch.Channel, cfg config.Config, logger *slog.Logger) *dispatch.Dispatcher {
	return dispatch.NewDispatcher(channels, cfg.Notify.ChannelTimeout, logger)
}
