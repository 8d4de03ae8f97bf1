package components

import (
	"context"

	"creator-market/internal/domain/scraping"
	"creator-market/internal/infra/dispatcher"
	"creator-market/internal/pkg/clock"
	"creator-market/internal/pkg/config"
	"creator-market/internal/pkg/ticker"
	"creator-market/internal/usecase"
	"creator-market/internal/usecase/commands"
	"creator-market/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	ticker.NewRealTicker,
	fx.Annotate(
		func(cfg config.Config) *dispatcher.HTTPDispatcher {
			return dispatcher.NewHTTPDispatcher(cfg.Scraping)
		},
		fx.As(new(commands.Dispatcher)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCooldownCommands,
		commands.NewScrapingCommands,
	),
	fx.Invoke(RegisterCooldownLifecycle),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCampaignQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// RegisterCooldownLifecycle resumes persisted cooldowns on start and releases
// their tickers on stop.
func RegisterCooldownLifecycle(lc fx.Lifecycle, cooldowns commands.CooldownCommands) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			for _, engine := range []scraping.Engine{scraping.EngineGoogle, scraping.EngineBing} {
				if _, err := cooldowns.LoadOnInit(ctx, engine.CooldownKey()); err != nil {
					return err
				}
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			cooldowns.Shutdown()
			return nil
		},
	})
}
