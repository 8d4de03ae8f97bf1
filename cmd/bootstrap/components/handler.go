package components

import (
	"creator-market/internal/handler"
	"creator-market/internal/handler/api"
	"creator-market/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCampaignHandler,
		api.NewScrapingHandler,
		middleware.NewAuthMiddleware,
		func(campaign *api.CampaignHandler, scraping *api.ScrapingHandler) handler.Handlers {
			return handler.Handlers{Campaign: campaign, Scraping: scraping}
		},
	),
	fx.Invoke(handler.NewRouter),
)
