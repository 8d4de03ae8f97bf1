//go:build e2e

package e2e

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"creator-market/cmd/bootstrap"
	"creator-market/cmd/bootstrap/components"
	"creator-market/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

// startApp boots the production fx graph with the test pool swapped in and
// the Postgres KV backend forced on, so cooldowns go through client_kv.
func startApp(t *testing.T, pool *pgxpool.Pool, dbCfg config.DBConfig, scraperURL string) (*gin.Engine, config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	cfg.DB = dbCfg
	cfg.Store.Backend = config.StoreBackendPostgres
	cfg.Scraping.BaseURL = scraperURL

	var router *gin.Engine
	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(
			func() *pgxpool.Pool { return pool },
			func() *gin.Engine { return gin.New() },
		),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "start fx app")

	t.Cleanup(func() {
		stopCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("failed to stop fx app", "error", err)
		}
	})
	return router, cfg
}
