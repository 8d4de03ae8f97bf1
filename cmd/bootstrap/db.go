package bootstrap

import (
	"context"
	"log/slog"

	"creator-market/internal/infra/db"
	"creator-market/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB opens the pool eagerly; OnStop closes it after the HTTP server and
// the cooldown tickers are down, since fx stops hooks in reverse order.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("database connected",
		"host", cfg.DB.Host,
		"database", cfg.DB.DBName,
		"max_conns", pool.Config().MaxConns)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			stat := pool.Stat()
			logger.Info("closing database pool",
				"acquired_conns", stat.AcquiredConns(),
				"total_conns", stat.TotalConns())
			cleanup()
			return nil
		},
	})

	return pool, nil
}
