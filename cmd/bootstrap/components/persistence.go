package components

import (
	"log/slog"

	"creator-market/internal/infra/db"
	"creator-market/internal/infra/kvstore"
	"creator-market/internal/infra/readstore"
	"creator-market/internal/pkg/config"
	"creator-market/internal/usecase/commands"
	"creator-market/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	kvstoreModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewCampaignReadStore,
			fx.As(new(queries.CampaignReadStore)),
		),
	),
)

var kvstoreModule = fx.Module("persistence/kvstore",
	fx.Provide(
		NewKeyValueStore,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

// NewKeyValueStore picks the cooldown backend. The postgres backend never
// surfaces storage errors to callers.
func NewKeyValueStore(cfg config.Config, dbtx db.DBTX, logger *slog.Logger) commands.KeyValueStore {
	if cfg.Store.Backend == config.StoreBackendMemory {
		logger.Info("cooldown storage is in-memory only")
		return kvstore.NewMemoryStore()
	}
	return kvstore.NewBestEffortStore(kvstore.NewPostgresStore(dbtx), logger)
}
