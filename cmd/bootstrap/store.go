package bootstrap

import (
	"context"
	"log/slog"

	"seatbook/internal/infra/store"
	"seatbook/internal/pkg/config"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewStore,
	),
)

// NewStore selects the persistence driver from configuration. Unknown
// drivers fall back to the in-memory store with a warning rather than
// refusing to boot; the engine stays usable, just not durable.
func NewStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (store.Store, error) {
	ctx := context.Background()

	var (
		st  store.Store
		err error
	)
	switch cfg.Store.Driver {
	case "file":
		st, err = store.NewFileStore(cfg.Store.FileDir)
	case "postgres":
		st, err = store.NewPostgresStore(ctx, cfg.Store.DB)
	case "redis":
		st, err = store.NewRedisStore(ctx, cfg.Store.Redis)
	case "memory":
		st = store.NewMemoryStore()
	default:
		logger.Warn("unknown store driver, state will not survive restarts", "driver", cfg.Store.Driver)
		st = store.NewMemoryStore()
	}
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return st.Close()
		},
	})

	return st, nil
}
