package bootstrap

import (
	"context"
	"log/slog"

	"luxora-booking/internal/infra/db"
	"luxora-booking/internal/pkg/config"
	"luxora-booking/internal/pkg/errs"
	"luxora-booking/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(NewDB),
)

// NewDB opens the pool, applies pending migrations when DB_AUTO_MIGRATE is
// set, and closes the pool on shutdown.
func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	ctx := context.Background()
	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}

	if cfg.DB.AutoMigrate {
		applied, err := db.Migrate(ctx, pool, migrations.FS)
		if err != nil {
			cleanup()
			return nil, errs.Wrap(err, "auto migration failed")
		}
		slog.Info("schema up to date", "applied", len(applied))
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			cleanup()
			return nil
		},
	})
	return pool, nil
}
