package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/clientarea/internal/clientarea/store"
	"github.com/aussiebroadwan/clientarea/internal/clientarea/store/drivers/postgres"
	"github.com/aussiebroadwan/clientarea/internal/clientarea/store/drivers/sqlite"
)

// OpenStore connects to the configured database and applies pending
// migrations when migrate is set.
func OpenStore(ctx context.Context, cfg Config, logger *slog.Logger, migrate bool) (store.Store, error) {
	if err := cfg.ValidateDatabase(); err != nil {
		return nil, err
	}

	var (
		st  store.Store
		err error
	)
	switch cfg.DatabaseDriver {
	case DriverPostgres:
		st, err = postgres.NewStore(ctx, cfg.DatabaseURL)
	default:
		st, err = sqlite.NewStore(sqlite.DSN(cfg.DatabaseFile))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.DatabaseDriver, err)
	}

	if !migrate {
		return st, nil
	}
	if err := st.ApplyMigrations(ctx); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}
	logger.Info("database migrations applied", "driver", cfg.DatabaseDriver)
	return st, nil
}
