package main

import (
	"context"
	"fmt"
	"time"

	"github.com/aussiebroadwan/clientarea/internal/clientarea/app"
	"github.com/aussiebroadwan/clientarea/internal/clientarea/store/drivers/postgres"
	"github.com/aussiebroadwan/clientarea/internal/clientarea/store/drivers/sqlite"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.LoadConfig()
			logger := app.NewLogger(cfg)

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			st, err := app.OpenStore(ctx, cfg, logger, true)
			if err != nil {
				return err
			}
			defer st.Close()

			switch s := st.(type) {
			case *sqlite.Store:
				version, dirty, err := s.MigrationVersion()
				if err != nil {
					return fmt.Errorf("failed to read migration version: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "sqlite schema at version %d (dirty=%t)\n", version, dirty)
			case *postgres.Store:
				version, err := s.MigrationVersion(ctx)
				if err != nil {
					return fmt.Errorf("failed to read migration version: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "postgres schema at version %d\n", version)
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "give up after this long")
	return cmd
}
