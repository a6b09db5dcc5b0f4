package cli

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"sciquest-service/internal/config"
	"sciquest-service/internal/infra/postgres"
	"sciquest-service/internal/seed"
)

// NewSeedCmd loads the fixture catalog into Postgres. The in-memory backend
// seeds itself on startup and never needs this.
func NewSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the fixture catalog into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if cfg.Postgres.URL == "" {
				return fmt.Errorf("postgres url not configured")
			}
			ctx := cmd.Context()
			if err := runMigrationsWithConfig(ctx, cfg); err != nil {
				return err
			}

			pool, err := postgres.Connect(ctx, cfg.Postgres.URL)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := seed.Apply(ctx, postgres.NewStore(pool)); err != nil {
				return err
			}
			log.Printf("catalog seeded")
			return nil
		},
	}
}
