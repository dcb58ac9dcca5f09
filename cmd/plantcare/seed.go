package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/plantcare-backend/internal/adapter/blob"
	"github.com/heartmarshall/plantcare-backend/internal/adapter/postgres"
	"github.com/heartmarshall/plantcare-backend/internal/app"
	"github.com/heartmarshall/plantcare-backend/internal/app/seeder"
)

const seedTimeout = 5 * time.Minute

func newSeedCmd() *cobra.Command {
	var (
		file   string
		user   string
		dryRun bool
		cfgRef string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load demo plants from a YAML fixture",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := app.NewLogger(cfg.Log)

			// Seeder config: --seeder-config file or SEEDER_* env, flags win.
			seedCfg, err := seeder.LoadConfig(cfgRef)
			if err != nil {
				return err
			}
			if file != "" {
				seedCfg.FixturePath = file
			}
			if user != "" {
				seedCfg.UserID = user
			}
			if dryRun {
				seedCfg.DryRun = true
			}
			if seedCfg.FixturePath == "" {
				return fmt.Errorf("seed: --file is required")
			}
			owner, err := seedCfg.Owner()
			if err != nil {
				return err
			}

			fx, err := seeder.LoadFixture(seedCfg.FixturePath)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), seedTimeout)
			defer cancel()

			pool, err := postgres.NewPool(ctx, cfg.Database)
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}
			defer pool.Close()

			blobs, err := blob.NewFSStore(cfg.Photos.Dir, cfg.Photos.PublicURL)
			if err != nil {
				return err
			}

			svc := app.NewServices(cfg, logger, pool, blobs)
			res := seeder.NewPipeline(logger, svc.Plants, svc.Care, *seedCfg).Run(ctx, owner, fx)

			fmt.Fprintf(cmd.OutOrStdout(), "plants=%d logs=%d profiles=%d skipped=%d errors=%d\n",
				res.Plants, res.Logs, res.Profiles, res.Skipped, res.Errors)
			if res.Errors > 0 {
				return fmt.Errorf("seed: %d plants failed", res.Errors)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "fixture YAML file")
	cmd.Flags().StringVarP(&user, "user", "u", "", "owner user UUID")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse the fixture without writing")
	cmd.Flags().StringVar(&cfgRef, "seeder-config", "", "seeder YAML config file")
	return cmd
}
