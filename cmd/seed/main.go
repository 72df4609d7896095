package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oggyb/pharma-match/internal/config"
	"github.com/oggyb/pharma-match/internal/db"
	"github.com/oggyb/pharma-match/internal/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := db.DefaultSeedOptions()
	var (
		reset   bool
		minimal bool
	)

	cmd := &cobra.Command{
		Use:          "seed",
		Short:        "seed fills the database with demo actors, listings and swipes",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger.InitFromConfig(cfg)
			log := logger.Named("seed")

			database, err := db.NewDB(cfg)
			if err != nil {
				return fmt.Errorf("failed to init db: %w", err)
			}

			if minimal {
				if err := db.SeedMinimalTestData(database); err != nil {
					return fmt.Errorf("failed to seed: %w", err)
				}
				log.Info("minimal dataset seeded")
				return nil
			}

			if reset {
				if err := db.ResetData(database); err != nil {
					return fmt.Errorf("failed to reset: %w", err)
				}
				log.Info("existing data removed")
			}
			if err := db.SeedDemoData(database, opts); err != nil {
				return fmt.Errorf("failed to seed: %w", err)
			}
			log.Info("seeding completed", "driver", cfg.DB.Driver)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&reset, "reset", false, "delete existing data before seeding")
	flags.BoolVar(&minimal, "minimal", false, "seed the small deterministic test dataset instead")
	flags.IntVar(&opts.Candidates, "candidates", opts.Candidates, "number of candidates")
	flags.IntVar(&opts.Recruiters, "recruiters", opts.Recruiters, "number of recruiters")
	flags.IntVar(&opts.Animators, "animators", opts.Animators, "number of animators")
	flags.IntVar(&opts.Laboratories, "labs", opts.Laboratories, "number of laboratories")
	flags.IntVar(&opts.OffersPerRecruiter, "offers", opts.OffersPerRecruiter, "offers per recruiter")
	flags.IntVar(&opts.MissionsPerLab, "missions", opts.MissionsPerLab, "missions per laboratory")
	flags.Int64Var(&opts.Seed, "rand-seed", opts.Seed, "random seed for reproducible data")

	return cmd
}
