package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/oggyb/pharma-match/internal/app"
	"github.com/oggyb/pharma-match/internal/cache"
	"github.com/oggyb/pharma-match/internal/config"
	"github.com/oggyb/pharma-match/internal/db"
	"github.com/oggyb/pharma-match/internal/jobs"
	"github.com/oggyb/pharma-match/internal/logger"
	"github.com/oggyb/pharma-match/internal/notify"
	"github.com/oggyb/pharma-match/internal/repository"
	"github.com/oggyb/pharma-match/internal/server"
	matchingsvc "github.com/oggyb/pharma-match/internal/service/matching"
)

func main() {
	cfg := config.New()

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init DB
	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "driver", cfg.DB.Driver, "err", err)
		os.Exit(1)
	}

	// Init Redis
	redisCache := cache.NewRedisCache(cfg)
	if err := redisCache.Ping(ctx); err != nil {
		log.Error("failed to connect to redis", "addr", cfg.Redis.Addr, "err", err)
		os.Exit(1)
	}
	defer redisCache.Close()

	if cfg.IsDevelopment() {
		if err := db.SeedMinimalTestData(database); err != nil {
			log.Error("failed to seed", "err", err)
		}
	}

	appCtx, err := app.Build(cfg, database, redisCache, logger.Named("matching"))
	if err != nil {
		log.Error("failed to build engine", "err", err)
		os.Exit(1)
	}

	if cfg.Jobs.Enabled {
		notifications := repository.NewNotificationRepository(database)
		dispatcher := notify.NewDispatcher(notifications, notify.LogSender{Log: logger.Named("notify")}, logger.Named("notify"),
			notify.WithBatch(cfg.Jobs.NotifyBatch),
		)
		scheduler := jobs.NewScheduler(jobs.Config{
			NotifySpec:     cfg.Jobs.NotifySpec,
			PruneSpec:      cfg.Jobs.PruneSpec,
			QuotaRetention: cfg.Jobs.QuotaRetention,
		}, dispatcher, repository.NewQuotaRepository(database), logger.Named("jobs"))
		if err := scheduler.Start(ctx); err != nil {
			log.Error("failed to start scheduler", "err", err)
			os.Exit(1)
		}
		defer scheduler.Stop()
	}

	registrars := []server.Registrar{
		matchingsvc.NewRegistrar(appCtx),
	}

	if err := server.StartGRPCServer(ctx, cfg, log, registrars...); err != nil {
		log.Error("failed to start gRPC server", "err", err)
	}
}
