package app

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/oggyb/pharma-match/internal/cache"
	"github.com/oggyb/pharma-match/internal/config"
	"github.com/oggyb/pharma-match/internal/matching"
	"github.com/oggyb/pharma-match/internal/notify"
	"github.com/oggyb/pharma-match/internal/ratelimit"
	"github.com/oggyb/pharma-match/internal/repository"
	"github.com/oggyb/pharma-match/internal/subscription"
)

// Build wires the engine over gorm repositories, subscription plans, the
// notification outbox and the Redis swipe limiter.
func Build(cfg *config.Config, database *gorm.DB, rdb *cache.RedisCache, log *slog.Logger) (*AppContext, error) {
	actors := repository.NewActorRepository(database)
	plans, err := subscription.NewPlans(actors, cfg.Quota)
	if err != nil {
		return nil, err
	}

	deps := matching.Dependencies{
		Actors:   actors,
		Targets:  repository.NewTargetRepository(database),
		Swipes:   repository.NewSwipeRepository(database),
		Matches:  repository.NewMatchRepository(database),
		Blocks:   repository.NewBlockRepository(database),
		Tx:       repository.NewStore(database),
		Tiers:    plans,
		Quotas:   repository.NewQuotaRepository(database),
		Notifier: notify.NewOutbox(repository.NewNotificationRepository(database)),
		Logger:   log,
	}
	if rdb != nil {
		deps.Limiter = ratelimit.NewLimiter(rdb, cfg.Rate.SwipesPerMinute, cfg.Rate.SwipesPerTenSeconds)
	}

	engine := matching.NewEngine(deps, EngineConfig(cfg))
	return New(database, rdb, log, engine), nil
}

// EngineConfig maps the MATCH_* settings onto the engine.
func EngineConfig(cfg *config.Config) matching.Config {
	m := cfg.Matching
	return matching.Config{
		Weights: matching.Weights{
			Distance:      m.Weights.Distance,
			Contract:      m.Weights.Contract,
			Qualification: m.Weights.Qualification,
			Specialty:     m.Weights.Specialty,
			Mobility:      m.Weights.Mobility,
			Availability:  m.Weights.Availability,
		},
		MaxRadiusKM:     m.MaxRadiusKM,
		DislikeCooldown: m.DislikeCooldown,
		PageSize:        m.QueuePageSize,
		MaxPageSize:     m.QueueMaxPageSize,
		Retry: matching.RetryPolicy{
			Attempts:  m.RetryAttempts,
			Backoff:   m.RetryBackoff,
			Transient: repository.IsTransient,
		},
	}
}
