// Package jobs runs the periodic background work: draining the match
// notification outbox and pruning expired quota rows.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Dispatcher sends one batch of due notifications.
type Dispatcher interface {
	Dispatch(ctx context.Context) (int, error)
}

// QuotaPruner deletes quota rows of periods that started before cutoff.
type QuotaPruner interface {
	PruneBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type Config struct {
	NotifySpec     string
	PruneSpec      string
	QuotaRetention time.Duration
}

type Scheduler struct {
	cron       *cron.Cron
	cfg        Config
	dispatcher Dispatcher
	pruner     QuotaPruner
	log        *slog.Logger
	now        func() time.Time
}

// NewScheduler creates a UTC scheduler. Overlapping runs of the same job are skipped.
func NewScheduler(cfg Config, dispatcher Dispatcher, pruner QuotaPruner, log *slog.Logger) *Scheduler {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
	return &Scheduler{
		cron:       c,
		cfg:        cfg,
		dispatcher: dispatcher,
		pruner:     pruner,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Start registers the jobs and starts the cron loop.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.dispatcher != nil && s.cfg.NotifySpec != "" {
		if _, err := s.cron.AddFunc(s.cfg.NotifySpec, func() { s.DispatchNotifications(ctx) }); err != nil {
			return fmt.Errorf("schedule notification dispatch %q: %w", s.cfg.NotifySpec, err)
		}
	}
	if s.pruner != nil && s.cfg.PruneSpec != "" {
		if _, err := s.cron.AddFunc(s.cfg.PruneSpec, func() { s.PruneQuotas(ctx) }); err != nil {
			return fmt.Errorf("schedule quota pruning %q: %w", s.cfg.PruneSpec, err)
		}
	}

	s.cron.Start()
	s.log.Info("scheduler started", "jobs", len(s.cron.Entries()))
	return nil
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("scheduler stopped")
}

func (s *Scheduler) DispatchNotifications(ctx context.Context) {
	sent, err := s.dispatcher.Dispatch(ctx)
	if err != nil {
		s.log.Error("[cron] notification dispatch failed", "err", err)
		return
	}
	if sent > 0 {
		s.log.Info("[cron] notifications sent", "count", sent)
	}
}

func (s *Scheduler) PruneQuotas(ctx context.Context) {
	cutoff := s.now().Add(-s.cfg.QuotaRetention)
	n, err := s.pruner.PruneBefore(ctx, cutoff)
	if err != nil {
		s.log.Error("[cron] quota pruning failed", "err", err)
		return
	}
	s.log.Info("[cron] quota rows pruned", "count", n, "cutoff", cutoff)
}
