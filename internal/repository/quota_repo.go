package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/pharma-match/internal/db"
	"github.com/oggyb/pharma-match/internal/matching"
)

// QuotaRepository keeps one counter row per (actor, kind, period key).
type QuotaRepository struct {
	db *gorm.DB
}

func NewQuotaRepository(database *gorm.DB) *QuotaRepository {
	return &QuotaRepository{db: database}
}

// Consume creates the period row if missing, then increments used with a
// single conditional UPDATE (used < limit when gated). Concurrent callers can
// never push used past the limit.
func (r *QuotaRepository) Consume(ctx context.Context, q matching.Quota, gated bool) (int, bool, error) {
	row := db.Quota{
		ActorID:     q.ActorID,
		Kind:        string(q.Kind),
		PeriodKey:   q.PeriodKey,
		PeriodStart: q.PeriodStart.UTC(),
		Limit:       q.Limit,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).Error
	if err != nil {
		return 0, false, fmt.Errorf("open quota period: %w", err)
	}

	where := r.db.WithContext(ctx).
		Model(&db.Quota{}).
		Where("actor_id = ? AND kind = ? AND period_key = ?", q.ActorID, string(q.Kind), q.PeriodKey)
	if gated {
		where = where.Where("used < ?", q.Limit)
	}
	res := where.Updates(map[string]any{
		"used":        gorm.Expr("used + 1"),
		"quota_limit": q.Limit,
	})
	if res.Error != nil {
		return 0, false, fmt.Errorf("consume quota: %w", res.Error)
	}

	cur, _, err := r.Get(ctx, q.ActorID, q.Kind, q.PeriodKey)
	if err != nil {
		return 0, false, err
	}
	return cur.Used, res.RowsAffected == 1, nil
}

// Release decrements used for the period, stopping at zero.
func (r *QuotaRepository) Release(ctx context.Context, q matching.Quota) error {
	err := r.db.WithContext(ctx).
		Model(&db.Quota{}).
		Where("actor_id = ? AND kind = ? AND period_key = ? AND used > 0", q.ActorID, string(q.Kind), q.PeriodKey).
		Update("used", gorm.Expr("used - 1")).Error
	if err != nil {
		return fmt.Errorf("release quota: %w", err)
	}
	return nil
}

func (r *QuotaRepository) Get(ctx context.Context, actorID uint64, kind matching.ActionKind, periodKey string) (matching.Quota, bool, error) {
	var row db.Quota
	err := r.db.WithContext(ctx).
		Where("actor_id = ? AND kind = ? AND period_key = ?", actorID, string(kind), periodKey).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return matching.Quota{}, false, nil
	}
	if err != nil {
		return matching.Quota{}, false, fmt.Errorf("get quota: %w", err)
	}
	return toQuota(row), true, nil
}

// PruneBefore deletes counters of periods that started before cutoff.
func (r *QuotaRepository) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("period_start < ?", cutoff.UTC()).
		Delete(&db.Quota{})
	if res.Error != nil {
		return 0, fmt.Errorf("prune quotas: %w", res.Error)
	}
	return res.RowsAffected, nil
}
