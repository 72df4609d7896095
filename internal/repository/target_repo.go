package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/oggyb/pharma-match/internal/db"
	"github.com/oggyb/pharma-match/internal/matching"
)

// TargetRepository reads offers, missions and profiles.
type TargetRepository struct {
	db *gorm.DB
}

func NewTargetRepository(database *gorm.DB) *TargetRepository {
	return &TargetRepository{db: database}
}

func (r *TargetRepository) GetTarget(ctx context.Context, id uint64) (matching.Target, error) {
	var row db.Target
	err := r.db.WithContext(ctx).Take(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return matching.Target{}, matching.ErrNotFound
	}
	if err != nil {
		return matching.Target{}, fmt.Errorf("get target %d: %w", id, err)
	}
	return toTarget(row), nil
}

// ProfileOf returns the oldest profile of kind owned by ownerID.
func (r *TargetRepository) ProfileOf(ctx context.Context, ownerID uint64, kind matching.TargetKind) (matching.Target, error) {
	var row db.Target
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND kind = ?", ownerID, string(kind)).
		Order("id ASC").
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return matching.Target{}, matching.ErrNotFound
	}
	if err != nil {
		return matching.Target{}, fmt.Errorf("get %s profile of %d: %w", kind, ownerID, err)
	}
	return toTarget(row), nil
}

// ListEligible returns active, unexpired targets of kind, excluding those owned
// by excludeOwner. Uses idx_target_kind_status.
func (r *TargetRepository) ListEligible(ctx context.Context, kind matching.TargetKind, excludeOwner uint64, now time.Time) ([]matching.Target, error) {
	var rows []db.Target
	err := r.db.WithContext(ctx).
		Where("kind = ? AND status = ? AND owner_id <> ?", string(kind), string(matching.TargetActive), excludeOwner).
		Where("(expires_at IS NULL OR expires_at > ?)", now.UTC()).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list eligible %s: %w", kind, err)
	}

	out := make([]matching.Target, 0, len(rows))
	for _, row := range rows {
		out = append(out, toTarget(row))
	}
	return out, nil
}

// Create inserts a target. Used by seeding and tests.
func (r *TargetRepository) Create(ctx context.Context, t matching.Target) (matching.Target, error) {
	row := FromTarget(t)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return matching.Target{}, fmt.Errorf("create target: %w", err)
	}
	return toTarget(row), nil
}
