package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/pharma-match/internal/db"
)

// BlockRepository answers block relationships in both directions.
type BlockRepository struct {
	db *gorm.DB
}

func NewBlockRepository(database *gorm.DB) *BlockRepository {
	return &BlockRepository{db: database}
}

func (r *BlockRepository) AreBlocked(ctx context.Context, a, b uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Block{}).
		Where("(actor_id = ? AND blocked_id = ?) OR (actor_id = ? AND blocked_id = ?)", a, b, b, a).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check block %d/%d: %w", a, b, err)
	}
	return count > 0, nil
}

// BlockedWith returns everyone actorID blocked or was blocked by.
func (r *BlockRepository) BlockedWith(ctx context.Context, actorID uint64) (map[uint64]struct{}, error) {
	var rows []db.Block
	err := r.db.WithContext(ctx).
		Where("actor_id = ? OR blocked_id = ?", actorID, actorID).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list blocks of %d: %w", actorID, err)
	}

	out := make(map[uint64]struct{}, len(rows))
	for _, b := range rows {
		if b.ActorID == actorID {
			out[b.BlockedID] = struct{}{}
		} else {
			out[b.ActorID] = struct{}{}
		}
	}
	return out, nil
}

// Block is idempotent.
func (r *BlockRepository) Block(ctx context.Context, actorID, blockedID uint64, now time.Time) error {
	row := db.Block{ActorID: actorID, BlockedID: blockedID, CreatedAt: ms(now)}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("block %d by %d: %w", blockedID, actorID, err)
	}
	return nil
}
