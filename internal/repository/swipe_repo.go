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
	"github.com/oggyb/pharma-match/internal/utils/pagination"
)

var likeClass = []string{string(matching.DecisionLike), string(matching.DecisionSuperlike)}

// SwipeRepository provides data access for the swipe ledger.
// One row per (actor_id, target_kind, target_id, context_id).
type SwipeRepository struct {
	db *gorm.DB
}

// NewSwipeRepository creates a new repository bound to the given DB connection.
// Pass a transaction handle to make every call part of it.
func NewSwipeRepository(database *gorm.DB) *SwipeRepository {
	return &SwipeRepository{db: database}
}

func (r *SwipeRepository) Get(ctx context.Context, key matching.PairKey) (matching.SwipeAction, bool, error) {
	var row db.SwipeAction
	err := r.db.WithContext(ctx).
		Where("actor_id = ? AND target_kind = ? AND target_id = ? AND context_id = ?",
			key.ActorID, string(key.Kind), key.TargetID, key.ContextID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return matching.SwipeAction{}, false, nil
	}
	if err != nil {
		return matching.SwipeAction{}, false, fmt.Errorf("get swipe: %w", err)
	}
	return toSwipe(row), true, nil
}

// Upsert inserts or overwrites the current decision of a pair.
//
// Behavior:
//   - If the pair exists → decision and updated_at are overwritten, created_at is kept.
//   - If it doesn't exist → a new row is inserted.
//   - ux_swipe_pair guarantees a single row per pair.
func (r *SwipeRepository) Upsert(ctx context.Context, action matching.SwipeAction) error {
	row := fromSwipe(action)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "actor_id"}, {Name: "target_kind"}, {Name: "target_id"}, {Name: "context_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"decision", "owner_id", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("upsert swipe: %w", err)
	}
	return nil
}

func (r *SwipeRepository) ListByActor(ctx context.Context, actorID uint64, kind matching.TargetKind) ([]matching.SwipeAction, error) {
	var rows []db.SwipeAction
	err := r.db.WithContext(ctx).
		Where("actor_id = ? AND target_kind = ?", actorID, string(kind)).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list swipes of %d: %w", actorID, err)
	}
	out := make([]matching.SwipeAction, 0, len(rows))
	for _, row := range rows {
		out = append(out, toSwipe(row))
	}
	return out, nil
}

// inbound selects like-class swipes on anything owned by ownerID, minus the
// swipers the owner already turned down in the same context.
func (r *SwipeRepository) inbound(ctx context.Context, ownerID uint64) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("swipes s").
		Where("s.owner_id = ? AND s.decision IN ?", ownerID, likeClass).
		Where(`
			NOT EXISTS (
				SELECT 1 FROM swipes s2
				WHERE s2.actor_id = ?
				  AND s2.owner_id = s.actor_id
				  AND s2.context_id = s.context_id
				  AND s2.decision = ?
			)`, ownerID, string(matching.DecisionDislike))
}

// ListInbound returns who liked the owner's offers, missions or profile.
//
// Behavior:
//   - Only like-class decisions where owner_id = X are returned.
//   - Excludes swipers the owner disliked back in the same context.
//   - onlyNew additionally excludes swipers the owner already liked back.
//   - Ordered by updated_at DESC, id DESC.
//   - Supports cursor-based pagination via pageToken.
//
// Example:
//
//	repo.ListInbound(ctx, 42, false, "", 20) // first 20 people who liked actor 42's listings
func (r *SwipeRepository) ListInbound(
	ctx context.Context,
	ownerID uint64,
	onlyNew bool,
	pageToken string,
	limit int,
) ([]matching.SwipeAction, string, error) {
	cursor, err := pagination.Decode(pageToken)
	if err != nil {
		return nil, "", err
	}

	query := r.inbound(ctx, ownerID)
	if onlyNew {
		// subquery to exclude mutual likes
		query = query.Where(`
			NOT EXISTS (
				SELECT 1 FROM swipes s3
				WHERE s3.actor_id = s.owner_id
				  AND s3.owner_id = s.actor_id
				  AND s3.context_id = s.context_id
				  AND s3.decision IN ?
			)`, likeClass)
	}
	query = query.Order("s.updated_at DESC, s.id DESC").Limit(limit + 1)

	// apply cursor
	if cursor.ID > 0 && cursor.UpdatedUnix > 0 {
		ts := time.UnixMilli(cursor.UpdatedUnix).UTC()
		query = query.Where(
			"(s.updated_at < ? OR (s.updated_at = ? AND s.id < ?))",
			ts, ts, cursor.ID,
		)
	}

	var rows []db.SwipeAction
	if err := query.Find(&rows).Error; err != nil {
		return nil, "", fmt.Errorf("list inbound likes of %d: %w", ownerID, err)
	}

	// pagination: build next cursor if needed
	var next string
	if len(rows) > limit {
		last := rows[limit-1]
		next, err = pagination.Encode(pagination.Cursor{
			ID:          last.ID,
			UpdatedUnix: last.UpdatedAt.UnixMilli(),
		})
		if err != nil {
			return nil, "", err
		}
		rows = rows[:limit]
	}

	out := make([]matching.SwipeAction, 0, len(rows))
	for _, row := range rows {
		out = append(out, toSwipe(row))
	}
	return out, next, nil
}

// CountInbound counts the rows ListInbound(onlyNew=false) would return.
// Used in conjunction with the Redis cache (DB is fallback).
func (r *SwipeRepository) CountInbound(ctx context.Context, ownerID uint64) (int64, error) {
	var count int64
	if err := r.inbound(ctx, ownerID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count inbound likes of %d: %w", ownerID, err)
	}
	return count, nil
}
