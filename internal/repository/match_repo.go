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

// MatchRepository stores matches. ux_match_pair makes creation exactly-once.
type MatchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(database *gorm.DB) *MatchRepository {
	return &MatchRepository{db: database}
}

// CreateIfAbsent is a single INSERT ... ON CONFLICT DO NOTHING.
// created is true only when this call inserted the row.
func (r *MatchRepository) CreateIfAbsent(ctx context.Context, m matching.Match) (bool, error) {
	row := fromMatch(m)
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row)
	if res.Error != nil {
		return false, fmt.Errorf("create match: %w", res.Error)
	}
	return res.RowsAffected == 1, nil
}

func (r *MatchRepository) GetByPair(ctx context.Context, actorA, actorB, contextID uint64) (matching.Match, bool, error) {
	var row db.Match
	err := r.db.WithContext(ctx).
		Where("actor_a = ? AND actor_b = ? AND context_target_id = ?", actorA, actorB, contextID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return matching.Match{}, false, nil
	}
	if err != nil {
		return matching.Match{}, false, fmt.Errorf("get match: %w", err)
	}
	return toMatch(row), true, nil
}

// ListForActor returns the actor's matches, newest first.
func (r *MatchRepository) ListForActor(ctx context.Context, actorID uint64, includeClosed bool) ([]matching.Match, error) {
	query := r.db.WithContext(ctx).
		Where("(actor_a = ? OR actor_b = ?)", actorID, actorID)
	if !includeClosed {
		query = query.Where("status = ?", string(matching.MatchActive))
	}

	var rows []db.Match
	if err := query.Order("matched_at DESC, id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list matches of %d: %w", actorID, err)
	}
	out := make([]matching.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, toMatch(row))
	}
	return out, nil
}

// Close marks active matches between a and b as closed. contextID 0 closes
// every context. Closed matches are never reopened.
func (r *MatchRepository) Close(ctx context.Context, a, b, contextID uint64, now time.Time) (int64, error) {
	query := r.db.WithContext(ctx).
		Model(&db.Match{}).
		Where("actor_a = ? AND actor_b = ? AND status = ?", a, b, string(matching.MatchActive))
	if contextID != 0 {
		query = query.Where("context_target_id = ?", contextID)
	}
	res := query.Updates(map[string]any{
		"status":    string(matching.MatchClosed),
		"closed_at": ms(now),
	})
	if res.Error != nil {
		return 0, fmt.Errorf("close matches: %w", res.Error)
	}
	return res.RowsAffected, nil
}
