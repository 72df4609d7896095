package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/oggyb/pharma-match/internal/db"
	"github.com/oggyb/pharma-match/internal/matching"
)

// ActorRepository resolves actors and their subscription tier.
type ActorRepository struct {
	db *gorm.DB
}

func NewActorRepository(database *gorm.DB) *ActorRepository {
	return &ActorRepository{db: database}
}

// GetActor returns the actor with the attributes of its own profile, if the
// role has one. Unknown ids yield matching.ErrNotFound.
func (r *ActorRepository) GetActor(ctx context.Context, id uint64) (matching.Actor, error) {
	var row db.Actor
	err := r.db.WithContext(ctx).Take(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return matching.Actor{}, matching.ErrNotFound
	}
	if err != nil {
		return matching.Actor{}, fmt.Errorf("get actor %d: %w", id, err)
	}

	actor := matching.Actor{
		ID:   row.ID,
		Role: matching.Role(row.Role),
		Tier: matching.Tier(row.Tier),
	}
	if kind, ok := actor.Role.ProfileKind(); ok {
		var profile db.Target
		err := r.db.WithContext(ctx).
			Where("owner_id = ? AND kind = ?", row.ID, string(kind)).
			Order("id ASC").
			Take(&profile).Error
		switch {
		case err == nil:
			actor.Attributes = toAttributes(profile)
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return matching.Actor{}, fmt.Errorf("get profile of actor %d: %w", id, err)
		}
	}
	return actor, nil
}

// TierOf returns only the subscription tier.
func (r *ActorRepository) TierOf(ctx context.Context, id uint64) (matching.Tier, error) {
	var row db.Actor
	err := r.db.WithContext(ctx).Select("id", "tier").Take(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", matching.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get tier of actor %d: %w", id, err)
	}
	return matching.Tier(row.Tier), nil
}
