package subscription

import (
	"context"
	"fmt"

	"github.com/oggyb/pharma-match/internal/config"
	"github.com/oggyb/pharma-match/internal/matching"
)

// TierSource resolves the subscription tier of an actor.
type TierSource interface {
	TierOf(ctx context.Context, actorID uint64) (matching.Tier, error)
}

// Plans maps subscription tiers to action allowances.
type Plans struct {
	tiers  TierSource
	limits map[matching.ActionKind]map[matching.Tier]matching.Limit
}

// NewPlans builds the super-like plans from configuration. A negative limit
// means unlimited.
func NewPlans(tiers TierSource, cfg config.QuotaConfig) (*Plans, error) {
	period, err := matching.ParsePeriod(cfg.SuperlikePeriod)
	if err != nil {
		return nil, fmt.Errorf("quota period: %w", err)
	}

	return &Plans{
		tiers: tiers,
		limits: map[matching.ActionKind]map[matching.Tier]matching.Limit{
			matching.ActionSuperlike: {
				matching.TierFree:      limitOf(cfg.SuperlikeFree, period),
				matching.TierPremium:   limitOf(cfg.SuperlikePremium, period),
				matching.TierUnlimited: limitOf(cfg.SuperlikeUnlimited, period),
			},
		},
	}, nil
}

func limitOf(n int, period matching.Period) matching.Limit {
	if n < 0 {
		return matching.Limit{Period: period, Unlimited: true}
	}
	return matching.Limit{Limit: n, Period: period}
}

// Limit returns the allowance of tier for kind. Unknown tiers fall back to free.
func (p *Plans) Limit(tier matching.Tier, kind matching.ActionKind) (matching.Limit, error) {
	byTier, ok := p.limits[kind]
	if !ok {
		return matching.Limit{}, fmt.Errorf("%w: no plan for action %q", matching.ErrInvalidArgument, kind)
	}
	if lim, ok := byTier[tier]; ok {
		return lim, nil
	}
	return byTier[matching.TierFree], nil
}

// TierLimits implements matching.TierLimiter.
func (p *Plans) TierLimits(ctx context.Context, actorID uint64, kind matching.ActionKind) (matching.Limit, error) {
	tier, err := p.tiers.TierOf(ctx, actorID)
	if err != nil {
		return matching.Limit{}, err
	}
	return p.Limit(tier, kind)
}
