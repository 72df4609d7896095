package matching

import (
	"context"
	"time"
)

// ActorStore resolves who is calling. Returns ErrNotFound for unknown ids.
type ActorStore interface {
	GetActor(ctx context.Context, id uint64) (Actor, error)
}

// TargetStore is the profile/offer collaborator.
type TargetStore interface {
	// GetTarget returns ErrNotFound when the row does not exist.
	GetTarget(ctx context.Context, id uint64) (Target, error)
	// ProfileOf returns the profile target of kind owned by ownerID.
	ProfileOf(ctx context.Context, ownerID uint64, kind TargetKind) (Target, error)
	// ListEligible returns active, unexpired targets of kind not owned by excludeOwner.
	ListEligible(ctx context.Context, kind TargetKind, excludeOwner uint64, now time.Time) ([]Target, error)
}

// BlockList answers block relationships in either direction.
type BlockList interface {
	AreBlocked(ctx context.Context, a, b uint64) (bool, error)
	BlockedWith(ctx context.Context, actorID uint64) (map[uint64]struct{}, error)
	Block(ctx context.Context, actorID, blockedID uint64, now time.Time) error
}

// SwipeStore is the ledger table.
type SwipeStore interface {
	// Get returns found=false when the pair was never swiped.
	Get(ctx context.Context, key PairKey) (SwipeAction, bool, error)
	// Upsert inserts or overwrites decision and updated_at for the pair.
	Upsert(ctx context.Context, action SwipeAction) error
	ListByActor(ctx context.Context, actorID uint64, kind TargetKind) ([]SwipeAction, error)
}

// MatchStore is the match table. CreateIfAbsent must be a single atomic
// insert-or-ignore against the (actor_a, actor_b, context) uniqueness constraint.
type MatchStore interface {
	CreateIfAbsent(ctx context.Context, m Match) (bool, error)
	GetByPair(ctx context.Context, actorA, actorB, contextID uint64) (Match, bool, error)
	ListForActor(ctx context.Context, actorID uint64, includeClosed bool) ([]Match, error)
	// Close closes active matches between a and b; contextID 0 means every context.
	Close(ctx context.Context, a, b, contextID uint64, now time.Time) (int64, error)
}

// QuotaStore keeps per-period counters. Consume creates the period row when
// missing and then performs a compare-and-increment gated on used < limit
// (ungated for unlimited tiers). It returns the counter after the attempt.
type QuotaStore interface {
	Consume(ctx context.Context, q Quota, gated bool) (used int, allowed bool, err error)
	// Release gives back one unit of the period identified by q, never below zero.
	Release(ctx context.Context, q Quota) error
	Get(ctx context.Context, actorID uint64, kind ActionKind, periodKey string) (Quota, bool, error)
}

// TxStores are the stores bound to one storage transaction.
type TxStores interface {
	Swipes() SwipeStore
	Quotas() QuotaStore
	Matches() MatchStore
}

// Transactor runs fn inside a single storage transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx TxStores) error) error
}

// TierLimiter is the subscription collaborator.
type TierLimiter interface {
	TierLimits(ctx context.Context, actorID uint64, kind ActionKind) (Limit, error)
}

// Notifier receives created matches. Failures never roll a match back.
type Notifier interface {
	OnMatchCreated(ctx context.Context, m Match) error
}

// BurstLimiter throttles swipe bursts before anything is written.
type BurstLimiter interface {
	AllowSwipe(ctx context.Context, actorID uint64) (retryAfter time.Duration, allowed bool, err error)
}
