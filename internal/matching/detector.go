package matching

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MatchDetector turns two reciprocal like-class decisions into one Match.
type MatchDetector struct {
	ledger  *SwipeLedger
	swipes  SwipeStore
	matches MatchStore
	scorer  *ScoreEngine
	retry   RetryPolicy
	newID   func() string
}

func NewMatchDetector(ledger *SwipeLedger, swipes SwipeStore, matches MatchStore, scorer *ScoreEngine, retry RetryPolicy) *MatchDetector {
	return &MatchDetector{
		ledger:  ledger,
		swipes:  swipes,
		matches: matches,
		scorer:  scorer,
		retry:   retry,
		newID:   uuid.NewString,
	}
}

// Evaluate checks the pair behind a swipe and returns its active Match, creating
// it when both sides currently like each other. It returns nil when there is no
// mutual like or the pair's match was closed.
func (d *MatchDetector) Evaluate(ctx context.Context, actorID uint64, kind TargetKind, targetID, contextID uint64, now time.Time) (*Match, error) {
	r, err := d.ledger.Resolve(ctx, SwipeRequest{
		ActorID:   actorID,
		Kind:      kind,
		TargetID:  targetID,
		ContextID: contextID,
		Decision:  DecisionLike,
	}, now)
	if err != nil {
		return nil, err
	}
	m, _, err := d.evaluate(ctx, r, now)
	return m, err
}

// evaluate reads both directions from committed state, then relies on the
// storage uniqueness constraint for exactly-once creation. created is true
// only for the caller whose insert won.
func (d *MatchDetector) evaluate(ctx context.Context, r ResolvedSwipe, now time.Time) (*Match, bool, error) {
	if r.Reciprocal.TargetID == 0 {
		return nil, false, nil
	}

	own, found, err := d.swipes.Get(ctx, r.Key)
	if err != nil {
		return nil, false, err
	}
	if !found || !own.Decision.LikeClass() {
		return nil, false, nil
	}

	back, found, err := d.swipes.Get(ctx, r.Reciprocal)
	if err != nil {
		return nil, false, err
	}
	if !found || !back.Decision.LikeClass() {
		return nil, false, nil
	}

	a, b := OrderedPair(r.Actor.ID, r.Counterparty)
	candidate := Match{
		ID:              d.newID(),
		ActorA:          a,
		ActorB:          b,
		Kind:            r.Context.Kind,
		ContextTargetID: r.Context.ID,
		Score:           d.scorer.Score(ScoringActor(r.Actor, r.Context), r.Target, now),
		Status:          MatchActive,
		MatchedAt:       now,
	}

	var (
		stored  Match
		created bool
	)
	err = d.retry.Do(ctx, func() error {
		var err error
		created, err = d.matches.CreateIfAbsent(ctx, candidate)
		if err != nil {
			return err
		}
		var ok bool
		stored, ok, err = d.matches.GetByPair(ctx, a, b, r.Context.ID)
		if err != nil {
			return err
		}
		if !ok {
			return &StorageError{Op: "read back match", Err: ErrNotFound}
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if stored.Status != MatchActive {
		return nil, false, nil
	}
	return &stored, created, nil
}
