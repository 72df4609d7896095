package matching

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// SwipeRequest is one swipe as submitted by a client. ContextID is the
// offer/mission a profile is swiped for; it is ignored (or must equal
// TargetID) for listing swipes.
type SwipeRequest struct {
	ActorID   uint64
	Kind      TargetKind
	TargetID  uint64
	ContextID uint64
	Decision  Decision
}

// ResolvedSwipe is a validated swipe with both ledger keys worked out.
type ResolvedSwipe struct {
	Actor        Actor
	Target       Target
	Context      Target
	Counterparty uint64
	Key          PairKey
	// Reciprocal is the counter-party's entry that completes a match.
	// TargetID is 0 when the actor has no profile to be liked back on.
	Reciprocal PairKey
	Decision   Decision
}

// RecordResult reports what the ledger did with a swipe.
type RecordResult struct {
	Accepted bool
	Previous *Decision
	Action   SwipeAction
}

// Replayed is true when the same decision was already current.
func (r RecordResult) Replayed() bool {
	return r.Previous != nil && *r.Previous == r.Action.Decision
}

// SwipeLedger validates and stores decisions, one row per pair.
type SwipeLedger struct {
	actors  ActorStore
	targets TargetStore
	swipes  SwipeStore
}

func NewSwipeLedger(actors ActorStore, targets TargetStore, swipes SwipeStore) *SwipeLedger {
	return &SwipeLedger{actors: actors, targets: targets, swipes: swipes}
}

// WithStore binds the ledger to a transaction-scoped swipe store.
func (l *SwipeLedger) WithStore(swipes SwipeStore) *SwipeLedger {
	return &SwipeLedger{actors: l.actors, targets: l.targets, swipes: swipes}
}

// Record validates and upserts in one call.
func (l *SwipeLedger) Record(ctx context.Context, req SwipeRequest, now time.Time) (RecordResult, error) {
	r, err := l.Resolve(ctx, req, now)
	if err != nil {
		return RecordResult{}, err
	}
	return l.Write(ctx, r, now)
}

// Resolve checks the actor, the target and its context, and derives the
// counter-party plus both directional keys. It writes nothing.
func (l *SwipeLedger) Resolve(ctx context.Context, req SwipeRequest, now time.Time) (ResolvedSwipe, error) {
	if req.ActorID == 0 || req.TargetID == 0 {
		return ResolvedSwipe{}, invalidArgument("actor and target are required")
	}

	actor, err := l.actors.GetActor(ctx, req.ActorID)
	if err != nil {
		return ResolvedSwipe{}, fmt.Errorf("actor %d: %w", req.ActorID, err)
	}
	if kind, ok := actor.Role.SwipeKind(); !ok || kind != req.Kind {
		return ResolvedSwipe{}, invalidArgument("a %s cannot swipe %s targets", actor.Role, req.Kind)
	}

	target, err := l.eligible(ctx, req.TargetID, req.Kind, now)
	if err != nil {
		return ResolvedSwipe{}, err
	}
	if target.OwnerID == actor.ID {
		return ResolvedSwipe{}, invalidArgument("cannot swipe your own %s", target.Kind)
	}

	r := ResolvedSwipe{
		Actor:        actor,
		Target:       target,
		Counterparty: target.OwnerID,
		Decision:     req.Decision,
	}

	if req.Kind.IsProfile() {
		if req.ContextID == 0 {
			return ResolvedSwipe{}, invalidArgument("swiping a %s requires a context %s", req.Kind, req.Kind.ContextKind())
		}
		listing, err := l.eligible(ctx, req.ContextID, req.Kind.ContextKind(), now)
		if err != nil {
			return ResolvedSwipe{}, err
		}
		if listing.OwnerID != actor.ID {
			return ResolvedSwipe{}, invalidArgument("context %d is not owned by actor %d", listing.ID, actor.ID)
		}
		r.Context = listing
		r.Reciprocal = PairKey{ActorID: target.OwnerID, Kind: listing.Kind, TargetID: listing.ID, ContextID: listing.ID}
	} else {
		if req.ContextID != 0 && req.ContextID != req.TargetID {
			return ResolvedSwipe{}, invalidArgument("context must be the %s itself", req.Kind)
		}
		r.Context = target
		profileKind, _ := actor.Role.ProfileKind()
		profile, err := l.targets.ProfileOf(ctx, actor.ID, profileKind)
		switch {
		case err == nil:
			r.Reciprocal = PairKey{ActorID: target.OwnerID, Kind: profile.Kind, TargetID: profile.ID, ContextID: target.ID}
		case errors.Is(err, ErrNotFound):
			r.Reciprocal = PairKey{ActorID: target.OwnerID, Kind: profileKind, ContextID: target.ID}
		default:
			return ResolvedSwipe{}, err
		}
	}

	r.Key = PairKey{ActorID: actor.ID, Kind: req.Kind, TargetID: target.ID, ContextID: r.Context.ID}
	return r, nil
}

// Write upserts the decision and returns the one it replaced.
func (l *SwipeLedger) Write(ctx context.Context, r ResolvedSwipe, now time.Time) (RecordResult, error) {
	prev, found, err := l.swipes.Get(ctx, r.Key)
	if err != nil {
		return RecordResult{}, err
	}

	action := SwipeAction{
		ActorID:   r.Key.ActorID,
		Kind:      r.Key.Kind,
		TargetID:  r.Key.TargetID,
		ContextID: r.Key.ContextID,
		OwnerID:   r.Counterparty,
		Decision:  r.Decision,
		CreatedAt: now,
		UpdatedAt: now,
	}
	res := RecordResult{Accepted: true, Action: action}
	if found {
		action.ID = prev.ID
		action.CreatedAt = prev.CreatedAt
		d := prev.Decision
		res.Previous = &d
		res.Action = action
	}

	if err := l.swipes.Upsert(ctx, action); err != nil {
		return RecordResult{}, err
	}
	return res, nil
}

func (l *SwipeLedger) eligible(ctx context.Context, id uint64, kind TargetKind, now time.Time) (Target, error) {
	t, err := l.targets.GetTarget(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return Target{}, fmt.Errorf("%w: %s %d does not exist", ErrTargetUnavailable, kind, id)
	}
	if err != nil {
		return Target{}, err
	}
	if t.Kind != kind {
		return Target{}, fmt.Errorf("%w: target %d is not a %s", ErrTargetUnavailable, id, kind)
	}
	if !t.Eligible(now) {
		return Target{}, fmt.Errorf("%w: %s %d is %s", ErrTargetUnavailable, kind, id, statusLabel(t, now))
	}
	return t, nil
}

func statusLabel(t Target, now time.Time) string {
	if t.Status == TargetActive && t.ExpiresAt != nil && !now.Before(*t.ExpiresAt) {
		return string(TargetExpired)
	}
	return string(t.Status)
}
