package matching

import (
	"context"
	"log/slog"
	"time"
)

// Config holds the tunables of an Engine.
type Config struct {
	Weights         Weights
	MaxRadiusKM     float64
	DislikeCooldown time.Duration
	PageSize        int
	MaxPageSize     int
	Retry           RetryPolicy
}

// Dependencies are the collaborators of an Engine. Notifier, Limiter, Logger
// and Now are optional.
type Dependencies struct {
	Actors   ActorStore
	Targets  TargetStore
	Swipes   SwipeStore
	Matches  MatchStore
	Blocks   BlockList
	Tx       Transactor
	Tiers    TierLimiter
	Quotas   QuotaStore
	Notifier Notifier
	Limiter  BurstLimiter
	Logger   *slog.Logger
	Now      func() time.Time
}

// SwipeResult is what a caller learns from one swipe.
type SwipeResult struct {
	Action   SwipeAction
	Previous *Decision
	Matched  bool
	Match    *Match
	// Created is true only for the swipe whose insert produced the match.
	Created bool
	// QuotaRemaining is set for super-likes; -1 when unlimited.
	QuotaRemaining *int
	CounterpartyID uint64
}

// Engine exposes the matching operations over the stores it was built with.
type Engine struct {
	actors   ActorStore
	matches  MatchStore
	blocks   BlockList
	tx       Transactor
	notifier Notifier
	limiter  BurstLimiter
	log      *slog.Logger
	now      func() time.Time
	retry    RetryPolicy

	queue    *QueueBuilder
	ledger   *SwipeLedger
	quota    *QuotaManager
	detector *MatchDetector
}

func NewEngine(deps Dependencies, cfg Config) *Engine {
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}
	now := deps.Now
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}

	scorer := NewScoreEngine(cfg.Weights, cfg.MaxRadiusKM)
	ledger := NewSwipeLedger(deps.Actors, deps.Targets, deps.Swipes)
	return &Engine{
		actors:   deps.Actors,
		matches:  deps.Matches,
		blocks:   deps.Blocks,
		tx:       deps.Tx,
		notifier: deps.Notifier,
		limiter:  deps.Limiter,
		log:      log.With("module", "matching"),
		now:      now,
		retry:    cfg.Retry,
		queue:    NewQueueBuilder(deps.Targets, deps.Swipes, deps.Matches, deps.Blocks, scorer, cfg.DislikeCooldown, cfg.PageSize, cfg.MaxPageSize),
		ledger:   ledger,
		quota:    NewQuotaManager(deps.Quotas, deps.Tiers),
		detector: NewMatchDetector(ledger, deps.Swipes, deps.Matches, scorer, cfg.Retry),
	}
}

// GetQueue builds one page of swipeable targets for actorID.
func (e *Engine) GetQueue(ctx context.Context, actorID uint64, f Filters) (QueuePage, error) {
	actor, err := e.actors.GetActor(ctx, actorID)
	if err != nil {
		return QueuePage{}, storageErr("get actor", err)
	}
	page, err := e.queue.Build(ctx, actor, f, e.now())
	if err != nil {
		e.log.Debug("queue build failed", "actor_id", actorID, "err", err)
		return QueuePage{}, storageErr("build queue", err)
	}
	e.log.Debug("queue built", "actor_id", actorID, "kind", f.Kind, "items", len(page.Items))
	return page, nil
}

// Swipe records a decision and reports whether it completed a match.
//
// The quota check, the ledger write and the closing of a withdrawn match share
// one transaction, so a refused super-like writes nothing and a dislike never
// commits while its match stays active. Match evaluation runs after commit so that it
// reads the reciprocal decision as committed by the other side.
func (e *Engine) Swipe(ctx context.Context, req SwipeRequest) (SwipeResult, error) {
	now := e.now()
	switch req.Decision {
	case DecisionLike, DecisionDislike, DecisionSuperlike:
	default:
		return SwipeResult{}, invalidArgument("unknown decision %q", req.Decision)
	}

	r, err := e.ledger.Resolve(ctx, req, now)
	if err != nil {
		return SwipeResult{}, storageErr("resolve swipe", err)
	}

	blocked, err := e.blocks.AreBlocked(ctx, r.Actor.ID, r.Counterparty)
	if err != nil {
		return SwipeResult{}, storageErr("check block", err)
	}
	if blocked {
		return SwipeResult{}, ErrBlocked
	}

	if e.limiter != nil {
		wait, ok, err := e.limiter.AllowSwipe(ctx, r.Actor.ID)
		if err != nil {
			// fail open
			e.log.Warn("swipe limiter unavailable", "actor_id", r.Actor.ID, "err", err)
		} else if !ok {
			return SwipeResult{}, &RateLimitedError{RetryAfter: wait}
		}
	}

	var limit Limit
	if r.Decision == DecisionSuperlike {
		if limit, err = e.quota.Limits(ctx, r.Actor.ID, ActionSuperlike); err != nil {
			return SwipeResult{}, storageErr("resolve quota", err)
		}
	}

	var (
		rec      RecordResult
		consumed *ConsumeResult
		closed   int64
	)
	err = e.retry.Do(ctx, func() error {
		consumed, closed = nil, 0
		return e.tx.WithinTx(ctx, func(ctx context.Context, tx TxStores) error {
			if r.Decision == DecisionSuperlike {
				// The counter is written before the pair is read, so a second
				// device replaying the same super-like waits on the counter row
				// and then sees the first one's decision.
				quota := e.quota.WithStore(tx.Quotas())
				res, err := quota.consume(ctx, r.Actor.ID, ActionSuperlike, limit, now)
				if err != nil {
					return err
				}
				prev, found, err := tx.Swipes().Get(ctx, r.Key)
				if err != nil {
					return err
				}
				switch {
				case found && prev.Decision == DecisionSuperlike:
					// replays are free
					if res.Allowed {
						if err := quota.release(ctx, r.Actor.ID, ActionSuperlike, limit, now); err != nil {
							return err
						}
					}
				case !res.Allowed:
					return ErrQuotaExceeded
				default:
					consumed = &res
				}
			}
			var err error
			rec, err = e.ledger.WithStore(tx.Swipes()).Write(ctx, r, now)
			if err != nil || r.Decision.LikeClass() {
				return err
			}
			// any active match for the pair no longer has both sides liking
			a, b := OrderedPair(r.Actor.ID, r.Counterparty)
			closed, err = tx.Matches().Close(ctx, a, b, r.Context.ID, now)
			return err
		})
	})
	if err != nil {
		e.log.Debug("swipe rejected", "actor_id", r.Actor.ID, "target_id", r.Target.ID, "decision", r.Decision, "err", err)
		return SwipeResult{}, storageErr("record swipe", err)
	}

	out := SwipeResult{
		Action:         rec.Action,
		Previous:       rec.Previous,
		CounterpartyID: r.Counterparty,
	}
	if consumed != nil {
		out.QuotaRemaining = &consumed.Remaining
	} else if r.Decision == DecisionSuperlike {
		if snap, err := e.quota.Snapshot(ctx, r.Actor.ID, ActionSuperlike, now); err == nil {
			out.QuotaRemaining = &snap.Remaining
		}
	}

	if closed > 0 {
		e.log.Info("match closed by withdrawal", "actor_id", r.Actor.ID, "counterparty_id", r.Counterparty, "context_id", r.Context.ID)
	}

	if r.Decision.LikeClass() {
		m, created, err := e.detector.evaluate(ctx, r, now)
		if err != nil {
			return SwipeResult{}, storageErr("evaluate match", err)
		}
		if m != nil {
			out.Matched = true
			out.Match = m
			out.Created = created
		}
		if created {
			e.log.Info("match created", "match_id", m.ID, "actor_a", m.ActorA, "actor_b", m.ActorB, "context_id", m.ContextTargetID, "score", m.Score)
			e.notify(ctx, *m)
		}
	}

	e.log.Debug("swipe recorded", "actor_id", r.Actor.ID, "kind", r.Key.Kind, "target_id", r.Target.ID, "context_id", r.Context.ID, "decision", r.Decision, "matched", out.Matched)
	return out, nil
}

// notify is fire-and-forget: a failed notification never undoes the match.
func (e *Engine) notify(ctx context.Context, m Match) {
	if e.notifier == nil {
		return
	}
	if err := e.notifier.OnMatchCreated(ctx, m); err != nil {
		e.log.Error("match notification failed", "match_id", m.ID, "err", err)
	}
}

// Evaluate re-runs match detection for a pair without recording anything.
func (e *Engine) Evaluate(ctx context.Context, actorID uint64, kind TargetKind, targetID, contextID uint64) (*Match, error) {
	m, err := e.detector.Evaluate(ctx, actorID, kind, targetID, contextID, e.now())
	return m, storageErr("evaluate match", err)
}

// GetQuota reads the super-like (or other action) allowance of the current period.
func (e *Engine) GetQuota(ctx context.Context, actorID uint64, kind ActionKind) (QuotaSnapshot, error) {
	if actorID == 0 {
		return QuotaSnapshot{}, invalidArgument("actor is required")
	}
	snap, err := e.quota.Snapshot(ctx, actorID, kind, e.now())
	if err != nil {
		return QuotaSnapshot{}, storageErr("get quota", err)
	}
	return snap, nil
}

func (e *Engine) ListMatches(ctx context.Context, actorID uint64, includeClosed bool) ([]Match, error) {
	if actorID == 0 {
		return nil, invalidArgument("actor is required")
	}
	ms, err := e.matches.ListForActor(ctx, actorID, includeClosed)
	if err != nil {
		return nil, storageErr("list matches", err)
	}
	return ms, nil
}

// Block records a block and closes every active match between the two actors.
func (e *Engine) Block(ctx context.Context, actorID, blockedID uint64) (int64, error) {
	if actorID == 0 || blockedID == 0 {
		return 0, invalidArgument("actor and blocked actor are required")
	}
	if actorID == blockedID {
		return 0, invalidArgument("cannot block yourself")
	}
	if _, err := e.actors.GetActor(ctx, blockedID); err != nil {
		return 0, storageErr("get actor", err)
	}

	now := e.now()
	if err := e.blocks.Block(ctx, actorID, blockedID, now); err != nil {
		return 0, storageErr("block", err)
	}
	a, b := OrderedPair(actorID, blockedID)
	closed, err := e.matches.Close(ctx, a, b, 0, now)
	if err != nil {
		return 0, storageErr("close matches", err)
	}
	e.log.Info("actor blocked", "actor_id", actorID, "blocked_id", blockedID, "closed_matches", closed)
	return closed, nil
}
