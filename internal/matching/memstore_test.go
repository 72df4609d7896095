package matching

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// memStore is an in-memory implementation of every store interface, used to
// exercise the engine without a database. mu guards the maps; txMu serialises
// transactions, which roll back through an undo log.
type memStore struct {
	mu      sync.Mutex
	txMu    sync.Mutex
	actors  map[uint64]Actor
	targets map[uint64]Target
	swipes  map[PairKey]SwipeAction
	matches map[[3]uint64]Match
	quotas  map[string]Quota
	blocks  map[[2]uint64]struct{}
	limits  map[Tier]Limit
	nextID  uint64

	failUpsert error
	// failClose fails the next Close call only.
	failClose error
	notified  []Match
}

func newMemStore() *memStore {
	return &memStore{
		actors:  map[uint64]Actor{},
		targets: map[uint64]Target{},
		swipes:  map[PairKey]SwipeAction{},
		matches: map[[3]uint64]Match{},
		quotas:  map[string]Quota{},
		blocks:  map[[2]uint64]struct{}{},
		limits: map[Tier]Limit{
			TierFree:      {Limit: 1, Period: PeriodDay},
			TierPremium:   {Limit: 5, Period: PeriodDay},
			TierUnlimited: {Period: PeriodDay, Unlimited: true},
		},
	}
}

func (s *memStore) addActor(a Actor) Actor {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actors[a.ID] = a
	return a
}

func (s *memStore) addTarget(t Target) Target {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.Status == "" {
		t.Status = TargetActive
	}
	s.targets[t.ID] = t
	return t
}

func (s *memStore) GetActor(_ context.Context, id uint64) (Actor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.actors[id]
	if !ok {
		return Actor{}, ErrNotFound
	}
	return a, nil
}

func (s *memStore) GetTarget(_ context.Context, id uint64) (Target, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.targets[id]
	if !ok {
		return Target{}, ErrNotFound
	}
	return t, nil
}

func (s *memStore) ProfileOf(_ context.Context, ownerID uint64, kind TargetKind) (Target, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.targets {
		if t.OwnerID == ownerID && t.Kind == kind {
			return t, nil
		}
	}
	return Target{}, ErrNotFound
}

func (s *memStore) ListEligible(_ context.Context, kind TargetKind, excludeOwner uint64, now time.Time) ([]Target, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Target
	for _, t := range s.targets {
		if t.Kind == kind && t.OwnerID != excludeOwner && t.Eligible(now) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *memStore) AreBlocked(_ context.Context, a, b uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ab := s.blocks[[2]uint64{a, b}]
	_, ba := s.blocks[[2]uint64{b, a}]
	return ab || ba, nil
}

func (s *memStore) BlockedWith(_ context.Context, actorID uint64) (map[uint64]struct{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := map[uint64]struct{}{}
	for k := range s.blocks {
		if k[0] == actorID {
			out[k[1]] = struct{}{}
		}
		if k[1] == actorID {
			out[k[0]] = struct{}{}
		}
	}
	return out, nil
}

func (s *memStore) Block(_ context.Context, actorID, blockedID uint64, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blocks[[2]uint64{actorID, blockedID}] = struct{}{}
	return nil
}

func (s *memStore) Get(_ context.Context, key PairKey) (SwipeAction, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.swipes[key]
	return a, ok, nil
}

func (s *memStore) Upsert(_ context.Context, action SwipeAction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failUpsert != nil {
		return s.failUpsert
	}
	if prev, ok := s.swipes[action.Key()]; ok {
		action.ID = prev.ID
		action.CreatedAt = prev.CreatedAt
	} else {
		s.nextID++
		action.ID = s.nextID
	}
	s.swipes[action.Key()] = action
	return nil
}

func (s *memStore) ListByActor(_ context.Context, actorID uint64, kind TargetKind) ([]SwipeAction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []SwipeAction
	for k, a := range s.swipes {
		if k.ActorID == actorID && k.Kind == kind {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *memStore) CreateIfAbsent(_ context.Context, m Match) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := [3]uint64{m.ActorA, m.ActorB, m.ContextTargetID}
	if _, ok := s.matches[k]; ok {
		return false, nil
	}
	s.matches[k] = m
	return true, nil
}

func (s *memStore) GetByPair(_ context.Context, a, b, contextID uint64) (Match, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.matches[[3]uint64{a, b, contextID}]
	return m, ok, nil
}

func (s *memStore) ListForActor(_ context.Context, actorID uint64, includeClosed bool) ([]Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Match
	for _, m := range s.matches {
		if m.Involves(actorID) && (includeClosed || m.Status == MatchActive) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *memStore) Close(_ context.Context, a, b, contextID uint64, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failClose; err != nil {
		s.failClose = nil
		return 0, err
	}
	var n int64
	for k, m := range s.matches {
		if m.ActorA != a || m.ActorB != b || m.Status != MatchActive {
			continue
		}
		if contextID != 0 && m.ContextTargetID != contextID {
			continue
		}
		m.Status = MatchClosed
		closedAt := now
		m.ClosedAt = &closedAt
		s.matches[k] = m
		n++
	}
	return n, nil
}

func quotaKey(actorID uint64, kind ActionKind, period string) string {
	return fmt.Sprintf("%d|%s|%s", actorID, kind, period)
}

func (s *memStore) Consume(_ context.Context, q Quota, gated bool) (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := quotaKey(q.ActorID, q.Kind, q.PeriodKey)
	cur, ok := s.quotas[k]
	if !ok {
		cur = q
		cur.Used = 0
	}
	cur.Limit = q.Limit
	if gated && cur.Used >= cur.Limit {
		s.quotas[k] = cur
		return cur.Used, false, nil
	}
	cur.Used++
	s.quotas[k] = cur
	return cur.Used, true, nil
}

func (s *memStore) Release(_ context.Context, q Quota) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := quotaKey(q.ActorID, q.Kind, q.PeriodKey)
	if cur, ok := s.quotas[k]; ok && cur.Used > 0 {
		cur.Used--
		s.quotas[k] = cur
	}
	return nil
}

func (s *memStore) quota(actorID uint64, kind ActionKind, period string) (Quota, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.quotas[quotaKey(actorID, kind, period)]
	return q, ok
}

func (s *memStore) TierLimits(_ context.Context, actorID uint64, _ ActionKind) (Limit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.actors[actorID]
	if !ok {
		return Limit{}, ErrNotFound
	}
	return s.limits[a.Tier], nil
}

func (s *memStore) OnMatchCreated(_ context.Context, m Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notified = append(s.notified, m)
	return nil
}

func (s *memStore) WithinTx(ctx context.Context, fn func(ctx context.Context, tx TxStores) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	tx := &memTx{s: s}
	if err := fn(ctx, tx); err != nil {
		tx.rollback()
		return err
	}
	return nil
}

type memTx struct {
	s    *memStore
	undo []func()
}

func (t *memTx) Swipes() SwipeStore  { return txSwipes{t} }
func (t *memTx) Quotas() QuotaStore  { return txQuotas{t} }
func (t *memTx) Matches() MatchStore { return txMatches{t} }

func (t *memTx) rollback() {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
}

// save records how to restore whatever the next write touches.
func (t *memTx) save(restore func(s *memStore) func()) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	t.undo = append(t.undo, restore(t.s))
}

type txSwipes struct{ t *memTx }

func (w txSwipes) Get(ctx context.Context, key PairKey) (SwipeAction, bool, error) {
	return w.t.s.Get(ctx, key)
}

func (w txSwipes) ListByActor(ctx context.Context, actorID uint64, kind TargetKind) ([]SwipeAction, error) {
	return w.t.s.ListByActor(ctx, actorID, kind)
}

func (w txSwipes) Upsert(ctx context.Context, action SwipeAction) error {
	k := action.Key()
	w.t.save(func(s *memStore) func() {
		prev, ok := s.swipes[k]
		return func() {
			if ok {
				s.swipes[k] = prev
			} else {
				delete(s.swipes, k)
			}
		}
	})
	return w.t.s.Upsert(ctx, action)
}

type txQuotas struct{ t *memTx }

func (w txQuotas) Get(ctx context.Context, actorID uint64, kind ActionKind, periodKey string) (Quota, bool, error) {
	return memQuotas{w.t.s}.Get(ctx, actorID, kind, periodKey)
}

func (w txQuotas) Consume(ctx context.Context, q Quota, gated bool) (int, bool, error) {
	k := quotaKey(q.ActorID, q.Kind, q.PeriodKey)
	w.t.save(func(s *memStore) func() {
		prev, ok := s.quotas[k]
		return func() {
			if ok {
				s.quotas[k] = prev
			} else {
				delete(s.quotas, k)
			}
		}
	})
	return w.t.s.Consume(ctx, q, gated)
}

func (w txQuotas) Release(ctx context.Context, q Quota) error {
	k := quotaKey(q.ActorID, q.Kind, q.PeriodKey)
	w.t.save(func(s *memStore) func() {
		prev, ok := s.quotas[k]
		return func() {
			if ok {
				s.quotas[k] = prev
			}
		}
	})
	return w.t.s.Release(ctx, q)
}

type txMatches struct{ t *memTx }

func (w txMatches) CreateIfAbsent(ctx context.Context, m Match) (bool, error) {
	k := [3]uint64{m.ActorA, m.ActorB, m.ContextTargetID}
	w.t.save(func(s *memStore) func() {
		_, existed := s.matches[k]
		return func() {
			if !existed {
				delete(s.matches, k)
			}
		}
	})
	return w.t.s.CreateIfAbsent(ctx, m)
}

func (w txMatches) GetByPair(ctx context.Context, a, b, contextID uint64) (Match, bool, error) {
	return w.t.s.GetByPair(ctx, a, b, contextID)
}

func (w txMatches) ListForActor(ctx context.Context, actorID uint64, includeClosed bool) ([]Match, error) {
	return w.t.s.ListForActor(ctx, actorID, includeClosed)
}

func (w txMatches) Close(ctx context.Context, a, b, contextID uint64, now time.Time) (int64, error) {
	w.t.save(func(s *memStore) func() {
		prev := map[[3]uint64]Match{}
		for k, m := range s.matches {
			if m.ActorA == a && m.ActorB == b {
				prev[k] = m
			}
		}
		return func() {
			for k, m := range prev {
				s.matches[k] = m
			}
		}
	})
	return w.t.s.Close(ctx, a, b, contextID, now)
}

// memQuotas adapts memStore to QuotaStore; Get would clash with SwipeStore.Get.
type memQuotas struct{ s *memStore }

func (q memQuotas) Consume(ctx context.Context, quota Quota, gated bool) (int, bool, error) {
	return q.s.Consume(ctx, quota, gated)
}

func (q memQuotas) Release(ctx context.Context, quota Quota) error {
	return q.s.Release(ctx, quota)
}

func (q memQuotas) Get(_ context.Context, actorID uint64, kind ActionKind, periodKey string) (Quota, bool, error) {
	v, ok := q.s.quota(actorID, kind, periodKey)
	return v, ok, nil
}

var fixedNow = time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC)

func (s *memStore) engine(now func() time.Time) *Engine {
	if now == nil {
		now = func() time.Time { return fixedNow }
	}
	return NewEngine(Dependencies{
		Actors:   s,
		Targets:  s,
		Swipes:   s,
		Matches:  s,
		Blocks:   s,
		Tx:       s,
		Tiers:    s,
		Quotas:   memQuotas{s},
		Notifier: s,
		Now:      now,
	}, Config{
		Weights:         DefaultWeights(),
		MaxRadiusKM:     100,
		DislikeCooldown: 7 * 24 * time.Hour,
		PageSize:        20,
		MaxPageSize:     100,
		Retry:           RetryPolicy{Attempts: 3},
	})
}

// marketplace seeds a candidate (1, profile 101), a recruiter (2, offer 201)
// and a second recruiter (3, offer 301).
func marketplace(s *memStore) {
	paris := &Location{Lat: 48.8566, Lon: 2.3522}
	s.addActor(Actor{ID: 1, Role: RoleCandidate, Tier: TierFree, Attributes: Attributes{Location: paris, Diploma: "pharmacist", ExperienceYears: 3}})
	s.addActor(Actor{ID: 2, Role: RoleRecruiter, Tier: TierFree})
	s.addActor(Actor{ID: 3, Role: RoleRecruiter, Tier: TierPremium})
	s.addTarget(Target{ID: 101, Kind: KindCandidate, OwnerID: 1, CreatedAt: fixedNow.Add(-48 * time.Hour), Attributes: Attributes{Location: paris, Diploma: "pharmacist", ExperienceYears: 3}})
	s.addTarget(Target{ID: 201, Kind: KindOffer, OwnerID: 2, CreatedAt: fixedNow.Add(-24 * time.Hour), Attributes: Attributes{Location: paris, RequiredDiploma: "pharmacist"}})
	s.addTarget(Target{ID: 301, Kind: KindOffer, OwnerID: 3, CreatedAt: fixedNow.Add(-time.Hour), Attributes: Attributes{Location: &Location{Lat: 48.9, Lon: 2.5}, MinExperienceYears: 6}})
}
