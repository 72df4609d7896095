package matching

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Period is the reset cadence of a quota.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

func ParsePeriod(s string) (Period, error) {
	switch p := Period(strings.ToLower(strings.TrimSpace(s))); p {
	case PeriodDay, PeriodWeek, PeriodMonth:
		return p, nil
	}
	return "", invalidArgument("unknown quota period %q", s)
}

// Bounds returns the UTC [start, end) of the period containing now.
// Weeks start on Monday.
func (p Period) Bounds(now time.Time) (time.Time, time.Time) {
	now = now.UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	switch p {
	case PeriodWeek:
		offset := (int(day.Weekday()) + 6) % 7
		start := day.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 7)
	case PeriodMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, 0)
	default:
		return day, day.AddDate(0, 0, 1)
	}
}

// Key is the storage key of the period containing now, e.g. "d:2026-10-16".
func (p Period) Key(now time.Time) string {
	start, _ := p.Bounds(now)
	switch p {
	case PeriodWeek:
		y, w := start.ISOWeek()
		return fmt.Sprintf("w:%04d-%02d", y, w)
	case PeriodMonth:
		return "m:" + start.Format("2006-01")
	default:
		return "d:" + start.Format("2006-01-02")
	}
}

// Limit is the allowance of one tier for one action kind.
type Limit struct {
	Limit     int
	Period    Period
	Unlimited bool
}

// ConsumeResult is the outcome of TryConsume.
type ConsumeResult struct {
	Allowed   bool
	Used      int
	Limit     int
	Remaining int
	Unlimited bool
	ResetsAt  time.Time
}

// QuotaSnapshot is the read-only view returned by GetQuota.
type QuotaSnapshot struct {
	Kind      ActionKind
	Used      int
	Limit     int
	Remaining int
	Unlimited bool
	PeriodKey string
	ResetsAt  time.Time
}

// QuotaManager enforces per-period allowances. Resets are lazy: a new period
// key means a new zero row on first access.
type QuotaManager struct {
	store QuotaStore
	tiers TierLimiter
}

func NewQuotaManager(store QuotaStore, tiers TierLimiter) *QuotaManager {
	return &QuotaManager{store: store, tiers: tiers}
}

// WithStore binds the manager to a transaction-scoped store.
func (m *QuotaManager) WithStore(store QuotaStore) *QuotaManager {
	return &QuotaManager{store: store, tiers: m.tiers}
}

// TryConsume takes one unit when used < limit. A refusal never mutates state.
// Unlimited tiers are always allowed; the counter still moves for audit.
func (m *QuotaManager) TryConsume(ctx context.Context, actorID uint64, kind ActionKind, now time.Time) (ConsumeResult, error) {
	lim, err := m.Limits(ctx, actorID, kind)
	if err != nil {
		return ConsumeResult{}, err
	}
	return m.consume(ctx, actorID, kind, lim, now)
}

// Limits resolves the actor's allowance for kind.
func (m *QuotaManager) Limits(ctx context.Context, actorID uint64, kind ActionKind) (Limit, error) {
	return m.tiers.TierLimits(ctx, actorID, kind)
}

// release undoes a consume of the same period.
func (m *QuotaManager) release(ctx context.Context, actorID uint64, kind ActionKind, lim Limit, now time.Time) error {
	return m.store.Release(ctx, Quota{ActorID: actorID, Kind: kind, PeriodKey: lim.Period.Key(now)})
}

// consume applies an already resolved limit, so that a transaction-bound
// manager only touches its own store.
func (m *QuotaManager) consume(ctx context.Context, actorID uint64, kind ActionKind, lim Limit, now time.Time) (ConsumeResult, error) {
	start, end := lim.Period.Bounds(now)

	q := Quota{
		ActorID:     actorID,
		Kind:        kind,
		PeriodKey:   lim.Period.Key(now),
		PeriodStart: start,
		Limit:       max(lim.Limit, 0),
	}
	used, allowed, err := m.store.Consume(ctx, q, !lim.Unlimited)
	if err != nil {
		return ConsumeResult{}, err
	}

	res := ConsumeResult{
		Allowed:   allowed || lim.Unlimited,
		Used:      used,
		Limit:     q.Limit,
		Unlimited: lim.Unlimited,
		ResetsAt:  end,
	}
	if lim.Unlimited {
		res.Remaining = -1
	} else {
		res.Remaining = max(q.Limit-used, 0)
	}
	return res, nil
}

// Snapshot reads the current period without consuming.
func (m *QuotaManager) Snapshot(ctx context.Context, actorID uint64, kind ActionKind, now time.Time) (QuotaSnapshot, error) {
	lim, err := m.tiers.TierLimits(ctx, actorID, kind)
	if err != nil {
		return QuotaSnapshot{}, err
	}
	_, end := lim.Period.Bounds(now)
	key := lim.Period.Key(now)

	q, found, err := m.store.Get(ctx, actorID, kind, key)
	if err != nil {
		return QuotaSnapshot{}, err
	}
	used := 0
	if found {
		used = q.Used
	}

	snap := QuotaSnapshot{
		Kind:      kind,
		Used:      used,
		Limit:     max(lim.Limit, 0),
		Unlimited: lim.Unlimited,
		PeriodKey: key,
		ResetsAt:  end,
	}
	if lim.Unlimited {
		snap.Remaining = -1
	} else {
		snap.Remaining = max(snap.Limit-used, 0)
	}
	return snap, nil
}
