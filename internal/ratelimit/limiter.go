package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

const (
	minuteWindow = time.Minute
	tenSecWindow = 10 * time.Second
)

// WindowStore counts hits in fixed expiring windows.
type WindowStore interface {
	IncrementWindow(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// Limiter throttles swipe bursts per actor over two windows. A limit of zero
// disables its window.
type Limiter struct {
	store     WindowStore
	perMinute int
	per10Sec  int
}

func NewLimiter(store WindowStore, perMinute, per10Sec int) *Limiter {
	if perMinute < 0 {
		perMinute = 0
	}
	if per10Sec < 0 {
		per10Sec = 0
	}
	return &Limiter{store: store, perMinute: perMinute, per10Sec: per10Sec}
}

// AllowSwipe counts one swipe and reports how long to wait when a window is full.
// It implements matching.BurstLimiter.
func (l *Limiter) AllowSwipe(ctx context.Context, actorID uint64) (time.Duration, bool, error) {
	if actorID == 0 {
		return 0, false, fmt.Errorf("invalid actor id")
	}
	if l.store == nil {
		return 0, false, fmt.Errorf("rate limiter store is nil")
	}

	var wait time.Duration
	for _, w := range l.windows(actorID) {
		count, ttl, err := l.store.IncrementWindow(ctx, w.key, w.size)
		if err != nil {
			return 0, false, err
		}
		if count > int64(w.limit) {
			wait = max(wait, ceilSecond(ttl))
		}
	}
	if wait > 0 {
		return wait, false, nil
	}
	return 0, true, nil
}

type window struct {
	key   string
	size  time.Duration
	limit int
}

func (l *Limiter) windows(actorID uint64) []window {
	id := strconv.FormatUint(actorID, 10)
	var ws []window
	if l.perMinute > 0 {
		ws = append(ws, window{key: "rate:swipes:min:" + id, size: minuteWindow, limit: l.perMinute})
	}
	if l.per10Sec > 0 {
		ws = append(ws, window{key: "rate:swipes:10s:" + id, size: tenSecWindow, limit: l.per10Sec})
	}
	return ws
}

// ceilSecond rounds up to whole seconds, never below one.
func ceilSecond(d time.Duration) time.Duration {
	if d <= 0 {
		return time.Second
	}
	s := d / time.Second
	if d%time.Second != 0 {
		s++
	}
	return s * time.Second
}
