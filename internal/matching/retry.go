package matching

import (
	"context"
	"time"
)

// RetryPolicy retries storage conflicts (deadlocks, serialization failures,
// busy databases) a bounded number of times with linear backoff.
type RetryPolicy struct {
	Attempts  int
	Backoff   time.Duration
	Transient func(error) bool
}

func (p RetryPolicy) Do(ctx context.Context, fn func() error) error {
	attempts := max(p.Attempts, 1)
	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil || p.Transient == nil || !p.Transient(err) || attempt >= attempts {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.Backoff * time.Duration(attempt)):
		}
	}
}
