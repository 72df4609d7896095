package matching

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrTargetUnavailable = errors.New("target unavailable")
	ErrQuotaExceeded     = errors.New("quota exceeded")
	ErrBlocked           = errors.New("blocked relationship")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrNotFound          = errors.New("not found")
	ErrStorage           = errors.New("storage error")
	ErrRateLimited       = errors.New("too many swipes")
)

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// StorageError wraps any store failure that is not a domain outcome.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrStorage, e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool { return target == ErrStorage }

// RateLimitedError carries how long the caller should wait before swiping again.
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("%s, retry after %s", ErrRateLimited, e.RetryAfter)
}

func (e *RateLimitedError) Is(target error) bool { return target == ErrRateLimited }

// storageErr leaves domain errors untouched and wraps the rest.
func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	for _, domain := range []error{
		ErrTargetUnavailable, ErrQuotaExceeded, ErrBlocked,
		ErrInvalidArgument, ErrNotFound, ErrStorage, ErrRateLimited,
	} {
		if errors.Is(err, domain) {
			return err
		}
	}
	return &StorageError{Op: op, Err: err}
}
