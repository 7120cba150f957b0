package httputil

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"
)

// MaxRetryAfter caps the wait a server can request through Retry-After.
const MaxRetryAfter = 30 * time.Second

// RetryableError marks a transient failure that [Retry] attempts again.
// After is the minimum wait requested by the server, zero if it gave none.
type RetryableError struct {
	Err   error
	After time.Duration
}

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retry calls fn until it succeeds, returns an error that is not a
// [RetryableError], or has been called attempts times. The wait between
// calls starts at delay and doubles; a longer server-requested wait wins,
// up to [MaxRetryAfter]. Cancelling ctx during a wait returns ctx.Err().
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	attempts = max(attempts, 1)
	for i := 1; ; i++ {
		err := fn()
		if err == nil {
			return nil
		}
		var re *RetryableError
		if !errors.As(err, &re) || i >= attempts {
			return err
		}

		timer := time.NewTimer(max(delay, min(re.After, MaxRetryAfter)))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay *= 2
	}
}

// ParseRetryAfter reads a Retry-After header given in whole seconds.
// HTTP dates, negative numbers and garbage all yield zero.
func ParseRetryAfter(v string) time.Duration {
	secs, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
