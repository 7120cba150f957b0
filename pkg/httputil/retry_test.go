package httputil

import (
	"context"
	"errors"
	"testing"
	"time"
)

var errTransient = errors.New("transient")

func TestRetry(t *testing.T) {
	permanent := errors.New("permanent")

	tests := []struct {
		name      string
		attempts  int
		fails     int   // calls that fail before success
		failWith  error // error returned while failing
		wantCalls int
		wantErr   error
	}{
		{"success first try", 3, 0, nil, 1, nil},
		{"permanent error stops", 3, 3, permanent, 1, permanent},
		{"transient then success", 3, 1, &RetryableError{Err: errTransient}, 2, nil},
		{"exhausted attempts", 3, 5, &RetryableError{Err: errTransient}, 3, errTransient},
		{"zero attempts runs once", 0, 0, nil, 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := Retry(context.Background(), tt.attempts, time.Millisecond, func() error {
				calls++
				if calls <= tt.fails {
					return tt.failWith
				}
				return nil
			})
			if calls != tt.wantCalls {
				t.Errorf("calls = %d, want %d", calls, tt.wantCalls)
			}
			if tt.wantErr == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRetryWaitsForRetryAfter(t *testing.T) {
	const after = 40 * time.Millisecond

	calls := 0
	start := time.Now()
	err := Retry(context.Background(), 2, time.Millisecond, func() error {
		calls++
		if calls == 1 {
			return &RetryableError{Err: errTransient, After: after}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Retry: %v", err)
	}
	if elapsed := time.Since(start); elapsed < after {
		t.Errorf("retried after %v, server asked for %v", elapsed, after)
	}
}

func TestRetryContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Retry(ctx, 3, time.Hour, func() error {
		return &RetryableError{Err: errTransient}
	})
	if err != context.Canceled {
		t.Errorf("Should return context error: %v", err)
	}
}

func TestRetryableErrorUnwrap(t *testing.T) {
	err := &RetryableError{Err: errTransient}
	if !errors.Is(err, errTransient) {
		t.Error("errors.Is should see through RetryableError")
	}
	if err.Error() != "transient" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestParseRetryAfter(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"", 0},
		{"3", 3 * time.Second},
		{" 1 ", time.Second},
		{"0", 0},
		{"-5", 0},
		{"Wed, 21 Oct 2015 07:28:00 GMT", 0},
	}
	for _, tt := range tests {
		if got := ParseRetryAfter(tt.in); got != tt.want {
			t.Errorf("ParseRetryAfter(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
