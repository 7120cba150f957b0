package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer is a bytes.Buffer safe for the spinner goroutine and the
// logger to share.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinnerAnimatesAndClears(t *testing.T) {
	var out syncBuffer
	s := startSpinner(context.Background(), &out, "Fetching character 1...")
	time.Sleep(3 * spinnerInterval)
	s.Stop()

	got := out.String()
	if !strings.Contains(got, "Fetching character 1...") {
		t.Errorf("spinner never drew its message: %q", got)
	}
	if !strings.HasSuffix(got, "\r") {
		t.Errorf("spinner line not cleared: %q", got)
	}
	if s.Interrupted() {
		t.Error("Stop should not count as an interruption")
	}
}

func TestSpinnerStopBeforeFirstFrame(t *testing.T) {
	var out syncBuffer
	s := startSpinner(context.Background(), &out, "Fetching character 4...")
	s.Stop()

	if got := out.String(); strings.Contains(got, "Fetching") {
		t.Errorf("spinner drew a frame before the first tick: %q", got)
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := startSpinner(context.Background(), &syncBuffer{}, "Fetching character 1...")
	s.Stop()
	s.Stop()
}

func TestSpinnerInterrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var out syncBuffer
	s := startSpinner(ctx, &out, "Fetching character 1...")
	cancel()

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after the context was cancelled")
	}
	if !s.Interrupted() {
		t.Error("Interrupted should report the cancelled context")
	}
}
