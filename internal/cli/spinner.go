package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// spinner animates one status line on w while the graph command waits on
// SWAPI. Only its own goroutine writes to w, and the line is cleared
// before Stop returns.
type spinner struct {
	w       io.Writer
	message string
	parent  context.Context
	cancel  context.CancelFunc
	stopped chan struct{}
}

// startSpinner starts animating message. The animation ends on Stop or
// when ctx is done, whichever comes first.
func startSpinner(ctx context.Context, w io.Writer, message string) *spinner {
	inner, cancel := context.WithCancel(ctx)
	s := &spinner{
		w:       w,
		message: message,
		parent:  ctx,
		cancel:  cancel,
		stopped: make(chan struct{}),
	}
	go s.run(inner)
	return s
}

func (s *spinner) run(ctx context.Context) {
	defer close(s.stopped)
	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()

	for i := 0; ; i++ {
		select {
		case <-ctx.Done():
			fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", len(s.message)+4))
			return
		case <-ticker.C:
			frame := spinnerFrames[i%len(spinnerFrames)]
			fmt.Fprintf(s.w, "\r%s %s", styleSpinner.Render(frame), StyleDim.Render(s.message))
		}
	}
}

// Stop ends the animation and waits for the line to be cleared. Calling it
// again is a no-op.
func (s *spinner) Stop() {
	s.cancel()
	<-s.stopped
}

// Interrupted reports whether the command's context ended, for example on
// Ctrl-C, rather than the fetch finishing.
func (s *spinner) Interrupted() bool {
	return s.parent.Err() != nil
}
