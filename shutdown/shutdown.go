package shutdown

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
)

// ErrInterrupted is the cancellation cause when a termination signal arrives.
var ErrInterrupted = errors.New("interrupted")

// Context returns a context cancelled with ErrInterrupted (naming the
// signal) on the first interrupt. stop releases the signal handler.
func Context(parent context.Context) (ctx context.Context, stop func()) {
	ctx, cancel := context.WithCancelCause(parent)
	ch := make(chan os.Signal, 1)
	Notify(ch)

	done := make(chan struct{})
	go func() {
		select {
		case sig := <-ch:
			cancel(fmt.Errorf("%w: %v", ErrInterrupted, sig))
		case <-done:
		}
	}()

	var stopped bool
	return ctx, func() {
		if stopped {
			return
		}
		stopped = true
		signal.Stop(ch)
		close(done)
		cancel(nil)
	}
}
