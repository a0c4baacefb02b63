//go:build !windows

package shutdown

import (
	"context"
	"errors"
	"syscall"
	"testing"
	"time"
)

func TestContextCancelledBySignal(t *testing.T) {
	ctx, stop := Context(context.Background())
	defer stop()

	if err := syscall.Kill(syscall.Getpid(), syscall.SIGTERM); err != nil {
		t.Fatal(err)
	}

	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("context not cancelled by SIGTERM")
	}
	if cause := context.Cause(ctx); !errors.Is(cause, ErrInterrupted) {
		t.Errorf("cause = %v, want ErrInterrupted", cause)
	}
}

func TestStopIdempotent(t *testing.T) {
	ctx, stop := Context(context.Background())
	stop()
	stop()
	if ctx.Err() == nil {
		t.Error("stop did not release the context")
	}
	if errors.Is(context.Cause(ctx), ErrInterrupted) {
		t.Error("stop reported as interrupt")
	}
}
