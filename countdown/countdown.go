// Package countdown gives the operator time to focus the target window
// before typing starts.
package countdown

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// ErrInterrupted is returned when the countdown is cut short by an interrupt.
var ErrInterrupted = errors.New("countdown interrupted")

// Heading is printed before the per-second countdown.
func Heading(seconds int, failsafe bool) string {
	s := fmt.Sprintf("\n%d seconds to click into target window...\n", seconds)
	if failsafe {
		s += "   (Move mouse to a screen corner to abort)\n"
	}
	return s
}

// Countdown blocks for Seconds, one tick per second.
type Countdown struct {
	Seconds  int
	Failsafe bool
	Out      io.Writer
	// Tick is the length of one step; zero means one second.
	Tick time.Duration
}

func (c *Countdown) tick() time.Duration {
	if c.Tick > 0 {
		return c.Tick
	}
	return time.Second
}

// Run prints "N... N-1... 1..." one step per tick and returns once the delay
// has elapsed, or ErrInterrupted as soon as ctx is cancelled.
func (c *Countdown) Run(ctx context.Context) error {
	if c.Seconds <= 0 {
		return nil
	}
	out := c.Out
	if out == nil {
		out = io.Discard
	}

	fmt.Fprintln(out, Heading(c.Seconds, c.Failsafe))
	ticker := time.NewTicker(c.tick())
	defer ticker.Stop()

	for i := c.Seconds; i > 0; i-- {
		fmt.Fprintf(out, "   %d...", i)
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return ErrInterrupted
		case <-ticker.C:
		}
	}
	fmt.Fprint(out, "\n\n")
	return nil
}
