// Package typist replays text through a keyboard one character at a time.
package typist

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"typir/keyboard"
)

// State is the typist's position in its lifecycle.
type State int

const (
	StateIdle State = iota
	StateEmitting
	StatePaused
	StateDone
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEmitting:
		return "emitting"
	case StatePaused:
		return "paused"
	case StateDone:
		return "done"
	case StateAborted:
		return "aborted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

const progressEvery = 100

// AbortError reports typing stopped early by an interrupt or the failsafe.
// Characters already typed stay typed.
type AbortError struct {
	Cause error
	Typed int
	Total int
}

func (e *AbortError) Error() string {
	return fmt.Sprintf("typing aborted after %d/%d characters: %v", e.Typed, e.Total, e.Cause)
}

func (e *AbortError) Unwrap() error { return e.Cause }

// Stats summarizes a finished run.
type Stats struct {
	Typed  int
	Pauses int
}

// SleepFunc blocks for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep waits for d unless ctx is cancelled first.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type Typist struct {
	Keyboard   keyboard.Keyboard
	Interval   time.Duration
	ChunkSize  int
	ChunkDelay time.Duration
	// Out receives progress lines; nil discards them.
	Out   io.Writer
	Sleep SleepFunc
	// OnState observes state transitions.
	OnState func(State)

	state State
}

func New(kb keyboard.Keyboard) *Typist {
	return &Typist{Keyboard: kb, ChunkDelay: time.Second}
}

func (t *Typist) State() State { return t.state }

func (t *Typist) setState(s State) {
	if t.state == s {
		return
	}
	t.state = s
	if t.OnState != nil {
		t.OnState(s)
	}
}

// Type emits one keyboard action per character of text, in order: Enter for
// '\n', Tab for '\t' and a literal character for everything else.
func (t *Typist) Type(ctx context.Context, text string) (Stats, error) {
	out := t.Out
	if out == nil {
		out = io.Discard
	}
	sleep := t.Sleep
	if sleep == nil {
		sleep = Sleep
	}

	runes := []rune(text)
	total := len(runes)
	var stats Stats

	fmt.Fprintf(out, "Typing %d characters...\n", total)
	t.setState(StateEmitting)

	abort := func(reason error) (Stats, error) {
		t.setState(StateAborted)
		fmt.Fprintln(out)
		return stats, &AbortError{Cause: reason, Typed: stats.Typed, Total: total}
	}

	for i, r := range runes {
		if ctx.Err() != nil {
			return abort(context.Cause(ctx))
		}

		if err := t.emit(r); err != nil {
			if errors.Is(err, keyboard.ErrFailsafe) {
				return abort(err)
			}
			t.setState(StateAborted)
			fmt.Fprintln(out)
			return stats, fmt.Errorf("typing character %d of %d: %w", i+1, total, err)
		}
		stats.Typed++

		if stats.Typed%progressEvery == 0 || stats.Typed == total {
			fmt.Fprintf(out, "\r   Progress: %d/%d (%d%%)", stats.Typed, total, stats.Typed*100/total)
		}

		if t.ChunkSize > 0 && stats.Typed%t.ChunkSize == 0 && stats.Typed < total {
			t.setState(StatePaused)
			fmt.Fprintf(out, "\n   Chunk pause (%s)...", t.ChunkDelay)
			if err := sleep(ctx, t.ChunkDelay); err != nil {
				return abort(cause(ctx, err))
			}
			stats.Pauses++
			t.setState(StateEmitting)
		}

		if t.Interval > 0 {
			if err := sleep(ctx, t.Interval); err != nil {
				return abort(cause(ctx, err))
			}
		}
	}

	t.setState(StateDone)
	fmt.Fprintln(out)
	return stats, nil
}

// cause prefers the reason ctx was cancelled with over the bare sleep error.
func cause(ctx context.Context, err error) error {
	if c := context.Cause(ctx); c != nil {
		return c
	}
	return err
}

func (t *Typist) emit(r rune) error {
	switch r {
	case '\n':
		return t.Keyboard.PressKey(keyboard.KeyEnter)
	case '\t':
		return t.Keyboard.PressKey(keyboard.KeyTab)
	}
	return t.Keyboard.TypeChar(r)
}
