package keyboard

import (
	"fmt"
	"strings"
)

// Action is one recorded keyboard call.
type Action struct {
	Key  Key
	Char rune
}

func (a Action) String() string {
	if a.Key != "" {
		return "<" + string(a.Key) + ">"
	}
	return string(a.Char)
}

// Recorder is an in-memory Keyboard for tests and dry runs.
type Recorder struct {
	Actions []Action
	// FailAt makes the call with this zero-based index return Err.
	FailAt int
	Err    error
	Closed bool
}

func NewRecorder() *Recorder {
	return &Recorder{FailAt: -1}
}

func (r *Recorder) record(a Action) error {
	if r.Err != nil && len(r.Actions) == r.FailAt {
		return r.Err
	}
	r.Actions = append(r.Actions, a)
	return nil
}

func (r *Recorder) PressKey(k Key) error {
	switch k {
	case KeyEnter, KeyTab:
	default:
		return fmt.Errorf("unknown key %q", k)
	}
	return r.record(Action{Key: k})
}

func (r *Recorder) TypeChar(c rune) error { return r.record(Action{Char: c}) }

func (r *Recorder) Close() { r.Closed = true }

// String renders the recorded actions, keys as <enter> and <tab>.
func (r *Recorder) String() string {
	var b strings.Builder
	for _, a := range r.Actions {
		b.WriteString(a.String())
	}
	return b.String()
}
