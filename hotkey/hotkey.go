// Package hotkey watches for the global emergency-stop chord Ctrl+Shift+Esc.
package hotkey

import (
	"context"
	"errors"
)

// ErrPressed is the cancellation cause when the abort chord is pressed.
var ErrPressed = errors.New("abort hotkey pressed")

// Chord is the human-readable name of the abort chord.
const Chord = "Ctrl+Shift+Esc"

type Hotkey interface {
	Register() error
	Unregister()
	Keydown() <-chan struct{}
}

// CancelOnPress cancels with ErrPressed on the first keydown of hk. It stops
// watching once ctx is done.
func CancelOnPress(ctx context.Context, hk Hotkey, cancel context.CancelCauseFunc) {
	go func() {
		select {
		case <-hk.Keydown():
			cancel(ErrPressed)
		case <-ctx.Done():
		}
	}()
}
