// Package keyboard emits synthetic key events into whatever window has focus.
package keyboard

import (
	"errors"
	"fmt"
)

// Key names a dedicated key action.
type Key string

const (
	KeyEnter Key = "enter"
	KeyTab   Key = "tab"
)

var (
	// ErrFailsafe is returned when the pointer sits in a screen corner, the
	// emergency stop gesture.
	ErrFailsafe           = errors.New("failsafe triggered: pointer moved to a screen corner")
	ErrUnsupportedChar    = errors.New("character not supported by keyboard backend")
	ErrBackendUnavailable = errors.New("keyboard backend not available on this platform")
)

// Keyboard is the input injection capability the typist drives.
type Keyboard interface {
	PressKey(k Key) error
	TypeChar(r rune) error
	Close()
}

const (
	BackendRobotgo = "robotgo"
	BackendKeybd   = "keybd"
)

// Backends lists the accepted backend names.
var Backends = []string{BackendRobotgo, BackendKeybd}

// New creates the named backend. The robotgo backend honours the corner
// failsafe when failsafe is true; keybd has no pointer access and ignores it.
func New(backend string, failsafe bool) (Keyboard, error) {
	switch backend {
	case "", BackendRobotgo:
		return newRobot(failsafe)
	case BackendKeybd:
		return newKeybd()
	}
	return nil, fmt.Errorf("unknown keyboard backend %q (use %s or %s)", backend, BackendRobotgo, BackendKeybd)
}
