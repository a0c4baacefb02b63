//go:build !cgo

package keyboard

import "fmt"

func newRobot(bool) (Keyboard, error) {
	return nil, fmt.Errorf("%w: robotgo needs a cgo build", ErrBackendUnavailable)
}
