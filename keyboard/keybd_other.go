//go:build !linux || !cgo

package keyboard

import "fmt"

func newKeybd() (Keyboard, error) {
	return nil, fmt.Errorf("%w: keybd is Linux only", ErrBackendUnavailable)
}
