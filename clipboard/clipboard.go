// Package clipboard reads the system clipboard.
package clipboard

import (
	"errors"

	cb "github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available, e.g.
// xclip/xsel/wl-clipboard missing on Linux.
var ErrUnsupported = errors.New("clipboard not available (install xclip, xsel or wl-clipboard)")

func Read() (string, error) {
	if cb.Unsupported {
		return "", ErrUnsupported
	}
	return cb.ReadAll()
}

func Write(text string) error {
	if cb.Unsupported {
		return ErrUnsupported
	}
	return cb.WriteAll(text)
}
