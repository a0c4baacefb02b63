//go:build cgo

package keyboard

import (
	"github.com/go-vgo/robotgo"
)

// cornerMargin is how close to a corner, in pixels, counts as the corner.
const cornerMargin = 1

type robotKeyboard struct {
	failsafe bool
	width    int
	height   int
}

func newRobot(failsafe bool) (Keyboard, error) {
	w, h := robotgo.GetScreenSize()
	return &robotKeyboard{failsafe: failsafe, width: w, height: h}, nil
}

func (k *robotKeyboard) PressKey(key Key) error {
	if err := k.checkFailsafe(); err != nil {
		return err
	}
	return robotgo.KeyTap(string(key))
}

func (k *robotKeyboard) TypeChar(r rune) error {
	if err := k.checkFailsafe(); err != nil {
		return err
	}
	robotgo.TypeStr(string(r))
	return nil
}

func (k *robotKeyboard) Close() {}

func (k *robotKeyboard) checkFailsafe() error {
	if !k.failsafe {
		return nil
	}
	x, y := robotgo.Location()
	if InCorner(x, y, k.width, k.height, cornerMargin) {
		return ErrFailsafe
	}
	return nil
}
