//go:build linux && cgo

package keyboard

import (
	"fmt"
	"time"

	"github.com/micmonay/keybd_event"
)

// evdev key codes, from linux/input-event-codes.h.
const (
	codeTab   = 15
	codeEnter = 28
	codeSpace = 57
)

// a=30, b=48, c=46, d=32, e=18, f=33, g=34, h=35, i=23, j=36,
// k=37, l=38, m=50, n=49, o=24, p=25, q=16, r=19, s=31, t=20,
// u=22, v=47, w=17, x=45, y=21, z=44
var letterCodes = [26]int{
	30, 48, 46, 32, 18, 33, 34, 35, 23, 36,
	37, 38, 50, 49, 24, 25, 16, 19, 31, 20,
	22, 47, 17, 45, 21, 44,
}

// 0=11, 1=2, 2=3, ..., 9=10
var digitCodes = [10]int{11, 2, 3, 4, 5, 6, 7, 8, 9, 10}

type keyStroke struct {
	code  int
	shift bool
}

// US layout punctuation.
var punctCodes = map[rune]keyStroke{
	'.': {52, false}, ',': {51, false}, '/': {53, false},
	';': {39, false}, '\'': {40, false}, '[': {26, false},
	']': {27, false}, '-': {12, false}, '=': {13, false},
	'\\': {43, false}, '`': {41, false},
	'!': {2, true}, '@': {3, true}, '#': {4, true},
	'$': {5, true}, '%': {6, true}, '^': {7, true},
	'&': {8, true}, '*': {9, true}, '(': {10, true},
	')': {11, true}, '_': {12, true}, '+': {13, true},
	'{': {26, true}, '}': {27, true}, '|': {43, true},
	':': {39, true}, '"': {40, true}, '<': {51, true},
	'>': {52, true}, '?': {53, true}, '~': {41, true},
}

func strokeFor(r rune) (keyStroke, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return keyStroke{letterCodes[r-'a'], false}, true
	case r >= 'A' && r <= 'Z':
		return keyStroke{letterCodes[r-'A'], true}, true
	case r >= '0' && r <= '9':
		return keyStroke{digitCodes[r-'0'], false}, true
	case r == ' ':
		return keyStroke{codeSpace, false}, true
	}
	k, ok := punctCodes[r]
	return k, ok
}

type keybdKeyboard struct {
	kb keybd_event.KeyBonding
}

func newKeybd() (Keyboard, error) {
	kb, err := keybd_event.NewKeyBonding()
	if err != nil {
		return nil, fmt.Errorf("keybd init (needs write access to /dev/uinput): %w", err)
	}
	// Give the compositor time to pick up the new uinput device.
	time.Sleep(2 * time.Second)
	return &keybdKeyboard{kb: kb}, nil
}

func (k *keybdKeyboard) tap(s keyStroke) error {
	k.kb.Clear()
	k.kb.SetKeys(s.code)
	k.kb.HasSHIFT(s.shift)
	return k.kb.Launching()
}

func (k *keybdKeyboard) PressKey(key Key) error {
	switch key {
	case KeyEnter:
		return k.tap(keyStroke{code: codeEnter})
	case KeyTab:
		return k.tap(keyStroke{code: codeTab})
	}
	return fmt.Errorf("unknown key %q", key)
}

func (k *keybdKeyboard) TypeChar(r rune) error {
	s, ok := strokeFor(r)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedChar, r)
	}
	return k.tap(s)
}

func (k *keybdKeyboard) Close() {
	k.kb.Clear()
}
