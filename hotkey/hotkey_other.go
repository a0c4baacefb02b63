//go:build !linux

package hotkey

import (
	"golang.design/x/hotkey"
)

type xHotkey struct {
	hk      *hotkey.Hotkey
	keydown chan struct{}
	stop    chan struct{}
}

// New creates the abort chord with golang.design/x/hotkey (Cocoa/Win32).
func New() Hotkey {
	return &xHotkey{
		hk:      hotkey.New([]hotkey.Modifier{hotkey.ModCtrl, hotkey.ModShift}, hotkey.KeyEscape),
		keydown: make(chan struct{}, 1),
		stop:    make(chan struct{}),
	}
}

func (h *xHotkey) Register() error {
	if err := h.hk.Register(); err != nil {
		return err
	}
	go func() {
		for {
			select {
			case <-h.hk.Keydown():
				select {
				case h.keydown <- struct{}{}:
				default:
				}
			case <-h.stop:
				return
			}
		}
	}()
	return nil
}

func (h *xHotkey) Unregister() {
	close(h.stop)
	h.hk.Unregister()
}

func (h *xHotkey) Keydown() <-chan struct{} {
	return h.keydown
}

func Diagnose() (string, error) {
	return "abort hotkey available (" + Chord + ")", nil
}
