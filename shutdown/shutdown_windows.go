//go:build windows

package shutdown

import (
	"os"
	"os/signal"
)

// Signals that abort a run. Ctrl+C and Ctrl+Break both arrive as Interrupt.
var Signals = []os.Signal{os.Interrupt}

// Notify relays Signals to ch.
func Notify(ch chan<- os.Signal) {
	signal.Notify(ch, Signals...)
}
