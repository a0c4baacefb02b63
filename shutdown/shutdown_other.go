//go:build !windows

package shutdown

import (
	"os"
	"os/signal"
	"syscall"
)

// Signals that abort a run.
var Signals = []os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGHUP}

// Notify relays Signals to ch.
func Notify(ch chan<- os.Signal) {
	signal.Notify(ch, Signals...)
}
