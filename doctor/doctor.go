// Package doctor checks that the machine can run typir: key injection,
// clipboard access, the 1Password CLI and the abort hotkey.
package doctor

import (
	"context"
	"fmt"
	"io"
	"time"

	"typir/clipboard"
	"typir/hotkey"
	"typir/keyboard"
	"typir/secret"
)

// Check is one diagnostic. Optional checks only warn on failure.
type Check struct {
	Name     string
	Optional bool
	Run      func() (string, error)
}

// Options selects what the default checks exercise.
type Options struct {
	Backend  string
	OpBinary string
}

// Checks returns the standard diagnostics for opts.
func Checks(opts Options) []Check {
	return []Check{
		{
			Name: "Keyboard backend (" + backendName(opts.Backend) + ")",
			Run: func() (string, error) {
				kb, err := keyboard.New(opts.Backend, true)
				if err != nil {
					return "", err
				}
				kb.Close()
				return "key injection initialized", nil
			},
		},
		{
			Name:     "Clipboard read",
			Optional: true,
			Run: func() (string, error) {
				text, err := clipboard.Read()
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("read %d characters", len([]rune(text))), nil
			},
		},
		{
			Name:     "1Password CLI",
			Optional: true,
			Run: func() (string, error) {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				op := &secret.OnePassword{Binary: opts.OpBinary}
				v, err := op.Available(ctx)
				if err != nil {
					return "", err
				}
				return "op " + v, nil
			},
		},
		{
			Name:     "Abort hotkey",
			Optional: true,
			Run:      hotkey.Diagnose,
		},
	}
}

func backendName(b string) string {
	if b == "" {
		return keyboard.BackendRobotgo
	}
	return b
}

// Run executes the default checks and returns an exit code (0=all required
// checks pass, 1=any required check failed).
func Run(w io.Writer, opts Options) int {
	return RunChecks(w, Checks(opts))
}

func RunChecks(w io.Writer, checks []Check) int {
	fmt.Fprintln(w, "typir doctor - system diagnostics")
	fmt.Fprintln(w, "=================================")

	failed := false
	for i, c := range checks {
		fmt.Fprintf(w, "\n[%d/%d] %s\n", i+1, len(checks), c.Name)
		msg, err := c.Run()
		switch {
		case err == nil:
			fmt.Fprintf(w, "  PASS: %s\n", msg)
		case c.Optional:
			fmt.Fprintf(w, "  WARN: %v\n", err)
		default:
			fmt.Fprintf(w, "  FAIL: %v\n", err)
			failed = true
		}
	}

	if failed {
		fmt.Fprintln(w, "\nSome checks failed. See details above.")
		return 1
	}
	fmt.Fprintln(w, "\nAll required checks passed!")
	return 0
}
