// Package secret reads secrets from 1Password through the op CLI.
package secret

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultBinary is the 1Password CLI executable name.
const DefaultBinary = "op"

var (
	ErrCLINotFound    = errors.New("1Password CLI (op) not found")
	ErrNotSignedIn    = errors.New("not signed in to 1Password")
	ErrSecretNotFound = errors.New("secret not found")
)

// CLIError is a failure of the op CLI that could not be diagnosed further.
type CLIError struct {
	Stderr string
	Err    error
}

func (e *CLIError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	return "1Password CLI failed: " + msg
}

func (e *CLIError) Unwrap() error { return e.Err }

// Reader resolves a secret reference to its value.
type Reader interface {
	Read(ctx context.Context, ref, account string) (string, error)
}

// OnePassword runs `op read` for every lookup.
type OnePassword struct {
	Binary string
}

func NewOnePassword() *OnePassword {
	return &OnePassword{Binary: DefaultBinary}
}

// Args returns the op arguments for reading ref, scoped to account when set.
func Args(ref, account string) []string {
	args := []string{"read", ref}
	if account != "" {
		args = append(args, "--account", account)
	}
	return args
}

// Read returns the secret value with surrounding whitespace removed. The
// call is not bounded by a timeout; it only ends early when ctx is cancelled.
func (o *OnePassword) Read(ctx context.Context, ref, account string) (string, error) {
	bin := o.Binary
	if bin == "" {
		bin = DefaultBinary
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, Args(ref, account)...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", diagnose(ref, stderr.String(), err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

func diagnose(ref, stderr string, err error) error {
	if errors.Is(err, exec.ErrNotFound) {
		return ErrCLINotFound
	}
	lower := strings.ToLower(stderr)
	switch {
	case strings.Contains(lower, "not signed in"):
		return ErrNotSignedIn
	case strings.Contains(lower, "could not be found"), strings.Contains(lower, "isn't an item"):
		return fmt.Errorf("%w: %s", ErrSecretNotFound, ref)
	}
	return &CLIError{Stderr: stderr, Err: err}
}

// Available reports the op CLI version, or an error when it cannot be run.
func (o *OnePassword) Available(ctx context.Context) (string, error) {
	bin := o.Binary
	if bin == "" {
		bin = DefaultBinary
	}
	out, err := exec.CommandContext(ctx, bin, "--version").Output()
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", ErrCLINotFound
		}
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
