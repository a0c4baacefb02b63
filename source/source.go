// Package source picks the text to type from exactly one of the configured
// inputs: a 1Password reference, the clipboard, a literal string or a file.
package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Kind identifies where the text came from.
type Kind string

const (
	KindSecret    Kind = "1password"
	KindClipboard Kind = "clipboard"
	KindText      Kind = "text"
	KindFile      Kind = "file"
)

var (
	ErrNoSource       = errors.New("no input source given")
	ErrClipboardEmpty = errors.New("clipboard is empty")
	ErrFileNotFound   = errors.New("file not found")
)

// ReadError wraps a failure to read the selected source.
type ReadError struct {
	Source Kind
	Err    error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Source, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// SecretReader resolves a secret reference, optionally scoped to an account.
type SecretReader interface {
	Read(ctx context.Context, ref, account string) (string, error)
}

// Request lists the candidate sources. At most one is used.
type Request struct {
	OpRef     string
	OpAccount string
	Clipboard bool
	Text      string
	File      string
}

// Result is the raw text and the source it was read from.
type Result struct {
	Text   string
	Source Kind
}

// Resolver reads from the source selected by a Request. Zero-valued
// collaborators are only an error when the matching source is selected.
type Resolver struct {
	Secrets   SecretReader
	Clipboard func() (string, error)
	ReadFile  func(name string) ([]byte, error)
}

// Select returns the source a Request resolves to, in priority order:
// secret reference, clipboard, literal text, file.
func Select(req Request) (Kind, error) {
	switch {
	case req.OpRef != "":
		return KindSecret, nil
	case req.Clipboard:
		return KindClipboard, nil
	case req.Text != "":
		return KindText, nil
	case req.File != "":
		return KindFile, nil
	}
	return "", ErrNoSource
}

func (r *Resolver) Resolve(ctx context.Context, req Request) (Result, error) {
	kind, err := Select(req)
	if err != nil {
		return Result{}, err
	}

	var text string
	switch kind {
	case KindSecret:
		text, err = r.readSecret(ctx, req.OpRef, req.OpAccount)
	case KindClipboard:
		text, err = r.readClipboard()
	case KindText:
		text = req.Text
	case KindFile:
		text, err = r.readFile(req.File)
	}
	if err != nil {
		return Result{}, &ReadError{Source: kind, Err: err}
	}
	return Result{Text: text, Source: kind}, nil
}

func (r *Resolver) readSecret(ctx context.Context, ref, account string) (string, error) {
	if r.Secrets == nil {
		return "", errors.New("no secret reader configured")
	}
	return r.Secrets.Read(ctx, ref, account)
}

func (r *Resolver) readClipboard() (string, error) {
	if r.Clipboard == nil {
		return "", errors.New("no clipboard reader configured")
	}
	text, err := r.Clipboard()
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", ErrClipboardEmpty
	}
	return text, nil
}

func (r *Resolver) readFile(name string) (string, error) {
	read := r.ReadFile
	if read == nil {
		read = os.ReadFile
	}
	data, err := read(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrFileNotFound, name)
		}
		return "", err
	}
	return string(data), nil
}
