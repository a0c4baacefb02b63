package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"typir/keyboard"
	"typir/source"
)

const (
	defaultDelay      = 5
	defaultChunkDelay = 1.0
)

// errUsage marks configuration errors that are the user's to fix.
var errUsage = errors.New("invalid arguments")

type Config struct {
	File       string
	Text       string
	OpRef      string
	OpAccount  string
	Clipboard  bool
	Delay      int
	Interval   time.Duration
	Chunk      int
	ChunkDelay time.Duration
	NoNewline  bool
	DryRun     bool

	Backend     string
	NoFailsafe  bool
	AbortHotkey bool
	LogPath     string
	Doctor      bool
	Version     bool
}

// Request is the source selection part of the config.
func (c Config) Request() source.Request {
	return source.Request{
		OpRef:     c.OpRef,
		OpAccount: c.OpAccount,
		Clipboard: c.Clipboard,
		Text:      c.Text,
		File:      c.File,
	}
}

const usageHeader = `typir - type text into locked-down VDIs when clipboard paste is disabled.

Usage:
  typir [flags] [file]

Flags:
  file                   file containing text to type
  -t, --text TEXT        type literal text instead of from file
  -o, --op REF           read from 1Password (e.g. op://vault/item/password)
      --op-account NAME  1Password account shorthand (multi-account setups)
  -c, --clipboard        read text from clipboard and type it out
  -d, --delay N          seconds before typing starts (default 5)
  -i, --interval F       delay between keystrokes in seconds (default 0)
      --chunk N          pause every N characters (good for large files)
      --chunk-delay F    seconds to pause between chunks (default 1)
  -n, --no-newline       don't add a newline at the end
      --dry-run          show what would be typed without typing
      --backend NAME     key injection backend: robotgo or keybd (default robotgo)
      --no-failsafe      don't abort when the mouse is moved to a screen corner
      --abort-hotkey     abort typing on Ctrl+Shift+Esc
      --logpath DIR      diagnostics log directory (default: OS-specific, env TYPIR_LOG_PATH)
      --doctor           run system diagnostics and exit
      --version          print version and exit
`

const usageExamples = `
Examples:
  # Type contents of a file
  typir password.txt

  # Type a base64 file with chunking (good for large files)
  typir encoded.b64 --chunk 500 --chunk-delay 2

  # Slow typing for laggy VDIs (50ms between keys)
  typir input.txt --interval 0.05

  # Quick 3 second countdown
  typir input.txt --delay 3

  # Type literal text instead of from file
  typir --text "MyP@ssw0rd!"

  # Type whatever is in your clipboard
  typir --clipboard

  # 1Password integration - type password directly from vault
  typir --op "op://Personal/VDI Login/password"

  # 1Password with specific account (multi-account setups)
  typir --op "op://Work/Client VDI/password" --op-account work
`

func printUsage(w io.Writer) {
	fmt.Fprint(w, usageHeader+usageExamples)
}

func seconds(f float64) time.Duration {
	return time.Duration(f * float64(time.Second))
}

// ParseConfig parses command-line arguments. Flags may come before or after
// the file argument. Parse errors are returned as-is (flag.ErrHelp for
// -h/--help); invalid values wrap errUsage.
func ParseConfig(args []string, output io.Writer) (Config, error) {
	cfg := Config{}
	var interval, chunkDelay float64

	fs := flag.NewFlagSet("typir", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() { printUsage(output) }

	fs.StringVar(&cfg.Text, "text", "", "literal text")
	fs.StringVar(&cfg.Text, "t", "", "literal text")
	fs.StringVar(&cfg.OpRef, "op", "", "1Password secret reference")
	fs.StringVar(&cfg.OpRef, "o", "", "1Password secret reference")
	fs.StringVar(&cfg.OpAccount, "op-account", "", "1Password account")
	fs.BoolVar(&cfg.Clipboard, "clipboard", false, "read from clipboard")
	fs.BoolVar(&cfg.Clipboard, "c", false, "read from clipboard")
	fs.IntVar(&cfg.Delay, "delay", defaultDelay, "countdown seconds")
	fs.IntVar(&cfg.Delay, "d", defaultDelay, "countdown seconds")
	fs.Float64Var(&interval, "interval", 0, "seconds between keystrokes")
	fs.Float64Var(&interval, "i", 0, "seconds between keystrokes")
	fs.IntVar(&cfg.Chunk, "chunk", 0, "characters per chunk")
	fs.Float64Var(&chunkDelay, "chunk-delay", defaultChunkDelay, "seconds between chunks")
	fs.BoolVar(&cfg.NoNewline, "no-newline", false, "no trailing newline")
	fs.BoolVar(&cfg.NoNewline, "n", false, "no trailing newline")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "preview only")
	fs.StringVar(&cfg.Backend, "backend", keyboard.BackendRobotgo, "key injection backend")
	fs.BoolVar(&cfg.NoFailsafe, "no-failsafe", false, "disable corner failsafe")
	fs.BoolVar(&cfg.AbortHotkey, "abort-hotkey", false, "abort on Ctrl+Shift+Esc")
	fs.StringVar(&cfg.LogPath, "logpath", "", "log directory")
	fs.BoolVar(&cfg.Doctor, "doctor", false, "run diagnostics")
	fs.BoolVar(&cfg.Version, "version", false, "print version")

	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return cfg, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			break
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}

	switch len(positional) {
	case 0:
	case 1:
		cfg.File = positional[0]
	default:
		return cfg, fmt.Errorf("%w: unexpected arguments: %s", errUsage, strings.Join(positional[1:], " "))
	}

	cfg.Interval = seconds(interval)
	cfg.ChunkDelay = seconds(chunkDelay)

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.Delay < 0:
		return fmt.Errorf("%w: --delay must not be negative", errUsage)
	case c.Interval < 0:
		return fmt.Errorf("%w: --interval must not be negative", errUsage)
	case c.Chunk < 0:
		return fmt.Errorf("%w: --chunk must not be negative", errUsage)
	case c.ChunkDelay < 0:
		return fmt.Errorf("%w: --chunk-delay must not be negative", errUsage)
	case !slices.Contains(keyboard.Backends, c.Backend):
		return fmt.Errorf("%w: unknown --backend %q (use %s)", errUsage, c.Backend, strings.Join(keyboard.Backends, " or "))
	}
	return nil
}
