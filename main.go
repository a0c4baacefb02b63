package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"typir/clipboard"
	"typir/countdown"
	"typir/doctor"
	"typir/hotkey"
	"typir/keyboard"
	"typir/log"
	"typir/payload"
	"typir/secret"
	"typir/shutdown"
	"typir/source"
	"typir/typist"
)

var version = "dev"

// app carries the collaborators of one run so tests can swap them out.
type app struct {
	out           io.Writer
	secrets       source.SecretReader
	readClipboard func() (string, error)
	readFile      func(name string) ([]byte, error)
	newKeyboard   func(backend string, failsafe bool) (keyboard.Keyboard, error)
	newHotkey     func() hotkey.Hotkey
	// interactive selects the Bubble Tea countdown.
	interactive bool
	// tick is the countdown step, one second outside tests.
	tick  time.Duration
	sleep typist.SleepFunc
}

func newApp() *app {
	return &app{
		out:           os.Stdout,
		secrets:       secret.NewOnePassword(),
		readClipboard: clipboard.Read,
		readFile:      os.ReadFile,
		newKeyboard:   keyboard.New,
		newHotkey:     hotkey.New,
		interactive:   term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())),
		tick:          time.Second,
	}
}

func run() {
	os.Exit(newApp().run(os.Args[1:]))
}

func (a *app) run(args []string) int {
	con := console{w: a.out}

	cfg, err := ParseConfig(args, a.out)
	if err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			return 0
		case errors.Is(err, errUsage):
			con.errorf("%v", err)
			return 1
		}
		return 2
	}

	if cfg.Version {
		fmt.Fprintf(a.out, "typir %s\n", version)
		return 0
	}

	initLog(cfg.LogPath)
	defer log.Close()

	if cfg.Doctor {
		return doctor.Run(a.out, doctor.Options{Backend: cfg.Backend, OpBinary: secret.DefaultBinary})
	}

	ctx, stop := shutdown.Context(context.Background())
	defer stop()

	req := cfg.Request()
	kind, err := source.Select(req)
	if err != nil {
		printUsage(a.out)
		return 1
	}

	if kind == source.KindSecret {
		con.info("Reading from 1Password: " + cfg.OpRef)
	}

	resolver := &source.Resolver{Secrets: a.secrets, Clipboard: a.readClipboard, ReadFile: a.readFile}
	res, err := resolver.Resolve(ctx, req)
	if err != nil {
		log.Errorf("resolve %s: %v", kind, err)
		con.errorf("%s", describeSourceError(req, err))
		return 1
	}

	switch res.Source {
	case source.KindSecret:
		con.ok("   Secret retrieved")
	case source.KindClipboard:
		con.info(fmt.Sprintf("Read %d characters from clipboard", payload.Len(res.Text)))
	}

	text := payload.Normalize(res.Text, cfg.NoNewline)
	total := payload.Len(text)

	log.SessionStart(log.Session{
		Version:  version,
		Source:   string(res.Source),
		Chars:    total,
		Backend:  cfg.Backend,
		DryRun:   cfg.DryRun,
		Interval: cfg.Interval,
		Chunk:    cfg.Chunk,
	})

	if cfg.DryRun {
		if err := payload.WriteDryRun(a.out, text); err != nil {
			return 1
		}
		return 0
	}

	return a.typeText(ctx, con, cfg, text, total)
}

func (a *app) typeText(ctx context.Context, con console, cfg Config, text string, total int) int {
	kb, err := a.newKeyboard(cfg.Backend, !cfg.NoFailsafe)
	if err != nil {
		log.Errorf("keyboard init: %v", err)
		con.errorf("could not initialize keyboard backend %q: %v", cfg.Backend, err)
		return 1
	}
	defer kb.Close()

	typeCtx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	if cfg.AbortHotkey {
		hk := a.newHotkey()
		if err := hk.Register(); err != nil {
			log.Warnf("abort hotkey: %v", err)
			con.warnf("abort hotkey unavailable: %v", err)
		} else {
			defer hk.Unregister()
			hotkey.CancelOnPress(typeCtx, hk, cancel)
		}
	}

	fmt.Fprintln(a.out)
	con.info(fmt.Sprintf("Ready to type %d characters", total))
	con.dim(fmt.Sprintf("   Mode: Typing (interval: %s)", cfg.Interval))
	if cfg.Chunk > 0 {
		con.dim(fmt.Sprintf("   Chunking: Every %d chars, %s pause", cfg.Chunk, cfg.ChunkDelay))
	}
	if cfg.AbortHotkey {
		con.dim("   Press " + hotkey.Chord + " to abort")
	}

	cd := &countdown.Countdown{Seconds: cfg.Delay, Failsafe: !cfg.NoFailsafe, Out: a.out, Tick: a.tick}
	if a.interactive {
		err = cd.RunTUI(typeCtx, nil)
	} else {
		err = cd.Run(typeCtx)
	}
	if err != nil {
		reason := abortReason(context.Cause(typeCtx))
		log.TypingAborted(reason, 0, total)
		con.aborted(reason)
		return 1
	}

	ty := &typist.Typist{
		Keyboard:   kb,
		Interval:   cfg.Interval,
		ChunkSize:  cfg.Chunk,
		ChunkDelay: cfg.ChunkDelay,
		Out:        a.out,
		Sleep:      a.sleep,
	}
	start := time.Now()
	stats, err := ty.Type(typeCtx, text)
	if err != nil {
		var abortErr *typist.AbortError
		if errors.As(err, &abortErr) {
			reason := abortReason(abortErr.Cause)
			log.TypingAborted(reason, abortErr.Typed, abortErr.Total)
			con.aborted(reason)
			return 1
		}
		log.Errorf("typing: %v", err)
		con.errorf("%v", err)
		return 1
	}

	log.TypingDone(stats.Typed, stats.Pauses, time.Since(start))
	fmt.Fprintln(a.out)
	con.ok("Done!")
	return 0
}

func initLog(flagPath string) {
	logPath, err := log.ResolveDir(flagPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to resolve log directory: %v\n", err)
		return
	}
	log.SetDir(logPath)
	if err := log.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not init logging: %v\n", err)
	}
}

// abortReason names what stopped typing for the ABORTED line.
func abortReason(cause error) string {
	switch {
	case errors.Is(cause, keyboard.ErrFailsafe):
		return "Mouse moved to corner"
	case errors.Is(cause, hotkey.ErrPressed):
		return hotkey.Chord
	}
	return "Ctrl+C"
}

// describeSourceError turns a resolver error into the message shown to the
// user.
func describeSourceError(req source.Request, err error) string {
	var cliErr *secret.CLIError
	var readErr *source.ReadError
	switch {
	case errors.Is(err, secret.ErrCLINotFound):
		return "1Password CLI (op) not found. Install with: brew install 1password-cli"
	case errors.Is(err, secret.ErrNotSignedIn):
		return "Not signed in to 1Password. Run: op signin"
	case errors.Is(err, secret.ErrSecretNotFound):
		return "Secret not found: " + req.OpRef
	case errors.As(err, &cliErr):
		return cliErr.Error()
	case errors.Is(err, source.ErrClipboardEmpty):
		return "Clipboard is empty"
	case errors.Is(err, source.ErrFileNotFound):
		return fmt.Sprintf("File '%s' not found", req.File)
	case errors.As(err, &readErr):
		switch readErr.Source {
		case source.KindFile:
			return fmt.Sprintf("Could not read file: %v", readErr.Err)
		case source.KindClipboard:
			return fmt.Sprintf("Could not read clipboard: %v", readErr.Err)
		case source.KindSecret:
			return fmt.Sprintf("1Password CLI failed: %v", readErr.Err)
		}
	}
	return err.Error()
}
