// Package log writes the diagnostics log. It records what happened during a
// run (source, sizes, timings, failures) and never the typed text itself.
package log

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	appName  = "typir"
	envPath  = "TYPIR_LOG_PATH"
	diagName = "diagnostics_log.txt"
)

var (
	diagLog  zerolog.Logger
	diagFile *os.File
	logMu    sync.Mutex
	logReady bool
	dir      string
)

func ResolveDir(flagPath string) (string, error) {
	// Priority 1: -logpath flag
	if flagPath != "" {
		return absDir(flagPath)
	}

	// Priority 2: TYPIR_LOG_PATH environment variable
	if p := os.Getenv(envPath); p != "" {
		return absDir(p)
	}

	// Priority 3: Default OS-specific location
	return getDefaultDir()
}

func absDir(p string) (string, error) {
	if filepath.IsAbs(p) {
		return p, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, p), nil
}

func SetDir(d string) {
	dir = d
}

func Dir() string {
	return dir
}

func EnsureDir() error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	return nil
}

func Init() error {
	logMu.Lock()
	defer logMu.Unlock()

	if err := EnsureDir(); err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, diagName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	diagFile = f

	consoleWriter := zerolog.ConsoleWriter{
		Out:        diagFile,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}
	diagLog = zerolog.New(consoleWriter).With().Timestamp().Int("pid", os.Getpid()).Logger()

	logReady = true
	return nil
}

func Close() {
	logMu.Lock()
	defer logMu.Unlock()
	if diagFile != nil {
		diagFile.Close()
		diagFile = nil
	}
	logReady = false
}

func Info(msg string) {
	if logReady {
		diagLog.Info().Msg(msg)
	}
}

func Errorf(format string, args ...any) {
	if logReady {
		diagLog.Error().Msg(fmt.Sprintf(format, args...))
	}
}

func Warnf(format string, args ...any) {
	if logReady {
		diagLog.Warn().Msg(fmt.Sprintf(format, args...))
	}
}

// Session describes one run for the session_start event.
type Session struct {
	Version  string
	Source   string
	Chars    int
	Backend  string
	DryRun   bool
	Interval time.Duration
	Chunk    int
}

func SessionStart(s Session) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("version", s.Version).
		Str("source", s.Source).
		Int("chars", s.Chars).
		Str("backend", s.Backend).
		Bool("dry_run", s.DryRun).
		Dur("interval", s.Interval).
		Int("chunk", s.Chunk).
		Msg("session_start")
}

func TypingDone(chars, pauses int, elapsed time.Duration) {
	if !logReady {
		return
	}
	diagLog.Info().
		Int("chars", chars).
		Int("pauses", pauses).
		Int64("elapsed_ms", elapsed.Milliseconds()).
		Msg("typing_done")
}

func TypingAborted(reason string, typed, total int) {
	if !logReady {
		return
	}
	diagLog.Warn().
		Str("reason", reason).
		Int("typed", typed).
		Int("total", total).
		Msg("typing_aborted")
}
