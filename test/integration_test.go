//go:build integration

package test_test

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"typir/clipboard"
)

var testBinary string

func TestMain(m *testing.M) {
	testBinary = os.Getenv("TYPIR_TEST_BIN")
	if testBinary == "" {
		fmt.Fprintln(os.Stderr, "TYPIR_TEST_BIN not set; build typir and point TYPIR_TEST_BIN at it")
		os.Exit(1)
	}
	os.Exit(m.Run())
}

type result struct {
	out    string
	code   int
	logDir string
}

func runTypir(t *testing.T, env []string, args ...string) result {
	t.Helper()
	logDir := t.TempDir()
	cmdArgs := append([]string{"--logpath", logDir}, args...)

	cmd := exec.Command(testBinary, cmdArgs...)
	cmd.Env = append(os.Environ(), env...)

	out, err := cmd.CombinedOutput()
	code := 0
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("typir failed to run: %v", err)
		}
		code = exitErr.ExitCode()
	}
	return result{out: string(out), code: code, logDir: logDir}
}

func readLog(t *testing.T, logDir, filename string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(logDir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return ""
		}
		t.Fatalf("failed to read %s: %v", filename, err)
	}
	return string(data)
}

// fakeOp puts an op script that prints secret on PATH.
func fakeOp(t *testing.T, secret string) []string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake op script needs a POSIX shell")
	}
	dir := t.TempDir()
	script := fmt.Sprintf("#!/bin/sh\nprintf '%%s' '%s'\n", secret)
	if err := os.WriteFile(filepath.Join(dir, "op"), []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return []string{"PATH=" + dir + string(os.PathListSeparator) + os.Getenv("PATH")}
}

func TestVersion(t *testing.T) {
	r := runTypir(t, nil, "--version")
	if r.code != 0 || !strings.HasPrefix(r.out, "typir ") {
		t.Fatalf("code=%d out=%q", r.code, r.out)
	}
}

func TestNoSource(t *testing.T) {
	r := runTypir(t, nil)
	if r.code != 1 {
		t.Errorf("exit code = %d, want 1", r.code)
	}
	if !strings.Contains(r.out, "Usage:") {
		t.Errorf("usage not printed: %q", r.out)
	}
}

func TestDryRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte(strings.Repeat("ab", 200)+"\n\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	r := runTypir(t, nil, path, "--dry-run")
	if r.code != 0 {
		t.Fatalf("exit code = %d\n%s", r.code, r.out)
	}
	if !strings.Contains(r.out, "Would type 401 characters") {
		t.Errorf("output = %q", r.out)
	}
	if !strings.Contains(r.out, "(201 chars omitted)") {
		t.Errorf("output = %q", r.out)
	}

	diag := readLog(t, r.logDir, "diagnostics_log.txt")
	if !strings.Contains(diag, "session_start") {
		t.Error("expected session_start in diagnostics")
	}
	if strings.Contains(diag, "abab") {
		t.Error("payload text leaked into diagnostics")
	}
}

func TestSecretBeatsFile(t *testing.T) {
	env := fakeOp(t, "hunter2")
	r := runTypir(t, env, "--op", "op://vault/item/password", "--dry-run", "does-not-exist.txt")
	if r.code != 0 {
		t.Fatalf("exit code = %d\n%s", r.code, r.out)
	}
	if !strings.Contains(r.out, "hunter2") {
		t.Errorf("secret not previewed: %q", r.out)
	}
}

func TestMissingFile(t *testing.T) {
	r := runTypir(t, nil, "does-not-exist.txt")
	if r.code != 1 {
		t.Errorf("exit code = %d, want 1", r.code)
	}
	if !strings.Contains(r.out, "File 'does-not-exist.txt' not found") {
		t.Errorf("output = %q", r.out)
	}
}

func TestClipboardDryRun(t *testing.T) {
	sentinel := fmt.Sprintf("typir-test-sentinel-%d", time.Now().UnixNano())
	if err := clipboard.Write(sentinel); err != nil {
		t.Skip("clipboard not available")
	}

	r := runTypir(t, nil, "--clipboard", "--dry-run")
	if r.code != 0 {
		t.Fatalf("exit code = %d\n%s", r.code, r.out)
	}
	if !strings.Contains(r.out, sentinel) {
		t.Errorf("clipboard text not previewed: %q", r.out)
	}
}
