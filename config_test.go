package main

import (
	"bytes"
	"errors"
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"typir/keyboard"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(nil, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Delay)
	require.Equal(t, time.Duration(0), cfg.Interval)
	require.Equal(t, 0, cfg.Chunk)
	require.Equal(t, time.Second, cfg.ChunkDelay)
	require.Equal(t, keyboard.BackendRobotgo, cfg.Backend)
	require.False(t, cfg.NoNewline)
	require.False(t, cfg.DryRun)
	require.Empty(t, cfg.File)
}

func TestParseConfigFlagsAfterFile(t *testing.T) {
	cfg, err := ParseConfig([]string{"encoded.b64", "--chunk", "500", "--chunk-delay", "2", "-i", "0.05"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, "encoded.b64", cfg.File)
	require.Equal(t, 500, cfg.Chunk)
	require.Equal(t, 2*time.Second, cfg.ChunkDelay)
	require.Equal(t, 50*time.Millisecond, cfg.Interval)
}

func TestParseConfigShortAliases(t *testing.T) {
	cfg, err := ParseConfig([]string{"-t", "abc", "-o", "op://v/i/f", "-c", "-d", "3", "-n"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, "abc", cfg.Text)
	require.Equal(t, "op://v/i/f", cfg.OpRef)
	require.True(t, cfg.Clipboard)
	require.Equal(t, 3, cfg.Delay)
	require.True(t, cfg.NoNewline)
}

func TestParseConfigRequest(t *testing.T) {
	cfg, err := ParseConfig([]string{"--op", "op://Work/VDI/password", "--op-account", "work", "file.txt"}, &bytes.Buffer{})
	require.NoError(t, err)

	req := cfg.Request()
	require.Equal(t, "op://Work/VDI/password", req.OpRef)
	require.Equal(t, "work", req.OpAccount)
	require.Equal(t, "file.txt", req.File)
}

func TestParseConfigHelp(t *testing.T) {
	var out bytes.Buffer
	_, err := ParseConfig([]string{"--help"}, &out)
	require.True(t, errors.Is(err, flag.ErrHelp))
	require.Contains(t, out.String(), "typir [flags] [file]")
	require.Contains(t, out.String(), "--op-account")
}

func TestParseConfigUnknownFlag(t *testing.T) {
	_, err := ParseConfig([]string{"--bogus"}, &bytes.Buffer{})
	require.Error(t, err)
	require.False(t, errors.Is(err, errUsage))
}

func TestParseConfigInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"negative delay", []string{"--delay", "-1"}},
		{"negative interval", []string{"--interval", "-0.5"}},
		{"negative chunk", []string{"--chunk", "-10"}},
		{"negative chunk delay", []string{"--chunk-delay", "-1"}},
		{"unknown backend", []string{"--backend", "xdotool"}},
		{"two files", []string{"a.txt", "b.txt"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig(tt.args, &bytes.Buffer{})
			require.ErrorIs(t, err, errUsage)
		})
	}
}
