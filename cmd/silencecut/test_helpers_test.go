package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

const sampleLog = `ffmpeg version 6.1 Copyright (c) 2000-2023 the FFmpeg developers
Input #0, mov,mp4,m4a,3gp,3g2,mj2, from 'clip.mp4':
  Duration: 00:00:10.00, start: 0.000000, bitrate: 1200 kb/s
[silencedetect @ 0x55d5c1c0a2c0] silence_end: 1.500000 | silence_duration: 1.500000
[silencedetect @ 0x55d5c1c0a2c0] silence_start: 4.250000
size=N/A time=00:00:10.00 bitrate=N/A speed= 512x
`

// runCLI executes the root command with stdin and an isolated config path.
func runCLI(t *testing.T, args []string, stdin string) (string, string, error) {
	t.Helper()
	t.Setenv("SILENCECUT_PROFILE", "")
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if !hasFlag(args, "--config") {
		args = append([]string{"--config", filepath.Join(t.TempDir(), "absent.toml")}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func hasFlag(args []string, name string) bool {
	for _, arg := range args {
		if arg == name || strings.HasPrefix(arg, name+"=") {
			return true
		}
	}
	return false
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected %q to contain %q", haystack, needle)
	}
}
