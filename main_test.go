package main

import (
	"os"
	"testing"
)

func withArgs(t *testing.T, args []string) {
	t.Helper()
	saved := os.Args
	os.Args = append([]string{"mapshell"}, args...)
	t.Cleanup(func() { os.Args = saved })
}

func TestIsCLIModeSubcommands(t *testing.T) {
	for _, args := range [][]string{
		{"port"},
		{"dev-bridge", "--port", "9000"},
		{"--help"},
		{"--version"},
	} {
		withArgs(t, args)
		if !isCLIMode() {
			t.Errorf("isCLIMode(%v) = false, want true", args)
		}
	}
}

func TestPortArgumentsStayInGUIMode(t *testing.T) {
	if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		t.Skip("no display; headless environments always select CLI mode")
	}
	for _, args := range [][]string{
		{},
		{"--ws-port=9999"},
		{"8765"},
	} {
		withArgs(t, args)
		if isCLIMode() {
			t.Errorf("isCLIMode(%v) = true, want false", args)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	cases := map[string]bool{
		"8765": true,
		"0":    true,
		"":     false,
		"-1":   false,
		"8x65": false,
		"port": false,
	}
	for in, want := range cases {
		if got := isNumeric(in); got != want {
			t.Errorf("isNumeric(%q) = %v, want %v", in, got, want)
		}
	}
}
