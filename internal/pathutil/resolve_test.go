package pathutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveAbsolutePathEmpty(t *testing.T) {
	got, err := ResolveAbsolutePath("")
	if err != nil {
		t.Fatalf("ResolveAbsolutePath(\"\") failed: %v", err)
	}
	wd, _ := os.Getwd()
	if got != wd {
		t.Errorf("expected working directory %s, got %s", wd, got)
	}
}

func TestResolveAbsolutePathTilde(t *testing.T) {
	got, err := ResolveAbsolutePath("~/ws-config.js")
	if err != nil {
		t.Fatalf("ResolveAbsolutePath failed: %v", err)
	}
	home, _ := os.UserHomeDir()
	if !filepath.IsAbs(got) {
		t.Errorf("expected absolute path, got %s", got)
	}
	if filepath.Dir(got) != home && filepath.Dir(got) != mustEval(home) {
		t.Errorf("expected path under home %s, got %s", home, got)
	}
}

func TestResolveAbsolutePathNonExistent(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "does", "not", "exist", "ws-config.js")

	got, err := ResolveAbsolutePath(target)
	if err != nil {
		t.Fatalf("ResolveAbsolutePath failed: %v", err)
	}
	if filepath.Base(got) != "ws-config.js" {
		t.Errorf("expected path ending in ws-config.js, got %s", got)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("expected absolute path, got %s", got)
	}
}

func mustEval(p string) string {
	resolved, err := filepath.EvalSymlinks(p)
	if err != nil {
		return p
	}
	return resolved
}
