package wsconfig

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

var testTime = time.Date(2026, 3, 14, 9, 26, 53, 0, time.Local)

func TestPublishWritesPortAndTimestamp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ws-config.js")

	if err := Publish(9999, testTime, path); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading artifact: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "port: 9999,") {
		t.Errorf("artifact missing port field:\n%s", content)
	}
	if !strings.Contains(content, "timestamp: '2026-03-14 09:26:53'") {
		t.Errorf("artifact missing timestamp field:\n%s", content)
	}
	if !strings.Contains(content, "window.WS_CONFIG") {
		t.Errorf("artifact missing WS_CONFIG global:\n%s", content)
	}
	if !strings.Contains(content, "console.log('[ws-config.js] WebSocket port configured:', 9999)") {
		t.Errorf("artifact missing diagnostic log line:\n%s", content)
	}
}

func TestPublishOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ws-config.js")

	if err := Publish(8765, testTime, path); err != nil {
		t.Fatalf("first Publish failed: %v", err)
	}
	if err := Publish(7000, testTime, path); err != nil {
		t.Fatalf("second Publish failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading artifact: %v", err)
	}
	content := string(data)

	if strings.Contains(content, "8765") {
		t.Error("artifact still contains the old port after overwrite")
	}
	if !strings.Contains(content, "port: 7000,") {
		t.Errorf("artifact missing new port:\n%s", content)
	}
	if strings.Count(content, "window.WS_CONFIG") != 1 {
		t.Error("artifact was appended to instead of truncated")
	}
}

func TestPublishFailureReturnsError(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("directory permissions are not enforced the same way on Windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory write bits")
	}

	dir := t.TempDir()
	if err := os.Chmod(dir, 0500); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	defer os.Chmod(dir, 0700)

	err := Publish(8765, testTime, filepath.Join(dir, "ws-config.js"))
	if err == nil {
		t.Fatal("expected an error writing into a read-only directory")
	}
}

func TestPublishMissingParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "ws-config.js")
	if err := Publish(8765, testTime, path); err == nil {
		t.Fatal("expected an error for an unresolvable parent directory")
	}
}
