package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/tracklab/mapshell/internal/pathutil"
)

// DefaultConfigPath returns the default location of the shell's TOML config.
//
// Locations:
//   - Windows: %LOCALAPPDATA%\TrackLab\MapShell\config.toml
//   - Unix: ~/.config/mapshell/config.toml
func DefaultConfigPath() string {
	return filepath.Join(configDir(), "config.toml")
}

// LogDirectory returns the directory for shell log files.
func LogDirectory() string {
	return filepath.Join(configDir(), "logs")
}

// EnsureLogDirectory creates the log directory if it doesn't exist.
func EnsureLogDirectory() error {
	return os.MkdirAll(LogDirectory(), 0700)
}

func configDir() string {
	if runtime.GOOS == "windows" {
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return filepath.Join(os.TempDir(), "mapshell")
			}
			localAppData = filepath.Join(homeDir, "AppData", "Local")
		}
		return filepath.Join(localAppData, "TrackLab", "MapShell")
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "mapshell")
		}
		return filepath.Join(homeDir, ".config", "mapshell")
	}
	return filepath.Join(configDir, "mapshell")
}

// DefaultArtifactPath derives the legacy ws-config.js location from the
// running executable: three parent directories up, then src/ws-config.js.
// This matches the development layout where the binary lives in
// <tree>/src-shell/target/release and the page sources in <tree>/src.
// Packaged installs should set ws_config_path or MAPSHELL_WS_CONFIG instead.
func DefaultArtifactPath() (string, error) {
	exePath, err := os.Executable()
	if err != nil {
		return "", err
	}
	exeDir := filepath.Dir(exePath)
	root := filepath.Dir(filepath.Dir(filepath.Dir(exeDir)))
	return filepath.Join(root, "src", "ws-config.js"), nil
}

// ResolveArtifactPath picks the artifact output path once at start-up:
// the explicit flag value, then the configured/env value, then the
// legacy executable-relative default.
func ResolveArtifactPath(flagValue string, cfg *Config) (string, error) {
	if flagValue != "" {
		return pathutil.ResolveAbsolutePath(flagValue)
	}
	if cfg != nil && cfg.ArtifactPath != "" {
		return pathutil.ResolveAbsolutePath(cfg.ArtifactPath)
	}
	return DefaultArtifactPath()
}
