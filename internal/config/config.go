// Package config provides configuration management for the map shell.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/tracklab/mapshell/internal/wsport"
)

// Environment variables recognized at load time.
const (
	EnvMapboxToken  = "MAPBOX_TOKEN"
	EnvArtifactPath = "MAPSHELL_WS_CONFIG"
	EnvDebug        = "MAPSHELL_DEBUG"
)

// Config holds all settings for the shell.
type Config struct {
	// WSPort, when non-zero, replaces the built-in default bridge port.
	// A --ws-port argument or TAURI_WS_PORT still wins.
	WSPort uint16 `toml:"ws_port"`

	// ArtifactPath is where ws-config.js is written. Empty means the
	// legacy executable-relative default (see DefaultArtifactPath).
	ArtifactPath string `toml:"ws_config_path"`

	// MapboxToken is the external map-service credential handed through
	// to the page verbatim. Usually supplied via MAPBOX_TOKEN.
	MapboxToken string `toml:"mapbox_token"`

	// MapPage is the page the window navigates to once the host is ready.
	MapPage string `toml:"map_page"`

	// Window dimensions.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// ProbeBridge controls whether the shell waits for the companion
	// bridge to accept connections before navigating.
	ProbeBridge bool `toml:"probe_bridge"`

	// ProbeRetries is the number of probe attempts before giving up.
	ProbeRetries int `toml:"probe_retries"`

	// Debug enables debug logging.
	Debug bool `toml:"debug"`
}

// defaultConfig returns the built-in defaults.
func defaultConfig() *Config {
	return &Config{
		MapPage:      "mapbox.html",
		Width:        1100,
		Height:       750,
		ProbeBridge:  true,
		ProbeRetries: 3,
	}
}

// Load reads configuration from the TOML file at path (the default
// location when path is empty), then applies environment overrides.
// A missing file is not an error; defaults are used.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if path == "" {
		path = DefaultConfigPath()
	}
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	if v := os.Getenv(wsport.EnvVar); v != "" {
		// Malformed values are ignored, same as in port resolution.
		if p, err := strconv.ParseUint(v, 10, 16); err == nil {
			cfg.WSPort = uint16(p)
		}
	}
	if token := os.Getenv(EnvMapboxToken); token != "" {
		cfg.MapboxToken = token
	}
	if out := os.Getenv(EnvArtifactPath); out != "" {
		cfg.ArtifactPath = out
	}
	if os.Getenv(EnvDebug) != "" {
		cfg.Debug = true
	}

	return cfg, nil
}

// DefaultPort returns the resolution fallback: the configured port when
// set, the built-in default otherwise.
func (c *Config) DefaultPort() uint16 {
	if c.WSPort != 0 {
		return c.WSPort
	}
	return wsport.DefaultPort
}
