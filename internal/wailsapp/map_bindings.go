// Package wailsapp provides map-configuration Wails bindings.
package wailsapp

import (
	"time"

	"github.com/tracklab/mapshell/internal/version"
	"github.com/tracklab/mapshell/internal/wsconfig"
)

// MapConfigDTO is the structured record the map page fetches at load time.
type MapConfigDTO struct {
	MapboxToken string `json:"mapboxToken,omitempty"`
	WSPort      int    `json:"wsPort"`
}

// AppInfoDTO contains application version information.
type AppInfoDTO struct {
	Version   string `json:"version"`
	BuildTime string `json:"buildTime"`
}

// GetWSPort returns the resolved bridge port and republishes the
// ws-config.js artifact so a reloading page always finds fresh values.
// A failed write is logged and swallowed; the port is returned regardless.
func (a *App) GetWSPort() int {
	a.republish()
	return int(a.wsPort)
}

// GetMapConfig returns the map-service credential and bridge port.
func (a *App) GetMapConfig() MapConfigDTO {
	a.republish()
	return MapConfigDTO{
		MapboxToken: a.config.MapboxToken,
		WSPort:      int(a.wsPort),
	}
}

// GetAppInfo returns version and build time.
func (a *App) GetAppInfo() AppInfoDTO {
	return AppInfoDTO{
		Version:   version.Version,
		BuildTime: version.BuildTime,
	}
}

func (a *App) republish() {
	if a.artifactPath == "" {
		return
	}
	if err := wsconfig.Publish(a.wsPort, time.Now(), a.artifactPath); err != nil {
		wailsLogger.Error().Err(err).Msg("Failed to rewrite ws-config.js")
	}
}
