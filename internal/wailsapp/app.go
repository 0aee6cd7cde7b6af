// Package wailsapp provides the Wails-based shell that hosts the map page.
package wailsapp

import (
	"context"
	"embed"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	"github.com/wailsapp/wails/v2/pkg/options/windows"
	wailsruntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/tracklab/mapshell/internal/config"
	"github.com/tracklab/mapshell/internal/logging"
	"github.com/tracklab/mapshell/internal/version"
	"github.com/tracklab/mapshell/internal/wsconfig"
	"github.com/tracklab/mapshell/internal/wsport"
)

// Assets holds the embedded frontend files, passed in from main package.
var Assets embed.FS

// wailsLogger is the package-level logger for GUI mode.
var wailsLogger *logging.Logger

// App is the main Wails application struct.
// All public methods are exposed to the frontend as callable functions.
type App struct {
	ctx    context.Context
	config *config.Config

	// wsPort is resolved once at start-up; bindings hand it out without
	// re-reading arguments or environment.
	wsPort uint16

	// artifactPath is where ws-config.js is (re)written. Resolved once.
	artifactPath string
}

// NewApp creates a new Wails application instance.
func NewApp(cfg *config.Config, port uint16, artifactPath string) *App {
	return &App{
		config:       cfg,
		wsPort:       port,
		artifactPath: artifactPath,
	}
}

// startup is called when the app starts. The context is saved
// so we can call the Wails runtime methods.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	wailsLogger.Info().Uint16("port", a.wsPort).Msg("Shell started")
}

// domReady fires once the frontend DOM is up. This is the host-ready
// signal that triggers navigation to the map page; using it instead of a
// fixed sleep removes the race between window creation and navigation.
func (a *App) domReady(ctx context.Context) {
	go a.navigateToMap(ctx)
}

// beforeClose is called when the window close is requested.
// Return true to prevent closing.
func (a *App) beforeClose(ctx context.Context) bool {
	return false
}

// shutdown is called at application termination.
func (a *App) shutdown(ctx context.Context) {
	wailsLogger.Info().Msg("Shell shutting down")
}

// navigateToMap points the window at the map page with the resolved port
// as its single query parameter. Best-effort: a failed probe or a failed
// navigation is logged and discarded, never retried.
func (a *App) navigateToMap(ctx context.Context) {
	if a.config.ProbeBridge {
		if err := waitForBridge(ctx, a.wsPort, a.config.ProbeRetries); err != nil {
			wailsLogger.Warn().Err(err).Msg("Bridge not reachable, navigating anyway")
		}
	}

	target := mapTarget(a.config.MapPage, a.wsPort)
	js := fmt.Sprintf("window.location.href = '%s'", target)
	wailsruntime.WindowExecJS(a.ctx, js)
	wailsLogger.Info().Str("target", target).Msg("Navigated to map page")
}

// mapTarget builds the navigation target: the map page with the resolved
// port as its single query parameter.
func mapTarget(page string, port uint16) string {
	return fmt.Sprintf("%s?port=%d", page, port)
}

// Run launches the shell window. args is the raw argument list (without
// the program name) used for port resolution.
func Run(args []string) error {
	wailsLogger = logging.NewLogger("wails")

	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if cfg.Debug || os.Getenv(config.EnvDebug) != "" {
		logging.SetGlobalLevel(zerolog.DebugLevel)
		wailsLogger.Info().Msg("Debug logging enabled")
	} else {
		logging.SetGlobalLevel(zerolog.InfoLevel)
	}

	// Check for display on Linux
	if runtime.GOOS == "linux" {
		if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
			return fmt.Errorf("GUI mode requires a display. No display detected.\n" +
				"DISPLAY and WAYLAND_DISPLAY are not set.\n" +
				"Use 'mapshell port' or 'mapshell dev-bridge' for headless use")
		}
	}

	port := wsport.ResolveWithDefault(args, os.Getenv, cfg.DefaultPort())
	wailsLogger.Info().Uint16("port", port).Msg("Resolved WebSocket port")

	artifactPath, err := config.ResolveArtifactPath("", cfg)
	if err != nil {
		wailsLogger.Error().Err(err).Msg("Could not determine ws-config path")
	} else if err := wsconfig.Publish(port, time.Now(), artifactPath); err != nil {
		// Advisory artifact; the page still gets the port via the URL.
		wailsLogger.Error().Err(err).Msg("Failed to write ws-config.js")
	} else {
		wailsLogger.Info().Str("path", artifactPath).Msg("WebSocket config written")
	}

	app := NewApp(cfg, port, artifactPath)

	windowTitle := fmt.Sprintf("Vehicle Map %s", version.Version)

	err = wails.Run(&options.App{
		Title:     windowTitle,
		Width:     cfg.Width,
		Height:    cfg.Height,
		MinWidth:  640,
		MinHeight: 480,
		AssetServer: &assetserver.Options{
			Assets: Assets,
		},
		BackgroundColour: &options.RGBA{R: 15, G: 23, B: 42, A: 1}, // slate-900, matches the map theme
		OnStartup:        app.startup,
		OnDomReady:       app.domReady,
		OnBeforeClose:    app.beforeClose,
		OnShutdown:       app.shutdown,
		Bind: []interface{}{
			app,
		},
		Mac: &mac.Options{
			About: &mac.AboutInfo{
				Title:   "Vehicle Map",
				Message: fmt.Sprintf("Version %s\n\nDesktop shell for the vehicle tracking map.", version.Version),
			},
		},
		Windows: &windows.Options{
			WebviewIsTransparent: false,
			WindowIsTranslucent:  false,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
		},
	})

	if err != nil {
		return fmt.Errorf("wails application error: %w", err)
	}

	return nil
}
