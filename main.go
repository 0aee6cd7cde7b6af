// Vehicle Map Shell - hosts the web-based vehicle map in a native window.
//
// Mode selection:
// - No args + display available → GUI mode
// - A port argument (--ws-port=N or bare N) → GUI mode with that port
// - Subcommands (port, dev-bridge) or --help/--version → CLI mode
//
// Build with: wails build (for all platforms)
package main

import (
	"embed"
	"fmt"
	"log"
	"os"
	"runtime"
	"slices"
	"strings"

	"github.com/joho/godotenv"

	"github.com/tracklab/mapshell/internal/cli"
	"github.com/tracklab/mapshell/internal/version"
	"github.com/tracklab/mapshell/internal/wailsapp"
)

//go:embed all:frontend
var assets embed.FS

func main() {
	// Propagate version from the single source of truth (internal/version)
	// to the CLI package for help/version output
	cli.Version = version.Version
	cli.BuildTime = version.BuildTime

	// Load .env if present so TAURI_WS_PORT / MAPBOX_TOKEN can be supplied
	// per-checkout during development
	if err := godotenv.Load(); err != nil {
		if os.Getenv("MAPSHELL_DEBUG") != "" {
			log.Printf("No .env file loaded: %v", err)
		}
	}

	if isCLIMode() {
		if err := cli.Execute(); err != nil {
			os.Exit(1)
		}
		return
	}

	// GUI mode - launch the Wails shell.
	// Suppress GTK ibus input method warnings on Linux; the webview does
	// its own input handling.
	if runtime.GOOS == "linux" && os.Getenv("GTK_IM_MODULE") == "" {
		os.Setenv("GTK_IM_MODULE", "none")
	}
	wailsapp.Assets = assets
	if err := wailsapp.Run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// isCLIMode determines whether to run in CLI mode based on arguments and
// environment.
//
// CLI mode when:
// - CLI subcommands are present (port, dev-bridge, completion)
// - CLI flags are present (--help, --version, -h)
// - No display available on Linux
//
// GUI mode when:
// - No arguments and a display is available
// - The only argument is a port (--ws-port=N or a bare number)
func isCLIMode() bool {
	cliPatterns := []string{
		// Subcommands
		"port", "dev-bridge", "completion",
		// Flags
		"--help", "-h", "--version",
	}

	for _, arg := range os.Args[1:] {
		if slices.Contains(cliPatterns, arg) {
			return true
		}
	}

	// A port argument alone means GUI mode; anything else unknown is left
	// for the CLI to reject with a useful message.
	for _, arg := range os.Args[1:] {
		if strings.HasPrefix(arg, "--ws-port=") || isNumeric(arg) {
			continue
		}
		return true
	}

	// Check for display on Linux
	if runtime.GOOS == "linux" {
		if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
			return true
		}
	}

	return false
}

// isNumeric reports whether s is all ASCII digits (a bare port argument).
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
