// Package cli provides the command-line interface for mapshell.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tracklab/mapshell/internal/logging"
)

var (
	// Global flags
	cfgFile     string
	wsConfigOut string
	verbose     bool
	debug       bool

	// Global logger
	logger *logging.Logger

	// Global context for signal handling
	rootContext context.Context
	cancelFunc  context.CancelFunc
)

// Version information - set by main package at startup.
// The actual version is defined in internal/version and injected via LDFLAGS.
var (
	Version   = "v1.0.0-dev"
	BuildTime = "unknown"
)

// NewRootCmd creates the root command for CLI mode.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mapshell",
		Short: "Desktop shell for the vehicle tracking map",
		Long: `Vehicle Map Shell ` + Version + ` - Built: ` + BuildTime + `
Hosts the web-based vehicle map in a native window and hands it the
WebSocket bridge port via ws-config.js and a URL parameter.

GUI Mode (default):
  Run with no subcommand (optionally --ws-port=N or a bare port number)
  to open the map window.

CLI Mode:
  Subcommands for scripting: resolve the port, write the config artifact,
  or run a local development bridge.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.NewDefaultCLILogger()
			if verbose || debug {
				logging.SetGlobalLevel(-1) // Debug level (zerolog.DebugLevel)
			}
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&wsConfigOut, "ws-config-out", "", "Path for the generated ws-config.js (overrides config and env)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (shows debug messages)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug output (same as --verbose)")

	rootCmd.Version = Version + " (" + BuildTime + ")"

	return rootCmd
}

// AddCommands registers all subcommands on the root command.
func AddCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(newPortCmd())
	rootCmd.AddCommand(newDevBridgeCmd())
}

// Execute runs the CLI with signal-based cancellation.
func Execute() error {
	rootContext, cancelFunc = context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		for sig := range sigChan {
			if sig != nil {
				fmt.Fprintf(os.Stderr, "\nReceived signal %v, shutting down...\n", sig)
				cancelFunc()
			}
		}
	}()

	rootCmd := NewRootCmd()
	AddCommands(rootCmd)
	err := rootCmd.Execute()

	signal.Stop(sigChan)
	close(sigChan)

	return err
}
