package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tracklab/mapshell/internal/config"
	"github.com/tracklab/mapshell/internal/wsconfig"
	"github.com/tracklab/mapshell/internal/wsport"
)

// newPortCmd creates the port subcommand: resolve the bridge port the same
// way the GUI would and print it, optionally writing ws-config.js too.
// Launch scripts use this to learn which port the shell will pick.
func newPortCmd() *cobra.Command {
	var wsPortFlag string
	var publish bool

	cmd := &cobra.Command{
		Use:   "port [--ws-port=N | N]",
		Short: "Resolve and print the WebSocket bridge port",
		Long: `Resolve the WebSocket bridge port using the same precedence the GUI
shell applies: a --ws-port=N argument, a bare port number, the
TAURI_WS_PORT environment variable, then the default (8765).

With --publish the generated ws-config.js is also written.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}

			// Reconstruct the raw argument shape the resolver expects so
			// malformed values degrade instead of erroring, exactly as in
			// GUI mode.
			resolveArgs := args
			if cmd.Flags().Changed("ws-port") {
				resolveArgs = []string{"--ws-port=" + wsPortFlag}
			}
			port := wsport.ResolveWithDefault(resolveArgs, os.Getenv, cfg.DefaultPort())

			if publish {
				path, err := config.ResolveArtifactPath(wsConfigOut, cfg)
				if err != nil {
					return fmt.Errorf("resolving ws-config path: %w", err)
				}
				if err := wsconfig.Publish(port, time.Now(), path); err != nil {
					// Same contract as the GUI: the artifact is advisory.
					logger.Error().Err(err).Msg("Failed to write ws-config.js")
				} else {
					logger.Info().Str("path", path).Msg("WebSocket config written")
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), port)
			return nil
		},
	}

	cmd.Flags().StringVar(&wsPortFlag, "ws-port", "", "WebSocket bridge port (malformed values fall through)")
	cmd.Flags().BoolVar(&publish, "publish", false, "Also write the ws-config.js artifact")

	return cmd
}
