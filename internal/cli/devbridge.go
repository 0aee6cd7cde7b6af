package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tracklab/mapshell/internal/devbridge"
	"github.com/tracklab/mapshell/internal/wsport"
)

// newDevBridgeCmd creates the dev-bridge subcommand: a local WebSocket
// bridge so the map page can be developed against live messages without
// the full host application.
func newDevBridgeCmd() *cobra.Command {
	var port uint16

	cmd := &cobra.Command{
		Use:   "dev-bridge",
		Short: "Run a local WebSocket bridge for map page development",
		Long: `Run a local WebSocket bridge on 127.0.0.1 that accepts the map page's
connection and logs its protocol messages (ready, vehicle_clicked, error).

With --port 0 an unused port is picked and printed; pass it to the page
as mapbox.html?port=N or via ws-config.js (mapshell port --publish).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			bindPort := port
			if bindPort == 0 {
				free, err := wsport.FreePort()
				if err != nil {
					return fmt.Errorf("finding a free port: %w", err)
				}
				bindPort = free
			}

			srv := devbridge.NewServer()
			bound, err := srv.Start(rootContext, bindPort)
			if err != nil {
				return err
			}
			defer srv.Stop()

			fmt.Fprintf(cmd.OutOrStdout(), "Bridge listening on ws://127.0.0.1:%d\n", bound)
			fmt.Fprintf(cmd.OutOrStdout(), "Open the map page with ?port=%d, Ctrl+C to stop\n", bound)

			<-rootContext.Done()
			return nil
		},
	}

	cmd.Flags().Uint16Var(&port, "port", wsport.DefaultPort, "Port to listen on (0 picks a free port)")

	return cmd
}
