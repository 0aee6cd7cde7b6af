// Vehicle Map Shell - CLI-only binary (no webview, for headless use)
package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/tracklab/mapshell/internal/cli"
	"github.com/tracklab/mapshell/internal/version"
)

func main() {
	cli.Version = version.Version
	cli.BuildTime = version.BuildTime

	// This is the standalone CLI binary. The GUI lives in the root
	// wails-built binary.
	if slices.Contains(os.Args, "--gui") {
		fmt.Fprintf(os.Stderr, "Error: --gui is not available in the CLI-only binary.\n")
		fmt.Fprintf(os.Stderr, "Use the mapshell GUI binary for the map window.\n")
		os.Exit(1)
	}

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
