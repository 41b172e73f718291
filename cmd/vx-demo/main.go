// Command vx-demo runs the counter demo tree headlessly, optionally
// serving the inspector HTTP surface.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vx-demo",
		Short: "Demo driver for the vx component registry",
		Long: `vx-demo mounts a small component tree — a counter with a button
child — and drives it the way a host event loop would: firing the
button's click slot and draining the frame scheduler. With --inspect
it also serves the tree inspector (JSON snapshots, live event stream
over WebSocket, Prometheus metrics).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		runCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("vx-demo %s (%s)\n", version, commit)
		},
	}
}
