// Command settlement runs the HD wallet settlement service and its
// operator tooling.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "settlement",
		Short:         "HD wallet invoice settlement engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path (YAML); env SETTLE_* overrides")

	cmd.AddCommand(
		serveCmd(&configPath),
		sweepCmd(&configPath),
		migrateCmd(&configPath),
		walletCmd(&configPath),
	)
	return cmd
}
