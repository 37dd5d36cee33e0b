package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/tinysteps/session-service/cmd/http"
	systemcmd "github.com/tinysteps/session-service/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "session-service",
	Short: "Session offering microservice for the TinySteps healthcare platform.",
	Long: `session-service manages a doctor's priced consultation types across the
branches of the TinySteps platform: the session-type catalog, per-branch
session offerings, and cross-branch session transfers.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
