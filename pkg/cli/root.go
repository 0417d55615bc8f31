// Package cli implements the vatcheck command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Persistent flags available to all subcommands
	jsonOutput bool
	logLevel   string

	// Version is injected during build
	Version = "dev"
)

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "vatcheck",
	Short: "vatcheck validates EU VAT numbers against the VIES service",
	Long: `vatcheck is a thin command-line wrapper around the vies client library.
It performs a single checkVat call against the European Commission's VIES
SOAP service and prints the result.`,
	SilenceUsage:  true,
	SilenceErrors: true, // errors are printed once, in Execute()
}

// Execute runs the root command. Called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results in JSON format")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.Version = Version
}
