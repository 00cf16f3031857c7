package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sitectl",
	Short: "Inspect the Actor Kit site's routes and tabs",
	Long: `sitectl is a command-line companion for the Actor Kit site.

Available commands:
  routes     Print the route table
  resolve    Show the outcome for one or more request paths
  tabs       List the selectable tabs of the landing page
  version    Print the version

Use "sitectl [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
