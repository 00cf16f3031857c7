package cmd

import (
	"github.com/nfrund/actorkit-site/cmd/sitectl/internal/display"
	"github.com/nfrund/actorkit-site/internal/routes"
	"github.com/spf13/cobra"
)

var routesOutputFormat string

// routesCmd represents the routes command
var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the route table",
	Long: `Print the site's route table in match order.

The wildcard entry is always last; it receives every path not listed above it.

Examples:
  sitectl routes                 # Human-readable table
  sitectl routes --format json   # JSON with a count
  sitectl routes --format yaml   # YAML`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rows := display.RouteRows(routes.Default().Entries())
		return display.Write(cmd.OutOrStdout(), routesOutputFormat, display.RouteTable{Routes: rows, Count: len(rows)})
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
	routesCmd.Flags().StringVarP(&routesOutputFormat, "format", "f", "table", "Output format (table, json, yaml)")
}
