package cmd

import (
	"context"

	"github.com/nfrund/actorkit-site/cmd/sitectl/internal/display"
	"github.com/nfrund/actorkit-site/internal/redirect"
	"github.com/nfrund/actorkit-site/internal/routes"
	"github.com/spf13/cobra"
)

var resolveOutputFormat string

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve PATH...",
	Short: "Show the outcome for request paths",
	Long: `Resolve each path against the route table, as the server does for a request.

Redirect outcomes are mounted against a recording navigator, so the output
shows how many navigations a real request would trigger.

Examples:
  sitectl resolve /docs
  sitectl resolve / /docs/ /unknown --format json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table := routes.Default()
		results := make([]display.Resolution, 0, len(args))

		for _, path := range args {
			outcome := table.Resolve(path)
			res := display.Resolution{
				Path:    path,
				Outcome: display.OutcomeLabel(outcome.Kind),
				Target:  outcome.Target(),
			}
			if outcome.Kind == routes.KindRedirect {
				rec := &redirect.Recorder{}
				inst := redirect.NewInstance(rec)
				inst.Render(context.Background(), outcome.URL)
				inst.Unmount()
				res.Navigations = len(rec.URLs)
			}
			results = append(results, res)
		}

		return display.Write(cmd.OutOrStdout(), resolveOutputFormat, display.ResolutionTable{Results: results, Count: len(results)})
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().StringVarP(&resolveOutputFormat, "format", "f", "table", "Output format (table, json, yaml)")
}
