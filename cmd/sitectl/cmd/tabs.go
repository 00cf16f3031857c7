package cmd

import (
	"fmt"

	"github.com/nfrund/actorkit-site/cmd/sitectl/internal/display"
	"github.com/nfrund/actorkit-site/internal/showcase"
	"github.com/nfrund/actorkit-site/internal/tabs"
	"github.com/spf13/cobra"
)

var (
	tabsOutputFormat string
	tabsSelect       string
)

// tabsCmd represents the tabs command
var tabsCmd = &cobra.Command{
	Use:   "tabs [features|code]",
	Short: "List the selectable tabs of the landing page",
	Long: `List the entries of the feature showcase and the code example.

The slug is what the fragment endpoints accept. With --select the listing shows
which entry a request for that slug would mark active; unknown slugs fall back
to the first entry, as the server does.

Examples:
  sitectl tabs
  sitectl tabs features --select type-safety
  sitectl tabs code --format json`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"features", "code"},
	RunE: func(cmd *cobra.Command, args []string) error {
		which := ""
		if len(args) == 1 {
			which = args[0]
		}

		var rows []display.TabRow
		switch which {
		case "features":
			rows = featureRows()
		case "code":
			rows = snippetRows()
		case "":
			rows = append(featureRows(), snippetRows()...)
		default:
			return fmt.Errorf("unknown selector %q: use features or code", which)
		}

		return display.Write(cmd.OutOrStdout(), tabsOutputFormat, display.TabTable{Tabs: rows, Count: len(rows)})
	},
}

func featureRows() []display.TabRow {
	sel := showcase.NewFeatureSelector()
	if f, ok := showcase.ParseFeature(tabsSelect); ok {
		sel.Select(f)
	}
	return tabRows("features", sel.Items())
}

func snippetRows() []display.TabRow {
	sel := showcase.NewSnippetSelector()
	if s, ok := showcase.ParseSnippet(tabsSelect); ok {
		sel.Select(s)
	}
	return tabRows("code", sel.Items())
}

type slugKey interface {
	~int
	Slug() string
}

func tabRows[K slugKey](selector string, items []tabs.Item[K]) []display.TabRow {
	rows := make([]display.TabRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, display.TabRow{
			Selector: selector,
			Index:    int(item.Key),
			Slug:     item.Key.Slug(),
			Title:    item.Entry.Title,
			Active:   item.Active,
		})
	}
	return rows
}

func init() {
	rootCmd.AddCommand(tabsCmd)
	tabsCmd.Flags().StringVarP(&tabsOutputFormat, "format", "f", "table", "Output format (table, json, yaml)")
	tabsCmd.Flags().StringVarP(&tabsSelect, "select", "s", "", "Slug to mark active")
}
