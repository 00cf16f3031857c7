// Package display formats sitectl output as a table, JSON or YAML.
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/nfrund/actorkit-site/internal/routes"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Tabular is output that also knows how to print itself as a table.
type Tabular interface {
	WriteTable(w io.Writer) error
}

// Write prints v in the requested format.
func Write(w io.Writer, format string, v Tabular) error {
	switch format {
	case "", "table":
		return v.WriteTable(w)
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unsupported output format %q: use table, json or yaml", format)
	}
}

var titleCaser = cases.Title(language.English)

// OutcomeLabel is the human-readable name of an outcome kind.
func OutcomeLabel(k routes.Kind) string {
	return titleCaser.String(k.String())
}

// RouteRow is one line of the route table.
type RouteRow struct {
	Pattern string `json:"pattern" yaml:"pattern"`
	Outcome string `json:"outcome" yaml:"outcome"`
	Target  string `json:"target,omitempty" yaml:"target,omitempty"`
}

// RouteTable is the output of "sitectl routes".
type RouteTable struct {
	Routes []RouteRow `json:"routes" yaml:"routes"`
	Count  int        `json:"count" yaml:"count"`
}

// RouteRows converts table entries to display rows.
func RouteRows(entries []routes.Entry) []RouteRow {
	rows := make([]RouteRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, RouteRow{
			Pattern: e.Pattern,
			Outcome: OutcomeLabel(e.Outcome.Kind),
			Target:  e.Outcome.Target(),
		})
	}
	return rows
}

// WriteTable implements Tabular.
func (t RouteTable) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PATTERN\tOUTCOME\tTARGET")
	fmt.Fprintln(tw, "-------\t-------\t------")
	for _, r := range t.Routes {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Pattern, r.Outcome, dash(r.Target))
	}
	return tw.Flush()
}

// Resolution is the outcome of resolving one path.
type Resolution struct {
	Path        string `json:"path" yaml:"path"`
	Outcome     string `json:"outcome" yaml:"outcome"`
	Target      string `json:"target,omitempty" yaml:"target,omitempty"`
	Navigations int    `json:"navigations" yaml:"navigations"`
}

// ResolutionTable is the output of "sitectl resolve".
type ResolutionTable struct {
	Results []Resolution `json:"results" yaml:"results"`
	Count   int          `json:"count" yaml:"count"`
}

// WriteTable implements Tabular.
func (t ResolutionTable) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tOUTCOME\tTARGET\tNAVIGATIONS")
	fmt.Fprintln(tw, "----\t-------\t------\t-----------")
	for _, r := range t.Results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", r.Path, r.Outcome, dash(r.Target), r.Navigations)
	}
	return tw.Flush()
}

// TabRow is one selectable tab.
type TabRow struct {
	Selector string `json:"selector" yaml:"selector"`
	Index    int    `json:"index" yaml:"index"`
	Slug     string `json:"slug" yaml:"slug"`
	Title    string `json:"title" yaml:"title"`
	Active   bool   `json:"active" yaml:"active"`
}

// TabTable is the output of "sitectl tabs".
type TabTable struct {
	Tabs  []TabRow `json:"tabs" yaml:"tabs"`
	Count int      `json:"count" yaml:"count"`
}

// WriteTable implements Tabular.
func (t TabTable) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SELECTOR\tINDEX\tSLUG\tTITLE\tACTIVE")
	fmt.Fprintln(tw, "--------\t-----\t----\t-----\t------")
	for _, r := range t.Tabs {
		active := ""
		if r.Active {
			active = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.Selector, strconv.Itoa(r.Index), r.Slug, r.Title, active)
	}
	return tw.Flush()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
