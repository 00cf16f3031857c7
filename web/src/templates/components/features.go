package components

import (
	"html/template"

	"github.com/nfrund/actorkit-site/internal/showcase"
	"github.com/nfrund/actorkit-site/internal/tabs"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// FeaturesPanelID is the swap target of the feature tabs.
const FeaturesPanelID = "features-panel"

// FeatureFragmentURL is the htmx endpoint that renders the panel for f.
func FeatureFragmentURL(f showcase.Feature) string {
	return "/fragments/features/" + f.Slug()
}

// FeaturesSection is the "Built for Cloudflare Workers" section around panel.
func FeaturesSection(panel g.Node) g.Node {
	return Section(ID("features"), Class("section section-tinted"),
		Div(Class("container"),
			Div(Class("section-intro"),
				H2(g.Text("Built for "), Span(Class("accent"), g.Text("Cloudflare Workers"))),
				P(Class("lead muted"), g.Text("Actor Kit combines XState with Durable Objects to create a powerful framework for building distributed applications.")),
			),
			panel,
		),
	)
}

// FeaturePanel renders the tab list and the active feature. code is the
// highlighted body of the active entry and is ignored for embeds.
func FeaturePanel(items []tabs.Item[showcase.Feature], active tabs.Entry, code template.HTML) g.Node {
	var body g.Node
	if active.Embed != "" {
		body = embedFrame(active)
	} else {
		body = codeBlock("feature-code", active, code)
	}

	return Div(ID(FeaturesPanelID), Class("feature-panel"),
		Div(Class("feature-tabs"), g.Attr("role", "tablist"),
			g.Map(items, func(item tabs.Item[showcase.Feature]) g.Node {
				return tabButton(FeaturesPanelID, FeatureFragmentURL(item.Key), item.Active,
					Icon(item.Key.Icon()),
					Div(
						Div(Class("tab-title"), g.Text(item.Entry.Title)),
						Div(Class("tab-description"), g.Text(item.Entry.Description)),
					),
				)
			}),
		),
		Div(Class("feature-body"), g.Attr("role", "tabpanel"), body),
	)
}
