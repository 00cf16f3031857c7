package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// FooterLink is one entry in a footer column.
type FooterLink struct {
	Label string
	URL   string
}

var (
	resourceLinks = []FooterLink{
		{"Documentation", "https://github.com/actor-kit/actor-kit#readme"},
		{"Examples", "https://github.com/actor-kit/actor-kit/tree/main/examples"},
		{"GitHub", "https://github.com/actor-kit/actor-kit"},
		{"npm", "https://www.npmjs.com/package/actor-kit"},
	}
	relatedLinks = []FooterLink{
		{"XState", "https://xstate.js.org/"},
		{"Cloudflare Workers", "https://workers.cloudflare.com/"},
		{"Durable Objects", "https://developers.cloudflare.com/durable-objects/"},
		{"Zod", "https://zod.dev/"},
	}
)

// SiteFooter renders the link columns and the copyright line for year.
func SiteFooter(year int) g.Node {
	return Footer(Class("site-footer"),
		Div(Class("container footer-grid"),
			Div(Class("footer-about"),
				Brand(false),
				P(Class("muted"), g.Text("Actor Kit is a library for running state machines in Cloudflare Workers, leveraging XState for robust state management.")),
				Div(Class("small muted"), g.Text("© "+strconv.Itoa(year)+" Actor Kit. MIT License.")),
			),
			footerColumn("Resources", resourceLinks),
			footerColumn("Related", relatedLinks),
		),
	)
}

func footerColumn(title string, links []FooterLink) g.Node {
	return Div(
		H3(Class("footer-heading"), g.Text(title)),
		Ul(Class("footer-links"),
			g.Map(links, func(l FooterLink) g.Node {
				return Li(ExternalLink(l.URL, "muted", g.Text(l.Label)))
			}),
		),
	)
}
