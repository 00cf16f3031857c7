package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// CloudflareDocsURL is the target of the integration section's call to action.
const CloudflareDocsURL = "https://developers.cloudflare.com/durable-objects/"

type benefit struct {
	Title, Detail string
}

var cloudflareBenefits = []benefit{
	{"Globally Distributed State", "Manage application state across Cloudflare's 300+ locations worldwide"},
	{"Low Latency Interactions", "Built for Durable Objects' actor model, maintaining state close to users"},
	{"Native Worker Integration", "Seamlessly integrates with Cloudflare Workers' existing tooling"},
	{"Modern Developer Experience", "TypeScript-first with full framework support for Next.js, Remix and more"},
}

const architectureDiagram = `┌─────────────────────────────────────────┐
│           User Browser                   │
│  ┌──────────────────┐  ┌───────────────┐ │
│  │  React Components │  │ Actor Kit     │ │
│  │  useSelector,     │  │ Client        │ │
│  │  useSend          │<─┤               │ │
│  └──────────────────┘  └───────────────┘ │
└──────────────┬──────────────────┬────────┘
               │                  │
               ▼                  ▼
┌─────────────────────────────────────────┐
│           Cloudflare Edge               │
│  ┌──────────────────┐  ┌───────────────┐ │
│  │ Actor Kit Router │─>│ Actor Server  │ │
│  │                  │  │ (Durable Obj) │ │
│  └──────────────────┘  └───────────────┘ │
└─────────────────────────────────────────┘`

// CloudflareIntegration explains the Workers integration next to an architecture diagram.
func CloudflareIntegration() g.Node {
	return Section(Class("section section-gradient"),
		Div(Class("container split"),
			Div(Class("split-half"),
				Div(Class("pill"), Span(Class("dot")), Span(g.Text("Perfect for Cloudflare Workers"))),
				H2(g.Text("Built From the Ground Up for Cloudflare's Edge Network")),
				P(Class("lead muted"), g.Text("Actor Kit is specifically designed to work seamlessly with Cloudflare Workers and Durable Objects, providing a powerful abstraction for sophisticated stateful applications.")),
				Ul(Class("checklist"),
					g.Map(cloudflareBenefits, func(b benefit) g.Node {
						return Li(
							Icon("check-circle"),
							Div(
								Span(Class("strong"), g.Text(b.Title)),
								P(Class("small muted"), g.Text(b.Detail)),
							),
						)
					}),
				),
				ExternalLink(CloudflareDocsURL, "button button-blue",
					g.Text("View Cloudflare Documentation"), Icon("arrow-right"),
				),
			),
			Div(Class("split-half"),
				Div(Class("card diagram-card"),
					Div(Class("diagram-title"), Span(Class("dot")), H3(g.Text("Cloudflare Integration Diagram"))),
					Pre(Class("code-block diagram"), g.Text(architectureDiagram)),
					P(Class("small muted"), g.Text("Actor Kit leverages Cloudflare's global network to provide real-time state synchronization with minimal latency, perfect for interactive applications requiring state management at the edge.")),
				),
			),
		),
	)
}
