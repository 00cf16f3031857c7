package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type useCase struct {
	Title, Detail string
}

var useCases = []useCase{
	{"Multiplayer Games", "Real-time state synchronization across players"},
	{"Collaborative Tools", "Document editing, whiteboards, planning tools"},
	{"IoT Applications", "Device state management at the edge"},
	{"Distributed Systems", "Building global, highly available applications"},
}

// CallToAction closes the page with the "Perfect For" list and a link to the docs.
func CallToAction() g.Node {
	return Section(Class("section section-soft"),
		Div(Class("container"),
			Div(Class("gradient-border"),
				Div(Class("cta-inner grid-2"),
					Div(
						H2(g.Text("Unlock the Full Power of Edge Computing")),
						P(Class("lead muted"), g.Text("Actor Kit provides the missing abstraction layer on top of Durable Objects. Build complex, interactive applications that scale effortlessly on Cloudflare Workers.")),
						Div(Class("hero-actions"),
							A(Href("/docs"), Class("button button-primary button-lg"), g.Text("Get Started"), Icon("arrow-right")),
							A(Href("/docs"), Class("button button-outline button-lg"), g.Text("Read the Docs")),
						),
					),
					Div(Class("card"),
						H3(g.Text("Perfect For:")),
						Ul(Class("checklist"),
							g.Map(useCases, func(u useCase) g.Node {
								return Li(
									Span(Class("check"), g.Text("✓")),
									Div(
										Span(Class("strong"), g.Text(u.Title)),
										P(Class("small muted"), g.Text(u.Detail)),
									),
								)
							}),
						),
					),
				),
			),
		),
	)
}
