package components

import (
	"github.com/nfrund/actorkit-site/internal/routes"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type heroCard struct {
	Icon        string
	Title       string
	Description string
}

var heroHighlights = []heroCard{
	{"workflow", "State Machine Architecture", "Model complex application logic with a predictable, visualizable state machine approach."},
	{"zap", "Edge-Native Performance", "Built from the ground up for Cloudflare Workers with real-time, distributed state management."},
	{"shield", "Type-Safe Operations", "First-class TypeScript support with Zod for runtime validation and type safety."},
}

// HeroSection is the headline block with the three highlight cards.
func HeroSection() g.Node {
	return Section(Class("hero"),
		Div(Class("container hero-inner"),
			H1(Class("hero-title gradient-text"), g.Text("Better State Management for Edge Computing")),
			P(Class("hero-lead"),
				g.Text("Actor Kit is a powerful state machine framework built for "),
				Span(Class("emphasis"), g.Text("Cloudflare Workers")),
				g.Text(", making distributed systems easier to build and maintain."),
			),
			Div(Class("hero-actions"),
				A(Href("/docs"), Class("button button-primary button-lg"), g.Text("Get Started"), Icon("arrow-right")),
				ExternalLink(routes.RepositoryURL, "button button-outline button-lg", g.Text("View on GitHub")),
			),
			Div(Class("hero-cards"),
				g.Map(heroHighlights, func(h heroCard) g.Node {
					return Div(Class("card hero-card"),
						Div(Class("icon-badge"), Icon(h.Icon)),
						H3(g.Text(h.Title)),
						P(Class("muted"), g.Text(h.Description)),
					)
				}),
			),
		),
	)
}
