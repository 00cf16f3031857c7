package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Testimonial is one quote on the landing page.
type Testimonial struct {
	Quote    string
	Author   string
	Role     string
	Initials string
}

// DefaultTestimonials are the quotes shown on the landing page.
var DefaultTestimonials = []Testimonial{
	{
		Quote:    "Actor Kit has transformed how we build state-driven applications on Cloudflare. It feels like it could be an official Cloudflare product - exactly the abstraction layer we needed.",
		Author:   "Sarah Johnson",
		Role:     "Senior Engineer at TechFlow",
		Initials: "SJ",
	},
	{
		Quote:    "This library solves so many challenges we faced with Durable Objects. It's the perfect marriage of XState's powerful state machines with Cloudflare's global infrastructure.",
		Author:   "Michael Chen",
		Role:     "Lead Developer at EdgeWorks",
		Initials: "MC",
	},
	{
		Quote:    "We moved our multiplayer game from a traditional backend to Cloudflare Workers with Actor Kit and saw a 40% reduction in latency globally. This project deserves more visibility.",
		Author:   "Alex Rivera",
		Role:     "CTO at GameStream",
		Initials: "AR",
	},
}

// Testimonials renders the quote cards.
func Testimonials(quotes []Testimonial) g.Node {
	return Section(Class("section"),
		Div(Class("container"),
			Div(Class("section-intro"),
				H2(g.Text("Loved by Edge Developers")),
				P(Class("lead muted"), g.Text("Actor Kit is being used to build production applications with real-time, distributed state.")),
			),
			Div(Class("grid-3"),
				g.Map(quotes, func(t Testimonial) g.Node {
					return Div(Class("card testimonial"),
						g.El("blockquote", g.Text("\""+t.Quote+"\"")),
						Div(Class("author"),
							Span(Class("avatar"), g.Text(t.Initials)),
							Div(
								Div(Class("strong"), g.Text(t.Author)),
								Div(Class("small muted"), g.Text(t.Role)),
							),
						),
					)
				}),
			),
		),
	)
}
