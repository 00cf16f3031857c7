// Package components holds the sections of the landing page as gomponents nodes.
package components

import (
	"github.com/nfrund/actorkit-site/internal/routes"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type navItem struct {
	Label string
	Path  string
}

var navItems = []navItem{
	{Label: "Documentation", Path: "/docs"},
	{Label: "Examples", Path: "/examples"},
	{Label: "Community", Path: "/community"},
}

// Brand is the gradient word mark, linked to the landing page.
func Brand(withBadge bool) g.Node {
	return A(Href("/"), Class("brand"),
		Span(Class("brand-name"), g.Text("Actor Kit")),
		g.If(withBadge, Span(Class("badge"), g.Text("Beta"))),
	)
}

// SiteHeader is the sticky top bar with navigation to the redirect paths.
func SiteHeader() g.Node {
	return Header(Class("site-header"),
		Div(Class("container header-inner"),
			Div(Class("header-left"),
				Brand(true),
				Nav(Class("header-nav"),
					g.Map(navItems, func(item navItem) g.Node {
						return A(Href(item.Path), Class("nav-link"), g.Text(item.Label))
					}),
				),
			),
			Div(Class("header-right"),
				ExternalLink(routes.RepositoryURL, "nav-link github-link",
					Icon("github"),
					Span(Class("hide-sm"), g.Text("GitHub")),
				),
				A(Href("/docs"), Class("button button-primary"), g.Text("Get Started")),
			),
		),
	)
}

// ExternalLink opens href in a new tab.
func ExternalLink(href, class string, children ...g.Node) g.Node {
	return A(Href(href), Target("_blank"), Rel("noopener noreferrer"), Class(class), g.Group(children))
}

// Icon renders a named icon placeholder; the glyph itself comes from the stylesheet.
func Icon(name string) g.Node {
	return Span(Class("icon icon-"+name), g.Attr("aria-hidden", "true"))
}
