package components

import (
	"github.com/nfrund/actorkit-site/internal/redirect"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Redirecting is the transient placeholder shown while the browser leaves for
// an external page. It is not interactive apart from the plain fallback link.
func Redirecting(p redirect.Placeholder) g.Node {
	label := p.Host
	if label == "" {
		label = p.URL
	}
	return Main(Class("redirecting"), g.Attr("aria-live", "polite"),
		Div(Class("container narrow"),
			H1(g.Text("Redirecting…")),
			P(Class("muted"),
				g.Text("Taking you to "),
				A(Href(p.URL), Rel("noopener"), g.Text(label)),
				g.Text("."),
			),
		),
	)
}

// RefreshMeta is the head tag that performs the navigation in client mode.
func RefreshMeta(url string) g.Node {
	return Meta(g.Attr("http-equiv", "refresh"), Content("0; url="+url))
}

// NotFoundNotice is the body of the 404 page.
func NotFoundNotice(path string) g.Node {
	return Main(Class("not-found"),
		Div(Class("container narrow"),
			H1(g.Text("404")),
			P(Class("lead"), g.Text("Oops! Page not found")),
			g.If(path != "", P(Class("muted mono"), g.Text(path))),
			A(Href("/"), Class("button button-primary"), g.Text("Return to Home")),
		),
	)
}
