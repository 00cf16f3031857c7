package layouts

import (
	"github.com/a-h/templ"
	"github.com/nfrund/actorkit-site/internal/view"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// HTMXScript is the htmx build the tab controls rely on.
const HTMXScript = "https://unpkg.com/htmx.org@2.0.4"

// PageMeta describes the document head of a page.
type PageMeta struct {
	Title       string
	Description string
	BaseURL     string
	Path        string
	// Head holds extra head nodes, e.g. the refresh tag of the redirect page.
	Head []g.Node
}

// Page wraps body in the site document and hands it to the renderer as a templ component.
func Page(meta PageMeta, body ...g.Node) templ.Component {
	description := meta.Description
	if description == "" {
		description = "Actor Kit: state machines for Cloudflare Workers and Durable Objects."
	}
	canonical := CanonicalURL(meta.BaseURL, meta.Path)

	return view.AdaptGomponentToTempl(Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				Meta(Name("description"), Content(description)),
				g.El("title", g.Text(CalculateTitle(meta.Title))),
				g.If(canonical != "", Link(Rel("canonical"), Href(canonical))),
				Link(Rel("stylesheet"), Href("/static/site.css")),
				Script(Src(HTMXScript), Defer()),
				Script(Src("/static/site.js"), Defer()),
				g.Group(meta.Head),
			),
			Body(
				Class("min-h-screen"),
				g.Group(body),
			),
		),
	))
}
