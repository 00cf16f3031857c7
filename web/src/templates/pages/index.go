package pages

import (
	"github.com/a-h/templ"
	"github.com/nfrund/actorkit-site/web/src/templates/components"
	"github.com/nfrund/actorkit-site/web/src/templates/layouts"
	g "maragu.dev/gomponents"
)

// IndexData carries the request-specific parts of the landing page.
type IndexData struct {
	Meta         layouts.PageMeta
	FeaturePanel g.Node
	CodePanel    g.Node
	Year         int
}

// Index composes the landing page.
func Index(d IndexData) templ.Component {
	return layouts.Page(d.Meta,
		components.SiteHeader(),
		g.El("main",
			components.HeroSection(),
			components.FeaturesSection(d.FeaturePanel),
			components.CodeExampleSection(d.CodePanel),
			components.CloudflareIntegration(),
			components.Testimonials(components.DefaultTestimonials),
			components.CallToAction(),
		),
		components.SiteFooter(d.Year),
	)
}
