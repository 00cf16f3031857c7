package pages

import (
	"github.com/a-h/templ"
	"github.com/nfrund/actorkit-site/internal/redirect"
	"github.com/nfrund/actorkit-site/web/src/templates/components"
	"github.com/nfrund/actorkit-site/web/src/templates/layouts"
)

// NotFound is the page rendered for the wildcard route.
func NotFound(meta layouts.PageMeta, year int) templ.Component {
	if meta.Title == "" {
		meta.Title = "Page not found"
	}
	return layouts.Page(meta,
		components.SiteHeader(),
		components.NotFoundNotice(meta.Path),
		components.SiteFooter(year),
	)
}

// Redirect is the placeholder page of an external redirect. With refresh set
// the page itself performs the navigation.
func Redirect(meta layouts.PageMeta, p redirect.Placeholder, refresh bool) templ.Component {
	if meta.Title == "" {
		meta.Title = "Redirecting"
	}
	if refresh {
		meta.Head = append(meta.Head, components.RefreshMeta(p.URL))
	}
	return layouts.Page(meta, components.Redirecting(p))
}
