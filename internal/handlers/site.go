package handlers

import (
	"html/template"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/actorkit-site/internal/audit"
	"github.com/nfrund/actorkit-site/internal/highlight"
	"github.com/nfrund/actorkit-site/internal/middleware"
	"github.com/nfrund/actorkit-site/internal/redirect"
	"github.com/nfrund/actorkit-site/internal/rendering"
	"github.com/nfrund/actorkit-site/internal/routes"
	"github.com/nfrund/actorkit-site/internal/showcase"
	"github.com/nfrund/actorkit-site/internal/tabs"
	"github.com/nfrund/actorkit-site/web/src/templates/components"
	"github.com/nfrund/actorkit-site/web/src/templates/layouts"
	"github.com/nfrund/actorkit-site/web/src/templates/pages"
	g "maragu.dev/gomponents"
)

// SiteDependencies holds what the site handler needs.
type SiteDependencies struct {
	Table        *routes.Table
	Renderer     rendering.Renderer
	Highlighter  highlight.Highlighter
	Navigator    redirect.Navigator // extra navigator run on every redirect, e.g. audit events
	RedirectMode string
	BaseURL      string
}

// SiteHandler serves every navigable path through the route table, plus the
// tab fragments of the landing page.
type SiteHandler struct {
	table        *routes.Table
	renderer     rendering.Renderer
	highlighter  highlight.Highlighter
	navigator    redirect.Navigator
	redirectMode string
	baseURL      string
	now          func() time.Time
}

// NewSiteHandler creates a SiteHandler. A nil table means routes.Default().
func NewSiteHandler(deps SiteDependencies) *SiteHandler {
	table := deps.Table
	if table == nil {
		table = routes.Default()
	}
	renderer := deps.Renderer
	if renderer == nil {
		renderer = rendering.NewUniversalRenderer()
	}
	return &SiteHandler{
		table:        table,
		renderer:     renderer,
		highlighter:  deps.Highlighter,
		navigator:    deps.Navigator,
		redirectMode: deps.RedirectMode,
		baseURL:      deps.BaseURL,
		now:          time.Now,
	}
}

// Dispatch resolves the request path once and renders the outcome.
func (h *SiteHandler) Dispatch(c echo.Context) error {
	path := c.Request().URL.Path
	outcome := h.table.Resolve(path)
	middleware.FromContext(c.Request().Context()).Debug("Route resolved", "outcome", outcome.String())

	switch outcome.Kind {
	case routes.KindPage:
		if outcome.Page == routes.PageIndex {
			return h.index(c)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "no view for page "+string(outcome.Page))
	case routes.KindRedirect:
		return h.redirect(c, outcome.URL)
	default:
		return h.notFound(c)
	}
}

func (h *SiteHandler) meta(c echo.Context, title string) layouts.PageMeta {
	return layouts.PageMeta{
		Title:   title,
		BaseURL: h.baseURL,
		Path:    routes.Normalize(c.Request().URL.Path),
	}
}

func (h *SiteHandler) index(c echo.Context) error {
	page := pages.Index(pages.IndexData{
		Meta:         h.meta(c, ""),
		FeaturePanel: h.featurePanel(showcase.FeatureSSR),
		CodePanel:    h.codePanel(showcase.SnippetMachine),
		Year:         h.now().Year(),
	})
	return h.renderer.RenderPage(c, http.StatusOK, page)
}

func (h *SiteHandler) notFound(c echo.Context) error {
	return h.renderer.RenderPage(c, http.StatusNotFound, pages.NotFound(h.meta(c, ""), h.now().Year()))
}

// redirect mounts a redirect instance for this request. The instance fires
// its navigation once during Render and departs when the response is done.
func (h *SiteHandler) redirect(c echo.Context, target string) error {
	req := c.Request()
	resp := newResponseNavigator(c, h.redirectMode)
	inst := redirect.NewInstance(redirect.Multi(resp, h.navigator))
	defer inst.Unmount()

	ctx := audit.WithRequest(req.Context(), audit.RequestInfo{
		Path:      req.URL.Path,
		RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
	})
	placeholder := inst.Render(ctx, target)

	middleware.FromContext(req.Context()).Info("Redirecting to external page", "target", target, "status", resp.status)
	return h.renderer.RenderPage(c, resp.status, pages.Redirect(h.meta(c, "Redirecting"), placeholder, resp.refresh))
}

// FeatureFragment renders the feature showcase panel with the requested tab active.
func (h *SiteHandler) FeatureFragment(c echo.Context) error {
	slug, err := h.bindSlug(c)
	if err != nil {
		return err
	}
	f, ok := showcase.ParseFeature(slug)
	if !ok {
		middleware.FromContext(c.Request().Context()).Debug("Unknown feature slug, showing first tab", "slug", slug)
		f = showcase.Features()[0]
	}
	return h.renderer.RenderPage(c, http.StatusOK, h.featurePanel(f))
}

// CodeFragment renders the code example panel with the requested snippet active.
func (h *SiteHandler) CodeFragment(c echo.Context) error {
	slug, err := h.bindSlug(c)
	if err != nil {
		return err
	}
	s, ok := showcase.ParseSnippet(slug)
	if !ok {
		middleware.FromContext(c.Request().Context()).Debug("Unknown snippet slug, showing first tab", "slug", slug)
		s = showcase.Snippets()[0]
	}
	return h.renderer.RenderPage(c, http.StatusOK, h.codePanel(s))
}

func (h *SiteHandler) bindSlug(c echo.Context) (string, error) {
	var req FragmentRequest
	if err := c.Bind(&req); err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "invalid fragment request").SetInternal(err)
	}
	if err := c.Validate(&req); err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "invalid tab identifier").SetInternal(err)
	}
	return req.Slug, nil
}

// featurePanel builds a fresh selector with f already active and renders the
// panel. The swap effect highlights only the entry that ends up on screen.
func (h *SiteHandler) featurePanel(f showcase.Feature) g.Node {
	var code template.HTML
	sel := showcase.NewFeatureSelector(tabs.Initial(f), tabs.OnSwap(func(_ showcase.Feature, e tabs.Entry) {
		if e.Embed == "" {
			code = highlight.OrEscaped(h.highlighter, e.Language, e.Body)
		}
	}))
	return components.FeaturePanel(sel.Items(), sel.Entry(), code)
}

func (h *SiteHandler) codePanel(s showcase.Snippet) g.Node {
	var code template.HTML
	sel := showcase.NewSnippetSelector(tabs.Initial(s), tabs.OnSwap(func(_ showcase.Snippet, e tabs.Entry) {
		code = highlight.OrEscaped(h.highlighter, e.Language, e.Body)
	}))
	return components.CodePanel(sel.Items(), sel.Entry(), code)
}
