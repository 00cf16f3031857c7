package handlers

import (
	"encoding/json"
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/actorkit-site/internal/config"
	"github.com/nfrund/actorkit-site/internal/highlight"
	"github.com/nfrund/actorkit-site/internal/redirect"
	"github.com/nfrund/actorkit-site/internal/routes"
	"github.com/nfrund/actorkit-site/internal/showcase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T, mode string) (*echo.Echo, *redirect.Recorder) {
	t.Helper()
	recorder := &redirect.Recorder{}
	h := NewSiteHandler(SiteDependencies{
		Highlighter:  highlight.NewCache(highlight.NewChroma(highlight.DefaultStyle)),
		Navigator:    recorder,
		RedirectMode: mode,
	})

	e := echo.New()
	e.Validator = NewValidator()
	e.GET("/health", Health)
	e.GET("/fragments/features/:slug", h.FeatureFragment)
	e.GET("/fragments/code/:slug", h.CodeFragment)
	e.Match([]string{http.MethodGet, http.MethodHead}, "/*", h.Dispatch)
	return e, recorder
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func activeTab(fragmentURL string) string {
	return `aria-selected="true" hx-get="` + fragmentURL + `"`
}

func TestDispatch_Index(t *testing.T) {
	e, navs := newTestEcho(t, config.RedirectModeHTTP)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Better State Management for Edge Computing")
	assert.Contains(t, body, activeTab("/fragments/features/server-side-rendering"))
	assert.Contains(t, body, activeTab("/fragments/code/machine"))
	// One active tab per selector.
	assert.Equal(t, 2, strings.Count(body, `aria-selected="true"`))
	assert.Empty(t, navs.URLs)
}

func TestDispatch_Redirects(t *testing.T) {
	tests := []struct {
		path   string
		target string
	}{
		{"/docs", routes.DocsURL},
		{"/docs/", routes.DocsURL},
		{"/examples", routes.ExamplesURL},
		{"/community", routes.CommunityURL},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			e, navs := newTestEcho(t, config.RedirectModeHTTP)

			rec := serve(e, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, tt.target, rec.Header().Get(echo.HeaderLocation))
			assert.Contains(t, rec.Body.String(), "Redirecting…")
			assert.Equal(t, []string{tt.target}, navs.URLs, "exactly one navigation")
		})
	}
}

func TestDispatch_RedirectHTMX(t *testing.T) {
	e, navs := newTestEcho(t, config.RedirectModeHTTP)

	req := httptest.NewRequest(http.MethodGet, "/docs", nil)
	req.Header.Set(HeaderHXRequest, "true")
	rec := serve(e, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, routes.DocsURL, rec.Header().Get(HeaderHXRedirect))
	assert.Empty(t, rec.Header().Get(echo.HeaderLocation))
	assert.Equal(t, []string{routes.DocsURL}, navs.URLs)
}

func TestDispatch_RedirectClientMode(t *testing.T) {
	e, navs := newTestEcho(t, config.RedirectModeClient)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/community", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get(echo.HeaderLocation))
	assert.Contains(t, rec.Body.String(), `http-equiv="refresh"`)
	assert.Contains(t, rec.Body.String(), routes.CommunityURL)
	assert.Equal(t, []string{routes.CommunityURL}, navs.URLs)
}

func TestDispatch_NotFound(t *testing.T) {
	for _, path := range []string{"/nope", "/unknown", "/docs/extra", "/fragments"} {
		t.Run(path, func(t *testing.T) {
			e, navs := newTestEcho(t, config.RedirectModeHTTP)

			rec := serve(e, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Contains(t, rec.Body.String(), "Oops! Page not found")
			assert.Empty(t, navs.URLs, "not found must not navigate")
		})
	}
}

func TestFeatureFragment(t *testing.T) {
	e, _ := newTestEcho(t, config.RedirectModeHTTP)

	t.Run("selected tab is the only active one", func(t *testing.T) {
		rec := serve(e, httptest.NewRequest(http.MethodGet, "/fragments/features/type-safety", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Equal(t, 1, strings.Count(body, `aria-selected="true"`))
		assert.Contains(t, body, activeTab("/fragments/features/type-safety"))
		assert.NotContains(t, body, "<html", "fragment must not include the layout")
	})

	t.Run("state machine shows the visualiser", func(t *testing.T) {
		rec := serve(e, httptest.NewRequest(http.MethodGet, "/fragments/features/state-machine-logic", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "<iframe")
	})

	t.Run("unknown slug falls back to the first tab", func(t *testing.T) {
		rec := serve(e, httptest.NewRequest(http.MethodGet, "/fragments/features/teleportation", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), activeTab("/fragments/features/server-side-rendering"))
	})

	t.Run("oversized slug is rejected", func(t *testing.T) {
		rec := serve(e, httptest.NewRequest(http.MethodGet, "/fragments/features/"+strings.Repeat("x", 65), nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCodeFragment(t *testing.T) {
	e, _ := newTestEcho(t, config.RedirectModeHTTP)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/fragments/code/client", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Equal(t, 1, strings.Count(body, `aria-selected="true"`))
	assert.Contains(t, body, activeTab("/fragments/code/client"))
	assert.Contains(t, body, "GameLobby.tsx")
}

type countingHighlighter struct {
	sources []string
}

func (c *countingHighlighter) Highlight(_, source string) (template.HTML, error) {
	c.sources = append(c.sources, source)
	return template.HTML(template.HTMLEscapeString(source)), nil
}

func TestFragments_HighlightOnlyRenderedEntry(t *testing.T) {
	counter := &countingHighlighter{}
	h := NewSiteHandler(SiteDependencies{Highlighter: counter})

	e := echo.New()
	e.Validator = NewValidator()
	e.GET("/fragments/code/:slug", h.CodeFragment)
	e.GET("/fragments/features/:slug", h.FeatureFragment)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/fragments/code/server", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, counter.sources, 1)
	assert.Equal(t, showcase.SnippetEntries()[showcase.SnippetServer].Body, counter.sources[0])

	counter.sources = nil
	rec = serve(e, httptest.NewRequest(http.MethodGet, "/fragments/features/type-safety", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, counter.sources, 1)
	assert.Equal(t, showcase.FeatureEntries()[showcase.FeatureTypeSafety].Body, counter.sources[0])
}

func TestHealth(t *testing.T) {
	e, _ := newTestEcho(t, config.RedirectModeHTTP)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}
