package highlight_test

import (
	"errors"
	"html/template"
	"strings"
	"testing"

	"github.com/nfrund/actorkit-site/internal/highlight"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChroma_Highlight(t *testing.T) {
	h := highlight.NewChroma(highlight.DefaultStyle)

	out, err := h.Highlight("typescript", `const answer: number = 42;`)
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "<span")
	assert.Contains(t, html, "const")
	assert.Contains(t, html, "42")
	assert.NotContains(t, html, "<pre", "the caller supplies the surrounding pre element")
}

func TestChroma_EscapesMarkup(t *testing.T) {
	h := highlight.NewChroma(highlight.DefaultStyle)

	out, err := h.Highlight("tsx", `const el = <TodoList />;`)
	require.NoError(t, err)

	assert.NotContains(t, string(out), "<TodoList")
	assert.Contains(t, string(out), "&lt;")
}

func TestChroma_UnknownLanguageFallsBack(t *testing.T) {
	h := highlight.NewChroma("no-such-style")

	out, err := h.Highlight("no-such-language", "plain <text>")
	require.NoError(t, err)
	assert.Contains(t, string(out), "plain")
	assert.NotContains(t, string(out), "<text>")
}

type countingHighlighter struct {
	calls int
	err   error
}

func (c *countingHighlighter) Highlight(language, source string) (template.HTML, error) {
	c.calls++
	if c.err != nil {
		return "", c.err
	}
	return template.HTML("<b>" + source + "</b>"), nil
}

func TestCache_HighlightsOncePerEntry(t *testing.T) {
	inner := &countingHighlighter{}
	cache := highlight.NewCache(inner)

	for i := 0; i < 3; i++ {
		out, err := cache.Highlight("go", "x")
		require.NoError(t, err)
		assert.Equal(t, template.HTML("<b>x</b>"), out)
	}
	_, _ = cache.Highlight("ts", "x")

	assert.Equal(t, 2, inner.calls)
}

func TestCache_DoesNotCacheErrors(t *testing.T) {
	inner := &countingHighlighter{err: errors.New("boom")}
	cache := highlight.NewCache(inner)

	_, err := cache.Highlight("go", "x")
	require.Error(t, err)
	_, err = cache.Highlight("go", "x")
	require.Error(t, err)

	assert.Equal(t, 2, inner.calls)
}

func TestOrEscaped(t *testing.T) {
	failing := &countingHighlighter{err: errors.New("boom")}

	out := highlight.OrEscaped(failing, "go", "a < b")
	assert.Equal(t, template.HTML("a &lt; b"), out)

	out = highlight.OrEscaped(nil, "go", "<x>")
	assert.True(t, strings.HasPrefix(string(out), "&lt;"))

	out = highlight.OrEscaped(&countingHighlighter{}, "go", "ok")
	assert.Equal(t, template.HTML("<b>ok</b>"), out)
}
