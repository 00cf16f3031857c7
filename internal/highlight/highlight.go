// Package highlight renders source text as syntax-highlighted HTML.
package highlight

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"sync"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultStyle matches the dark code panels of the site.
const DefaultStyle = "github-dark"

// Highlighter turns source text into HTML spans. The result is safe to embed
// inside a <pre><code> element.
type Highlighter interface {
	Highlight(language, source string) (template.HTML, error)
}

// Chroma highlights with chroma using inline styles.
type Chroma struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// NewChroma creates a highlighter for the named style. Unknown styles fall
// back to chroma's default.
func NewChroma(style string) *Chroma {
	return &Chroma{
		style: styles.Get(style),
		formatter: chromahtml.New(
			chromahtml.WithClasses(false),
			chromahtml.PreventSurroundingPre(true),
			chromahtml.TabWidth(2),
		),
	}
}

// Highlight implements Highlighter.
func (c *Chroma) Highlight(language, source string) (template.HTML, error) {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return "", fmt.Errorf("tokenise %s source: %w", language, err)
	}

	var buf bytes.Buffer
	if err := c.formatter.Format(&buf, c.style, iterator); err != nil {
		return "", fmt.Errorf("format %s source: %w", language, err)
	}
	return template.HTML(buf.String()), nil
}

type cacheKey struct {
	language string
	source   string
}

// Cache memoises another Highlighter. Content entries are immutable, so each
// one is highlighted at most once per process.
type Cache struct {
	next    Highlighter
	entries sync.Map
}

// NewCache wraps next with a memoising cache.
func NewCache(next Highlighter) *Cache {
	return &Cache{next: next}
}

// Highlight implements Highlighter.
func (c *Cache) Highlight(language, source string) (template.HTML, error) {
	key := cacheKey{language: language, source: source}
	if v, ok := c.entries.Load(key); ok {
		return v.(template.HTML), nil
	}

	out, err := c.next.Highlight(language, source)
	if err != nil {
		return "", err
	}
	c.entries.Store(key, out)
	return out, nil
}

// OrEscaped highlights source, falling back to escaped plain text if the
// highlighter fails. Highlighting is presentation only and never fails a page.
func OrEscaped(h Highlighter, language, source string) template.HTML {
	if h != nil {
		out, err := h.Highlight(language, source)
		if err == nil {
			return out
		}
		slog.Warn("Syntax highlighting failed, rendering plain text", "language", language, "error", err)
	}
	return template.HTML(template.HTMLEscapeString(source))
}
