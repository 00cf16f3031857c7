package routes

import "fmt"

// Kind distinguishes the outcomes a route can resolve to.
type Kind int

const (
	KindPage Kind = iota
	KindRedirect
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindPage:
		return "page"
	case KindRedirect:
		return "external redirect"
	case KindNotFound:
		return "not found"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// PageID names a locally rendered page.
type PageID string

const (
	PageIndex PageID = "index"
)

// Outcome is what a path resolves to. Build values with Page, ExternalRedirect
// or NotFound; only the field matching Kind is meaningful.
type Outcome struct {
	Kind Kind
	Page PageID
	URL  string
}

// Page renders the named page.
func Page(id PageID) Outcome {
	return Outcome{Kind: KindPage, Page: id}
}

// ExternalRedirect navigates away to url exactly once.
func ExternalRedirect(url string) Outcome {
	return Outcome{Kind: KindRedirect, URL: url}
}

// NotFound is the fallback outcome.
func NotFound() Outcome {
	return Outcome{Kind: KindNotFound}
}

// Target returns the page id or redirect URL, whichever applies.
func (o Outcome) Target() string {
	switch o.Kind {
	case KindPage:
		return string(o.Page)
	case KindRedirect:
		return o.URL
	default:
		return ""
	}
}

func (o Outcome) String() string {
	if t := o.Target(); t != "" {
		return fmt.Sprintf("%s(%s)", o.Kind, t)
	}
	return o.Kind.String()
}
