// Package routes holds the static route table that maps request paths to
// page renders, external redirects, or the not-found fallback.
package routes

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Wildcard is the catch-all pattern. It must be the last entry of a table.
const Wildcard = "*"

// Entry maps a pattern to an outcome.
type Entry struct {
	Pattern string
	Outcome Outcome
}

// Table is an immutable, ordered route table. Exactly one entry matches any
// path: a static pattern when one is equal to the path, the wildcard otherwise.
type Table struct {
	entries  []Entry
	exact    map[string]Outcome
	fallback Outcome
}

type redirectTarget struct {
	URL string `validate:"required,url,startswith=http"`
}

var targetValidator = validator.New()

// NewTable validates entries and builds a table from them.
func NewTable(entries ...Entry) (*Table, error) {
	t := &Table{
		entries: make([]Entry, 0, len(entries)),
		exact:   make(map[string]Outcome, len(entries)),
	}

	wildcardSeen := false
	for i, entry := range entries {
		if wildcardSeen {
			return nil, fmt.Errorf("entry %d (%q): %w", i, entry.Pattern, ErrWildcardNotLast)
		}
		if err := validateOutcome(entry.Outcome); err != nil {
			return nil, fmt.Errorf("entry %d (%q): %w", i, entry.Pattern, err)
		}

		if entry.Pattern == Wildcard {
			wildcardSeen = true
			t.fallback = entry.Outcome
			t.entries = append(t.entries, entry)
			continue
		}

		if !strings.HasPrefix(entry.Pattern, "/") {
			return nil, fmt.Errorf("entry %d (%q): %w", i, entry.Pattern, ErrInvalidPattern)
		}
		key := Normalize(entry.Pattern)
		if _, dup := t.exact[key]; dup {
			return nil, fmt.Errorf("entry %d (%q): %w", i, entry.Pattern, ErrDuplicatePattern)
		}
		t.exact[key] = entry.Outcome
		t.entries = append(t.entries, Entry{Pattern: key, Outcome: entry.Outcome})
	}

	if !wildcardSeen {
		return nil, ErrMissingWildcard
	}
	return t, nil
}

// MustTable is NewTable for tables known at compile time. It panics on error.
func MustTable(entries ...Entry) *Table {
	t, err := NewTable(entries...)
	if err != nil {
		panic(err)
	}
	return t
}

func validateOutcome(o Outcome) error {
	switch o.Kind {
	case KindPage:
		if o.Page == "" {
			return ErrInvalidOutcome
		}
	case KindRedirect:
		if err := targetValidator.Struct(redirectTarget{URL: o.URL}); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidTarget, o.URL)
		}
	case KindNotFound:
	default:
		return ErrInvalidOutcome
	}
	return nil
}

// Resolve returns the outcome for path. Static patterns are checked first; an
// unmatched path resolves to the wildcard outcome.
func (t *Table) Resolve(path string) Outcome {
	if o, ok := t.exact[Normalize(path)]; ok {
		return o
	}
	return t.fallback
}

// Entries returns a copy of the table in registration order, wildcard last.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Redirects returns the external redirect entries in registration order.
func (t *Table) Redirects() []Entry {
	var out []Entry
	for _, e := range t.entries {
		if e.Outcome.Kind == KindRedirect {
			out = append(out, e)
		}
	}
	return out
}

// Normalize drops a single trailing slash from path. The empty path and "/"
// both normalize to "/".
func Normalize(path string) string {
	if path == "" || path == "/" {
		return "/"
	}
	return strings.TrimSuffix(path, "/")
}
