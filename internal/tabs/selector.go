// Package tabs implements a selector holding exactly one active entry out of a
// fixed, ordered list.
package tabs

import (
	"fmt"

	"github.com/nfrund/actorkit-site/internal/effect"
)

// Entry is one immutable content record.
type Entry struct {
	Title       string
	Description string
	Body        string

	// Language names the syntax of Body for highlighting.
	Language string
	// Embed, when set, is rendered as an iframe in place of Body.
	Embed string
}

// Item pairs an entry with its key and active flag, for rendering controls.
type Item[K ~int] struct {
	Key    K
	Entry  Entry
	Active bool
}

// Selector keeps one active index into entries. Keys are expected to come from
// a closed enumeration whose values are 0..len(entries)-1.
type Selector[K ~int] struct {
	entries []Entry
	active  K
	swap    *effect.Keyed[K]
}

// Option configures a Selector.
type Option[K ~int] func(*Selector[K])

// OnSwap registers fn to run after the rendered entry changes, including the
// initial render. Re-selecting the active key does not run it.
func OnSwap[K ~int](fn func(K, Entry)) Option[K] {
	return func(s *Selector[K]) {
		s.swap = effect.NewKeyed(func(k K) { fn(k, s.entries[k]) })
	}
}

// Initial makes k the active key before the first commit, so OnSwap only
// sees the entry that is actually rendered.
func Initial[K ~int](k K) Option[K] {
	return func(s *Selector[K]) {
		s.active = k
	}
}

// New creates a selector over entries with the first entry active, unless
// Initial says otherwise. It panics if entries is empty or the initial key is
// out of range.
func New[K ~int](entries []Entry, opts ...Option[K]) *Selector[K] {
	if len(entries) == 0 {
		panic("tabs: selector needs at least one entry")
	}
	s := &Selector[K]{entries: entries}
	for _, opt := range opts {
		opt(s)
	}
	s.checkRange(s.active)
	s.commit()
	return s
}

func (s *Selector[K]) checkRange(k K) {
	if int(k) < 0 || int(k) >= len(s.entries) {
		panic(fmt.Sprintf("tabs: key %d out of range [0,%d)", int(k), len(s.entries)))
	}
}

func (s *Selector[K]) commit() {
	if s.swap != nil {
		s.swap.Commit(s.active)
	}
}

// Select makes k the active key and returns its entry. The most recent call
// wins. A key outside the enumeration panics, as slice indexing does.
func (s *Selector[K]) Select(k K) Entry {
	s.checkRange(k)
	s.active = k
	s.commit()
	return s.entries[k]
}

// Active returns the active key.
func (s *Selector[K]) Active() K {
	return s.active
}

// Entry returns the active entry.
func (s *Selector[K]) Entry() Entry {
	return s.entries[s.active]
}

// IsActive reports whether k is the active key.
func (s *Selector[K]) IsActive(k K) bool {
	return k == s.active
}

// Len returns the number of entries.
func (s *Selector[K]) Len() int {
	return len(s.entries)
}

// Items returns every entry in order with its key and active flag.
func (s *Selector[K]) Items() []Item[K] {
	items := make([]Item[K], len(s.entries))
	for i, e := range s.entries {
		k := K(i)
		items[i] = Item[K]{Key: k, Entry: e, Active: k == s.active}
	}
	return items
}
