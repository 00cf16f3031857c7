package showcase_test

import (
	"testing"

	"github.com/nfrund/actorkit-site/internal/showcase"
	"github.com/nfrund/actorkit-site/internal/tabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatures_ClosedSet(t *testing.T) {
	features := showcase.Features()
	entries := showcase.FeatureEntries()
	require.Len(t, features, 6)
	require.Len(t, entries, len(features))

	seen := map[string]bool{}
	for i, f := range features {
		assert.Equal(t, showcase.Feature(i), f)
		assert.False(t, seen[f.Slug()], "slugs must be unique: %s", f.Slug())
		seen[f.Slug()] = true

		parsed, ok := showcase.ParseFeature(f.Slug())
		assert.True(t, ok)
		assert.Equal(t, f, parsed)

		assert.NotEmpty(t, entries[i].Title)
		assert.NotEmpty(t, entries[i].Description)
		assert.NotEmpty(t, entries[i].Body)
	}
}

func TestParseFeature_Unknown(t *testing.T) {
	for _, slug := range []string{"", "nope", "Type-Safety", "7"} {
		_, ok := showcase.ParseFeature(slug)
		assert.False(t, ok, slug)
	}
}

func TestFeatureEntries_StateMachineEmbedsVisualiser(t *testing.T) {
	entries := showcase.FeatureEntries()

	for i, e := range entries {
		if showcase.Feature(i) == showcase.FeatureStateMachine {
			assert.Equal(t, showcase.StatelyEmbedURL, e.Embed)
		} else {
			assert.Empty(t, e.Embed)
		}
	}
}

func TestFeatureEntries_ReturnsCopy(t *testing.T) {
	entries := showcase.FeatureEntries()
	entries[0].Title = "changed"

	assert.Equal(t, "Server-Side Rendering", showcase.FeatureEntries()[0].Title)
}

func TestSnippets(t *testing.T) {
	snippets := showcase.Snippets()
	require.Len(t, snippets, 4)

	var titles []string
	for _, s := range snippets {
		parsed, ok := showcase.ParseSnippet(s.Slug())
		require.True(t, ok)
		assert.Equal(t, s, parsed)
	}
	for _, e := range showcase.SnippetEntries() {
		titles = append(titles, e.Title)
	}
	assert.Equal(t, []string{"Machine", "Server", "Worker", "Client"}, titles)
	assert.Contains(t, showcase.SnippetEntries()[showcase.SnippetMachine].Body, "gameMachine")
}

func TestNewFeatureSelector_StartsAtFirstEntry(t *testing.T) {
	var swapped []showcase.Feature
	sel := showcase.NewFeatureSelector(tabs.OnSwap(func(f showcase.Feature, _ tabs.Entry) {
		swapped = append(swapped, f)
	}))

	assert.Equal(t, showcase.FeatureSSR, sel.Active())
	assert.Equal(t, "Server-Side Rendering", sel.Entry().Title)

	sel.Select(showcase.FeatureTypeSafety)
	assert.Equal(t, []showcase.Feature{showcase.FeatureSSR, showcase.FeatureTypeSafety}, swapped)
}
