package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/nfrund/actorkit-site/cmd/sitectl/internal/display"
	"github.com/nfrund/actorkit-site/internal/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "sitectl v"+version+"\n", run(t, "version"))
}

func TestRoutes(t *testing.T) {
	out := run(t, "routes", "--format", "table")
	assert.Contains(t, out, "/community")
	assert.Contains(t, out, routes.CommunityURL)
}

func TestResolve_JSON(t *testing.T) {
	out := run(t, "resolve", "/docs/", "/unknown", "/", "--format", "json")

	var res display.ResolutionTable
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Equal(t, 3, res.Count)

	assert.Equal(t, "External Redirect", res.Results[0].Outcome)
	assert.Equal(t, routes.DocsURL, res.Results[0].Target)
	assert.Equal(t, 1, res.Results[0].Navigations)

	assert.Equal(t, "Not Found", res.Results[1].Outcome)
	assert.Zero(t, res.Results[1].Navigations)

	assert.Equal(t, "Page", res.Results[2].Outcome)
	assert.Equal(t, "index", res.Results[2].Target)
}

func TestTabs_Select(t *testing.T) {
	out := run(t, "tabs", "features", "--select", "type-safety", "--format", "json")

	var tabs display.TabTable
	require.NoError(t, json.Unmarshal([]byte(out), &tabs))
	require.Equal(t, 6, tabs.Count)

	active := 0
	for _, row := range tabs.Tabs {
		if row.Active {
			active++
			assert.Equal(t, "type-safety", row.Slug)
		}
	}
	assert.Equal(t, 1, active)
}

func TestTabs_AllSelectors(t *testing.T) {
	out := run(t, "tabs", "--select", "", "--format", "json")

	var tabs display.TabTable
	require.NoError(t, json.Unmarshal([]byte(out), &tabs))
	assert.Equal(t, 10, tabs.Count)
	assert.True(t, tabs.Tabs[0].Active, "first feature is active by default")
	assert.True(t, tabs.Tabs[6].Active, "first snippet is active by default")
}
