package display

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/nfrund/actorkit-site/internal/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestOutcomeLabel(t *testing.T) {
	assert.Equal(t, "Page", OutcomeLabel(routes.KindPage))
	assert.Equal(t, "External Redirect", OutcomeLabel(routes.KindRedirect))
	assert.Equal(t, "Not Found", OutcomeLabel(routes.KindNotFound))
}

func TestWrite_Formats(t *testing.T) {
	rows := RouteRows(routes.Default().Entries())
	table := RouteTable{Routes: rows, Count: len(rows)}

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, "table", table))
		out := buf.String()
		assert.Contains(t, out, "PATTERN")
		assert.Contains(t, out, routes.DocsURL)
		assert.Contains(t, out, "Not Found")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, "json", table))
		var decoded RouteTable
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, 5, decoded.Count)
		assert.Equal(t, "*", decoded.Routes[4].Pattern)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, "yaml", table))
		var decoded RouteTable
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, table, decoded)
	})

	t.Run("unknown", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, Write(&buf, "xml", table))
	})
}
