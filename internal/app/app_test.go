package app

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/nfrund/actorkit-site/internal/config"
	"github.com/nfrund/actorkit-site/internal/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestNew_WiresServerAndAudit(t *testing.T) {
	var logs lockedBuffer
	original := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	t.Cleanup(func() { slog.SetDefault(original) })

	cfg := &config.Config{
		Addr:            ":0",
		LogFormat:       "text",
		LogLevel:        "info",
		RedirectMode:    config.RedirectModeHTTP,
		RateLimit:       20,
		ShutdownTimeout: time.Second,
	}
	static := fstest.MapFS{"static/site.css": {Data: []byte(".hero{}")}}

	a, err := New(cfg, static)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	a.Server.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/examples", nil))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, routes.ExamplesURL, rec.Header().Get("Location"))

	rec = httptest.NewRecorder()
	a.Server.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/site.css", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ".hero{}", rec.Body.String())

	assert.Eventually(t, func() bool {
		out := logs.String()
		return strings.Contains(out, "External navigation") && strings.Contains(out, "path=/examples")
	}, 2*time.Second, 10*time.Millisecond, "audit subscriber should log the navigation")

	require.NoError(t, a.Shutdown())
}

func TestNew_StaticDirOverridesEmbed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "site.css"), []byte("/* disk */"), 0o644))

	cfg := &config.Config{
		Addr:            ":0",
		RedirectMode:    config.RedirectModeHTTP,
		StaticDir:       dir,
		ShutdownTimeout: time.Second,
	}
	a, err := New(cfg, fstest.MapFS{"static/site.css": {Data: []byte("/* embed */")}})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Shutdown() })

	rec := httptest.NewRecorder()
	a.Server.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/site.css", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/* disk */", rec.Body.String())
}
