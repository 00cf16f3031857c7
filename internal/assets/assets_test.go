package assets

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEmbed_StripsRoot(t *testing.T) {
	embedded := fstest.MapFS{
		"static/site.css": {Data: []byte("body{}")},
	}

	afs, err := New(embedded, "")
	require.NoError(t, err)

	data, err := afero.ReadFile(afs, "site.css")
	require.NoError(t, err)
	assert.Equal(t, "body{}", string(data))

	err = afero.WriteFile(afs, "hack.css", []byte("x"), 0o644)
	assert.Error(t, err, "asset filesystem must be read-only")
}

func TestFromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "site.css"), []byte("h1{}"), 0o644))

	afs, err := New(nil, dir)
	require.NoError(t, err)

	data, err := afero.ReadFile(afs, "/site.css")
	require.NoError(t, err)
	assert.Equal(t, "h1{}", string(data))
}

func TestIOFS_WithMemMapFs(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "css/site.css", []byte("a{}"), 0o644))

	data, err := fs.ReadFile(IOFS(mem), "css/site.css")
	require.NoError(t, err)
	assert.Equal(t, "a{}", string(data))
}
