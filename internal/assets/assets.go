// Package assets provides the static asset filesystem: the embedded web
// assets by default, or a directory on disk during development.
package assets

import (
	"fmt"
	"io/fs"

	"github.com/spf13/afero"
)

// Root is the directory inside the embedded filesystem holding the assets.
const Root = "static"

// FromEmbed exposes the Root directory of an embedded (or any io/fs)
// filesystem as a read-only afero.Fs.
func FromEmbed(embedded fs.FS) (afero.Fs, error) {
	sub, err := fs.Sub(embedded, Root)
	if err != nil {
		return nil, fmt.Errorf("open embedded %s: %w", Root, err)
	}
	return afero.NewReadOnlyFs(afero.FromIOFS{FS: sub}), nil
}

// FromDir serves assets from dir on disk. Paths cannot escape dir.
func FromDir(dir string) afero.Fs {
	return afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), dir))
}

// New picks the disk directory when dir is set, the embedded assets otherwise.
func New(embedded fs.FS, dir string) (afero.Fs, error) {
	if dir != "" {
		return FromDir(dir), nil
	}
	return FromEmbed(embedded)
}

// IOFS adapts an asset filesystem for echo's StaticFS.
func IOFS(afs afero.Fs) fs.FS {
	return afero.NewIOFS(afs)
}
