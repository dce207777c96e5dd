package storage

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/c2n2p/portal/web"
	"github.com/spf13/afero"
)

// NewAssetFs returns the filesystem holding the portal's static assets.
// An empty dir selects the assets embedded in the binary; otherwise dir on
// disk is served read-only.
func NewAssetFs(dir string) (afero.Fs, error) {
	if dir == "" {
		sub, err := fs.Sub(web.FS, "static")
		if err != nil {
			return nil, fmt.Errorf("storage: embedded assets: %w", err)
		}
		return afero.FromIOFS{FS: sub}, nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("storage: static dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("storage: static dir %q is not a directory", dir)
	}
	return afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), dir)), nil
}

// HTTPFS adapts an afero filesystem for echo's StaticFS.
func HTTPFS(assets afero.Fs) fs.FS {
	return afero.NewIOFS(assets)
}
