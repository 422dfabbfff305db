package registry

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// CreateMarker creates every missing parent of path and then an empty file at
// path. An existing file is truncated.
func CreateMarker(fsys afero.Fs, path string) error {
	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := fsys.Create(path)
	if err != nil {
		return err
	}
	return f.Close()
}
