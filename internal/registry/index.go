package registry

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/afero"
)

// Entry is one package advertised by the resource index.
type Entry struct {
	Name         string `json:"name" yaml:"name"`
	MarkerPath   string `json:"marker" yaml:"marker"`
	ManifestPath string `json:"manifest" yaml:"manifest"`
	HasManifest  bool   `json:"has_manifest" yaml:"has_manifest"`
}

// Index reads the resource index of one install root.
type Index struct {
	fs     afero.Fs
	layout Layout
}

// NewIndex returns an Index over layout on fsys.
func NewIndex(fsys afero.Fs, layout Layout) *Index {
	return &Index{fs: fsys, layout: layout}
}

// List returns the registered packages sorted by name. A missing resource
// index yields no entries. Subdirectories of the index are not markers and
// are skipped.
func (x *Index) List() ([]Entry, error) {
	dir := x.layout.IndexDir()
	infos, err := afero.ReadDir(x.fs, dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading resource index %s: %w", dir, err)
	}

	entries := make([]Entry, 0, len(infos))
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		name := info.Name()
		manifest := x.layout.ManifestPath(name)

		has, err := x.isFile(manifest)
		if err != nil {
			return nil, fmt.Errorf("checking manifest for %s: %w", name, err)
		}

		entries = append(entries, Entry{
			Name:         name,
			MarkerPath:   x.layout.MarkerPath(name),
			ManifestPath: manifest,
			HasManifest:  has,
		})
	}
	return entries, nil
}

// Inconsistent returns the entries whose marker exists without a manifest.
func (x *Index) Inconsistent() ([]Entry, error) {
	entries, err := x.List()
	if err != nil {
		return nil, err
	}

	var bad []Entry
	for _, e := range entries {
		if !e.HasManifest {
			bad = append(bad, e)
		}
	}
	return bad, nil
}

func (x *Index) isFile(path string) (bool, error) {
	info, err := x.fs.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return !info.IsDir(), nil
}
