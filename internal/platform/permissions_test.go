package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestChmod(t *testing.T) {
	fsys := afero.NewOsFs()
	path := filepath.Join(t.TempDir(), "package.xml")
	require.NoError(t, os.WriteFile(path, []byte("<package/>"), 0644))

	require.NoError(t, Chmod(fsys, path, 0600))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0600), info.Mode().Perm())
	}
}

func TestChmodMemFs(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/pkg/package.xml", []byte("x"), 0644))

	require.NoError(t, Chmod(fsys, "/pkg/package.xml", 0640))

	if runtime.GOOS != "windows" {
		info, err := fsys.Stat("/pkg/package.xml")
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0640), info.Mode().Perm())
	}
}

func TestChmodMissingFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Chmod is a no-op on Windows")
	}
	err := Chmod(afero.NewMemMapFs(), "/missing", 0644)
	require.Error(t, err)
}
