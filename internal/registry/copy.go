package registry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/colcon-tools/amentreg/internal/platform"
	"github.com/spf13/afero"
)

// CopyManifest creates every missing parent of dest and copies src to dest
// byte for byte, replacing any existing file. The destination takes the
// source's permission bits. A failed copy may leave a partial dest behind.
func CopyManifest(fsys afero.Fs, src, dest string) error {
	if err := fsys.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}

	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	srcInfo, err := in.Stat()
	if err != nil {
		return err
	}
	if !srcInfo.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", src)
	}

	out, err := fsys.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	return platform.Chmod(fsys, dest, srcInfo.Mode().Perm())
}
