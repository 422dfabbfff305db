package registry

import (
	"errors"
	"fmt"
)

// MarkerCreationError reports that the marker file could not be created.
// Nothing was left in the resource index.
type MarkerCreationError struct {
	Path string
	Err  error
}

func (e *MarkerCreationError) Error() string {
	return fmt.Sprintf("could not create marker file in %s: %v", e.Path, e.Err)
}

func (e *MarkerCreationError) Unwrap() error { return e.Err }

// ManifestCopyError reports that package.xml could not be copied. The marker
// created before the copy has already been removed.
type ManifestCopyError struct {
	Src  string
	Dest string
	Err  error
}

func (e *ManifestCopyError) Error() string {
	return fmt.Sprintf("failed to copy %s to %s: %v", e.Src, e.Dest, e.Err)
}

func (e *ManifestCopyError) Unwrap() error { return e.Err }

// CleanupError reports that the manifest copy failed and the marker at Path
// could not be removed afterwards. The resource index now advertises a
// package without a manifest.
//
// Unwrap returns only the removal cause, so errors.As never matches a
// CleanupError as a *ManifestCopyError. The copy failure is kept in Copy.
type CleanupError struct {
	Path string
	Err  error
	Copy *ManifestCopyError
}

func (e *CleanupError) Error() string {
	msg := fmt.Sprintf("could not remove marker file %s: %v (resource index left inconsistent)", e.Path, e.Err)
	if e.Copy != nil {
		msg += "; " + e.Copy.Error()
	}
	return msg
}

func (e *CleanupError) Unwrap() error { return e.Err }

// IsInconsistent reports whether err leaves a marker on disk without its manifest.
func IsInconsistent(err error) bool {
	var ce *CleanupError
	return errors.As(err, &ce)
}
