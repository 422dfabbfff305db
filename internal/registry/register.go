package registry

import (
	"path/filepath"

	"github.com/colcon-tools/amentreg/internal/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Registrar registers packages into the install tree described by a Config.
type Registrar struct {
	cfg Config
	fs  afero.Fs
	log logrus.FieldLogger
}

// Option configures a Registrar.
type Option func(*Registrar)

// WithFs sets the filesystem the Registrar writes to. Defaults to the OS filesystem.
func WithFs(fsys afero.Fs) Option {
	return func(r *Registrar) { r.fs = fsys }
}

// WithLogger sets the logger. Defaults to a logger that discards output.
func WithLogger(l logrus.FieldLogger) Option {
	return func(r *Registrar) { r.log = l }
}

// New returns a Registrar for cfg.
func New(cfg Config, opts ...Option) *Registrar {
	r := &Registrar{
		cfg: cfg,
		fs:  afero.NewOsFs(),
		log: logging.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register installs pkgName's marker and the package.xml found in pkgDir.
//
// When the Config is not enabled it returns OutcomeNoop and a nil error
// without touching the filesystem. Errors are one of *MarkerCreationError,
// *ManifestCopyError or *CleanupError.
func (r *Registrar) Register(pkgName, pkgDir string) (Outcome, error) {
	log := r.log.WithField("package", pkgName)
	if !r.cfg.Enabled() {
		log.Debug("workspace not configured, skipping registration")
		return OutcomeNoop, nil
	}

	layout := r.cfg.Layout()
	marker := layout.MarkerPath(pkgName)
	src := filepath.Join(pkgDir, ManifestFile)
	dest := layout.ManifestPath(pkgName)

	// Phase one: stage the marker and keep its compensation.
	undo, err := r.stageMarker(marker)
	if err != nil {
		return OutcomeRolledBack, &MarkerCreationError{Path: marker, Err: err}
	}
	log.WithField("marker", marker).Debug("marker created")

	// Phase two: commit the manifest, or compensate.
	if err := CopyManifest(r.fs, src, dest); err != nil {
		copyErr := &ManifestCopyError{Src: src, Dest: dest, Err: err}
		log.WithError(err).WithField("marker", marker).Warn("manifest copy failed, removing marker")

		if rmErr := undo(); rmErr != nil {
			log.WithError(rmErr).WithField("marker", marker).Error("marker removal failed")
			return OutcomeInconsistent, &CleanupError{Path: marker, Err: rmErr, Copy: copyErr}
		}
		return OutcomeRolledBack, copyErr
	}
	log.WithField("manifest", dest).Debug("manifest copied")

	return OutcomeRegistered, nil
}

// stageMarker creates the marker and returns the action that removes it.
func (r *Registrar) stageMarker(path string) (func() error, error) {
	if err := CreateMarker(r.fs, path); err != nil {
		return nil, err
	}
	return func() error { return r.fs.Remove(path) }, nil
}

// Register is a convenience wrapper that registers pkgName on the OS
// filesystem and discards the Outcome.
func Register(cfg Config, pkgName, pkgDir string) error {
	_, err := New(cfg).Register(pkgName, pkgDir)
	return err
}
