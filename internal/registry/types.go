package registry

import "path/filepath"

const (
	// ManifestFile is the name of the manifest expected in a package directory.
	ManifestFile = "package.xml"

	// ResourceIndexDir is the marker directory, relative to the install root.
	ResourceIndexDir = "share/ament_index/resource_index"
)

// Config holds the two workspace inputs that gate registration. Values are
// used verbatim; an empty field disables registration entirely.
type Config struct {
	WorkspaceRoot string // COLCON_WS_BASE
	InstallBase   string // COLCON_INSTALL_BASE, relative to WorkspaceRoot
}

// Enabled reports whether both inputs are present.
func (c Config) Enabled() bool {
	return c.WorkspaceRoot != "" && c.InstallBase != ""
}

// Layout returns the install tree layout rooted at WorkspaceRoot/InstallBase.
func (c Config) Layout() Layout {
	return NewLayout(filepath.Join(c.WorkspaceRoot, c.InstallBase))
}

// Layout computes destination paths inside one install root.
type Layout struct {
	root string
}

// NewLayout returns a Layout for the given install root.
func NewLayout(root string) Layout {
	return Layout{root: root}
}

// Root returns the install root.
func (l Layout) Root() string { return l.root }

// IndexDir returns <root>/share/ament_index/resource_index.
func (l Layout) IndexDir() string {
	return filepath.Join(l.root, filepath.FromSlash(ResourceIndexDir))
}

// MarkerPath returns the marker file path for pkgName.
func (l Layout) MarkerPath(pkgName string) string {
	return filepath.Join(l.IndexDir(), pkgName)
}

// ManifestPath returns the installed manifest path for pkgName.
func (l Layout) ManifestPath(pkgName string) string {
	return filepath.Join(l.root, pkgName, ManifestFile)
}

// Outcome is the terminal state of one Register call.
type Outcome int

const (
	// OutcomeNoop means the workspace was not configured and nothing was done.
	OutcomeNoop Outcome = iota
	// OutcomeRegistered means both the marker and the manifest are in place.
	OutcomeRegistered
	// OutcomeRolledBack means registration failed and no marker was left.
	OutcomeRolledBack
	// OutcomeInconsistent means the manifest copy failed and the marker could
	// not be removed.
	OutcomeInconsistent
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNoop:
		return "noop"
	case OutcomeRegistered:
		return "registered"
	case OutcomeRolledBack:
		return "rolled-back"
	case OutcomeInconsistent:
		return "inconsistent"
	default:
		return "unknown"
	}
}
