package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/colcon-tools/amentreg/internal/branding"
	"github.com/colcon-tools/amentreg/internal/config"
	"github.com/colcon-tools/amentreg/internal/logging"
	"github.com/colcon-tools/amentreg/internal/registry"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Exit codes returned by ExitCode.
const (
	ExitOK           = 0
	ExitFailure      = 1
	ExitInconsistent = 2
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	configFile string
	verbose    bool

	appFs afero.Fs = afero.NewOsFs()
)

var errWorkspaceNotConfigured = fmt.Errorf("workspace not configured: set %s and %s",
	branding.WorkspaceEnv(), branding.InstallEnv())

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` registers packages in the ament resource index of a colcon
workspace. Run it from a build step: when ` + branding.WorkspaceEnv() + ` and
` + branding.InstallEnv() + ` are both set it installs the package's marker file and
package.xml into the install tree; otherwise it does nothing.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default $"+branding.EnvVar("config")+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// ExitCode maps an error returned by Execute to a process exit code. A
// registration that left the resource index inconsistent gets its own code
// so build tooling can alert on it separately.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case registry.IsInconsistent(err), errors.Is(err, errInconsistentIndex):
		return ExitInconsistent
	default:
		return ExitFailure
	}
}

// loadSettings resolves settings and a logger for cmd.
func loadSettings(cmd *cobra.Command) (*config.Settings, *logrus.Logger, error) {
	path := configFile
	if path == "" {
		path = config.FileFromEnv()
	}

	s, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}

	level, err := logging.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	if verbose {
		level = logrus.DebugLevel
	}

	return s, logging.New(cmd.ErrOrStderr(), level), nil
}

// loadIndex resolves settings and returns the index of the configured install root.
func loadIndex(cmd *cobra.Command) (*registry.Index, error) {
	s, _, err := loadSettings(cmd)
	if err != nil {
		return nil, err
	}
	cfg := s.Registry()
	if !cfg.Enabled() {
		return nil, errWorkspaceNotConfigured
	}
	return registry.NewIndex(appFs, cfg.Layout()), nil
}
