package cli

import (
	"errors"
	"fmt"

	"github.com/colcon-tools/amentreg/internal/registry"
	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register <package-name> <package-dir>",
	Short: "Register a package in the ament resource index",
	Long: `Create the marker file share/ament_index/resource_index/<package-name> and copy
<package-dir>/package.xml to <package-name>/package.xml under the install root.

Nothing happens when the workspace is not configured. If the copy fails the
marker is removed again; if that removal fails the command exits with code 2.`,
	Args: cobra.ExactArgs(2),
	RunE: runRegister,
}

func init() {
	rootCmd.AddCommand(registerCmd)
}

func runRegister(cmd *cobra.Command, args []string) error {
	name, dir := args[0], args[1]
	if name == "" {
		return errors.New("package name must not be empty")
	}

	s, log, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	cfg := s.Registry()
	r := registry.New(cfg, registry.WithFs(appFs), registry.WithLogger(log))

	outcome, err := r.Register(name, dir)
	if err != nil {
		return err
	}

	if outcome == registry.OutcomeRegistered {
		fmt.Fprintf(cmd.OutOrStdout(), "registered %s in %s\n", name, cfg.Layout().Root())
	}
	return nil
}
