package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pathsCmd = &cobra.Command{
	Use:   "paths <package-name>",
	Short: "Print where a package's marker and manifest would be installed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		cfg := s.Registry()
		if !cfg.Enabled() {
			return errWorkspaceNotConfigured
		}

		layout := cfg.Layout()
		fmt.Fprintf(cmd.OutOrStdout(), "marker:   %s\n", layout.MarkerPath(args[0]))
		fmt.Fprintf(cmd.OutOrStdout(), "manifest: %s\n", layout.ManifestPath(args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pathsCmd)
}
