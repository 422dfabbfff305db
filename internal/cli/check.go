package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errInconsistentIndex = errors.New("resource index is inconsistent")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report markers that have no installed package.xml",
	Long: `Scan the resource index for markers whose package.xml is missing from the
install tree. Such markers are left behind when a failed registration could
not remove its marker. Exits with code 2 when any are found.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	idx, err := loadIndex(cmd)
	if err != nil {
		return err
	}
	entries, err := idx.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	bad := 0
	for _, e := range entries {
		if e.HasManifest {
			continue
		}
		bad++
		fmt.Fprintf(out, "  ✗ %s: marker without manifest (expected %s)\n", e.Name, e.ManifestPath)
	}

	if bad > 0 {
		return fmt.Errorf("%w: %s", errInconsistentIndex, printer.Sprintf("%d of %d packages lack a manifest", bad, len(entries)))
	}

	fmt.Fprintln(out, printer.Sprintf("✓ Resource index is consistent (%d packages).", len(entries)))
	return nil
}
