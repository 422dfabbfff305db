package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/colcon-tools/amentreg/internal/registry"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var listOutput string

var printer = message.NewPrinter(language.English)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List packages registered in the resource index",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "text", "Output format: text, yaml or json")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	switch listOutput {
	case "text", "yaml", "json":
	default:
		return fmt.Errorf("unknown output format %q (want text, yaml or json)", listOutput)
	}

	idx, err := loadIndex(cmd)
	if err != nil {
		return err
	}
	entries, err := idx.List()
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []registry.Entry{}
	}

	out := cmd.OutOrStdout()
	switch listOutput {
	case "json":
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling entries: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	case "yaml":
		data, err := yaml.Marshal(entries)
		if err != nil {
			return fmt.Errorf("marshaling entries: %w", err)
		}
		fmt.Fprint(out, string(data))
		return nil
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, "No packages registered.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMANIFEST")
	for _, e := range entries {
		status := "ok"
		if !e.HasManifest {
			status = "missing"
		}
		fmt.Fprintf(w, "%s\t%s\n", e.Name, status)
	}
	w.Flush()

	fmt.Fprintln(out, printer.Sprintf("\n%d packages registered.", len(entries)))
	return nil
}
