package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/scaffold2dev/scaffold2dev/internal/catalog"
	"github.com/spf13/cobra"
)

var (
	listLanguage string
	listAll      bool
	listJSON     bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available templates",
	Long:  `List the languages and templates the wizard offers.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listLanguage, "language", "", "Filter by language (rust, python)")
	listCmd.Flags().BoolVar(&listAll, "all", false, "Include templates not offered by the wizard")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents a template for display.
type listEntry struct {
	Language string `json:"language"`
	Template string `json:"template"`
	Label    string `json:"label"`
	Hidden   bool   `json:"hidden,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	c, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("loading template catalog: %w", err)
	}

	var filter catalog.Language
	if listLanguage != "" {
		if filter, err = catalog.ParseLanguage(listLanguage); err != nil {
			return err
		}
	}

	var entries []listEntry
	for _, t := range c.AllTemplates() {
		if filter != "" && t.Language != filter {
			continue
		}
		if t.Hidden && !listAll {
			continue
		}
		entries = append(entries, listEntry{
			Language: string(t.Language),
			Template: string(t.Key),
			Label:    t.Label,
			Hidden:   t.Hidden,
		})
	}

	if listJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No templates found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LANGUAGE\tTEMPLATE\tDESCRIPTION")
	for _, e := range entries {
		label := e.Label
		if e.Hidden {
			label += " (hidden)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Language, e.Template, label)
	}
	return w.Flush()
}
