package cli

import (
	"fmt"
	"os"

	"github.com/scaffold2dev/scaffold2dev/internal/catalog"
	"github.com/scaffold2dev/scaffold2dev/internal/scaffold"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that every template has a scaffold script",
	Long: `Resolve the scaffold root and verify that a script exists for every template
in the catalog. Scripts that exist but are not executable are reported as
warnings; they are made executable when the wizard runs them.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		c, err := catalog.Load()
		if err != nil {
			fmt.Fprintf(out, "[FAIL] Template catalog: %v\n", err)
			return err
		}
		fmt.Fprintf(out, "[ OK ] Template catalog (schema %s)\n", c.SchemaVersion)

		root, err := scaffold.ResolveRoot()
		if err != nil {
			return fmt.Errorf("resolving scaffold root: %w", err)
		}
		if info, err := os.Stat(root); err != nil || !info.IsDir() {
			fmt.Fprintf(out, "[MISS] Scaffold root %s does not exist\n", root)
		} else {
			fmt.Fprintf(out, "[ OK ] Scaffold root %s\n", root)
		}

		fmt.Fprintln(out, "Scaffold scripts:")
		missing := 0
		for _, st := range scaffold.Check(root, c) {
			suffix := ""
			if st.Hidden {
				suffix = " (hidden)"
			}
			switch {
			case !st.Exists && st.Hidden:
				fmt.Fprintf(out, "  [INFO] %s/%s not installed%s\n", st.Language, st.Template, suffix)
			case !st.Exists:
				missing++
				fmt.Fprintf(out, "  [MISS] %s/%s: %s not found\n", st.Language, st.Template, st.Path)
			case !st.Executable:
				fmt.Fprintf(out, "  [WARN] %s/%s: %s is not executable\n", st.Language, st.Template, st.Path)
			default:
				fmt.Fprintf(out, "  [ OK ] %s/%s%s\n", st.Language, st.Template, suffix)
			}
		}

		if missing > 0 {
			return fmt.Errorf("%d scaffold script(s) missing under %s", missing, root)
		}
		return nil
	},
}
