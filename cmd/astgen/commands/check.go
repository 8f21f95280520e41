package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/astgen/errors"
	"github.com/teranos/astgen/internal/driver"
)

var checkOnly []string

// CheckCmd checks whether generated files are up to date
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check if generated files are up to date",
	Long: `Regenerate into a temporary directory and compare with the output
directory, ignoring the "// Produced" banner line that changes on every run.

Exit codes:
  0 - Generated files are up to date
  1 - Files are out of date or missing, or the check failed

Examples:
  astgen check -o src/generated
  astgen check --only names`,
	RunE: runCheck,
}

func init() {
	CheckCmd.Flags().StringSliceVar(&checkOnly, "only", nil, "Generators to check (deref, names, nodeids)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	w := cmd.ErrOrStderr()
	result, err := driver.Check(cmd.Context(), cfg, driver.Options{Only: checkOnly})
	if err != nil && !errors.IsOutOfDate(err) {
		return err
	}

	if result.UpToDate {
		pterm.Success.WithWriter(w).Println("Generated files are up to date")
		return nil
	}

	pterm.Error.WithWriter(w).Println("Generated files are out of date")
	for _, file := range result.Differences {
		pterm.Fprintln(w, "  - "+file+" (differs)")
	}
	for _, file := range result.Missing {
		pterm.Fprintln(w, "  - "+file+" (missing)")
	}
	return err
}
