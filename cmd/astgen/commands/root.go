// Package commands implements the astgen command line.
package commands

import (
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/astgen/config"
	"github.com/teranos/astgen/errors"
	"github.com/teranos/astgen/internal/driver"
	"github.com/teranos/astgen/logger"
)

var (
	configPath string
	only       []string
)

// RootCmd generates every enabled file from the configured description
var RootCmd = &cobra.Command{
	Use:   "astgen",
	Short: "Generate Rust AST trait impls from an AST description",
	Long: `astgen reads an AST description (structs, enums and flags with their
attributes) and generates the mechanical trait impls every node type needs:

  ast_deref_gen.inc.rs      AstDeref passthrough impls
  ast_names_gen.inc.rs      AstName impls (variant name plus kind)
  list_node_ids_gen.inc.rs  ListNodeIds child collection impls

Configuration is read from ~/.astgen/astgen.toml, the nearest astgen.toml
above the working directory, ASTGEN_* environment variables and flags.

Examples:
  astgen -d ast.txt                     # Print all impls to stdout
  astgen -d ast.txt -o src/generated    # Write the three files
  astgen --only names --stamp none      # Regenerate AstName only, no stamp
  astgen check                          # Fail if generated files are stale
  astgen watch                          # Regenerate on description change`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		if err := logger.Initialize(jsonLogs, verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}

		if configPath != "" {
			v := config.GetViper()
			v.SetConfigFile(configPath)
			v.SetConfigType("toml")
			if err := v.MergeInConfig(); err != nil {
				return errors.Wrapf(err, "failed to read config file %s", configPath)
			}
		}
		return nil
	},
	RunE: runGenerate,
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file (default: nearest astgen.toml)")
	flags.StringP("description", "d", "", "AST description: path or go-getter source")
	flags.StringP("output", "o", "", "Output directory (default: stdout)")
	flags.String("stamp", "", "Banner stamp: none, now, git or a literal string")
	flags.Int("workers", 1, "Concurrent block generation per file")
	flags.Bool("gate-deref", false, "Emit AstDeref only for #[rewrite_seq_item] declarations")
	flags.CountP("verbose", "v", "Increase output verbosity (-v info, -vv debug)")
	flags.Bool("json-logs", false, "Log as JSON")

	v := config.GetViper()
	for key, flag := range map[string]string{
		"description":                     "description",
		"output.dir":                      "output",
		"banner.stamp":                    "stamp",
		"workers":                         "workers",
		"generators.deref.gate_on_marker": "gate-deref",
	} {
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}

	RootCmd.Flags().StringSliceVar(&only, "only", nil, "Generators to run (deref, names, nodeids)")

	RootCmd.AddCommand(CheckCmd)
	RootCmd.AddCommand(WatchCmd)
	RootCmd.AddCommand(ConfigCmd)
	RootCmd.AddCommand(VersionCmd)
}

// loadConfig reads the effective configuration, flags included.
func loadConfig() (*config.Config, error) {
	return config.LoadWithViper(config.GetViper())
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	report, err := driver.Run(cmd.Context(), cfg, driver.Options{
		Only:   only,
		Stdout: cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}

	if cfg.Output.Dir != "" {
		printReport(cmd, report)
	}
	return nil
}

// printReport summarizes a run on stderr so stdout stays clean for output.
func printReport(cmd *cobra.Command, report *driver.Report) {
	w := cmd.ErrOrStderr()
	for _, name := range report.Duplicates {
		pterm.Warning.WithWriter(w).Printfln("Duplicate declaration %s generates conflicting impls", name)
	}
	for _, f := range report.Files {
		pterm.Success.WithWriter(w).Printfln("%s: %d impls (%d bytes)", f.Path, f.Blocks, f.Bytes)
	}
	stamp := report.Stamp
	if stamp == "" {
		stamp = "none"
	}
	pterm.Info.WithWriter(w).Printfln("%d declarations from %s, stamp %s, %s",
		report.Decls, report.Source, stamp, report.Duration.Round(time.Millisecond))
}
