package commands

import (
	"context"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/astgen/description"
	"github.com/teranos/astgen/errors"
	"github.com/teranos/astgen/internal/driver"
	"github.com/teranos/astgen/watch"
)

// WatchCmd regenerates whenever the description changes
var WatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate whenever the description changes",
	Long: `Generate once, then regenerate every time the description file is
written. Rapid successive writes are coalesced (watch.debounce_ms).

Examples:
  astgen watch -d ast.txt -o src/generated`,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if description.IsRemote(cfg.Description) {
		return errors.WithHint(
			errors.Newf("cannot watch remote description %s", cfg.Description),
			"watch needs a local description file",
		)
	}

	regenerate := func(ctx context.Context) error {
		report, err := driver.Run(ctx, cfg, driver.Options{Stdout: cmd.OutOrStdout()})
		if err != nil {
			return err
		}
		if cfg.Output.Dir != "" {
			printReport(cmd, report)
		}
		return nil
	}

	if err := regenerate(cmd.Context()); err != nil {
		return err
	}

	debounce := time.Duration(cfg.Watch.DebounceMS) * time.Millisecond
	w, err := watch.New(cfg.Description, debounce, regenerate)
	if err != nil {
		return err
	}
	pterm.Info.WithWriter(cmd.ErrOrStderr()).Printfln("Watching %s (Ctrl+C to stop)", cfg.Description)
	return w.Run(cmd.Context())
}
