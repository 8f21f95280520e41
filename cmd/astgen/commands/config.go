package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/astgen/config"
)

var configFormat string

// ConfigCmd groups configuration commands
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect astgen configuration",
}

// ConfigShowCmd prints the effective configuration
var ConfigShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Show the configuration after merging defaults, config files,
ASTGEN_* environment variables and flags.

Examples:
  astgen config show
  astgen config show --format yaml
  ASTGEN_WORKERS=4 astgen config show --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg, configFormat)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	ConfigShowCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, yaml, json")
	ConfigCmd.AddCommand(ConfigShowCmd)
}
