// Package config loads astgen settings with Viper.
//
// Precedence (lowest to highest): defaults < ~/.astgen/astgen.toml <
// project astgen.toml (found by walking up from the working directory) <
// ASTGEN_* environment variables < command line flags bound by the caller.
package config

// Config is the effective astgen configuration
type Config struct {
	Description string           `mapstructure:"description" toml:"description" yaml:"description" json:"description"`
	Output      OutputConfig     `mapstructure:"output" toml:"output" yaml:"output" json:"output"`
	Banner      BannerConfig     `mapstructure:"banner" toml:"banner" yaml:"banner" json:"banner"`
	Workers     int              `mapstructure:"workers" toml:"workers" yaml:"workers" json:"workers"`
	Format      FormatConfig     `mapstructure:"format" toml:"format" yaml:"format" json:"format"`
	Watch       WatchConfig      `mapstructure:"watch" toml:"watch" yaml:"watch" json:"watch"`
	Generators  GeneratorsConfig `mapstructure:"generators" toml:"generators" yaml:"generators" json:"generators"`
}

// OutputConfig controls where generated files go
type OutputConfig struct {
	Dir string `mapstructure:"dir" toml:"dir" yaml:"dir" json:"dir"` // empty writes to stdout
}

// BannerConfig controls the "// Produced ..." banner line
type BannerConfig struct {
	Tool  string `mapstructure:"tool" toml:"tool" yaml:"tool" json:"tool"`
	Stamp string `mapstructure:"stamp" toml:"stamp" yaml:"stamp" json:"stamp"` // none, now, git, or a literal stamp
}

// FormatConfig configures the post-generation formatter
type FormatConfig struct {
	Enabled bool   `mapstructure:"enabled" toml:"enabled" yaml:"enabled" json:"enabled"`
	Command string `mapstructure:"command" toml:"command" yaml:"command" json:"command"`
}

// WatchConfig configures `astgen watch`
type WatchConfig struct {
	DebounceMS int `mapstructure:"debounce_ms" toml:"debounce_ms" yaml:"debounce_ms" json:"debounce_ms"`
}

// GeneratorsConfig enables and names each generated file
type GeneratorsConfig struct {
	Deref   DerefConfig     `mapstructure:"deref" toml:"deref" yaml:"deref" json:"deref"`
	Names   GeneratorConfig `mapstructure:"names" toml:"names" yaml:"names" json:"names"`
	NodeIDs GeneratorConfig `mapstructure:"nodeids" toml:"nodeids" yaml:"nodeids" json:"nodeids"`
}

// GeneratorConfig is shared by every generator
type GeneratorConfig struct {
	Enabled bool   `mapstructure:"enabled" toml:"enabled" yaml:"enabled" json:"enabled"`
	File    string `mapstructure:"file" toml:"file" yaml:"file" json:"file"`
}

// DerefConfig adds marker gating to the deref generator.
type DerefConfig struct {
	Enabled bool   `mapstructure:"enabled" toml:"enabled" yaml:"enabled" json:"enabled"`
	File    string `mapstructure:"file" toml:"file" yaml:"file" json:"file"`
	// GateOnMarker emits AstDeref only for #[rewrite_seq_item] declarations
	GateOnMarker bool `mapstructure:"gate_on_marker" toml:"gate_on_marker" yaml:"gate_on_marker" json:"gate_on_marker"`
}

// Stamp modes for banner.stamp. Any other value is used verbatim.
const (
	StampNone = "none"
	StampNow  = "now"
	StampGit  = "git"
)

// File names and directories
const (
	ConfigFileName        = "astgen.toml"
	UserConfigDir         = ".astgen"
	EnvPrefix             = "ASTGEN"
	DefaultDirPermissions = 0755
)
