package config

import (
	"github.com/spf13/viper"

	"github.com/teranos/astgen/codegen"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("description", "ast.txt")
	v.SetDefault("output.dir", "")

	v.SetDefault("banner.tool", codegen.DefaultTool)
	v.SetDefault("banner.stamp", StampGit) // reproducible across machines

	v.SetDefault("workers", 1)

	v.SetDefault("format.enabled", false)
	v.SetDefault("format.command", codegen.DefaultFormatCommand)

	v.SetDefault("watch.debounce_ms", 300)

	v.SetDefault("generators.deref.enabled", true)
	v.SetDefault("generators.deref.file", "ast_deref_gen.inc.rs")
	v.SetDefault("generators.deref.gate_on_marker", false)
	v.SetDefault("generators.names.enabled", true)
	v.SetDefault("generators.names.file", "ast_names_gen.inc.rs")
	v.SetDefault("generators.nodeids.enabled", true)
	v.SetDefault("generators.nodeids.file", "list_node_ids_gen.inc.rs")
}
