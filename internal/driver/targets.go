package driver

import (
	"strings"

	"github.com/teranos/astgen/codegen"
	"github.com/teranos/astgen/codegen/deref"
	"github.com/teranos/astgen/codegen/names"
	"github.com/teranos/astgen/codegen/nodeids"
	"github.com/teranos/astgen/config"
	"github.com/teranos/astgen/errors"
)

// Target is one generator bound to its output file.
type Target struct {
	// Key is the generator's config table name (deref, names, nodeids)
	Key       string
	Generator codegen.Generator
	File      string
	Enabled   bool
}

// Targets lists every generator in output order, configured from cfg.
func Targets(cfg *config.Config) []Target {
	g := cfg.Generators
	return []Target{
		{
			Key:       "deref",
			Generator: &deref.Generator{GateOnMarker: g.Deref.GateOnMarker},
			File:      fileName(g.Deref.File, "ast_deref"),
			Enabled:   g.Deref.Enabled,
		},
		{
			Key:       "names",
			Generator: names.NewGenerator(),
			File:      fileName(g.Names.File, "ast_names"),
			Enabled:   g.Names.Enabled,
		},
		{
			Key:       "nodeids",
			Generator: nodeids.NewGenerator(),
			File:      fileName(g.NodeIDs.File, "list_node_ids"),
			Enabled:   g.NodeIDs.Enabled,
		},
	}
}

func fileName(configured, name string) string {
	if configured != "" {
		return configured
	}
	return name + "_gen.inc.rs"
}

// Select returns the enabled targets, or exactly the targets named in only.
// Names match either the config key or the generator name.
func Select(cfg *config.Config, only []string) ([]Target, error) {
	all := Targets(cfg)
	if len(only) == 0 {
		var enabled []Target
		for _, t := range all {
			if t.Enabled {
				enabled = append(enabled, t)
			}
		}
		return enabled, nil
	}

	want := make(map[string]bool, len(only))
	for _, name := range only {
		want[name] = true
	}

	var selected []Target
	for _, t := range all {
		if want[t.Key] || want[t.Generator.Name()] {
			selected = append(selected, t)
			delete(want, t.Key)
			delete(want, t.Generator.Name())
		}
	}
	for _, name := range only {
		if want[name] {
			return nil, errors.WithHintf(
				errors.Newf("unknown generator %q", name),
				"available generators: %s", strings.Join(Available(), ", "),
			)
		}
	}
	return selected, nil
}

// Available lists the generator keys accepted by --only.
func Available() []string {
	var keys []string
	for _, t := range Targets(&config.Config{}) {
		keys = append(keys, t.Key)
	}
	return keys
}
