package config

import (
	"github.com/teranos/astgen/errors"
)

// Validate reports settings that would make a run fail halfway through
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return errors.WithHint(
			errors.Newf("workers must be at least 1, got %d", c.Workers),
			"set workers = 1 for sequential generation",
		)
	}
	if c.Watch.DebounceMS < 0 {
		return errors.Newf("watch.debounce_ms must not be negative, got %d", c.Watch.DebounceMS)
	}
	if c.Description == "" {
		return errors.WithHint(
			errors.New("no description configured"),
			"set description in astgen.toml or pass --description",
		)
	}
	return nil
}

// StampMode classifies banner.stamp; literal stamps report "literal".
func (c *Config) StampMode() string {
	switch c.Banner.Stamp {
	case StampNone, "":
		return StampNone
	case StampNow, StampGit:
		return c.Banner.Stamp
	default:
		return "literal"
	}
}
