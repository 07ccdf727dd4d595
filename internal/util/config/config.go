// Package config loads interactive shell settings from YAML.
package config

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Shell settings.  Zero-valued fields in a file keep their defaults.
type Shell struct {
	Prompt    string   `yaml:"prompt"`
	Multiline string   `yaml:"multiline"`
	History   string   `yaml:"history"`
	Quiet     bool     `yaml:"quiet"`
	Load      []string `yaml:"load"`
}

// Default shell settings.
func Default() Shell {
	return Shell{
		Prompt:    "lispy> ",
		Multiline: "  ...> ",
		History:   ExpandHome("~/.lispy_history"),
	}
}

// Load settings from the YAML file at path, on top of Default.
// An empty path returns the defaults.
func Load(path string) (Shell, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(ExpandHome(path))
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}

	if err = yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse %s", path)
	}

	cfg.History = ExpandHome(cfg.History)
	return cfg, nil
}

// ExpandHome replaces a leading "~" with the current user's home
// directory.  Paths that cannot be expanded are returned unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	u, err := user.Current()
	if err != nil {
		return path
	}

	return filepath.Join(u.HomeDir, strings.TrimPrefix(path, "~"))
}
