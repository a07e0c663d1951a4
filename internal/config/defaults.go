// Package config provides configuration loading and defaults for repolist.
package config

import "github.com/blackwell-systems/repolist/internal/projects"

// DefaultConfigDir is the default location for repolist configuration.
const DefaultConfigDir = "~/.config/repolist"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultScan holds the default scan settings.
var DefaultScan = Scan{
	Path:   ".",
	Output: "repo_names.txt",
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
}

// DefaultProjects returns a fresh copy of the seed project list.
func DefaultProjects() []string {
	return append([]string(nil), projects.DefaultNames...)
}
