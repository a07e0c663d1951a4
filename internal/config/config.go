package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level repolist configuration.
type Config struct {
	Scan     Scan     `mapstructure:"scan"`
	Projects []string `mapstructure:"projects"`
	Output   Output   `mapstructure:"output"`
}

// Scan holds defaults for the scan command.
type Scan struct {
	Path   string `mapstructure:"path"`
	Output string `mapstructure:"output"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied. A missing file at the
// default location is tolerated; an explicit path must exist. Environment
// variables are not consulted.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("scan.path", DefaultScan.Path)
	v.SetDefault("scan.output", DefaultScan.Output)
	v.SetDefault("projects", DefaultProjects())
	v.SetDefault("output.color", DefaultOutput.Color)

	if cfgFile != "" {
		path := expandPath(cfgFile)
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(ConfigDir())
		v.SetConfigName(strings.TrimSuffix(DefaultConfigFile, filepath.Ext(DefaultConfigFile)))
		v.SetConfigType("yaml")
	}

	// Only the default location may be absent.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || (!errors.As(err, &notFound) && !os.IsNotExist(err)) {
			return nil, fmt.Errorf("reading %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	cfg.Scan.Path = expandPath(cfg.Scan.Path)
	cfg.Scan.Output = expandPath(cfg.Scan.Output)

	return &cfg, nil
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
