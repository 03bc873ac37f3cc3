// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Config represents the lincat configuration file (<user config dir>/lvlin/lincat.yaml).
// Empty strings and a nil Ops mean "not set".
type Config struct {
	// Output
	Format    string `yaml:"format"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// Default operation filter for the bindings command.
	Ops []string `yaml:"ops"`
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(dir, "lvlin", "lincat.yaml")
}

// LoadConfig reads the config file at path. With an empty path the default
// location is tried and a missing or unreadable default file yields a zero
// Config. An explicit path must exist and parse.
func LoadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = configPath()
		if path == "" {
			return Config{}, nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if explicit {
			return Config{}, errors.Wrap(err, "lincat: read config")
		}
		return Config{}, nil
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "lincat: parse config %s", path)
	}

	return cfg, nil
}

// applyConfig applies config file defaults to s when the corresponding CLI
// flag was not explicitly set.
func applyConfig(c *cli.Command, cfg Config, s *settings) {
	if cfg.Format != "" && !c.IsSet(flagFormat) {
		s.format = cfg.Format
	}
	if cfg.LogLevel != "" && !c.IsSet(flagLogLevel) {
		s.logLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !c.IsSet(flagLogFormat) {
		s.logFormat = cfg.LogFormat
	}
	if cfg.Ops != nil {
		s.ops = append([]string(nil), cfg.Ops...)
	}
}
