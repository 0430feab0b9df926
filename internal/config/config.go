// Package config loads the run configuration of the soil-column tool.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNotFound reports a missing configuration file. The original tool
	// warned and carried on with a half-built configuration; here absence is
	// an error the caller has to handle before anything else runs.
	ErrNotFound = errors.New("configuration file not found")
	// ErrMissingField reports a required configuration field left empty.
	ErrMissingField = errors.New("missing configuration field")
)

// Config holds the run configuration.
type Config struct {
	// Path is the directory holding the input files. The output file is
	// written next to them.
	Path string `yaml:"path"`
	// SoilVars lists the variable name suffixes to process.
	SoilVars []string `yaml:"soil_vars"`
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(ErrNotFound, path)
		}

		return nil, errors.Wrapf(err, "unable to read configuration file %s", path)
	}

	cfg := &Config{}
	err = yaml.Unmarshal(raw, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to parse configuration file %s", path)
	}

	if cfg.Path == "" {
		return nil, errors.Wrap(ErrMissingField, "path")
	}
	if len(cfg.SoilVars) == 0 {
		return nil, errors.Wrap(ErrMissingField, "soil_vars")
	}

	return cfg, nil
}
