package app

import (
	"errors"

	"github.com/specialistvlad/fragsplice/internal/registry"
)

// Config holds all the necessary configuration for an App instance to run.
// Empty fields are filled from the config file, then from defaults.
type Config struct {
	ConfigPath string // optional .hcl, .yaml or .yml file

	Targets       []string
	TemplateRoots []string
	Suffix        string
	Marker        string
	RegionBegin   string
	RegionEnd     string
	Duplicates    string // "error" or "first"

	Check     bool
	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.Targets) == 0 && cfg.ConfigPath == "" {
		return nil, errors.New("at least one target file or a config file is required")
	}
	if _, err := registry.ParseDuplicatePolicy(cfg.Duplicates); err != nil {
		return nil, err
	}
	return &cfg, nil
}
