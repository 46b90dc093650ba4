package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/fragsplice/internal/config"
	"github.com/specialistvlad/fragsplice/internal/hcl"
	"github.com/specialistvlad/fragsplice/internal/marker"
	"github.com/specialistvlad/fragsplice/internal/rewriter"
	"github.com/specialistvlad/fragsplice/internal/yamlcfg"
)

// DefaultSuffix is the fragment file suffix used when none is configured.
const DefaultSuffix = ".template.c"

// loaderFor picks the config.Loader matching the file extension.
func loaderFor(path string) (config.Loader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return hcl.NewLoader(), nil
	case ".yaml", ".yml":
		return yamlcfg.NewLoader(), nil
	default:
		return nil, fmt.Errorf("unsupported config file %s: expected .hcl, .yaml or .yml", path)
	}
}

// resolveConfig merges the config file (if any) under the explicit settings
// and applies defaults. The input is not modified.
func resolveConfig(ctx context.Context, in *Config) (*Config, error) {
	cfg := *in

	if cfg.ConfigPath != "" {
		loader, err := loaderFor(cfg.ConfigPath)
		if err != nil {
			return nil, err
		}
		model, err := loader.Load(ctx, cfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		mergeModel(&cfg, model)
	}

	if len(cfg.Targets) == 0 {
		return nil, fmt.Errorf("no target files configured")
	}
	if len(cfg.TemplateRoots) == 0 {
		cfg.TemplateRoots = []string{"."}
	}
	setDefault(&cfg.Suffix, DefaultSuffix)
	setDefault(&cfg.Marker, marker.DefaultPrefix)
	setDefault(&cfg.RegionBegin, rewriter.DefaultRegionBegin)
	setDefault(&cfg.RegionEnd, rewriter.DefaultRegionEnd)
	setDefault(&cfg.Duplicates, "error")
	return &cfg, nil
}

func mergeModel(cfg *Config, model *config.Model) {
	if len(cfg.Targets) == 0 {
		cfg.Targets = model.Targets
	}
	if len(cfg.TemplateRoots) == 0 {
		cfg.TemplateRoots = model.TemplateRoots
	}
	setDefault(&cfg.Suffix, model.Suffix)
	setDefault(&cfg.Marker, model.Marker)
	setDefault(&cfg.RegionBegin, model.RegionBegin)
	setDefault(&cfg.RegionEnd, model.RegionEnd)
	setDefault(&cfg.Duplicates, model.Duplicates)
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}
