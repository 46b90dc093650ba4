package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/fragsplice/internal/ctxlog"
	"github.com/specialistvlad/fragsplice/internal/expander"
	"github.com/specialistvlad/fragsplice/internal/marker"
	"github.com/specialistvlad/fragsplice/internal/registry"
	"github.com/specialistvlad/fragsplice/internal/rewriter"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	rewriter *rewriter.Rewriter
}

// NewApp is the constructor for the main application. It configures an
// isolated logger, merges the config file, and builds the template registry
// once for the whole run.
func NewApp(ctx context.Context, outW io.Writer, appConfig *Config) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.")

	cfg, err := resolveConfig(ctx, appConfig)
	if err != nil {
		return nil, err
	}
	logger.Debug("Configuration resolved.",
		"targets", cfg.Targets,
		"template_roots", cfg.TemplateRoots,
		"suffix", cfg.Suffix,
	)

	policy, err := registry.ParseDuplicatePolicy(cfg.Duplicates)
	if err != nil {
		return nil, err
	}
	reg, err := registry.New(ctx, cfg.Suffix, policy, cfg.TemplateRoots...)
	if err != nil {
		return nil, fmt.Errorf("failed to build template registry: %w", err)
	}

	rw := rewriter.New(marker.New(cfg.Marker), expander.New(reg), cfg.RegionBegin, cfg.RegionEnd)

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		registry: reg,
		rewriter: rw,
	}, nil
}

// Config returns the resolved configuration. This is primarily for testing.
func (a *App) Config() *Config {
	return a.config
}

// Registry returns the application's template registry.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
