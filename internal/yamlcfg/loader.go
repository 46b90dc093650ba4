// Package yamlcfg provides the YAML implementation of the config.Loader
// interface, for projects that keep their tooling configuration in YAML.
//
//	targets: [../clay.h]
//	template_roots: [generator]
//	suffix: .template.c
//	region:
//	  begin: "#pragma region generated"
//	  end: "#pragma endregion"
package yamlcfg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/specialistvlad/fragsplice/internal/config"
	"github.com/specialistvlad/fragsplice/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

type fileRoot struct {
	Targets       []string `yaml:"targets"`
	TemplateRoots []string `yaml:"template_roots"`
	Suffix        string   `yaml:"suffix"`
	Marker        string   `yaml:"marker"`
	Duplicates    string   `yaml:"duplicates"`
	Region        struct {
		Begin string `yaml:"begin"`
		End   string `yaml:"end"`
	} `yaml:"region"`
}

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// Load decodes the YAML file at path. Unknown keys are rejected, and ${VAR}
// references in path lists are expanded from the environment.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML file %s: %w", path, err)
	}

	var root fileRoot
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&root); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", path, err)
	}

	baseDir := filepath.Dir(path)
	model := &config.Model{
		Targets:       config.ResolvePaths(baseDir, expandAll(root.Targets)),
		TemplateRoots: config.ResolvePaths(baseDir, expandAll(root.TemplateRoots)),
		Suffix:        root.Suffix,
		Marker:        root.Marker,
		Duplicates:    root.Duplicates,
		RegionBegin:   root.Region.Begin,
		RegionEnd:     root.Region.End,
	}
	logger.Debug("YAML loading complete.",
		"targets", len(model.Targets),
		"template_roots", len(model.TemplateRoots),
	)
	return model, nil
}

func expandAll(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = os.ExpandEnv(v)
	}
	return out
}
