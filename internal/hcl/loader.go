package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/fragsplice/internal/config"
	"github.com/specialistvlad/fragsplice/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Ensures Loader implements config.Loader.
var _ config.Loader = (*Loader)(nil)

// Load parses and decodes the HCL file at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(hclFile.Body, newEvalContext(os.Environ()), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	model := l.translate(filepath.Dir(path), &root)
	logger.Debug("HCL loading complete.",
		"targets", len(model.Targets),
		"template_roots", len(model.TemplateRoots),
	)
	return model, nil
}

// translate converts the HCL schema into the agnostic model.
func (l *Loader) translate(baseDir string, root *fileRoot) *config.Model {
	model := &config.Model{
		Targets:       config.ResolvePaths(baseDir, root.Targets),
		TemplateRoots: config.ResolvePaths(baseDir, root.TemplateRoots),
		Suffix:        root.Suffix,
		Marker:        root.Marker,
		Duplicates:    root.Duplicates,
	}
	if root.Region != nil {
		model.RegionBegin = root.Region.Begin
		model.RegionEnd = root.Region.End
	}
	return model
}
