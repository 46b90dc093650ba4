package config

import "path/filepath"

// Model is the unified, format-agnostic representation of a config file.
// Zero values mean "not set" so that flags and defaults can fill them in.
type Model struct {
	Targets       []string
	TemplateRoots []string
	Suffix        string
	Marker        string
	RegionBegin   string
	RegionEnd     string
	Duplicates    string
}

// ResolvePaths makes every relative path in paths relative to baseDir.
func ResolvePaths(baseDir string, paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	out := make([]string, len(paths))
	for i, p := range paths {
		if filepath.IsAbs(p) {
			out[i] = filepath.Clean(p)
			continue
		}
		out[i] = filepath.Join(baseDir, p)
	}
	return out
}
