package registry

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/specialistvlad/fragsplice/internal/ctxlog"
	"github.com/specialistvlad/fragsplice/internal/diag"
	"github.com/specialistvlad/fragsplice/internal/fsutil"
)

// DuplicatePolicy selects what happens when several fragments match one name.
type DuplicatePolicy int

const (
	// DuplicateError rejects an ambiguous name with diag.ErrAmbiguousFragment.
	DuplicateError DuplicatePolicy = iota
	// DuplicateFirst picks the first match in walk order.
	DuplicateFirst
)

// ParseDuplicatePolicy maps the textual policy used in flags and config files.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch strings.ToLower(s) {
	case "", "error":
		return DuplicateError, nil
	case "first":
		return DuplicateFirst, nil
	default:
		return DuplicateError, fmt.Errorf("invalid duplicates policy %q: must be 'error' or 'first'", s)
	}
}

// String implements fmt.Stringer.
func (p DuplicatePolicy) String() string {
	if p == DuplicateFirst {
		return "first"
	}
	return "error"
}

// Registry is the set of fragment files discovered at startup. It is
// read-only once built.
type Registry struct {
	suffix string
	policy DuplicatePolicy
	paths  []string
}

// New walks every root and collects the files ending with suffix. Roots are
// walked in the order given; within a root the walk is lexical.
func New(ctx context.Context, suffix string, policy DuplicatePolicy, roots ...string) (*Registry, error) {
	logger := ctxlog.FromContext(ctx)
	if suffix == "" {
		return nil, fmt.Errorf("fragment suffix must not be empty")
	}

	r := &Registry{suffix: suffix, policy: policy}
	for _, root := range roots {
		files, err := fsutil.FindFilesBySuffix(root, suffix)
		if err != nil {
			return nil, fmt.Errorf("failed to scan template root %s: %w", root, err)
		}
		logger.Debug("Scanned template root.", "root", root, "count", len(files))
		r.paths = append(r.paths, files...)
	}
	logger.Debug("Template registry built.", "fragments", len(r.paths), "duplicates", policy.String())
	return r, nil
}

// Paths returns the discovered fragment files in discovery order.
func (r *Registry) Paths() []string {
	out := make([]string, len(r.paths))
	copy(out, r.paths)
	return out
}

// Suffix returns the fragment file suffix.
func (r *Registry) Suffix() string {
	return r.suffix
}

// Lookup resolves a fragment name to a file path. The returned error is a
// *diag.Error without location; the caller attaches file and line.
func (r *Registry) Lookup(name string) (string, error) {
	want := name + r.suffix
	var matches []string
	for _, p := range r.paths {
		if strings.HasSuffix(toSlash(p), want) {
			matches = append(matches, p)
		}
	}

	switch {
	case len(matches) == 0:
		return "", &diag.Error{Name: name, Err: diag.ErrUnknownFragment}
	case len(matches) > 1 && r.policy == DuplicateError:
		return "", &diag.Error{
			Name: fmt.Sprintf("%s (%s)", name, strings.Join(matches, ", ")),
			Err:  diag.ErrAmbiguousFragment,
		}
	}
	return matches[0], nil
}

// Load resolves name and returns the fragment's raw content.
func (r *Registry) Load(name string) (string, error) {
	path, err := r.Lookup(name)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read template %s: %w", path, err)
	}
	return string(data), nil
}

// toSlash lets names written with '/' match on every platform.
func toSlash(p string) string {
	if os.PathSeparator == '/' {
		return p
	}
	return strings.ReplaceAll(p, string(os.PathSeparator), "/")
}
