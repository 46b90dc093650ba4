// Package expander turns a marker invocation into the lines that fill a
// generated region.
package expander

import (
	"context"
	"regexp"
	"strings"

	"github.com/specialistvlad/fragsplice/internal/ctxlog"
	"github.com/specialistvlad/fragsplice/internal/diag"
	"github.com/specialistvlad/fragsplice/internal/marker"
)

// Source loads fragment content by name. *registry.Registry implements it.
type Source interface {
	Load(name string) (string, error)
}

// placeholder matches a $name$ token: a dollar, at least one character that is
// neither whitespace nor a dollar, and a closing dollar.
var placeholder = regexp.MustCompile(`\$([^\s$]+)\$`)

// Expander substitutes parameters into fragments loaded from a Source.
type Expander struct {
	src Source
}

// New creates an Expander reading fragments from src.
func New(src Source) *Expander {
	return &Expander{src: src}
}

// Expand resolves every fragment named by inv in order, substitutes the
// invocation's parameters and returns the concatenated lines. Errors are
// *diag.Error values without a location.
func (e *Expander) Expand(ctx context.Context, inv marker.Invocation) ([]string, error) {
	logger := ctxlog.FromContext(ctx)
	replacer := newReplacer(inv.Params)

	var out []string
	for _, name := range inv.Names {
		content, err := e.src.Load(name)
		if err != nil {
			return nil, err
		}

		content = replacer.Replace(content)
		if m := placeholder.FindStringSubmatch(content); m != nil {
			return nil, &diag.Error{Name: m[1], Err: diag.ErrUnresolvedPlaceholder}
		}

		lines := SplitLines(content)
		logger.Debug("Expanded template.", "template", name, "lines", len(lines))
		out = append(out, lines...)
	}
	return out, nil
}

// newReplacer builds a single-pass replacer so a substituted value is never
// scanned for further placeholders. When a key repeats, the first value wins.
func newReplacer(params []marker.Param) *strings.Replacer {
	pairs := make([]string, 0, len(params)*2)
	for _, p := range params {
		pairs = append(pairs, "$"+p.Key+"$", p.Value)
	}
	return strings.NewReplacer(pairs...)
}

// SplitLines splits fragment content on '\n' after dropping one trailing
// newline, so a fragment saved with a final newline does not add a blank line
// to the region.
func SplitLines(content string) []string {
	content = strings.TrimSuffix(content, "\n")
	return strings.Split(content, "\n")
}
