// Package rewriter splices expanded fragments into the generated regions of a
// target file and writes the file back in place.
package rewriter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/specialistvlad/fragsplice/internal/ctxlog"
	"github.com/specialistvlad/fragsplice/internal/diag"
	"github.com/specialistvlad/fragsplice/internal/marker"
)

// Default region delimiters, which make C/C++ editors fold the region.
const (
	DefaultRegionBegin = "#pragma region generated"
	DefaultRegionEnd   = "#pragma endregion"
)

// Expander produces the lines for one marker invocation.
type Expander interface {
	Expand(ctx context.Context, inv marker.Invocation) ([]string, error)
}

// Rewriter replaces the body of every marker pair in a line sequence.
type Rewriter struct {
	scanner     *marker.Scanner
	expander    Expander
	regionBegin string
	regionEnd   string
}

// New creates a Rewriter. Empty delimiters fall back to the defaults.
func New(scanner *marker.Scanner, expander Expander, regionBegin, regionEnd string) *Rewriter {
	if regionBegin == "" {
		regionBegin = DefaultRegionBegin
	}
	if regionEnd == "" {
		regionEnd = DefaultRegionEnd
	}
	return &Rewriter{
		scanner:     scanner,
		expander:    expander,
		regionBegin: regionBegin,
		regionEnd:   regionEnd,
	}
}

// Rewrite returns a new line sequence in which the lines between each opener
// and its closer are replaced by the region delimiters wrapping the expanded
// fragments. Opener and closer lines are kept so the file can be regenerated.
// Scanning resumes after the closer, never inside inserted content. file is
// used only for diagnostics; lines is not modified.
func (r *Rewriter) Rewrite(ctx context.Context, file string, lines []string) ([]string, error) {
	logger := ctxlog.FromContext(ctx)
	out := make([]string, 0, len(lines))

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if !r.scanner.IsMarker(line) {
			out = append(out, line)
			continue
		}

		lineNo := i + 1
		closer := r.scanner.FindCloser(lines, i)
		if closer < 0 {
			return nil, diag.New(file, lineNo, "", diag.ErrUnclosedMarker)
		}

		inv, err := r.scanner.Parse(line)
		if err != nil {
			return nil, diag.Locate(err, file, lineNo)
		}

		body, err := r.expander.Expand(ctx, inv)
		if err != nil {
			return nil, diag.Locate(err, file, lineNo)
		}
		logger.Debug("Spliced generated region.",
			"file", file,
			"line", lineNo,
			"templates", strings.Join(inv.Names, ","),
			"replaced", closer-i-1,
			"inserted", len(body),
		)

		// Inserted lines follow the opener's line ending so CRLF files stay
		// uniformly CRLF.
		eol := ""
		if strings.HasSuffix(line, "\r") {
			eol = "\r"
		}
		out = append(out, line, withEOL(r.regionBegin, eol))
		for _, b := range body {
			out = append(out, withEOL(b, eol))
		}
		out = append(out, withEOL(r.regionEnd, eol), lines[closer])
		i = closer
	}
	return out, nil
}

func withEOL(line, eol string) string {
	if eol == "" || strings.HasSuffix(line, eol) {
		return line
	}
	return line + eol
}

// ProcessFile reads path, rewrites its regions and, unless check is set,
// writes the result back atomically. It reports whether the content changed.
// On error nothing is written.
func (r *Rewriter) ProcessFile(ctx context.Context, path string, check bool) (bool, error) {
	logger := ctxlog.FromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read target file: %w", err)
	}
	original := string(data)

	lines, err := r.Rewrite(ctx, path, strings.Split(original, "\n"))
	if err != nil {
		return false, err
	}

	updated := strings.Join(lines, "\n")
	if updated == original {
		logger.Debug("Target file is up to date.", "file", path)
		return false, nil
	}
	if check {
		return true, nil
	}

	// Write through a symlinked target instead of replacing the link.
	dest, err := filepath.EvalSymlinks(path)
	if err != nil {
		return false, fmt.Errorf("failed to resolve target file %s: %w", path, err)
	}
	if err := atomic.WriteFile(dest, strings.NewReader(updated)); err != nil {
		return false, fmt.Errorf("failed to write target file %s: %w", path, err)
	}
	logger.Debug("Target file written.", "file", path, "bytes", len(updated))
	return true, nil
}
