// Package marker recognises the comment lines that open and close a generated
// region and decodes the fragment invocation carried by an opener.
//
// An opener looks like
//
//	// __GENERATED__ template array_define,array_add TYPE=bool NAME=Clay__BoolArray
//
// The closer is the next line that starts with the same prefix; anything after
// the prefix on the closer is ignored.
package marker

import (
	"strings"

	"github.com/specialistvlad/fragsplice/internal/diag"
)

// DefaultPrefix is the marker prefix used when none is configured.
const DefaultPrefix = "// __GENERATED__ template"

// Param is one key=value assignment from an opener line.
type Param struct {
	Key   string
	Value string
}

// Invocation is the decoded content of an opener line.
type Invocation struct {
	Names  []string
	Params []Param
}

// Scanner matches marker lines by a fixed prefix.
type Scanner struct {
	Prefix string
}

// New returns a Scanner for prefix, falling back to DefaultPrefix.
func New(prefix string) *Scanner {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Scanner{Prefix: prefix}
}

// IsMarker reports whether line begins with the marker prefix. The line is not
// trimmed, so indented markers are not recognised.
func (s *Scanner) IsMarker(line string) bool {
	return strings.HasPrefix(line, s.Prefix)
}

// FindCloser returns the index of the first marker line after from, or -1.
func (s *Scanner) FindCloser(lines []string, from int) int {
	for j := from + 1; j < len(lines); j++ {
		if s.IsMarker(lines[j]) {
			return j
		}
	}
	return -1
}

// Parse decodes an opener line. The first whitespace-separated token after the
// prefix lists fragment names separated by commas; each later token is a
// key=value pair split on the first '='. Errors are *diag.Error values without
// a location.
func (s *Scanner) Parse(line string) (Invocation, error) {
	var inv Invocation
	fields := strings.Fields(strings.TrimPrefix(line, s.Prefix))
	if len(fields) == 0 {
		return inv, &diag.Error{Name: "(no template names)", Err: diag.ErrMalformedMarker}
	}

	for _, name := range strings.Split(fields[0], ",") {
		if name == "" {
			return inv, &diag.Error{Name: fields[0], Err: diag.ErrMalformedMarker}
		}
		inv.Names = append(inv.Names, name)
	}

	for _, tok := range fields[1:] {
		key, value, ok := strings.Cut(tok, "=")
		if !ok || key == "" {
			return inv, &diag.Error{Name: tok, Err: diag.ErrMalformedMarker}
		}
		inv.Params = append(inv.Params, Param{Key: key, Value: value})
	}
	return inv, nil
}
