package domain

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	m "github.com/leriomaggio/pyre-check/internal/model"
)

// ErrInvalidPath reports a path with no module segments left after dropping
// the root marker. It is the only failure this package can surface.
var ErrInvalidPath = errors.New("path has no module segments")

// DeriveQualifier maps a filesystem path to the ordered identifier segments
// of its canonical module name: a/b/c.py becomes [a b c]. The synthetic
// filenames builtins and __init__ are invisible in the module namespace, so
// a/b/__init__.py and a/b.py name the same module.
func DeriveQualifier(path m.Path) ([]string, error) {
	segments := pathParts(string(path))[1:]
	if len(segments) == 0 {
		return nil, fmt.Errorf("%q: %w", path, ErrInvalidPath)
	}

	reversed := reverse(segments)
	reversed[0] = stripExtension(reversed[0])

	if reversed[0] == "builtins" || reversed[0] == "__init__" {
		reversed = reversed[1:]
	}

	qualifier := make([]string, 0, len(reversed))
	for _, segment := range reverse(reversed) {
		qualifier = append(qualifier, strings.Split(segment, ".")...)
	}

	return qualifier, nil
}

// pathParts splits a path into segments headed by a synthetic root marker:
// "/" for absolute paths, "." otherwise. The marker stands in for the
// analysis root and is never part of the module name.
func pathParts(path string) []string {
	path = filepath.ToSlash(path)

	root := "."
	if strings.HasPrefix(path, "/") {
		root = "/"
	}

	parts := []string{root}

	for _, segment := range strings.Split(path, "/") {
		if segment == "" || segment == "." {
			continue
		}

		parts = append(parts, segment)
	}

	return parts
}

// stripExtension truncates a filename at its last dot, if any.
func stripExtension(filename string) string {
	if dot := strings.LastIndex(filename, "."); dot >= 0 {
		return filename[:dot]
	}

	return filename
}

func reverse(segments []string) []string {
	reversed := make([]string, len(segments))
	for i, segment := range segments {
		reversed[len(segments)-1-i] = segment
	}

	return reversed
}
