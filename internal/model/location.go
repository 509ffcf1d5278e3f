// Package model defines the data structures for source metadata extraction.
package model

import "fmt"

// Position is a line/column pair within a source file. Lines are 1-based,
// columns are 0-based byte offsets.
type Position struct {
	Line   int
	Column int
}

// Location is the span of a piece of source text: a file path plus start and
// stop positions. Immutable once constructed.
type Location struct {
	Path  Path
	Start Position
	Stop  Position
}

// NewLocation builds a single-line Location covering [startColumn, stopColumn)
// on the given 1-based line.
func NewLocation(path Path, line, startColumn, stopColumn int) Location {
	return Location{
		Path:  path,
		Start: Position{Line: line, Column: startColumn},
		Stop:  Position{Line: line, Column: stopColumn},
	}
}

// Compare orders positions by line, then column.
func (p Position) Compare(other Position) int {
	if p.Line != other.Line {
		if p.Line < other.Line {
			return -1
		}

		return 1
	}

	switch {
	case p.Column < other.Column:
		return -1
	case p.Column > other.Column:
		return 1
	default:
		return 0
	}
}

// Compare orders locations by path, then start, then stop position.
func (l Location) Compare(other Location) int {
	if l.Path != other.Path {
		if l.Path < other.Path {
			return -1
		}

		return 1
	}

	if c := l.Start.Compare(other.Start); c != 0 {
		return c
	}

	return l.Stop.Compare(other.Stop)
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d-%d:%d", l.Path, l.Start.Line, l.Start.Column, l.Stop.Line, l.Stop.Column)
}
