package domain

import (
	m "github.com/leriomaggio/pyre-check/internal/model"
)

// BuildSourceFile assembles the record downstream consumers work with: the
// derived qualifier, the extracted metadata, and the parser output carried
// unmodified. Fails only when the qualifier cannot be derived.
func BuildSourceFile(path m.Path, lines []string, statements []m.Statement, docstring *string) (m.SourceFile, error) {
	qualifier, err := DeriveQualifier(path)
	if err != nil {
		return m.SourceFile{}, err
	}

	return m.SourceFile{
		Path:       path,
		Qualifier:  qualifier,
		Metadata:   ExtractMetadata(path, lines),
		Statements: statements,
		Docstring:  docstring,
	}, nil
}
