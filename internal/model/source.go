package model

// Path represents a file system path.
type Path string

// Statement is an opaque parsed statement node. Parsing happens outside this
// core; statements are carried unmodified inside the SourceFile record.
type Statement any

// SourceFile is the per-file record handed to downstream consumers: the raw
// path, the canonical qualifier the file's declarations are registered under,
// the extracted metadata, and the carried parser output.
type SourceFile struct {
	Path       Path
	Qualifier  []string
	Metadata   Metadata
	Statements []Statement
	Docstring  *string
}
