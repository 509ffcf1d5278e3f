package model

// DefaultVersion is the language version assumed when no shebang hints at a
// legacy interpreter.
const DefaultVersion = 3

// Metadata holds the file-level analysis flags and suppression directives
// extracted from a single source file. Built once per file and immutable
// thereafter, so values can be shared freely across workers.
type Metadata struct {
	Autogenerated bool
	Debug         bool
	Declare       bool
	Strict        bool
	Version       int
	Suppressions  []Suppression
	LineCount     int
}
