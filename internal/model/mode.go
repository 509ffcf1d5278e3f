package model

// Mode selects the type-checking strictness for a file. It is derived from
// Metadata plus the global Configuration and never stored.
type Mode string

// Available Mode values.
const (
	ModeDefault Mode = "default"
	ModeDeclare Mode = "declare"
	ModeStrict  Mode = "strict"
	ModeInfer   Mode = "infer"
)
