package model

// Configuration is the global analysis configuration supplied by the CLI and
// the optional pyre.toml file. The three mode flags combine with per-file
// Metadata when resolving a Mode; Exclude and Reports steer scanning and
// persistence.
type Configuration struct {
	Infer   bool
	Strict  bool
	Declare bool
	Exclude []string
	Reports Path
}
