package domain

import (
	m "github.com/leriomaggio/pyre-check/internal/model"
)

// ResolveMode combines file-level metadata with the global configuration into
// the analysis mode for a file. Infer from the configuration beats everything;
// strict beats declare; either flag may come from the configuration or the
// file's own markers.
func ResolveMode(metadata m.Metadata, configuration m.Configuration) m.Mode {
	switch {
	case configuration.Infer:
		return m.ModeInfer
	case configuration.Strict || metadata.Strict:
		return m.ModeStrict
	case configuration.Declare || metadata.Declare:
		return m.ModeDeclare
	default:
		return m.ModeDefault
	}
}
