package model

// FileReport holds the scan result for a single source file: the derived
// qualifier, the resolved mode, and the extracted metadata.
type FileReport struct {
	Path      Path
	Qualifier []string
	Mode      Mode
	Metadata  Metadata
}
