package model

// SuppressionKind represents the category of suppression directive.
type SuppressionKind string

const (
	// SuppressionIgnore represents a `pyre-ignore` comment directive.
	SuppressionIgnore SuppressionKind = "pyre-ignore"
	// SuppressionFixme represents a `pyre-fixme` comment directive.
	SuppressionFixme SuppressionKind = "pyre-fixme"
	// SuppressionTypeIgnore represents a legacy `type: ignore` comment.
	SuppressionTypeIgnore SuppressionKind = "type-ignore"
)

// Suppression is a single suppression directive found in a source file.
// IgnoredLine is the 1-based line whose diagnostics the directive silences,
// which is the directive's own line for trailing comments and the following
// line for full-line comments. Codes lists the numeric error codes the
// directive targets; an empty list means "suppress everything" (interpreted
// downstream). Location spans the directive text itself, always on the
// directive's own physical line.
type Suppression struct {
	Kind        SuppressionKind
	IgnoredLine int
	Codes       []int
	Location    Location
}
