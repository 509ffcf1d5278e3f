// Package domain contains the core metadata extraction and analysis logic.
package domain

import (
	"strconv"
	"strings"

	m "github.com/leriomaggio/pyre-check/internal/model"
)

const (
	markerIgnore     = "pyre-ignore"
	markerFixme      = "pyre-fixme"
	markerTypeIgnore = "type: ignore"

	markerDebug   = "pyre-debug"
	markerStrict  = "pyre-strict"
	markerDeclare = "pyre-do-not-check"
)

// Assembled so that scanning this repository's own sources does not trip the
// autogeneration check.
var generatedMarkers = []string{
	"@" + "generated",
	"@" + "auto-" + "generated",
}

// ExtractMetadata scans the lines of a file once, left to right, and collects
// the file-level analysis flags and suppression directives. Matching is
// case-insensitive; reported columns are byte offsets into the line.
// Suppressions are accumulated in forward source order. Extraction never
// fails: malformed directives degrade to an empty code list and empty input
// yields a zero LineCount.
func ExtractMetadata(path m.Path, lines []string) m.Metadata {
	metadata := m.Metadata{Version: m.DefaultVersion, LineCount: len(lines)}
	versionSet := false

	for index, line := range lines {
		lowered := strings.ToLower(line)
		trimmed := strings.TrimSpace(lowered)

		if !versionSet && strings.HasPrefix(trimmed, "#!") && strings.Contains(trimmed, "python2") {
			metadata.Version = 2
			versionSet = true
		}

		if strings.HasPrefix(trimmed, "#") {
			if strings.Contains(trimmed, markerDebug) {
				metadata.Debug = true
			}

			if strings.Contains(trimmed, markerStrict) {
				metadata.Strict = true
			}

			if strings.Contains(trimmed, markerDeclare) {
				metadata.Declare = true
			}
		}

		for _, marker := range generatedMarkers {
			if strings.Contains(lowered, marker) {
				metadata.Autogenerated = true

				break
			}
		}

		if suppression, ok := detectSuppression(path, index, line, lowered, trimmed); ok {
			metadata.Suppressions = append(metadata.Suppressions, suppression)
		}
	}

	return metadata
}

// detectSuppression checks a single line for a suppression directive. At most
// one directive is recorded per line; pyre-ignore wins over pyre-fixme, which
// wins over the legacy type: ignore form.
func detectSuppression(path m.Path, index int, line, lowered, trimmed string) (m.Suppression, bool) {
	var (
		kind   m.SuppressionKind
		marker string
	)

	switch {
	case strings.Contains(lowered, markerIgnore):
		kind, marker = m.SuppressionIgnore, markerIgnore
	case strings.Contains(lowered, markerFixme):
		kind, marker = m.SuppressionFixme, markerFixme
	case strings.Contains(lowered, markerTypeIgnore):
		kind, marker = m.SuppressionTypeIgnore, markerTypeIgnore
	default:
		return m.Suppression{}, false
	}

	// The column must index the original line. Lowering the whole line can
	// change byte lengths for non-ASCII runes, so the marker is located with
	// an ASCII case fold against the original bytes instead.
	column := indexFold(line, marker)
	if column < 0 {
		// Detection and location lookup must agree; a miss here means the
		// two rules drifted apart.
		panic("suppression marker vanished between detection and location lookup")
	}

	// A directive on its own full-line comment suppresses the following
	// line; a trailing comment suppresses its own line.
	ignoredLine := index + 1
	if strings.HasPrefix(trimmed, "#") {
		ignoredLine = index + 2
	}

	return m.Suppression{
		Kind:        kind,
		IgnoredLine: ignoredLine,
		Codes:       parseSuppressionCodes(lowered),
		Location:    m.NewLocation(path, index+1, column, len(line)),
	}, true
}

// parseSuppressionCodes scans the line for the first occurrence of
// pyre-ignore[...] or pyre-fixme[...] whose bracket holds only digits, commas
// and spaces, and parses the digit runs as error codes. Absent or malformed
// brackets yield an empty list.
func parseSuppressionCodes(lowered string) []int {
	for offset := 0; offset < len(lowered); {
		relative, marker := nextCodeMarker(lowered[offset:])
		if relative < 0 {
			return nil
		}

		next := offset + relative + len(marker)

		codes, ok := parseBracketCodes(lowered[next:])
		if ok {
			return codes
		}

		offset = next
	}

	return nil
}

// indexFold returns the byte offset of the first occurrence of marker in
// line, matching ASCII letters case-insensitively. marker must be lowercase
// ASCII.
func indexFold(line, marker string) int {
	for i := 0; i+len(marker) <= len(line); i++ {
		if matchFold(line[i:], marker) {
			return i
		}
	}

	return -1
}

func matchFold(s, marker string) bool {
	for j := 0; j < len(marker); j++ {
		c := s[j]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}

		if c != marker[j] {
			return false
		}
	}

	return true
}

// nextCodeMarker returns the earliest occurrence of either code-carrying
// marker within s, or -1 when neither occurs.
func nextCodeMarker(s string) (int, string) {
	ignoreIndex := strings.Index(s, markerIgnore)
	fixmeIndex := strings.Index(s, markerFixme)

	switch {
	case ignoreIndex < 0:
		return fixmeIndex, markerFixme
	case fixmeIndex < 0 || ignoreIndex <= fixmeIndex:
		return ignoreIndex, markerIgnore
	default:
		return fixmeIndex, markerFixme
	}
}

func parseBracketCodes(rest string) ([]int, bool) {
	if !strings.HasPrefix(rest, "[") {
		return nil, false
	}

	end := -1

	for i := 1; i < len(rest); i++ {
		c := rest[i]
		if c == ']' {
			end = i

			break
		}

		if c != ',' && c != ' ' && (c < '0' || c > '9') {
			return nil, false
		}
	}

	if end < 0 {
		return nil, false
	}

	return splitCodes(rest[1:end]), true
}

// splitCodes splits the bracket body on runs of non-digit characters and
// parses each piece as an integer.
func splitCodes(body string) []int {
	var codes []int

	start := -1

	for i := 0; i <= len(body); i++ {
		if i < len(body) && body[i] >= '0' && body[i] <= '9' {
			if start < 0 {
				start = i
			}

			continue
		}

		if start >= 0 {
			if code, err := strconv.Atoi(body[start:i]); err == nil {
				codes = append(codes, code)
			}

			start = -1
		}
	}

	return codes
}
