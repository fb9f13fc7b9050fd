package slug

import (
	"regexp"
	"strings"
)

var whitespace = regexp.MustCompile(`\s+`)

// Make derives a URL-safe identifier from a display name: lower-cased,
// every run of whitespace collapsed to a single hyphen. Deterministic and
// pure; distinct names can collapse to the same slug, so callers must not
// rely on it for uniqueness.
func Make(name string) string {
	return whitespace.ReplaceAllString(strings.ToLower(name), "-")
}
