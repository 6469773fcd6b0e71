package util

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Slugify normalizes a display name into a URL-safe token: lowercase,
// accents stripped, restricted to latin letters, digits, the Thai block
// and hyphens, with whitespace collapsed into single hyphens.
// Returns "" when nothing survives the filter.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = norm.NFD.String(s)

	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 0x0300 && r <= 0x036f:
			// combining diacritical marks left over from NFD
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r >= 'ก' && r <= '๙':
			b.WriteRune(r)
		case r == '-' || r == ' ' || r == '\t' || r == '\n' || r == '\r':
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), "-")
}
