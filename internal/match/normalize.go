package match

import (
	"strings"
	"unicode"
)

// Normalize lowercases s and drops '_', '-' and spaces, so that
// "max_depth", "MaxDepth" and "max-depth" compare equal.
func Normalize(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}
		sb.WriteRune(unicode.ToLower(r))
	}

	return sb.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}
