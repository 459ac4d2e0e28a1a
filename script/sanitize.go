package script

import (
	"strings"
	"unicode"
)

// Sanitize strips every rune outside the Telugu block (U+0C00–U+0C7F),
// whitespace, and the zero-width space. Analyzers expect their input to
// have gone through this step (or an equivalent caller-side filter) so
// that segmentation only ever sees script runes and separators.
func Sanitize(text string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 0x0C00 && r <= 0x0C7F:
			return r
		case unicode.IsSpace(r):
			return r
		case r == zeroWidthSpace:
			return r
		default:
			return -1
		}
	}, text)
}
