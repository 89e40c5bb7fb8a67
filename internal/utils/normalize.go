package utils

import (
	"strings"
	"unicode"
)

// NormalizeName converts a display name into the canonical form stored in the
// *_normalized columns: uppercased, punctuation removed, whitespace collapsed
// to single spaces. Matching against these columns is what makes search
// case- and punctuation-insensitive.
func NormalizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	lastSpace := true
	for _, r := range name {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToUpper(r))
			lastSpace = false
		case unicode.IsSpace(r):
			if !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
		default:
			// Punctuation and symbols are dropped entirely.
		}
	}
	return strings.TrimRight(b.String(), " ")
}
