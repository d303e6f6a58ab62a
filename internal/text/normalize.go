// Package text canonicalizes strings before any comparison. Raw input and
// raw target words must never be compared directly; everything goes through
// Normalize first so composed and decomposed forms of the same glyphs
// compare equal.
package text

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize trims surrounding whitespace and applies Unicode NFC. It is
// idempotent. No case folding is applied.
func Normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// Equals reports whether a and b are equal under normalization.
func Equals(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// HasPrefix reports whether normalized a starts with normalized b.
func HasPrefix(a, b string) bool {
	return strings.HasPrefix(Normalize(a), Normalize(b))
}

// RuneLen returns the rune count of the normalized form. Health, damage and
// score are all counted in these units.
func RuneLen(s string) int {
	return len([]rune(Normalize(s)))
}
