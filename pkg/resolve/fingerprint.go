// Package resolve implements the resolution stage: merging staged
// extractions into the canonical knowledge graph with deterministic
// scoring and full provenance.
package resolve

import (
	"strings"
	"unicode"
)

// Fingerprint normalizes free text into a dedup key: lowercase, all
// punctuation except hyphens removed, whitespace collapsed to single
// spaces. Two phrasings that differ only in case, punctuation, or
// spacing fingerprint identically.
func Fingerprint(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	lastSpace := true
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-':
			b.WriteRune(r)
			lastSpace = false
		case unicode.IsSpace(r):
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		default:
			// Punctuation vanishes without leaving a space.
		}
	}
	return strings.TrimRight(b.String(), " ")
}
