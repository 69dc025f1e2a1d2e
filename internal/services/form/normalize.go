package form

import "strings"

// NormalizeName canonicalizes a free-text horse, jockey, trainer, or track
// name for cross-source matching. Every source's names go through this
// before any lookup, so two raw strings differing only in case or
// surrounding whitespace resolve to the same key. No fuzzy matching: a
// variant spelling simply fails to enrich.
func NormalizeName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
