// Package normalize produces the canonical comparable form of a food label.
// Both the catalog (at load time) and the resolver (per lookup) run names
// through the same transform so comparisons happen in one shared key space.
package normalize

import "strings"

const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Label canonicalizes a raw food name: lower-cases it, turns underscores
// into spaces, strips all ASCII punctuation, and trims edge whitespace.
// Underscores are replaced before punctuation is stripped so that
// "apple_pie" becomes "apple pie" rather than "applepie". Internal runs of
// whitespace are deliberately left as-is. Empty input yields empty output.
func Label(raw string) string {
	if raw == "" {
		return ""
	}
	s := strings.ToLower(raw)
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.Map(func(r rune) rune {
		if strings.ContainsRune(asciiPunctuation, r) {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}
