// Package canon derives a stable join key from a free-text shop name.
// Operators spell the same business many ways ("OM SHARMA", "Om  Sharma
// Shop", "om sharma-store"); the canonical key is the only customer
// identifier in the ledger, so two spellings a human would read as the same
// shop must collapse to one key.
package canon

import (
	"strings"
	"unicode"
)

// suffixVocab lists business-type words that carry no identity. They are
// stripped from the end of a name, both as a separate trailing word and
// glued onto the previous word.
var suffixVocab = []string{
	"shop",
	"store",
	"stores",
	"mart",
	"traders",
	"trader",
	"dairy",
	"kirana",
	"general",
	"agency",
	"agencies",
	"enterprises",
	"enterprise",
	"provisions",
	"bhandar",
	"centre",
	"center",
}

// Key canonicalizes a raw shop name. It is a total function: any input maps
// to a key, and whitespace-only or punctuation-only input maps to "".
// Key(Key(x)) == Key(x) for all x.
func Key(raw string) string {
	s := strings.ToLower(raw)

	// Keep letters, digits and spaces only.
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	s = strings.Join(strings.Fields(b.String()), " ")

	// Strip trailing vocabulary words until nothing changes. A single sweep
	// is not enough: stripping one word can expose another ("om sharma
	// general store"), and glued compounds would otherwise survive one pass
	// and violate idempotence.
	for {
		before := s
		for _, word := range suffixVocab {
			if rest, ok := strings.CutSuffix(s, " "+word); ok && rest != "" {
				s = strings.TrimRight(rest, " ")
			}
			if rest, ok := strings.CutSuffix(s, word); ok && rest != "" {
				s = strings.TrimRight(rest, " ")
			}
		}
		if s == before {
			break
		}
	}

	// Removing the spaces can glue a space-split vocabulary word back
	// together ("gupta st ore" becomes "guptastore"), so the glued sweep
	// repeats on the spaceless string. The key must survive its own
	// canonicalization, and keys carry no spaces.
	s = strings.ReplaceAll(s, " ", "")
	for {
		before := s
		for _, word := range suffixVocab {
			if rest, ok := strings.CutSuffix(s, word); ok && rest != "" {
				s = rest
			}
		}
		if s == before {
			break
		}
	}

	return s
}
