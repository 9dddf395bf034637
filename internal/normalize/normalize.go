// Package normalize folds accented Latin characters down to their
// plain-ASCII equivalents, for search providers that want diacritics
// to collapse together ("café" and "cafe" tokenizing to the same
// word). It is adapted from sinanm89-ditong's internal/normalizer
// package, trimmed to the fold-to-ASCII half of that package's job:
// this library's element comparers (comparer.InvariantIgnoreCase,
// comparer.CurrentCultureIgnoreCase) already own case folding, so
// normalize only needs to own the diacritic side.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// charMap maps a common accented rune to its ASCII-run replacement.
// Kept as a direct table for the frequent cases so the common path
// avoids a Unicode decomposition round-trip; NFD decomposition below
// is the fallback for everything else.
var charMap = map[rune]string{
	'ç': "c", 'Ç': "c",
	'ş': "s", 'Ş': "s",
	'ğ': "g", 'Ğ': "g",
	'ı': "i", 'İ': "i",
	'ä': "a", 'Ä': "a",
	'ö': "o", 'Ö': "o",
	'ü': "u", 'Ü': "u",
	'ß': "ss",
	'à': "a", 'â': "a", 'æ': "ae",
	'é': "e", 'è': "e", 'ê': "e", 'ë': "e",
	'î': "i", 'ï': "i",
	'ô': "o", 'œ': "oe",
	'ù': "u", 'û': "u",
	'ÿ': "y",
	'á': "a", 'í': "i", 'ó': "o", 'ú': "u",
	'ñ': "n", 'Ñ': "n",
	'ã': "a", 'õ': "o",
	'ą': "a", 'ć': "c", 'ę': "e", 'ł': "l",
	'ń': "n", 'ś': "s", 'ź': "z", 'ż': "z",
	'č': "c", 'ď': "d", 'ě': "e", 'ň': "n",
	'ř': "r", 'š': "s", 'ť': "t", 'ů': "u", 'ž': "z",
	'å': "a", 'Å': "a",
	'ø': "o", 'Ø': "o",
	'ă': "a", 'ț': "t", 'ș': "s",
}

// foldRune folds a single rune to its ASCII equivalent, preserving
// case (callers that also want case folding should apply one of the
// comparer package's fold variants afterward).
func foldRune(r rune) string {
	if ascii, ok := charMap[r]; ok {
		if unicode.IsUpper(r) {
			return strings.ToUpper(ascii)
		}
		return ascii
	}

	decomposed := norm.NFD.String(string(r))
	var out strings.Builder
	for _, c := range decomposed {
		if unicode.Is(unicode.Mn, c) { // combining mark, drop it
			continue
		}
		if c < 128 {
			out.WriteRune(c)
		}
	}
	if out.Len() > 0 {
		return out.String()
	}
	return string(r)
}

// Fold returns s with every accented Latin character replaced by its
// plain-ASCII equivalent. Characters outside the direct table that
// have no ASCII decomposition (CJK, Cyrillic, Arabic, …) pass through
// unchanged.
func Fold(s string) string {
	var out strings.Builder
	out.Grow(len(s))
	for _, r := range s {
		out.WriteString(foldRune(r))
	}
	return out.String()
}
