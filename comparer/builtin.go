package comparer

import (
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Ordinal compares runes and strings by exact codepoint equality.
var Ordinal StringComparer = ordinalComparer{}

type ordinalComparer struct{}

func (ordinalComparer) Equal(a, b rune) bool         { return a == b }
func (ordinalComparer) EqualString(a, b string) bool { return a == b }

// InvariantIgnoreCase folds runes/strings using a locale-independent
// lower-case mapping (golang.org/x/text/cases.Fold), so two strings
// differing only in case compare equal regardless of the process locale.
var InvariantIgnoreCase StringComparer = &foldComparer{caser: cases.Fold()}

// CurrentCultureIgnoreCase folds using the ambient locale's casing
// rules (e.g. Turkish dotless i/İ), read once from the process
// environment (LC_ALL, then LANG) and falling back to locale-independent
// lower-casing (language.Und) when no locale is set or it cannot be
// parsed. Both paths lower-case rather than fold, so unlike
// InvariantIgnoreCase it does not equate e.g. "ß" and "ss".
var CurrentCultureIgnoreCase StringComparer = &foldComparer{caser: cases.Lower(currentLocale())}

func currentLocale() language.Tag {
	for _, name := range []string{"LC_ALL", "LANG"} {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		// Environment locale strings look like "tr_TR.UTF-8"; keep the
		// language/region prefix only.
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		v = strings.ReplaceAll(v, "_", "-")
		if tag, err := language.Parse(v); err == nil {
			return tag
		}
	}
	return language.Und
}

// foldComparer implements StringComparer over a golang.org/x/text/cases
// Caser. Rune-level equality folds each rune individually, which is
// sufficient for the single-character comparisons the Levenshtein
// kernel performs; EqualString folds the full string so that
// multi-rune casing rules (e.g. German ß) are respected end to end.
type foldComparer struct {
	caser cases.Caser
}

func (f *foldComparer) Equal(a, b rune) bool {
	return f.caser.String(string(a)) == f.caser.String(string(b))
}

func (f *foldComparer) EqualString(a, b string) bool {
	return f.caser.String(a) == f.caser.String(b)
}
