package pipeline

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// KeyFunc derives a line's comparison key.
type KeyFunc func(line string) string

// ExactKey uses the line itself as its comparison key.
func ExactKey(line string) string {
	return line
}

// FoldedKey returns a KeyFunc that lower-cases lines using Unicode default
// casing rules. The returned function keeps caser state and must not be
// shared between goroutines.
func FoldedKey() KeyFunc {
	caser := cases.Lower(language.Und)
	return caser.String
}

// KeyFor returns FoldedKey() when ignoreCase is set and ExactKey otherwise.
func KeyFor(ignoreCase bool) KeyFunc {
	if ignoreCase {
		return FoldedKey()
	}
	return ExactKey
}
