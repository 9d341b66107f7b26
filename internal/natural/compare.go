package natural

import (
	"cmp"
	"strings"
)

// Compare returns -1 if a sorts before b, +1 if a sorts after b and 0 if the
// two strings are identical under natural ordering.
//
// The result is a total order: Compare(a, b) == -Compare(b, a) for every
// pair, and only identical strings compare equal.
func Compare(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		aDigit, bDigit := isDigit(a[i]), isDigit(b[j])
		if aDigit != bDigit {
			// Digits are "lower" than everything else.
			if aDigit {
				return -1
			}
			return 1
		}

		ai := tokenEnd(a, i, aDigit)
		bj := tokenEnd(b, j, bDigit)

		var c int
		if aDigit {
			c = compareNumeric(a[i:ai], b[j:bj])
		} else {
			c = strings.Compare(a[i:ai], b[j:bj])
		}
		if c != 0 {
			return c
		}
		i, j = ai, bj
	}

	switch {
	case i < len(a):
		return 1
	case j < len(b):
		return -1
	default:
		return 0
	}
}

// Less reports whether a sorts strictly before b in natural order.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// Reverse returns an ordering that is the negation of compare.
// Pairs that compare equal under compare stay equal.
func Reverse(compare func(a, b string) int) func(a, b string) int {
	return func(a, b string) int {
		return compare(b, a)
	}
}

// compareNumeric orders two digit runs by value, then by length.
func compareNumeric(x, y string) int {
	sx := strings.TrimLeft(x, "0")
	sy := strings.TrimLeft(y, "0")

	// Without leading zeros a longer run is a larger number.
	if len(sx) != len(sy) {
		return cmp.Compare(len(sx), len(sy))
	}
	if c := strings.Compare(sx, sy); c != 0 {
		return c
	}
	return cmp.Compare(len(x), len(y))
}

// tokenEnd returns the index just past the run starting at start whose bytes
// share the digit class given by digit.
func tokenEnd(s string, start int, digit bool) int {
	end := start
	for end < len(s) && isDigit(s[end]) == digit {
		end++
	}
	return end
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
