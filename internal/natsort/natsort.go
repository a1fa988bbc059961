// Package natsort implements numeric-aware natural ordering of strings:
// runs of ASCII digits compare by numeric value, everything else bytewise,
// so "item2" sorts before "item10".
package natsort

import (
	"cmp"
	"strings"
)

// Compare orders a and b naturally. It returns a negative number when a
// sorts before b, a positive number when b sorts before a, and zero when
// they tie. Digit runs of equal numeric value (e.g. "01" and "1") tie.
func Compare(a, b string) int {
	for a != "" && b != "" {
		if isDigit(a[0]) && isDigit(b[0]) {
			var da, db string
			da, a = digits(a)
			db, b = digits(b)
			if c := compareDigits(da, db); c != 0 {
				return c
			}
			continue
		}
		if a[0] != b[0] {
			return cmp.Compare(a[0], b[0])
		}
		a, b = a[1:], b[1:]
	}
	return cmp.Compare(len(a), len(b))
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// digits splits the leading digit run off s.
func digits(s string) (run, rest string) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

// compareDigits compares two digit runs by numeric value without parsing
// them, so arbitrarily long runs never overflow.
func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		return cmp.Compare(len(a), len(b))
	}
	return strings.Compare(a, b)
}
