// Package postal validates Romanian six-digit postal codes.
//
// Every leading digit is accepted. The county prefix ranges published by
// the postal operator overlap, so they are kept as reference data in
// package county and are not enforced here.
package postal

import (
	"strings"
	"unicode"
)

// Length of a Romanian postal code.
const Length = 6

// Normalize removes all whitespace.
func Normalize(raw string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
}

// Validate reports whether raw is exactly six ASCII digits once whitespace
// is removed.
func Validate(raw string) bool {
	s := Normalize(raw)
	if len(s) != Length {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
