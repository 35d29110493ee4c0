// Package cui validates Romanian company tax identifiers (CUI/CIF).
package cui

import (
	"strings"
	"unicode"
)

const (
	MinLength = 2
	MaxLength = 10

	// VATPrefix marks a VAT-registered company.
	VATPrefix = "RO"
)

// controlWeights apply to the nine payload digits after left padding.
var controlWeights = [MaxLength - 1]int{7, 5, 3, 2, 1, 7, 5, 3, 2}

// Reason names why a CUI was rejected.
type Reason string

const (
	ReasonWrongLength Reason = "WRONG_LENGTH"
	ReasonNonDigit    Reason = "NON_DIGIT"
	ReasonBadChecksum Reason = "BAD_CHECKSUM"
)

// Normalize removes whitespace and an optional leading "RO" (any case).
func Normalize(raw string) string {
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
	if len(s) >= len(VATPrefix) && strings.EqualFold(s[:len(VATPrefix)], VATPrefix) {
		s = s[len(VATPrefix):]
	}
	return s
}

// Validate reports whether raw is a valid CUI.
func Validate(raw string) bool {
	return Check(raw) == ""
}

// Check returns the reason raw is not a valid CUI, or an empty Reason.
func Check(raw string) Reason {
	s := Normalize(raw)
	if len(s) < MinLength || len(s) > MaxLength {
		return ReasonWrongLength
	}
	if !allDigits(s) {
		return ReasonNonDigit
	}
	want, _ := ControlDigit(s[:len(s)-1])
	if int(s[len(s)-1]-'0') != want {
		return ReasonBadChecksum
	}
	return ""
}

// ControlDigit computes the control digit for a payload of one to nine
// digits. The payload is left padded with zeros to nine digits, weighted,
// and the sum times ten is reduced modulo 11; a result of 10 becomes 0.
func ControlDigit(payload string) (int, bool) {
	if len(payload) < MinLength-1 || len(payload) > MaxLength-1 || !allDigits(payload) {
		return 0, false
	}
	padded := strings.Repeat("0", len(controlWeights)-len(payload)) + payload

	sum := 0
	for i, w := range controlWeights {
		sum += int(padded[i]-'0') * w
	}
	control := sum * 10 % 11
	if control == 10 {
		control = 0
	}
	return control, true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
