// Package iban validates and formats Romanian IBANs.
//
// A Romanian IBAN is 24 characters: "RO", two check digits, a four letter
// bank code and a sixteen character account number. The check digits make
// the whole value congruent to 1 modulo 97 once the first four characters
// are moved to the end and letters are expanded to numbers (A=10 … Z=35).
package iban

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

const (
	// Length of a Romanian IBAN.
	Length = 24
	// CountryCode prefixes every Romanian IBAN.
	CountryCode = "RO"

	bankCodeLength = 4
	accountLength  = 16
	groupSize      = 4
)

var shape = regexp.MustCompile(`^RO[0-9]{2}[A-Z]{4}[A-Z0-9]{16}$`)

// Reason names why an IBAN was rejected.
type Reason string

const (
	ReasonWrongLength Reason = "WRONG_LENGTH"
	ReasonBadCountry  Reason = "BAD_COUNTRY"
	ReasonBadShape    Reason = "BAD_SHAPE"
	ReasonBadChecksum Reason = "BAD_CHECKSUM"
)

// ErrNotAlphanumeric is returned by Mod97 for characters outside 0-9 and A-Z.
var ErrNotAlphanumeric = errors.New("iban: character is not a digit or an uppercase letter")

// Clean removes whitespace and uppercases the value.
func Clean(raw string) string {
	return strings.ToUpper(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw))
}

// Validate reports whether raw is a valid Romanian IBAN.
func Validate(raw string) bool {
	return Check(raw) == ""
}

// Check returns the reason raw is not a valid Romanian IBAN, or an empty
// Reason when it is valid.
func Check(raw string) Reason {
	s := Clean(raw)
	if len(s) != Length {
		return ReasonWrongLength
	}
	if !strings.HasPrefix(s, CountryCode) {
		return ReasonBadCountry
	}
	if !shape.MatchString(s) {
		return ReasonBadShape
	}
	rem, err := Mod97(rearrange(s))
	if err != nil || rem != 1 {
		return ReasonBadChecksum
	}
	return ""
}

// Format groups the cleaned value into blocks of four characters separated
// by single spaces. It does not validate.
func Format(raw string) string {
	s := Clean(raw)
	var b strings.Builder
	b.Grow(len(s) + len(s)/groupSize)
	for i := 0; i < len(s); i += groupSize {
		if i > 0 {
			b.WriteByte(' ')
		}
		end := min(i+groupSize, len(s))
		b.WriteString(s[i:end])
	}
	return b.String()
}

// BankCode returns the four letter bank code of a valid IBAN.
func BankCode(raw string) (string, bool) {
	s := Clean(raw)
	if Check(s) != "" {
		return "", false
	}
	return s[4 : 4+bankCodeLength], true
}

// CheckDigits computes the two IBAN check digits for a Romanian bank code
// and account number.
func CheckDigits(bankCode, account string) (string, error) {
	bban := Clean(bankCode) + Clean(account)
	if len(bban) != bankCodeLength+accountLength {
		return "", fmt.Errorf("iban: bank code and account must total %d characters, got %d",
			bankCodeLength+accountLength, len(bban))
	}
	if !shape.MatchString(CountryCode + "00" + bban) {
		return "", fmt.Errorf("iban: malformed bank code or account %q", bban)
	}
	rem, err := Mod97(bban + CountryCode + "00")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%02d", 98-rem), nil
}

// Mod97 returns the remainder modulo 97 of s read as a decimal number after
// each letter is replaced by its two-digit value (A=10 … Z=35).
//
// The expanded number can be far wider than any machine integer, so it is
// folded one digit at a time: remainder = (remainder*10 + digit) mod 97.
func Mod97(s string) (int, error) {
	rem := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			rem = (rem*10 + int(c-'0')) % 97
		case c >= 'A' && c <= 'Z':
			v := int(c-'A') + 10
			rem = (rem*10 + v/10) % 97
			rem = (rem*10 + v%10) % 97
		default:
			return 0, fmt.Errorf("%w: %q", ErrNotAlphanumeric, c)
		}
	}
	return rem, nil
}

// rearrange moves the country code and check digits to the end.
func rearrange(s string) string {
	return s[4:] + s[:4]
}
