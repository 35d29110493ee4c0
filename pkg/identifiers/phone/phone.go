// Package phone validates and normalizes Romanian phone numbers.
package phone

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/nyaruka/phonenumbers"
)

const (
	// CountryPrefix is the international prefix every normalized number uses.
	CountryPrefix = "+40"

	internationalDialPrefix = "0040"
	nationalTrunkPrefix     = "0"
	region                  = "RO"
)

// Accepts an optional +40, 0040 or 0 prefix followed by a mobile (7) or
// landline (2, 3) number of nine digits.
var pattern = regexp.MustCompile(`^(?:\+40|0040|0)?[237][0-9]{8}$`)

// Kind is the broad class of a phone number.
type Kind string

const (
	KindMobile   Kind = "mobile"
	KindLandline Kind = "landline"
	KindUnknown  Kind = "unknown"
)

// Strip removes whitespace, dashes, dots, slashes and parentheses.
func Strip(raw string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		switch r {
		case '-', '.', '/', '(', ')':
			return -1
		}
		return r
	}, raw)
}

// Validate reports whether raw is a Romanian mobile or landline number in
// national or international form.
func Validate(raw string) bool {
	return pattern.MatchString(Strip(raw))
}

// Normalize rewrites raw into +40 international form. It is best effort:
// it does not validate, never fails, and Normalize(Normalize(x)) equals
// Normalize(x). Numbers already carrying another country code keep it.
func Normalize(raw string) string {
	s := Strip(raw)
	switch {
	case s == "":
		return ""
	case strings.HasPrefix(s, CountryPrefix):
		return s
	case strings.HasPrefix(s, internationalDialPrefix):
		return CountryPrefix + s[len(internationalDialPrefix):]
	case strings.HasPrefix(s, "+"):
		return s
	case strings.HasPrefix(s, "00"):
		return "+" + s[2:]
	case strings.HasPrefix(s, nationalTrunkPrefix):
		return CountryPrefix + s[len(nationalTrunkPrefix):]
	default:
		return CountryPrefix + s
	}
}

// Classify returns whether a valid number is a mobile or a landline.
// Invalid numbers are KindUnknown.
func Classify(raw string) Kind {
	if !Validate(raw) {
		return KindUnknown
	}
	normalized := Normalize(raw)

	if num, err := phonenumbers.Parse(normalized, region); err == nil {
		switch phonenumbers.GetNumberType(num) {
		case phonenumbers.MOBILE:
			return KindMobile
		case phonenumbers.FIXED_LINE:
			return KindLandline
		}
	}

	// Number ranges unknown to the metadata fall back to the leading digit.
	if normalized[len(CountryPrefix)] == '7' {
		return KindMobile
	}
	return KindLandline
}

// E164 returns the number formatted by libphonenumber, or an error when it
// cannot be parsed.
func E164(raw string) (string, error) {
	num, err := phonenumbers.Parse(Normalize(raw), region)
	if err != nil {
		return "", err
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
