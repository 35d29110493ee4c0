package cnp

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"roident/pkg/identifiers/county"
)

// Length is the number of digits in a CNP.
const Length = 13

// MaskChar replaces the hidden part of a masked CNP.
const MaskChar = '*'

// visiblePrefix is how many leading characters Mask keeps.
const visiblePrefix = 6

// controlWeights are applied positionally to the first twelve digits.
var controlWeights = [12]int{2, 7, 9, 1, 4, 6, 3, 5, 8, 2, 7, 9}

// Gender decoded from the sex digit. GenderUnknown is used for foreign
// citizens (sex digit 9), whose CNP does not encode sex.
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = ""
)

// Decoded is a fully validated CNP and the fields embedded in it.
// It is only ever produced when every check has passed.
type Decoded struct {
	CNP        string
	SexDigit   int
	Gender     Gender
	BirthDate  time.Time
	CountyCode string
	CountyName string
	Sequence   string
	Control    int
	// Resident is set for sex digits 7 and 8 (foreign residents).
	Resident bool
	// Foreign is set for sex digit 9 (foreign citizens).
	Foreign bool
}

// Masked returns the CNP with everything after the birth date hidden.
func (d Decoded) Masked() string {
	return Mask(d.CNP)
}

// AgeAt returns the age in completed years at now.
func (d Decoded) AgeAt(now time.Time) int {
	years := now.Year() - d.BirthDate.Year()
	if now.Month() < d.BirthDate.Month() ||
		(now.Month() == d.BirthDate.Month() && now.Day() < d.BirthDate.Day()) {
		years--
	}
	return years
}

// IsAdultAt reports whether the holder is at least 18 years old at now.
func (d Decoded) IsAdultAt(now time.Time) bool {
	return d.AgeAt(now) >= 18
}

// Result is the outcome of Validate. Decoded is nil unless Valid is true;
// Reason is empty when Valid is true.
type Result struct {
	Valid   bool
	Reason  Reason
	Decoded *Decoded
}

// Validate checks raw against every CNP rule and reports the first rule
// that fails. Whitespace and dashes are removed before checking. now is the
// reference time for the future birth date check.
//
// Validate never panics, whatever the input.
func Validate(raw string, now time.Time) Result {
	d, reason := decode(Clean(raw), now)
	if reason != "" {
		return Result{Reason: reason}
	}
	return Result{Valid: true, Decoded: &d}
}

// Parse is like Validate but returns an error carrying the failure reason
// instead of a Result. A partially decoded value is never returned.
func Parse(raw string, now time.Time) (Decoded, error) {
	d, reason := decode(Clean(raw), now)
	if reason != "" {
		return Decoded{}, &ValidationError{Reason: reason}
	}
	return d, nil
}

// MustParse is like Parse but panics on invalid input.
// Use only in tests or with values known to be valid.
func MustParse(raw string, now time.Time) Decoded {
	d, err := Parse(raw, now)
	if err != nil {
		panic(err)
	}
	return d
}

// Clean removes whitespace and dashes.
func Clean(raw string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' {
			return -1
		}
		return r
	}, raw)
}

// Mask keeps the first six characters of a 13-character string and hides
// the rest. Inputs of any other length are fully masked. It does not
// validate the CNP.
func Mask(raw string) string {
	if utf8.RuneCountInString(raw) != Length {
		return strings.Repeat(string(MaskChar), Length)
	}
	runes := []rune(raw)
	return string(runes[:visiblePrefix]) + strings.Repeat(string(MaskChar), Length-visiblePrefix)
}

// ControlDigit computes the control digit for the first twelve digits of
// a CNP.
func ControlDigit(prefix string) (int, error) {
	if len(prefix) != Length-1 {
		return 0, &ValidationError{Reason: ReasonWrongLength}
	}
	if !allDigits(prefix) {
		return 0, &ValidationError{Reason: ReasonNonDigit}
	}
	return controlDigit(prefix), nil
}

func decode(s string, now time.Time) (Decoded, Reason) {
	if utf8.RuneCountInString(s) != Length {
		return Decoded{}, ReasonWrongLength
	}
	if !allDigits(s) {
		return Decoded{}, ReasonNonDigit
	}

	sex := digit(s[0])
	century, ok := centuryFor(sex)
	if !ok {
		return Decoded{}, ReasonBadSexDigit
	}

	countyCode := s[7:9]
	countyName, ok := county.CNPCountyName(countyCode)
	if !ok {
		return Decoded{}, ReasonBadCounty
	}

	year := century + digit(s[1])*10 + digit(s[2])
	month := digit(s[3])*10 + digit(s[4])
	day := digit(s[5])*10 + digit(s[6])
	birth, ok := calendarDate(year, month, day)
	if !ok {
		return Decoded{}, ReasonBadDate
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if birth.After(today) {
		return Decoded{}, ReasonFutureDate
	}

	control := controlDigit(s[:12])
	if control != digit(s[12]) {
		return Decoded{}, ReasonBadChecksum
	}

	return Decoded{
		CNP:        s,
		SexDigit:   sex,
		Gender:     genderFor(sex),
		BirthDate:  birth,
		CountyCode: countyCode,
		CountyName: countyName,
		Sequence:   s[9:12],
		Control:    control,
		Resident:   sex == 7 || sex == 8,
		Foreign:    sex == 9,
	}, ""
}

// centuryFor maps the sex digit to the first year of the birth century.
// Residents (7, 8) and foreigners (9) carry no century information; they
// are placed in the 1900s, which is an approximation callers rely on.
func centuryFor(sex int) (int, bool) {
	switch sex {
	case 1, 2:
		return 1900, true
	case 3, 4:
		return 1800, true
	case 5, 6:
		return 2000, true
	case 7, 8, 9:
		return 1900, true
	default:
		return 0, false
	}
}

func genderFor(sex int) Gender {
	switch sex {
	case 1, 3, 5, 7:
		return GenderMale
	case 2, 4, 6, 8:
		return GenderFemale
	default:
		return GenderUnknown
	}
}

// calendarDate builds the date and rejects values time.Date would
// normalise, such as February 30th or month 13.
func calendarDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func controlDigit(prefix string) int {
	sum := 0
	for i, w := range controlWeights {
		sum += digit(prefix[i]) * w
	}
	rem := sum % 11
	if rem == 10 {
		return 1
	}
	return rem
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func digit(b byte) int {
	return int(b - '0')
}
