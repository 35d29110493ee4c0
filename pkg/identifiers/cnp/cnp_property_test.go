//go:build property
// +build property

package cnp_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"roident/pkg/identifiers/cnp"
	"roident/pkg/identifiers/county"
)

// TestGeneratedCNPsDecode builds CNPs from their fields and checks that
// every one is accepted and decodes back to the same birth date.
func TestGeneratedCNPsDecode(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	counties := make([]interface{}, 0)
	for _, c := range county.CNPCountyCodes() {
		counties = append(counties, c)
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("valid fields with the right control digit decode", prop.ForAll(
		func(sex, yy, mm, dd int, countyCode string, seq int) bool {
			prefix := fmt.Sprintf("%d%02d%02d%02d%s%03d", sex, yy, mm, dd, countyCode, seq)
			control, err := cnp.ControlDigit(prefix)
			if err != nil {
				return false
			}
			res := cnp.Validate(fmt.Sprintf("%s%d", prefix, control), now)
			if res.Reason == cnp.ReasonFutureDate {
				return true
			}
			if !res.Valid {
				return false
			}
			b := res.Decoded.BirthDate
			return b.Year()%100 == yy && int(b.Month()) == mm && b.Day() == dd
		},
		gen.IntRange(1, 9),
		gen.IntRange(0, 99),
		gen.IntRange(1, 12),
		gen.IntRange(1, 28),
		gen.OneConstOf(counties...),
		gen.IntRange(0, 999),
	))

	properties.Property("exactly one control digit is accepted", prop.ForAll(
		func(yy, mm, dd, seq int) bool {
			prefix := fmt.Sprintf("1%02d%02d%02d40%03d", yy, mm, dd, seq)
			valid := 0
			for c := 0; c <= 9; c++ {
				res := cnp.Validate(fmt.Sprintf("%s%d", prefix, c), now)
				if res.Valid {
					valid++
				} else if res.Reason != cnp.ReasonBadChecksum {
					return false
				}
			}
			return valid == 1
		},
		gen.IntRange(0, 99),
		gen.IntRange(1, 12),
		gen.IntRange(1, 28),
		gen.IntRange(0, 999),
	))

	properties.Property("any other length is WRONG_LENGTH", prop.ForAll(
		func(s string) bool {
			return cnp.Validate(s, now).Reason == cnp.ReasonWrongLength
		},
		gen.NumString().SuchThat(func(s string) bool { return len(s) != cnp.Length }),
	))

	properties.Property("mask keeps the first six characters", prop.ForAll(
		func(digits []rune) bool {
			s := string(digits)
			masked := cnp.Mask(s)
			return len(masked) == cnp.Length && masked[:6] == s[:6] && masked[6:] == "*******"
		},
		gen.SliceOfN(cnp.Length, gen.NumChar()),
	))

	properties.TestingRun(t)
}
