//go:build property
// +build property

package phone

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestNormalizeIdempotentProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 1000
	properties := gopter.NewProperties(parameters)

	properties.Property("normalize is a fixed point", prop.ForAll(
		func(s string) bool {
			once := Normalize(s)
			return Normalize(once) == once
		},
		gen.AnyString(),
	))

	properties.Property("valid national numbers normalize to +40", prop.ForAll(
		func(first rune, rest []rune) bool {
			national := "0" + string(first) + string(rest)
			return Validate(national) && Normalize(national) == "+40"+national[1:]
		},
		gen.OneConstOf('2', '3', '7'),
		gen.SliceOfN(8, gen.NumChar()),
	))

	properties.TestingRun(t)
}
