package cui

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	valid := []string{
		"18547290",
		"RO18547290",
		"ro18547290",
		" RO 18547290 ",
		"18590893",
		"14349931",
		"14258450",
		"3618970",
		"19",
		"35",
		"124",
		"9999999994",
	}
	for _, v := range valid {
		assert.True(t, Validate(v), v)
	}

	tests := []struct {
		name   string
		input  string
		reason Reason
	}{
		{"empty", "", ReasonWrongLength},
		{"prefix only", "RO", ReasonWrongLength},
		{"single digit", "7", ReasonWrongLength},
		{"eleven digits", "12345678901", ReasonWrongLength},
		{"letters", "18A47290", ReasonNonDigit},
		{"dash", "1854-7290", ReasonNonDigit},
		{"wrong control digit", "18547291", ReasonBadChecksum},
		{"two digit mismatch", "12", ReasonBadChecksum},
		{"foreign prefix", "DE18547290", ReasonNonDigit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.reason, Check(tt.input))
			assert.False(t, Validate(tt.input))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "18547290", Normalize(" RO18547290 "))
	assert.Equal(t, "18547290", Normalize("Ro 1854 7290"))
	assert.Equal(t, "18547290", Normalize("18547290"))
	assert.Equal(t, "", Normalize("ro"))
}

func TestControlDigit(t *testing.T) {
	tests := []struct {
		payload string
		want    int
	}{
		{"1854729", 0},
		{"1859089", 3},
		{"1", 9},
		{"3", 5},
		{"12", 4},
		{"1111111", 0},
		{"12345678", 9},
		{"999999999", 4},
	}
	for _, tt := range tests {
		got, ok := ControlDigit(tt.payload)
		require.True(t, ok, tt.payload)
		assert.Equal(t, tt.want, got, tt.payload)
	}

	for _, bad := range []string{"", "1234567890", "12a"} {
		_, ok := ControlDigit(bad)
		assert.False(t, ok, bad)
	}
}

func TestExactlyOneControlDigit(t *testing.T) {
	for _, payload := range []string{"1", "12", "185472", "1854729", "999999999", "100000000"} {
		valid := 0
		for c := 0; c <= 9; c++ {
			if Validate(fmt.Sprintf("%s%d", payload, c)) {
				valid++
			}
		}
		assert.Equal(t, 1, valid, payload)
	}
}
