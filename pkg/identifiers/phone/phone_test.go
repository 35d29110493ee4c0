package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0721234567", "+40721234567"},
		{"+40721234567", "+40721234567"},
		{"0040721234567", "+40721234567"},
		{"0721 234 567", "+40721234567"},
		{"0721-234-567", "+40721234567"},
		{"0721.234.567", "+40721234567"},
		{"(021) 123 4567", "+40211234567"},
		{"721234567", "+40721234567"},
		{"+40 21 123 4567", "+40211234567"},
		{"+44 20 7946 0958", "+442079460958"},
		{"0044 20 7946 0958", "+442079460958"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	for _, input := range []string{
		"0721234567", "+40721234567", "0040 721 234 567", "garbage", "00",
		"0", "+", "+400721234567", "12\n)", "0\t7 2 1",
	} {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), input)
	}
}

func TestValidate(t *testing.T) {
	valid := []string{
		"0721234567",
		"+40721234567",
		"0040721234567",
		"721234567",
		"0212345678",
		"0312345678",
		"+40 264 123 456",
		"0744-123-456",
	}
	for _, v := range valid {
		assert.True(t, Validate(v), v)
	}

	invalid := []string{
		"",
		"072123456",
		"07212345678",
		"0812345678",
		"0112345678",
		"+41721234567",
		"07212345a7",
		"+4 0721234567x",
	}
	for _, v := range invalid {
		assert.False(t, Validate(v), v)
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, KindMobile, Classify("0721 234 567"))
	assert.Equal(t, KindLandline, Classify("021 234 5678"))
	assert.Equal(t, KindUnknown, Classify("12345"))
}

func TestE164(t *testing.T) {
	got, err := E164("0721 234 567")
	require.NoError(t, err)
	assert.Equal(t, "+40721234567", got)

	_, err = E164("")
	assert.Error(t, err)
}
