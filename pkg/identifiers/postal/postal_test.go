package postal

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"123456", true},
		{"010011", true},
		{" 400 001 ", true},
		{"12345", false},
		{"1234567", false},
		{"ABCDEF", false},
		{"12345A", false},
		{"", false},
		{"١٢٣٤٥٦", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.input))
		})
	}
}

func TestEveryLeadingDigitAccepted(t *testing.T) {
	for d := 0; d <= 9; d++ {
		code := fmt.Sprintf("%d00000", d)
		assert.True(t, Validate(code), code)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "400001", Normalize(" 400 001\n"))
}
