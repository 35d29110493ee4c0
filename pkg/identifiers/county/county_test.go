package county

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressCountyTable(t *testing.T) {
	codes := AddressCountyCodes()
	require.Len(t, codes, 42)
	assert.Contains(t, codes, BucharestCode)

	name, ok := AddressCountyName("cj")
	require.True(t, ok)
	assert.Equal(t, "Cluj", name)

	assert.True(t, IsAddressCounty(" B "))
	assert.False(t, IsAddressCounty("XX"))
	assert.False(t, IsAddressCounty(""))
}

func TestCNPCountyTable(t *testing.T) {
	codes := CNPCountyCodes()
	require.Len(t, codes, 48)

	for _, code := range []string{"01", "40", "41", "46", "51", "52"} {
		assert.True(t, IsCNPCounty(code), code)
	}
	for _, code := range []string{"00", "47", "48", "50", "53", "99", "1", ""} {
		assert.False(t, IsCNPCounty(code), code)
	}

	name, ok := CNPCountyName("43")
	require.True(t, ok)
	assert.Equal(t, "București Sector 3", name)
}

func TestLookupAddressCountyByName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Iași", "IS"},
		{"IAȘI", "IS"},
		{"iasi", "IS"},
		{"Bucuresti", "B"},
		{"  Bistrita-Nasaud ", "BN"},
		{"Satu Mare", "SM"},
		{"Timiş", "TM"}, // cedilla variant
		{"Dâmbovița", "DB"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			code, ok := LookupAddressCountyByName(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.want, code)
		})
	}

	_, ok := LookupAddressCountyByName("Atlantis")
	assert.False(t, ok)
}

func TestPostalPrefixRegion(t *testing.T) {
	for d := '0'; d <= '9'; d++ {
		_, ok := PostalPrefixRegion(string(d) + "00000")
		assert.True(t, ok)
	}
	_, ok := PostalPrefixRegion("")
	assert.False(t, ok)
}
