package address

import (
	"strings"

	"roident/pkg/identifiers/county"
)

// Format renders the address on several lines:
//
//	<street> nr. <number>[, bl. <building>][, sc. <staircase>][, et. <floor>][, ap. <apartment>]
//	<locality>, jud. <county>
//	<postal code>
//	România
//
// Bucharest has no "jud." qualifier. Empty parts are left out. Format does
// not validate; callers check the address first.
func Format(a Address, countyName string) string {
	return strings.Join(lines(a, countyName), "\n")
}

// FormatSingleLine renders the same parts as Format joined by ", ".
func FormatSingleLine(a Address, countyName string) string {
	return strings.Join(lines(a, countyName), ", ")
}

// FormatWithLookup is Format with the county name taken from the county
// table. Unknown codes are printed as given.
func FormatWithLookup(a Address) string {
	return Format(a, countyNameFor(a.CountyCode))
}

// FormatSingleLineWithLookup is FormatSingleLine with the county name taken
// from the county table.
func FormatSingleLineWithLookup(a Address) string {
	return FormatSingleLine(a, countyNameFor(a.CountyCode))
}

func countyNameFor(code string) string {
	if name, ok := county.AddressCountyName(code); ok {
		return name
	}
	return strings.TrimSpace(code)
}

func lines(a Address, countyName string) []string {
	out := make([]string, 0, 4)
	if l := streetLine(a); l != "" {
		out = append(out, l)
	}
	if l := localityLine(a, countyName); l != "" {
		out = append(out, l)
	}
	if pc := strings.TrimSpace(a.PostalCode); pc != "" {
		out = append(out, pc)
	}
	return append(out, CountryName)
}

func streetLine(a Address) string {
	var parts []string

	head := strings.TrimSpace(a.Street)
	if n := strings.TrimSpace(a.Number); n != "" {
		head = strings.TrimSpace(head + " nr. " + n)
	}
	if head != "" {
		parts = append(parts, head)
	}

	for _, d := range []struct{ label, value string }{
		{"bl.", a.Building},
		{"sc.", a.Staircase},
		{"et.", a.Floor},
		{"ap.", a.Apartment},
	} {
		if v := strings.TrimSpace(d.value); v != "" {
			parts = append(parts, d.label+" "+v)
		}
	}
	return strings.Join(parts, ", ")
}

func localityLine(a Address, countyName string) string {
	locality := strings.TrimSpace(a.Locality)
	countyName = strings.TrimSpace(countyName)

	if strings.EqualFold(strings.TrimSpace(a.CountyCode), county.BucharestCode) {
		if code, ok := county.LookupAddressCountyByName(locality); ok && code == county.BucharestCode {
			return locality
		}
		return joinNonEmpty(", ", locality, countyName)
	}

	if countyName == "" {
		return locality
	}
	return joinNonEmpty(", ", locality, "jud. "+countyName)
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
