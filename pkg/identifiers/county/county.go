// Package county holds the two Romanian county coding schemes: the
// alphabetic codes used in postal addresses and the two-digit numeric
// codes embedded in a CNP. The tables are built at init and never
// mutated, so they are safe for concurrent readers.
package county

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// BucharestCode is the address county code for the municipality of Bucharest.
const BucharestCode = "B"

// addressCounties maps the 41 county codes plus Bucharest to county names.
var addressCounties = map[string]string{
	"AB": "Alba",
	"AR": "Arad",
	"AG": "Argeș",
	"BC": "Bacău",
	"BH": "Bihor",
	"BN": "Bistrița-Năsăud",
	"BT": "Botoșani",
	"BV": "Brașov",
	"BR": "Brăila",
	"B":  "București",
	"BZ": "Buzău",
	"CS": "Caraș-Severin",
	"CL": "Călărași",
	"CJ": "Cluj",
	"CT": "Constanța",
	"CV": "Covasna",
	"DB": "Dâmbovița",
	"DJ": "Dolj",
	"GL": "Galați",
	"GR": "Giurgiu",
	"GJ": "Gorj",
	"HR": "Harghita",
	"HD": "Hunedoara",
	"IL": "Ialomița",
	"IS": "Iași",
	"IF": "Ilfov",
	"MM": "Maramureș",
	"MH": "Mehedinți",
	"MS": "Mureș",
	"NT": "Neamț",
	"OT": "Olt",
	"PH": "Prahova",
	"SM": "Satu Mare",
	"SJ": "Sălaj",
	"SB": "Sibiu",
	"SV": "Suceava",
	"TR": "Teleorman",
	"TM": "Timiș",
	"TL": "Tulcea",
	"VS": "Vaslui",
	"VL": "Vâlcea",
	"VN": "Vrancea",
}

// cnpCounties maps the numeric CNP county codes to names. 01-40 follow the
// historical alphabetical order, 41-46 are the Bucharest sectors and 51/52
// are the codes assigned to Călărași and Giurgiu after they were created.
var cnpCounties = map[string]string{
	"01": "Alba",
	"02": "Arad",
	"03": "Argeș",
	"04": "Bacău",
	"05": "Bihor",
	"06": "Bistrița-Năsăud",
	"07": "Botoșani",
	"08": "Brașov",
	"09": "Brăila",
	"10": "Buzău",
	"11": "Caraș-Severin",
	"12": "Cluj",
	"13": "Constanța",
	"14": "Covasna",
	"15": "Dâmbovița",
	"16": "Dolj",
	"17": "Galați",
	"18": "Gorj",
	"19": "Harghita",
	"20": "Hunedoara",
	"21": "Ialomița",
	"22": "Iași",
	"23": "Ilfov",
	"24": "Maramureș",
	"25": "Mehedinți",
	"26": "Mureș",
	"27": "Neamț",
	"28": "Olt",
	"29": "Prahova",
	"30": "Satu Mare",
	"31": "Sălaj",
	"32": "Sibiu",
	"33": "Suceava",
	"34": "Teleorman",
	"35": "Timiș",
	"36": "Tulcea",
	"37": "Vaslui",
	"38": "Vâlcea",
	"39": "Vrancea",
	"40": "București",
	"41": "București Sector 1",
	"42": "București Sector 2",
	"43": "București Sector 3",
	"44": "București Sector 4",
	"45": "București Sector 5",
	"46": "București Sector 6",
	"51": "Călărași",
	"52": "Giurgiu",
}

// byFoldedName indexes address counties by their diacritic-free,
// lowercased name.
var byFoldedName = func() map[string]string {
	m := make(map[string]string, len(addressCounties))
	for code, name := range addressCounties {
		m[fold(name)] = code
	}
	return m
}()

// AddressCountyName returns the county name for an address county code.
// Lookup is case-insensitive.
func AddressCountyName(code string) (string, bool) {
	name, ok := addressCounties[strings.ToUpper(strings.TrimSpace(code))]
	return name, ok
}

// IsAddressCounty reports whether code belongs to the 42-entry address set.
func IsAddressCounty(code string) bool {
	_, ok := AddressCountyName(code)
	return ok
}

// AddressCountyCodes returns every address county code in sorted order.
func AddressCountyCodes() []string {
	codes := make([]string, 0, len(addressCounties))
	for code := range addressCounties {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// LookupAddressCountyByName resolves a county name to its address code,
// ignoring case and diacritics ("Iasi", "IAȘI" and "Iași" all give "IS").
func LookupAddressCountyByName(name string) (string, bool) {
	code, ok := byFoldedName[fold(name)]
	return code, ok
}

// CNPCountyName returns the county name for a two-digit CNP county code.
func CNPCountyName(code string) (string, bool) {
	name, ok := cnpCounties[code]
	return name, ok
}

// IsCNPCounty reports whether code is a recognised CNP county code.
func IsCNPCounty(code string) bool {
	_, ok := cnpCounties[code]
	return ok
}

// CNPCountyCodes returns every CNP county code in sorted order.
func CNPCountyCodes() []string {
	codes := make([]string, 0, len(cnpCounties))
	for code := range cnpCounties {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}
