package county

// postalPrefixes describes which regions a postal code starting with a
// given digit usually belongs to. The ranges overlap and change over time,
// so nothing in this module rejects a postal code based on this table.
var postalPrefixes = map[byte]string{
	'0': "București, Ilfov",
	'1': "Argeș, Dâmbovița, Prahova, Buzău, Vrancea, Brăila, Galați, Călărași, Giurgiu, Ialomița, Teleorman",
	'2': "Dolj, Gorj, Mehedinți, Olt, Vâlcea, Argeș",
	'3': "Caraș-Severin, Hunedoara, Timiș, Arad",
	'4': "Bihor, Bistrița-Năsăud, Cluj, Maramureș, Satu Mare, Sălaj",
	'5': "Alba, Brașov, Covasna, Harghita, Mureș, Sibiu",
	'6': "Bacău, Iași, Neamț, Vaslui, Botoșani, Suceava",
	'7': "Botoșani, Iași, Suceava",
	'8': "Brăila, Buzău, Constanța, Galați, Tulcea, Vrancea",
	'9': "Călărași, Constanța, Ialomița",
}

// PostalPrefixRegion returns the reference description for the first digit
// of a postal code. It is informational only.
func PostalPrefixRegion(postalCode string) (string, bool) {
	if postalCode == "" {
		return "", false
	}
	region, ok := postalPrefixes[postalCode[0]]
	return region, ok
}
