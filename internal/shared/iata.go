package shared

import (
	"strings"
	"unicode"
)

// CityIATA is the local tier of city-to-IATA resolution. Keys are normalized
// with NormalizeCity. A hit here never goes remote.
var CityIATA = map[string]string{
	"seoul":         "SEL",
	"incheon":       "ICN",
	"busan":         "PUS",
	"jeju":          "CJU",
	"gyeongju":      "PUS",
	"tokyo":         "TYO",
	"osaka":         "OSA",
	"kyoto":         "OSA",
	"sapporo":       "SPK",
	"fukuoka":       "FUK",
	"paris":         "PAR",
	"nice":          "NCE",
	"london":        "LON",
	"rome":          "ROM",
	"barcelona":     "BCN",
	"madrid":        "MAD",
	"berlin":        "BER",
	"amsterdam":     "AMS",
	"zurich":        "ZRH",
	"vienna":        "VIE",
	"prague":        "PRG",
	"lisbon":        "LIS",
	"athens":        "ATH",
	"istanbul":      "IST",
	"new york":      "NYC",
	"los angeles":   "LAX",
	"san francisco": "SFO",
	"honolulu":      "HNL",
	"bangkok":       "BKK",
	"singapore":     "SIN",
	"hong kong":     "HKG",
	"taipei":        "TPE",
	"hanoi":         "HAN",
	"da nang":       "DAD",
	"bali":          "DPS",
	"denpasar":      "DPS",
	"sydney":        "SYD",
	"dubai":         "DXB",
}

// CarrierNames maps IATA carrier codes to display names. Callers fall back to
// the code itself for unknown carriers.
var CarrierNames = map[string]string{
	"KE": "Korean Air",
	"OZ": "Asiana Airlines",
	"7C": "Jeju Air",
	"LJ": "Jin Air",
	"TW": "T'way Air",
	"JL": "Japan Airlines",
	"NH": "All Nippon Airways",
	"MM": "Peach Aviation",
	"AF": "Air France",
	"KL": "KLM Royal Dutch Airlines",
	"BA": "British Airways",
	"LH": "Lufthansa",
	"IB": "Iberia",
	"AZ": "ITA Airways",
	"TK": "Turkish Airlines",
	"AA": "American Airlines",
	"UA": "United Airlines",
	"DL": "Delta Air Lines",
	"SQ": "Singapore Airlines",
	"CX": "Cathay Pacific",
	"TG": "Thai Airways",
	"VN": "Vietnam Airlines",
	"QF": "Qantas",
	"EK": "Emirates",
	"QR": "Qatar Airways",
}

// CarrierName resolves a carrier code to a human-readable airline name,
// returning the code unchanged when unknown.
func CarrierName(code string) string {
	if n, ok := CarrierNames[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return n
	}
	return code
}

// NormalizeCity lowercases, trims, strips combining diacritics and collapses
// inner whitespace so "São Paulo " and "sao  paulo" key identically.
func NormalizeCity(name string) string {
	var b strings.Builder
	lastSpace := false
	for _, r := range strings.TrimSpace(strings.ToLower(name)) {
		switch {
		case unicode.IsSpace(r):
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		case unicode.Is(unicode.Mn, r):
			// combining mark: drop
		default:
			b.WriteRune(stripDiacritic(r))
			lastSpace = false
		}
	}
	return b.String()
}

// stripDiacritic folds the latin-1 accented range onto ASCII. Enough for the
// city names this table carries; anything else passes through untouched.
func stripDiacritic(r rune) rune {
	switch {
	case r >= 'à' && r <= 'å':
		return 'a'
	case r == 'ç':
		return 'c'
	case r >= 'è' && r <= 'ë':
		return 'e'
	case r >= 'ì' && r <= 'ï':
		return 'i'
	case r == 'ñ':
		return 'n'
	case r >= 'ò' && r <= 'ö':
		return 'o'
	case r >= 'ù' && r <= 'ü':
		return 'u'
	case r == 'ý' || r == 'ÿ':
		return 'y'
	}
	return r
}

// LookupCityIATA checks the static table under the normalized key.
func LookupCityIATA(name string) (string, bool) {
	code, ok := CityIATA[NormalizeCity(name)]
	return code, ok
}
