package entity

// countryCurrencies maps ISO 3166-1 alpha-2 country codes to the ISO 4217
// currency presented to users from that country.
var countryCurrencies = map[string]string{
	"NG": "NGN",
	"US": "USD",
	"GB": "GBP",
	"KE": "KES",
	"GH": "GHS",
	"FR": "EUR",
	"DE": "EUR",
	"IT": "EUR",
	"ES": "EUR",
	"CM": "XAF",
	"CI": "XOF",
	"SN": "XOF",
	"RW": "RWF",
	"UG": "UGX",
	"ZA": "ZAR",
	"IN": "INR",
	"CN": "CNY",
	"JP": "JPY",
	"CA": "CAD",
	"AU": "AUD",
}

// DefaultCountry and DefaultCurrency are the fallbacks when a locale cannot
// be resolved.
const (
	DefaultCountry  = "US"
	DefaultCurrency = "USD"
)

// CurrencyForCountry resolves the currency for a country code, falling back
// to DefaultCurrency for unknown countries.
func CurrencyForCountry(country string) string {
	if c, ok := countryCurrencies[country]; ok {
		return c
	}

	return DefaultCurrency
}

// ValidCurrencyCode reports whether code is shaped like an ISO 4217 currency
// code, exactly three uppercase letters. Shape is all the payment processor
// needs; it rejects unknown codes itself.
func ValidCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}

	return true
}
