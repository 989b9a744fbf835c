package domain

// Country is a shared reference/lookup row referenced by locations,
// trips, and user-country links. Code is the canonical 3-letter
// uppercase alpha code; Name is unique case-insensitively.
type Country struct {
	ID        int64  `json:"country_id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	FlagURL   string `json:"flag_url,omitempty"`
	Currency  string `json:"currency,omitempty"`
	Continent string `json:"continent,omitempty"`
	Capital   string `json:"capital,omitempty"`
}

// Continents is the closed set of accepted continent names.
var Continents = []string{
	"Africa",
	"Antarctica",
	"Asia",
	"Europe",
	"North America",
	"Oceania",
	"South America",
}

// ValidContinent reports whether name is one of the accepted continents.
// The empty string is allowed; continent is an optional attribute.
func ValidContinent(name string) bool {
	if name == "" {
		return true
	}
	for _, c := range Continents {
		if c == name {
			return true
		}
	}
	return false
}
