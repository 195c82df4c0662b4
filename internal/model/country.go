package model

// Country pairs a display name with the ISO3 code the statistics API
// uses as its country identifier.
type Country struct {
	Name string `json:"name"`
	ISO3 string `json:"iso3"`
}

// SupportedCountries lists the markets the explorer covers, in display
// order. The set is fixed at build time; lookups go through CountryCode.
var SupportedCountries = []Country{
	{Name: "United States", ISO3: "USA"},
	{Name: "China", ISO3: "CHN"},
	{Name: "Japan", ISO3: "JPN"},
	{Name: "India", ISO3: "IND"},
	{Name: "United Kingdom", ISO3: "GBR"},
	{Name: "France", ISO3: "FRA"},
	{Name: "Canada", ISO3: "CAN"},
	{Name: "Germany", ISO3: "DEU"},
	{Name: "Switzerland", ISO3: "CHE"},
	{Name: "Australia", ISO3: "AUS"},
}

var countryByName = make(map[string]string, len(SupportedCountries))

func init() {
	for _, c := range SupportedCountries {
		countryByName[c.Name] = c.ISO3
	}
}

// CountryCode resolves a display name to its ISO3 code.
func CountryCode(name string) (string, bool) {
	code, ok := countryByName[name]
	return code, ok
}
