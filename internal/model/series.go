package model

import (
	"sort"

	"github.com/guregu/null/v6"
)

// AnnualSeries maps a year to the observed value for one
// (country, indicator) pair. A year whose source observation was null
// is kept with an invalid Float, so explicit gaps stay distinguishable
// from years outside the fetch window.
type AnnualSeries map[int]null.Float

// Years returns the series' years in ascending order.
func (s AnnualSeries) Years() []int {
	years := make([]int, 0, len(s))
	for y := range s {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// CountryRow is one year of paired observations for a country.
type CountryRow struct {
	Year      int        `json:"year"`
	MarketCap null.Float `json:"market_cap"`
	GDP       null.Float `json:"gdp"`
	Ratio     null.Float `json:"ratio"`
}

// CountryTable holds one country's market cap, GDP and ratio rows in
// ascending year order.
type CountryTable struct {
	Country string       `json:"country"`
	Rows    []CountryRow `json:"rows"`
}

// Ratios extracts the ratio column keyed by year.
func (t CountryTable) Ratios() AnnualSeries {
	out := make(AnnualSeries, len(t.Rows))
	for _, r := range t.Rows {
		out[r.Year] = r.Ratio
	}
	return out
}

// CombinedTable aligns the percent-scale ratios of many countries on a
// shared ascending year axis. Columns[c][i] is country c's value for
// Years[i]; an invalid Float marks a year the country lacks.
type CombinedTable struct {
	Years     []int                   `json:"years"`
	Countries []string                `json:"countries"`
	Columns   map[string][]null.Float `json:"columns"`
}

// Empty reports whether the table has no rows and no columns.
func (t CombinedTable) Empty() bool {
	return len(t.Years) == 0 && len(t.Countries) == 0
}

// Clone returns a deep copy of the table.
func (t CombinedTable) Clone() CombinedTable {
	out := CombinedTable{
		Years:     append([]int(nil), t.Years...),
		Countries: append([]string(nil), t.Countries...),
	}
	if t.Columns != nil {
		out.Columns = make(map[string][]null.Float, len(t.Columns))
		for name, col := range t.Columns {
			out.Columns[name] = append([]null.Float(nil), col...)
		}
	}
	return out
}

// LatestEntry is one country's value in the most recent combined year.
type LatestEntry struct {
	Country string  `json:"country"`
	Percent float64 `json:"percent"`
}
