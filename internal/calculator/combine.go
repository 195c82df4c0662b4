package calculator

import (
	"math"
	"sort"

	"github.com/guregu/null/v6"

	"github.com/cybergeekgyan/BuffetIndicatorApp/internal/model"
)

// Combine extracts each country's ratio column, scales it to percent,
// and outer-joins all countries on year. Column order follows the
// input order; rows are sorted ascending by year. An empty input
// produces an empty table, which is a valid "no data" result.
func Combine(tables []model.CountryTable) model.CombinedTable {
	if len(tables) == 0 {
		return model.CombinedTable{}
	}
	yearSet := make(map[int]struct{})
	ratios := make(map[string]model.AnnualSeries, len(tables))
	countries := make([]string, 0, len(tables))
	for _, t := range tables {
		countries = append(countries, t.Country)
		r := t.Ratios()
		ratios[t.Country] = r
		for y := range r {
			yearSet[y] = struct{}{}
		}
	}
	years := make([]int, 0, len(yearSet))
	for y := range yearSet {
		years = append(years, y)
	}
	sort.Ints(years)

	columns := make(map[string][]null.Float, len(countries))
	for _, country := range countries {
		col := make([]null.Float, len(years))
		for i, y := range years {
			if v, ok := ratios[country][y]; ok && v.Valid {
				col[i] = null.FloatFrom(v.Float64 * 100)
			}
		}
		columns[country] = col
	}
	return model.CombinedTable{Years: years, Countries: countries, Columns: columns}
}

// LatestRow returns the most recent year of the table and the
// countries that have a value for it, sorted by percent descending and
// rounded to two decimals. ok is false when the table has no rows.
func LatestRow(t model.CombinedTable) (year int, entries []model.LatestEntry, ok bool) {
	if len(t.Years) == 0 {
		return 0, nil, false
	}
	last := len(t.Years) - 1
	year = t.Years[last]
	entries = make([]model.LatestEntry, 0, len(t.Countries))
	for _, c := range t.Countries {
		if v := t.Columns[c][last]; v.Valid {
			entries = append(entries, model.LatestEntry{Country: c, Percent: Round2(v.Float64)})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Percent > entries[j].Percent })
	return year, entries, true
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
