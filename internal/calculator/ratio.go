package calculator

import (
	"sort"

	"github.com/guregu/null/v6"

	"github.com/cybergeekgyan/BuffetIndicatorApp/internal/model"
)

// BuildCountryTable outer-joins a country's market cap and GDP series
// on year and computes the ratio column. The ratio is present only at
// years where both observations are present and GDP is nonzero.
func BuildCountryTable(country string, marketCap, gdp model.AnnualSeries) model.CountryTable {
	yearSet := make(map[int]struct{}, len(marketCap)+len(gdp))
	for y := range marketCap {
		yearSet[y] = struct{}{}
	}
	for y := range gdp {
		yearSet[y] = struct{}{}
	}
	years := make([]int, 0, len(yearSet))
	for y := range yearSet {
		years = append(years, y)
	}
	sort.Ints(years)

	table := model.CountryTable{Country: country, Rows: make([]model.CountryRow, 0, len(years))}
	for _, y := range years {
		row := model.CountryRow{Year: y, MarketCap: marketCap[y], GDP: gdp[y]}
		if row.MarketCap.Valid && row.GDP.Valid && row.GDP.Float64 != 0 {
			row.Ratio = null.FloatFrom(row.MarketCap.Float64 / row.GDP.Float64)
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}
