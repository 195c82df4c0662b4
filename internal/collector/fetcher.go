package collector

import (
	"fmt"

	"github.com/cybergeekgyan/BuffetIndicatorApp/internal/model"
)

// Indicator codes understood by the statistics API, both in current US$.
const (
	IndicatorMarketCap = "CM.MKT.LCAP.CD"
	IndicatorGDP       = "NY.GDP.MKTP.CD"
)

// IndicatorFetcher defines the interface for fetching one annual
// indicator series for a country.
type IndicatorFetcher interface {
	FetchIndicator(countryISO3, indicatorCode string, startYear, endYear int) (model.AnnualSeries, error)
	Name() string
}

// FetchError reports a failed indicator request with the country and
// indicator that caused it.
type FetchError struct {
	Country   string
	Indicator string
	Err       error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s for %s: %v", e.Indicator, e.Country, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
