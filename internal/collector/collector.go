package collector

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/guregu/null/v6"

	"github.com/cybergeekgyan/BuffetIndicatorApp/internal/calculator"
	"github.com/cybergeekgyan/BuffetIndicatorApp/internal/model"
)

// MinYear is the earliest year the explorer requests; World Bank
// market-cap coverage is too sparse before it to be useful.
const MinYear = 1990

// Configuration failures, raised before any network call.
var (
	ErrUnknownCountry   = errors.New("unknown country")
	ErrInvalidYearRange = errors.New("invalid year range")
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Series map[string]model.AnnualSeries // keyed by ISO3 + "/" + indicator code
	Err    error
	Calls  int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchIndicator(countryISO3, indicatorCode string, startYear, endYear int) (model.AnnualSeries, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Series != nil {
		if s, ok := m.Series[countryISO3+"/"+indicatorCode]; ok {
			return s, nil
		}
		return model.AnnualSeries{}, nil
	}
	base := 2.1e13
	if indicatorCode == IndicatorGDP {
		base = 1.8e13
	}
	return generateMockSeries(base, startYear, endYear), nil
}

func generateMockSeries(base float64, startYear, endYear int) model.AnnualSeries {
	series := make(model.AnnualSeries, endYear-startYear+1)
	for y := startYear; y <= endYear; y++ {
		v := base * (1 + float64(y-startYear)*0.03)
		series[y] = null.FloatFrom(v)
	}
	return series
}

// Collector orchestrates sequential indicator fetching and per-country
// table construction.
type Collector struct {
	Fetcher IndicatorFetcher
	Pause   time.Duration
}

// NewCollector creates a new Collector.
func NewCollector(fetcher IndicatorFetcher, pause time.Duration) *Collector {
	return &Collector{Fetcher: fetcher, Pause: pause}
}

// CollectAll fetches market cap and GDP for each named country, in
// order, and builds one table per country. All names and the year
// range are validated before the first request; endYear 0 means the
// current year. The first fetch failure aborts the whole batch, since
// a combined table with countries silently missing would mislead.
func (c *Collector) CollectAll(names []string, startYear, endYear int) ([]model.CountryTable, error) {
	if endYear == 0 {
		endYear = time.Now().Year()
	}
	if err := validateYears(startYear, endYear); err != nil {
		return nil, err
	}
	codes := make([]string, len(names))
	for i, name := range names {
		code, ok := model.CountryCode(name)
		if !ok {
			return nil, fmt.Errorf("country %q: %w", name, ErrUnknownCountry)
		}
		codes[i] = code
	}

	tables := make([]model.CountryTable, 0, len(names))
	for i, name := range names {
		log.Printf("[INFO] Fetching %s (%s) %d-%d via %s", name, codes[i], startYear, endYear, c.Fetcher.Name())
		mc, err := c.Fetcher.FetchIndicator(codes[i], IndicatorMarketCap, startYear, endYear)
		if err != nil {
			return nil, fmt.Errorf("%s market cap: %w", name, err)
		}
		gdp, err := c.Fetcher.FetchIndicator(codes[i], IndicatorGDP, startYear, endYear)
		if err != nil {
			return nil, fmt.Errorf("%s gdp: %w", name, err)
		}
		tables = append(tables, calculator.BuildCountryTable(name, mc, gdp))
		if c.Pause > 0 {
			time.Sleep(c.Pause)
		}
	}
	return tables, nil
}

func validateYears(startYear, endYear int) error {
	now := time.Now().Year()
	switch {
	case startYear < MinYear:
		return fmt.Errorf("start year %d is before %d: %w", startYear, MinYear, ErrInvalidYearRange)
	case endYear > now:
		return fmt.Errorf("end year %d is after %d: %w", endYear, now, ErrInvalidYearRange)
	case startYear > endYear:
		return fmt.Errorf("start year %d is after end year %d: %w", startYear, endYear, ErrInvalidYearRange)
	}
	return nil
}
