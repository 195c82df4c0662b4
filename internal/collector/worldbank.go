package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/guregu/null/v6"

	"github.com/cybergeekgyan/BuffetIndicatorApp/internal/model"
)

// DefaultBaseURL is the public World Bank API endpoint.
const DefaultBaseURL = "https://api.worldbank.org/v2"

// perPage covers decades of annual records in one page, so a single
// request per series is enough.
const perPage = 1000

// WorldBankFetcher implements IndicatorFetcher against the World Bank
// indicators API.
type WorldBankFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewWorldBankFetcher creates a new fetcher with optional proxy support.
func NewWorldBankFetcher(baseURL, proxyURL string, timeout time.Duration) *WorldBankFetcher {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &WorldBankFetcher{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

func (f *WorldBankFetcher) Name() string { return "worldbank" }

// wbRecord is one observation in the World Bank records array.
type wbRecord struct {
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}

// FetchIndicator retrieves one annual series in a single request.
// Null observations are kept as absent values; a response without the
// two-element [metadata, records] shape yields an empty series, since
// some country/indicator/window combinations legitimately have no data.
func (f *WorldBankFetcher) FetchIndicator(countryISO3, indicatorCode string, startYear, endYear int) (model.AnnualSeries, error) {
	u := fmt.Sprintf("%s/country/%s/indicator/%s?date=%d:%d&format=json&per_page=%d",
		f.BaseURL, url.PathEscape(countryISO3), url.PathEscape(indicatorCode), startYear, endYear, perPage)

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, &FetchError{Country: countryISO3, Indicator: indicatorCode, Err: err}
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, &FetchError{Country: countryISO3, Indicator: indicatorCode, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Country: countryISO3, Indicator: indicatorCode, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{
			Country:   countryISO3,
			Indicator: indicatorCode,
			Err:       fmt.Errorf("status %d, body: %s", resp.StatusCode, string(body)),
		}
	}

	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil || len(payload) < 2 {
		// message-only array, no records element
		return model.AnnualSeries{}, nil
	}
	var records []wbRecord
	if err := json.Unmarshal(payload[1], &records); err != nil {
		return model.AnnualSeries{}, nil
	}

	series := make(model.AnnualSeries, len(records))
	for _, rec := range records {
		year, err := strconv.Atoi(rec.Date)
		if err != nil || year < startYear || year > endYear {
			continue
		}
		if rec.Value != nil {
			series[year] = null.FloatFrom(*rec.Value)
		} else {
			series[year] = null.Float{}
		}
	}
	return series, nil
}
