package collector

import (
	"errors"
	"testing"
	"time"

	"github.com/guregu/null/v6"

	"github.com/cybergeekgyan/BuffetIndicatorApp/internal/model"
)

func TestCollectAll_UnknownCountryBeforeAnyFetch(t *testing.T) {
	mock := &MockFetcher{}
	col := NewCollector(mock, 0)

	_, err := col.CollectAll([]string{"United States", "Atlantis"}, 2019, 2021)
	if !errors.Is(err, ErrUnknownCountry) {
		t.Fatalf("expected ErrUnknownCountry, got %v", err)
	}
	if mock.Calls != 0 {
		t.Errorf("expected zero fetch calls, got %d", mock.Calls)
	}
}

func TestCollectAll_InvalidYearRanges(t *testing.T) {
	now := time.Now().Year()
	tests := []struct {
		name  string
		start int
		end   int
	}{
		{"before minimum", 1980, 2020},
		{"after current year", 2019, now + 1},
		{"start after end", 2021, 2019},
	}
	for _, tt := range tests {
		mock := &MockFetcher{}
		col := NewCollector(mock, 0)
		_, err := col.CollectAll([]string{"United States"}, tt.start, tt.end)
		if !errors.Is(err, ErrInvalidYearRange) {
			t.Errorf("%s: expected ErrInvalidYearRange, got %v", tt.name, err)
		}
		if mock.Calls != 0 {
			t.Errorf("%s: expected zero fetch calls, got %d", tt.name, mock.Calls)
		}
	}
}

func TestCollectAll_BuildsOneTablePerCountry(t *testing.T) {
	mock := &MockFetcher{Series: map[string]model.AnnualSeries{
		"USA/" + IndicatorMarketCap: {2020: null.FloatFrom(100)},
		"USA/" + IndicatorGDP:       {2020: null.FloatFrom(50)},
		"JPN/" + IndicatorMarketCap: {2020: null.FloatFrom(60)},
		"JPN/" + IndicatorGDP:       {2020: null.FloatFrom(50)},
	}}
	col := NewCollector(mock, 0)

	tables, err := col.CollectAll([]string{"United States", "Japan"}, 2019, 2021)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tables) != 2 {
		t.Fatalf("expected 2 tables, got %d", len(tables))
	}
	if mock.Calls != 4 {
		t.Errorf("expected 4 fetch calls (2 indicators x 2 countries), got %d", mock.Calls)
	}
	if tables[0].Country != "United States" || tables[1].Country != "Japan" {
		t.Errorf("expected input order preserved, got %q, %q", tables[0].Country, tables[1].Country)
	}
	if r := tables[0].Rows[0].Ratio; !r.Valid || r.Float64 != 2.0 {
		t.Errorf("United States 2020: expected ratio 2.0, got %+v", r)
	}
}

func TestCollectAll_FetchFailureAbortsBatch(t *testing.T) {
	mock := &MockFetcher{Err: &FetchError{Country: "USA", Indicator: IndicatorMarketCap, Err: errors.New("status 503")}}
	col := NewCollector(mock, 0)

	tables, err := col.CollectAll([]string{"United States", "Japan"}, 2019, 2021)
	if err == nil {
		t.Fatal("expected error")
	}
	if tables != nil {
		t.Errorf("expected no partial tables, got %d", len(tables))
	}
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected wrapped *FetchError, got %v", err)
	}
	if fe.Country != "USA" {
		t.Errorf("expected failing country in error, got %q", fe.Country)
	}
	if mock.Calls != 1 {
		t.Errorf("expected batch aborted after first failure, got %d calls", mock.Calls)
	}
}

func TestCollectAll_ZeroEndYearMeansCurrent(t *testing.T) {
	mock := &MockFetcher{}
	col := NewCollector(mock, 0)

	tables, err := col.CollectAll([]string{"United States"}, 2020, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rows := tables[0].Rows
	if len(rows) == 0 {
		t.Fatal("expected generated rows")
	}
	if got := rows[len(rows)-1].Year; got != time.Now().Year() {
		t.Errorf("expected data through the current year, got %d", got)
	}
}
