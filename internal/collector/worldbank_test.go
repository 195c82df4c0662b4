package collector

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestWorldBankFetcher_ParsesRecords(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, `[
			{"page":1,"pages":1,"per_page":1000,"total":4},
			[
				{"date":"2021","value":2.3e13},
				{"date":"2020","value":null},
				{"date":"2019","value":2.0e13},
				{"date":"2016","value":1.8e13},
				{"date":"not-a-year","value":1.0}
			]
		]`)
	}))
	defer srv.Close()

	f := NewWorldBankFetcher(srv.URL, "", time.Second)
	series, err := f.FetchIndicator("USA", IndicatorMarketCap, 2019, 2021)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := "/country/USA/indicator/" + IndicatorMarketCap; gotPath != want {
		t.Errorf("expected path %q, got %q", want, gotPath)
	}
	if want := "date=2019:2021&format=json&per_page=1000"; gotQuery != want {
		t.Errorf("expected query %q, got %q", want, gotQuery)
	}

	// 2016 is outside the window, the junk date is skipped
	if len(series) != 3 {
		t.Fatalf("expected 3 years, got %d: %v", len(series), series.Years())
	}
	if v := series[2021]; !v.Valid || v.Float64 != 2.3e13 {
		t.Errorf("2021: expected 2.3e13, got %+v", v)
	}
	if v, ok := series[2020]; !ok || v.Valid {
		t.Errorf("2020: expected explicit absent observation, got ok=%v %+v", ok, v)
	}
}

func TestWorldBankFetcher_MessageOnlyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `[{"message":[{"id":"120","key":"Invalid value","value":"The provided parameter value is not valid"}]}]`)
	}))
	defer srv.Close()

	f := NewWorldBankFetcher(srv.URL, "", time.Second)
	series, err := f.FetchIndicator("USA", IndicatorGDP, 2019, 2021)
	if err != nil {
		t.Fatalf("expected soft empty result, got error %v", err)
	}
	if len(series) != 0 {
		t.Errorf("expected empty series, got %v", series)
	}
}

func TestWorldBankFetcher_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	f := NewWorldBankFetcher(srv.URL, "", time.Second)
	_, err := f.FetchIndicator("USA", IndicatorGDP, 2019, 2021)

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FetchError, got %v", err)
	}
	if fe.Country != "USA" || fe.Indicator != IndicatorGDP {
		t.Errorf("expected error to carry country and indicator, got %+v", fe)
	}
}

func TestWorldBankFetcher_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	f := NewWorldBankFetcher(srv.URL, "", time.Second)
	_, err := f.FetchIndicator("CHN", IndicatorMarketCap, 2019, 2021)

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FetchError, got %v", err)
	}
}
