package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cybergeekgyan/BuffetIndicatorApp/internal/calculator"
	"github.com/cybergeekgyan/BuffetIndicatorApp/internal/collector"
	"github.com/cybergeekgyan/BuffetIndicatorApp/internal/model"
	"github.com/cybergeekgyan/BuffetIndicatorApp/internal/valuation"
)

func (h *handler) index(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) countries(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, model.SupportedCountries)
}

// indicatorRequest carries the parsed query parameters shared by the
// JSON and CSV endpoints.
type indicatorRequest struct {
	Countries []string
	StartYear int
	EndYear   int
	Fill      calculator.FillMode
}

func parseIndicatorRequest(r *http.Request) (indicatorRequest, error) {
	var req indicatorRequest
	q := r.URL.Query()

	for _, name := range strings.Split(q.Get("countries"), ",") {
		if name = strings.TrimSpace(name); name != "" {
			req.Countries = append(req.Countries, name)
		}
	}
	if len(req.Countries) == 0 {
		return req, errors.New("countries parameter is required")
	}

	var err error
	if req.StartYear, err = yearParam(q.Get("start"), collector.MinYear); err != nil {
		return req, err
	}
	if req.EndYear, err = yearParam(q.Get("end"), 0); err != nil {
		return req, err
	}
	if req.Fill, err = calculator.ParseFillMode(q.Get("fill")); err != nil {
		return req, err
	}
	return req, nil
}

func yearParam(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid year %q", s)
	}
	return n, nil
}

// indicatorResponse is the JSON payload of GET /api/indicator.
type indicatorResponse struct {
	FetchedAt time.Time            `json:"fetched_at"`
	StartYear int                  `json:"start_year"`
	EndYear   int                  `json:"end_year"`
	Fill      calculator.FillMode  `json:"fill"`
	Combined  model.CombinedTable  `json:"combined"`
	Tables    []model.CountryTable `json:"tables"`
}

func (h *handler) indicator(w http.ResponseWriter, r *http.Request) {
	req, err := parseIndicatorRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	tables, err := h.collector.CollectAll(req.Countries, req.StartYear, req.EndYear)
	if err != nil {
		writeError(w, fetchStatus(err), err)
		return
	}
	combined := calculator.ApplyFill(calculator.Combine(tables), req.Fill)

	endYear := req.EndYear
	if endYear == 0 {
		endYear = time.Now().Year()
	}
	writeJSON(w, http.StatusOK, indicatorResponse{
		FetchedAt: time.Now(),
		StartYear: req.StartYear,
		EndYear:   endYear,
		Fill:      req.Fill,
		Combined:  combined,
		Tables:    tables,
	})
}

func (h *handler) indicatorCSV(w http.ResponseWriter, r *http.Request) {
	req, err := parseIndicatorRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	tables, err := h.collector.CollectAll(req.Countries, req.StartYear, req.EndYear)
	if err != nil {
		writeError(w, fetchStatus(err), err)
		return
	}
	combined := calculator.ApplyFill(calculator.Combine(tables), req.Fill)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="buffett_indicators.csv"`)
	if err := writeCombinedCSV(w, combined); err != nil {
		log.Printf("[ERROR] write csv: %v", err)
	}
}

// latestResponse is the JSON payload of GET /api/latest.
type latestResponse struct {
	FetchedAt   time.Time           `json:"fetched_at"`
	StartYear   int                 `json:"start_year"`
	EndYear     int                 `json:"end_year"`
	Year        int                 `json:"year,omitempty"`
	Latest      []model.LatestEntry `json:"latest,omitempty"`
	Assessments []model.Assessment  `json:"assessments"`
}

func (h *handler) latest(w http.ResponseWriter, _ *http.Request) {
	snap, ok := h.snapshots.Latest()
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("no refresh has completed yet"))
		return
	}
	resp := latestResponse{
		FetchedAt:   snap.FetchedAt,
		StartYear:   snap.StartYear,
		EndYear:     snap.EndYear,
		Assessments: snap.Assessments,
	}
	if year, entries, ok := calculator.LatestRow(snap.Combined); ok {
		resp.Year = year
		resp.Latest = entries
	}
	writeJSON(w, http.StatusOK, resp)
}

// calculatorResponse is the JSON payload of GET /api/calculator.
type calculatorResponse struct {
	MarketCap decimal.Decimal `json:"market_cap"`
	GDP       decimal.Decimal `json:"gdp"`
	Percent   decimal.Decimal `json:"percent"`
	Band      model.Band      `json:"band"`
}

func (h *handler) calculate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	mc, err := decimal.NewFromString(strings.TrimSpace(q.Get("market_cap")))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid market_cap: %w", err))
		return
	}
	gdp, err := decimal.NewFromString(strings.TrimSpace(q.Get("gdp")))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid gdp: %w", err))
		return
	}
	percent, err := valuation.ComputeIndicator(mc, gdp)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	pf, _ := percent.Float64()
	writeJSON(w, http.StatusOK, calculatorResponse{
		MarketCap: mc,
		GDP:       gdp,
		Percent:   percent,
		Band:      valuation.ClassifyBand(pf),
	})
}

// fetchStatus maps collector errors to HTTP statuses: configuration
// mistakes are the client's, transport failures are upstream's.
func fetchStatus(err error) int {
	if errors.Is(err, collector.ErrUnknownCountry) || errors.Is(err, collector.ErrInvalidYearRange) {
		return http.StatusBadRequest
	}
	return http.StatusBadGateway
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[ERROR] encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
