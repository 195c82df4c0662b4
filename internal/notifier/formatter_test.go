package notifier

import (
	"strings"
	"testing"
	"time"

	"github.com/cybergeekgyan/BuffetIndicatorApp/internal/model"
)

func TestFormatRefreshReport(t *testing.T) {
	assessments := []model.Assessment{
		{Country: "United States", Year: 2024, Percent: 207.46, Band: model.BandSignificantlyOvervalued,
			Mean: 150.2, DeltaMean: 57.26, WarningMsg: "⚠️ above 200%, historically very high"},
		{Country: "Japan", Year: 2024, Percent: 146.21, Band: model.BandSignificantlyOvervalued,
			Mean: 100.4, DeltaMean: 45.81},
	}
	fetchedAt := time.Date(2025, 3, 1, 7, 0, 0, 0, time.UTC)

	msg := FormatRefreshReport(assessments, fetchedAt)

	for _, want := range []string{
		"2025-03-01",
		"<b>United States</b>: 207.46% (2024)",
		"<b>Japan</b>: 146.21% (2024)",
		"historically very high",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("report missing %q:\n%s", want, msg)
		}
	}
	if strings.Index(msg, "United States") > strings.Index(msg, "Japan") {
		t.Error("expected countries in input order (highest percent first)")
	}
}

func TestFormatRefreshReport_NoData(t *testing.T) {
	msg := FormatRefreshReport(nil, time.Now())
	if !strings.Contains(msg, "No data available") {
		t.Errorf("expected no-data notice, got:\n%s", msg)
	}
}

func TestFormatCountries_ListsAll(t *testing.T) {
	msg := FormatCountries()
	for _, c := range model.SupportedCountries {
		if !strings.Contains(msg, c.Name) || !strings.Contains(msg, c.ISO3) {
			t.Errorf("expected %s (%s) listed, got:\n%s", c.Name, c.ISO3, msg)
		}
	}
}

func TestNormalizeCommand(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/latest", "/latest"},
		{"  /Refresh  ", "/refresh"},
		{"/latest@BuffettExplorerBot", "/latest"},
		{"@mention first", "@mention first"},
	}
	for _, tt := range tests {
		if got := normalizeCommand(tt.in); got != tt.want {
			t.Errorf("%q: expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
