package recorder

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/guregu/null/v6"

	"github.com/cybergeekgyan/BuffetIndicatorApp/internal/model"
)

func TestSQLiteRecorder_RecordRefresh(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "explorer.db")
	r, err := NewSQLiteRecorder(dbPath)
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	defer r.Close()

	rec := &RefreshRecord{
		FetchedAt: time.Now(),
		StartYear: 2019,
		EndYear:   2021,
		Tables: []model.CountryTable{{
			Country: "United States",
			Rows: []model.CountryRow{
				{Year: 2020, MarketCap: null.FloatFrom(100), GDP: null.FloatFrom(50), Ratio: null.FloatFrom(2.0)},
				{Year: 2021, MarketCap: null.FloatFrom(110), GDP: null.Float{}},
			},
		}},
		Assessments: []model.Assessment{
			{Country: "United States", Year: 2020, Percent: 200, Band: model.BandSignificantlyOvervalued, Mean: 200},
		},
	}
	if err := r.RecordRefresh(rec); err != nil {
		t.Fatalf("record refresh: %v", err)
	}

	var rows int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM refresh_rows").Scan(&rows); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if rows != 2 {
		t.Errorf("expected 2 refresh rows, got %d", rows)
	}

	var gdp *float64
	if err := r.db.QueryRow("SELECT gdp FROM refresh_rows WHERE year = 2021").Scan(&gdp); err != nil {
		t.Fatalf("select 2021 gdp: %v", err)
	}
	if gdp != nil {
		t.Errorf("expected NULL gdp for absent observation, got %v", *gdp)
	}

	var band string
	if err := r.db.QueryRow("SELECT band FROM assessments WHERE country = 'United States'").Scan(&band); err != nil {
		t.Fatalf("select assessment: %v", err)
	}
	if band != string(model.BandSignificantlyOvervalued) {
		t.Errorf("expected band stored as text, got %q", band)
	}
}

func TestSQLiteRecorder_Reopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "explorer.db")
	r, err := NewSQLiteRecorder(dbPath)
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// migrations are idempotent
	r2, err := NewSQLiteRecorder(dbPath)
	if err != nil {
		t.Fatalf("reopen recorder: %v", err)
	}
	r2.Close()
}
