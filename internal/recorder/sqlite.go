package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists refresh history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode keeps external readers (sqlite3 CLI, dashboards) from blocking writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS refresh_rows (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			recorded_at INTEGER NOT NULL,
			country     TEXT NOT NULL,
			year        INTEGER NOT NULL,
			market_cap  REAL,
			gdp         REAL,
			ratio       REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_refresh_rows_ts ON refresh_rows(recorded_at)`,
		`CREATE INDEX IF NOT EXISTS idx_refresh_rows_country ON refresh_rows(country, year)`,

		`CREATE TABLE IF NOT EXISTS assessments (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			recorded_at  INTEGER NOT NULL,
			country      TEXT NOT NULL,
			year         INTEGER NOT NULL,
			percent      REAL,
			band         TEXT,
			mean_percent REAL,
			delta_mean   REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_assessments_ts ON assessments(recorded_at)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordRefresh appends every country-year row and assessment from one
// refresh in a single transaction. Absent observations are stored as NULL.
func (r *SQLiteRecorder) RecordRefresh(rec *RefreshRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ts := rec.FetchedAt.Unix()
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	rowStmt, err := tx.Prepare(`INSERT INTO refresh_rows
		(recorded_at, country, year, market_cap, gdp, ratio)
		VALUES (?,?,?,?,?,?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare refresh row: %w", err)
	}
	for _, t := range rec.Tables {
		for _, row := range t.Rows {
			if _, err := rowStmt.Exec(ts, t.Country, row.Year,
				row.MarketCap, row.GDP, row.Ratio); err != nil {
				rowStmt.Close()
				tx.Rollback()
				return fmt.Errorf("insert refresh row: %w", err)
			}
		}
	}
	rowStmt.Close()

	for _, a := range rec.Assessments {
		if _, err := tx.Exec(`INSERT INTO assessments
			(recorded_at, country, year, percent, band, mean_percent, delta_mean)
			VALUES (?,?,?,?,?,?,?)`,
			ts, a.Country, a.Year, a.Percent, string(a.Band), a.Mean, a.DeltaMean); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert assessment: %w", err)
		}
	}
	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
