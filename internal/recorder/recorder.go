package recorder

import (
	"time"

	"github.com/cybergeekgyan/BuffetIndicatorApp/internal/model"
)

// RefreshRecord holds all data from one completed refresh.
type RefreshRecord struct {
	FetchedAt   time.Time
	StartYear   int
	EndYear     int
	Tables      []model.CountryTable
	Assessments []model.Assessment
}

// Recorder appends refresh history for later analysis. Implementations
// are write-only; the application never reads recorded data back.
type Recorder interface {
	RecordRefresh(rec *RefreshRecord) error
	Close() error
}
