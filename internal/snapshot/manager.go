package snapshot

import (
	"sync"
	"time"

	"github.com/cybergeekgyan/BuffetIndicatorApp/internal/model"
)

// Snapshot is the result of one scheduled refresh.
type Snapshot struct {
	FetchedAt   time.Time            `json:"fetched_at"`
	StartYear   int                  `json:"start_year"`
	EndYear     int                  `json:"end_year"`
	Tables      []model.CountryTable `json:"tables"`
	Combined    model.CombinedTable  `json:"combined"`
	Assessments []model.Assessment   `json:"assessments"`
}

// Manager holds the most recent snapshot with concurrency safety.
// State lives in memory only; every refresh replaces it wholesale.
type Manager struct {
	mu   sync.Mutex
	snap *Snapshot
}

// NewManager creates an empty Manager.
func NewManager() *Manager {
	return &Manager{}
}

// Update replaces the held snapshot.
func (m *Manager) Update(s Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = &s
}

// Latest returns the held snapshot; ok is false before the first
// refresh completes. The copy shares underlying slices, so callers
// must treat it as read-only.
func (m *Manager) Latest() (Snapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.snap == nil {
		return Snapshot{}, false
	}
	return *m.snap, true
}
