package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/cybergeekgyan/BuffetIndicatorApp/internal/calculator"
	"github.com/cybergeekgyan/BuffetIndicatorApp/internal/collector"
	"github.com/cybergeekgyan/BuffetIndicatorApp/internal/notifier"
	"github.com/cybergeekgyan/BuffetIndicatorApp/internal/recorder"
	"github.com/cybergeekgyan/BuffetIndicatorApp/internal/snapshot"
	"github.com/cybergeekgyan/BuffetIndicatorApp/internal/valuation"
)

// RefreshSpec describes the dataset the scheduled refresh maintains.
type RefreshSpec struct {
	Countries []string
	StartYear int
	EndYear   int // 0 means current year
}

// Scheduler manages the cron-driven refresh and bot commands.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Snapshots *snapshot.Manager
	Notifier  *notifier.TelegramNotifier
	Recorder  recorder.Recorder
	Ctx       context.Context
	Spec      RefreshSpec
}

// NewScheduler creates a new Scheduler. tn may be nil when Telegram is
// not configured; notifications are then skipped.
func NewScheduler(ctx context.Context, col *collector.Collector, snaps *snapshot.Manager, tn *notifier.TelegramNotifier, rec recorder.Recorder, spec RefreshSpec) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Snapshots: snaps,
		Notifier:  tn,
		Recorder:  rec,
		Ctx:       ctx,
		Spec:      spec,
	}
}

// RegisterAll registers the scheduled refresh task.
func (s *Scheduler) RegisterAll(refreshCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunRefreshNow executes the refresh immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunRefreshNow() {
	s.refreshTask()
}

func (s *Scheduler) refreshTask() {
	log.Println("[INFO] running refresh task")
	tables, err := s.Collector.CollectAll(s.Spec.Countries, s.Spec.StartYear, s.Spec.EndYear)
	if err != nil {
		log.Printf("[ERROR] refresh collect: %v", err)
		s.trySend(notifier.FormatRefreshFailure(err))
		return
	}

	combined := calculator.Combine(tables)
	assessments := valuation.Evaluate(combined)
	fetchedAt := time.Now()

	endYear := s.Spec.EndYear
	if endYear == 0 {
		endYear = fetchedAt.Year()
	}
	s.Snapshots.Update(snapshot.Snapshot{
		FetchedAt:   fetchedAt,
		StartYear:   s.Spec.StartYear,
		EndYear:     endYear,
		Tables:      tables,
		Combined:    combined,
		Assessments: assessments,
	})

	s.trySend(notifier.FormatRefreshReport(assessments, fetchedAt))

	if err := s.Recorder.RecordRefresh(&recorder.RefreshRecord{
		FetchedAt:   fetchedAt,
		StartYear:   s.Spec.StartYear,
		EndYear:     endYear,
		Tables:      tables,
		Assessments: assessments,
	}); err != nil {
		log.Printf("[ERROR] record refresh: %v", err)
	}

	log.Printf("[INFO] refresh complete: %d countries, %d combined years", len(tables), len(combined.Years))
}

// HandleCommand processes a user command and returns a reply. An empty
// reply means the command sent its own messages.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/latest":
		snap, ok := s.Snapshots.Latest()
		if !ok {
			return "No data yet. Send /refresh to fetch now."
		}
		return notifier.FormatRefreshReport(snap.Assessments, snap.FetchedAt)
	case "/refresh":
		s.refreshTask()
		return ""
	case "/countries":
		return notifier.FormatCountries()
	default:
		return notifier.FormatHelp()
	}
}

func (s *Scheduler) trySend(text string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
