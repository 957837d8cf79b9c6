package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/team6/sales-report-api/infrastructure/integrator/salesdata"
	"github.com/team6/sales-report-api/infrastructure/repository"
	"github.com/team6/sales-report-api/internal/config"
	"github.com/team6/sales-report-api/internal/domain"
	"github.com/team6/sales-report-api/pkg/log"
)

// DailySummarySyncConfig holds the scheduling knobs for the nightly cache
// sync.
type DailySummarySyncConfig struct {
	CronSchedule        string
	LookbackDays        int
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	RetentionDays       int
	SyncEnabled         bool
}

// DailySummarySyncService refreshes the daily summary cache from the sales
// data service. Closed days change only when late reports arrive, so the
// lookback window re-seals a few recent days every night.
type DailySummarySyncService struct {
	scheduler           *gocron.Scheduler
	config              DailySummarySyncConfig
	appConfig           *config.Config
	summaryRepo         repository.DailySummaryRepository
	salesService        salesdata.SalesDataIntegrator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// SyncStatus is the monitoring snapshot served by the cron status endpoint.
type SyncStatus struct {
	Running         bool       `json:"running"`
	Enabled         bool       `json:"enabled"`
	CronSchedule    string     `json:"cron_schedule"`
	LookbackDays    int        `json:"lookback_days"`
	LastStartedAt   *time.Time `json:"last_started_at,omitempty"`
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
}

func NewDailySummarySyncService(
	summaryRepo repository.DailySummaryRepository,
	salesService salesdata.SalesDataIntegrator,
	appConfig *config.Config,
) *DailySummarySyncService {
	syncConfig := DailySummarySyncConfig{
		CronSchedule:        appConfig.DailySummarySync.CronSchedule,
		LookbackDays:        appConfig.DailySummarySync.LookbackDays,
		RequestDelaySeconds: appConfig.DailySummarySync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.DailySummarySync.MaxConcurrentJobs,
		RetentionDays:       appConfig.DailySummarySync.RetentionDays,
		SyncEnabled:         appConfig.DailySummarySync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	log.L.WithFields(log.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"lookback_days":         syncConfig.LookbackDays,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"retention_days":        syncConfig.RetentionDays,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("daily summary sync configuration loaded")

	return &DailySummarySyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		appConfig:    appConfig,
		summaryRepo:  summaryRepo,
		salesService: salesService,
		syncRunning:  false,
	}
}

// Start schedules the nightly sync and stops the scheduler when ctx ends.
func (s *DailySummarySyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		log.L.Info("daily summary sync disabled by configuration")
		return nil
	}

	log.L.WithField("cron", s.config.CronSchedule).Info("starting daily summary sync scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncDailySummaries()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule daily summary sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("stopping daily summary sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow triggers a sync outside the schedule. Returns an error when a sync
// is already in flight.
func (s *DailySummarySyncService) RunNow() error {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		return fmt.Errorf("daily summary sync already running")
	}

	go s.syncDailySummaries()
	return nil
}

// Status reports the scheduler state for monitoring.
func (s *DailySummarySyncService) Status() SyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := SyncStatus{
		Running:      s.syncRunning,
		Enabled:      s.config.SyncEnabled,
		CronSchedule: s.config.CronSchedule,
		LookbackDays: s.config.LookbackDays,
	}

	if !s.lastSyncStartedAt.IsZero() {
		startedAt := s.lastSyncStartedAt
		status.LastStartedAt = &startedAt
	}
	if !s.lastSyncCompletedAt.IsZero() {
		completedAt := s.lastSyncCompletedAt
		status.LastCompletedAt = &completedAt
	}

	return status
}

func (s *DailySummarySyncService) syncDailySummaries() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("daily summary sync already in progress, skipping")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	startTime := time.Now()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	dates := s.datesToProcess()
	if len(dates) == 0 {
		log.L.Info("no dates to process for daily summary sync")
		return
	}

	log.L.WithFields(log.Fields{
		"days":       len(dates),
		"start_date": dates[len(dates)-1].Format(time.DateOnly),
		"end_date":   dates[0].Format(time.DateOnly),
	}).Info("starting daily summary sync")

	processed, failed := s.processDates(dates)

	s.pruneOldSummaries()

	log.L.WithFields(log.Fields{
		"duration":  time.Since(startTime).String(),
		"processed": processed,
		"failed":    failed,
	}).Info("daily summary sync finished")
}

// pruneOldSummaries drops cache rows past the retention window. Pruning is
// best effort; a failure never fails the sync run.
func (s *DailySummarySyncService) pruneOldSummaries() {
	if s.config.RetentionDays <= 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	deleted, err := s.summaryRepo.DeleteOlderThan(ctx, s.config.RetentionDays)
	if err != nil {
		log.L.WithError(err).Error("failed to prune old daily summaries")
		return
	}

	if deleted > 0 {
		log.L.WithFields(log.Fields{
			"deleted":        deleted,
			"retention_days": s.config.RetentionDays,
		}).Info("pruned old daily summaries")
	}
}

// datesToProcess lists the lookback window, newest first. Today is excluded:
// its reports are still arriving and the dashboard fetches it live anyway.
func (s *DailySummarySyncService) datesToProcess() []time.Time {
	lookback := s.config.LookbackDays
	if lookback <= 0 {
		lookback = 1
	}

	yesterday := domain.Midnight(time.Now()).AddDate(0, 0, -1)

	dates := make([]time.Time, 0, lookback)
	for i := 0; i < lookback; i++ {
		dates = append(dates, yesterday.AddDate(0, 0, -i))
	}

	return dates
}

func (s *DailySummarySyncService) processDates(dates []time.Time) (processed, failed int) {
	maxJobs := s.config.MaxConcurrentJobs
	if maxJobs <= 0 {
		maxJobs = 1
	}

	semaphore := make(chan struct{}, maxJobs)
	var mu sync.Mutex
	wg := sync.WaitGroup{}

	for i, date := range dates {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(date time.Time) {
			defer wg.Done()
			defer func() { <-semaphore }()

			if err := s.syncDate(date); err != nil {
				log.L.WithError(err).WithField("date", date.Format(time.DateOnly)).
					Error("failed to sync daily summaries for date")
				mu.Lock()
				failed++
				mu.Unlock()
				return
			}

			mu.Lock()
			processed++
			mu.Unlock()
		}(date)

		// Spacing between request bursts keeps the external API happy.
		if s.config.RequestDelaySeconds > 0 && i < len(dates)-1 {
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}
	}

	wg.Wait()
	return processed, failed
}

// syncDate fetches one day across all locations and upserts one summary row
// per location that reported sales.
func (s *DailySummarySyncService) syncDate(date time.Time) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	records, err := s.salesService.GetSalesByDate(ctx, date, nil)
	if err != nil {
		return err
	}

	totals := make(map[int]*domain.DailySummary)
	for _, record := range records {
		summary, ok := totals[record.LocationID]
		if !ok {
			summary = &domain.DailySummary{
				LocationID: record.LocationID,
				Date:       date.Format(time.DateOnly),
			}
			totals[record.LocationID] = summary
		}
		summary.TotalAmount += record.Amount
		summary.ReportCount++
	}

	for _, summary := range totals {
		if err := s.summaryRepo.SaveOrUpdate(ctx, summary); err != nil {
			return err
		}
	}

	return nil
}
