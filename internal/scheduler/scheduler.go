package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"propertyhub-backend/internal/config"
	"propertyhub-backend/internal/logger"
)

// Runner is the set of jobs the scheduler triggers
type Runner interface {
	ResetBillingPeriod() error
	SendBalanceReminders() error
	RecordCollectionSnapshot() error
}

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs Runner
}

// NewScheduler creates a new scheduler and registers every job. An invalid
// cron spec is a configuration error and is returned.
func NewScheduler(jobRunner Runner, cfg config.SchedulerConfig) (*Scheduler, error) {
	// Create cron with UTC timezone and seconds precision
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	if err := s.registerJobs(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) registerJobs(cfg config.SchedulerConfig) error {
	entries := []struct {
		name string
		spec string
		run  func() error
	}{
		{"ResetBillingPeriod", cfg.ResetBillingPeriod, s.jobs.ResetBillingPeriod},
		{"SendBalanceReminders", cfg.SendBalanceReminders, s.jobs.SendBalanceReminders},
		{"RecordCollectionSnapshot", cfg.RecordCollectionSnapshot, s.jobs.RecordCollectionSnapshot},
	}

	for _, e := range entries {
		run := e.run
		if _, err := s.cron.AddFunc(e.spec, func() { _ = run() }); err != nil {
			logger.Error("Failed to register job", "job", e.name, "spec", e.spec, "error", err)
			return fmt.Errorf("register %s: %w", e.name, err)
		}
	}

	logger.Info("All cron jobs registered successfully", "count", len(entries))
	return nil
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	logger.Info("Starting cron scheduler...")
	s.cron.Start()
	logger.Info("Cron scheduler started successfully")
}

// Stop gracefully stops the cron scheduler, waiting for running jobs
func (s *Scheduler) Stop() {
	logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cron scheduler stopped")
}

// Entries returns the registered cron entries
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}
