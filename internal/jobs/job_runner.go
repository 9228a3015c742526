package jobs

import (
	"context"
	"fmt"
	"time"

	"propertyhub-backend/internal/billing"
	"propertyhub-backend/internal/config"
	"propertyhub-backend/internal/logger"
	"propertyhub-backend/internal/metrics"
	"propertyhub-backend/internal/repository"
	"propertyhub-backend/internal/service"
)

const (
	JobResetBillingPeriod       = "reset-billing-period"
	JobSendBalanceReminders     = "send-balance-reminders"
	JobRecordCollectionSnapshot = "record-collection-snapshot"
)

const jobTimeout = 5 * time.Minute

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	tenants repository.TenantRepository
	calc    *billing.Calculator
	email   service.EmailService
	metrics *metrics.Metrics
	config  *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(tenants repository.TenantRepository, calc *billing.Calculator, email service.EmailService, m *metrics.Metrics, cfg *config.Config) *JobRunner {
	return &JobRunner{
		tenants: tenants,
		calc:    calc,
		email:   email,
		metrics: m,
		config:  cfg,
	}
}

func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery, timing and metrics
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func(ctx context.Context) error) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job panicked: %v", r)
		}
		jr.metrics.JobRun(jobName, err)
		logger.JobFinished(jobName, err, "duration_ms", time.Since(start).Milliseconds())
	}()

	logger.JobStarted(jobName)
	return jobFunc(ctx)
}

// Run executes a single job by name
func (jr *JobRunner) Run(jobName string) error {
	switch jobName {
	case JobResetBillingPeriod:
		return jr.ResetBillingPeriod()
	case JobSendBalanceReminders:
		return jr.SendBalanceReminders()
	case JobRecordCollectionSnapshot:
		return jr.RecordCollectionSnapshot()
	case "all":
		return jr.RunAll()
	}
	return fmt.Errorf("unknown job %q", jobName)
}

// RunAll runs the read-only jobs for manual execution. The period reset
// must be requested by name.
func (jr *JobRunner) RunAll() error {
	var firstErr error
	for _, run := range []func() error{jr.RecordCollectionSnapshot, jr.SendBalanceReminders} {
		if err := run(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// ResetBillingPeriod clears every tenant's paid-flags, opening a new period
func (jr *JobRunner) ResetBillingPeriod() error {
	return jr.runWithRecovery(JobResetBillingPeriod, func(ctx context.Context) error {
		// Capture the closing period before the flags go away
		if tenants, err := jr.tenants.List(ctx); err != nil {
			logger.Warn("Failed to snapshot closing billing period", "error", err)
		} else {
			summary := jr.calc.Aggregate(tenants)
			logger.Info("Closing billing period",
				"collection_rate", summary.CollectionRate,
				"total_collected", summary.TotalCollected.String(),
				"total_outstanding", summary.TotalOutstanding.String())
		}

		n, err := jr.tenants.ResetBillingPeriod(ctx)
		if err != nil {
			return err
		}
		logger.Info("Opened new billing period", "tenants_reset", n)
		return nil
	})
}

// SendBalanceReminders emails each tenant who still owes for the period
func (jr *JobRunner) SendBalanceReminders() error {
	return jr.runWithRecovery(JobSendBalanceReminders, func(ctx context.Context) error {
		tenants, err := jr.tenants.List(ctx)
		if err != nil {
			return err
		}

		sent, failed := 0, 0
		for i := range tenants {
			t := &tenants[i]
			balance := jr.calc.ComputeBalance(t)
			if !balance.Balance.IsPositive() {
				continue
			}
			if err := jr.email.SendBalanceReminder(ctx, t, balance); err != nil {
				logger.Error("Failed to send balance reminder",
					"tenant_id", t.ID,
					"email", t.Email,
					"error", err)
				failed++
				continue
			}
			sent++
		}

		logger.Info("Balance reminders processed", "sent", sent, "failed", failed)
		if failed > 0 && sent == 0 {
			return fmt.Errorf("all %d balance reminders failed", failed)
		}
		return nil
	})
}

// RecordCollectionSnapshot aggregates the dashboard and publishes it as gauges
func (jr *JobRunner) RecordCollectionSnapshot() error {
	return jr.runWithRecovery(JobRecordCollectionSnapshot, func(ctx context.Context) error {
		tenants, err := jr.tenants.List(ctx)
		if err != nil {
			return err
		}
		summary := jr.calc.Aggregate(tenants)
		jr.metrics.SetCollection(summary)
		logger.Info("Collection snapshot",
			"total_tenants", summary.TotalTenants,
			"paid_tenants", summary.PaidTenants,
			"collection_rate", summary.CollectionRate,
			"total_outstanding", summary.TotalOutstanding.String())
		return nil
	})
}
