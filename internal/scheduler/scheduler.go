package scheduler

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/ordercast/internal/config"
	"github.com/mamadbah2/ordercast/internal/telemetry"
)

// Scheduler periodically logs a dispatch-outcome summary. Notification
// delivery is fire-and-forget relative to the webhook response, so the
// summary is how operators notice sustained failures or rejected-signature
// spikes without scraping /metrics.
type Scheduler struct {
	cron    *cron.Cron
	cfg     config.SummaryConfig
	metrics *telemetry.Metrics
	logger  *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.SummaryConfig, metrics *telemetry.Metrics, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:    cron.New(),
		cfg:     cfg,
		metrics: metrics,
		logger:  logger,
	}
}

// Start registers the summary job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting dispatch summary scheduler",
		zap.String("schedule", s.cfg.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.logSummary); err != nil {
		s.logger.Error("failed to schedule dispatch summary", zap.Error(err))
		return
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping dispatch summary scheduler")
	s.cron.Stop()
}

func (s *Scheduler) logSummary() {
	snap := s.metrics.SnapshotDelta()

	if snap.Sent == 0 && snap.Skipped == 0 && snap.Failed == 0 && snap.Rejected == 0 {
		s.logger.Debug("no webhook activity since last summary")
		return
	}

	s.logger.Info("dispatch summary",
		zap.Int64("sent", snap.Sent),
		zap.Int64("skipped_no_recipient", snap.Skipped),
		zap.Int64("dispatch_failed", snap.Failed),
		zap.Int64("rejected_signatures", snap.Rejected))
}
